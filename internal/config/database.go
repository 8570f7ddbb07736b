package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coverletter/generator/internal/models"
)

// InitDatabase connects to the audit database and migrates the generations table.
func InitDatabase(cfg *Config) (*gorm.DB, error) {
	return openDatabase(postgres.Open(cfg.GetDatabaseDSN()), cfg)
}

func openDatabase(dialector gorm.Dialector, cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.Server.Env == "development" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	log.Printf("✅ Database connected (%s:%s/%s)", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	if err := db.AutoMigrate(&models.Generation{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("✅ Generations table migrated")

	return db, nil
}
