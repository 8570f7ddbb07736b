package bootstrap

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"coverletter/generator/internal/config"
	"coverletter/generator/internal/metrics"
	"coverletter/generator/internal/repositories"
	"coverletter/generator/internal/services"
)

// App holds the dependencies shared by the HTTP server and the CLI.
type App struct {
	Config       *config.Config
	DB           *gorm.DB
	Metrics      *metrics.Metrics
	Storage      services.StorageService
	CoverLetters services.CoverLetterService
}

// Build validates cfg and wires every service. The database is only opened when
// DB_ENABLED is set.
func Build(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &App{
		Config:  cfg,
		Metrics: metrics.New(),
	}

	var genRepo repositories.GenerationRepository
	if cfg.Database.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			return nil, err
		}
		app.DB = db
		genRepo = repositories.NewGenerationRepository(db)
		log.Println("✅ Generation audit log enabled")
	}

	app.Storage = services.NewStorageService(cfg.Storage.OutputDir)
	if err := app.Storage.EnsureOutputDir(); err != nil {
		return nil, err
	}

	retry := services.RetryPolicy{
		MaxAttempts:  cfg.Retry.MaxAttempts,
		InitialDelay: cfg.Retry.InitialDelay,
		MaxDelay:     cfg.Retry.MaxDelay,
	}

	resume := services.NewResumeService(
		cfg.Resume.LocalPath,
		cfg.Resume.RemoteURL,
		cfg.Resume.FetchTimeout,
		services.NewPDFParserService(),
		retry,
	)

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		return nil, err
	}
	log.Println("✅ Gemini AI initialized successfully")

	generator := services.NewLetterGenerator(
		geminiService,
		cfg.Gemini.Strategy,
		services.PollPolicy{Interval: cfg.Gemini.PollInterval, MaxPolls: cfg.Gemini.MaxPolls},
		retry,
		app.Metrics,
	)

	app.CoverLetters = services.NewCoverLetterService(
		cfg,
		resume,
		services.NewPromptBuilder(cfg.Prompt.SystemInstructionPath),
		generator,
		services.NewPDFRenderer(true),
		app.Storage,
		genRepo,
		app.Metrics,
	)
	log.Println("✅ Services initialized successfully")

	return app, nil
}

// BuildRenderer wires only what RenderLetter needs. It does not require Gemini
// credentials; GenerateLetter must not be called on the result.
func BuildRenderer(cfg *config.Config) (*App, error) {
	app := &App{
		Config:  cfg,
		Metrics: metrics.New(),
		Storage: services.NewStorageService(cfg.Storage.OutputDir),
	}
	if err := app.Storage.EnsureOutputDir(); err != nil {
		return nil, err
	}

	app.CoverLetters = services.NewCoverLetterService(
		cfg, nil, nil, nil,
		services.NewPDFRenderer(true),
		app.Storage,
		nil,
		app.Metrics,
	)
	return app, nil
}

// Close releases the database connection, if any.
func (a *App) Close() {
	if a.DB == nil {
		return
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
}
