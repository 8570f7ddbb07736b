package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StrategyUpload = "upload"
	StrategyInline = "inline"
)

// DefaultAllowedModels are the models offered by the web client.
const DefaultAllowedModels = "gemini-2.5-pro,gemini-2.5-flash,gemini-2.5-flash-lite,gemini-2.0-flash"

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Gemini   GeminiConfig
	Resume   ResumeConfig
	Prompt   PromptConfig
	Storage  StorageConfig
	Retry    RetryConfig
}

type ServerConfig struct {
	Port              string
	Env               string
	AllowOrigins      string
	GenerationTimeout time.Duration
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type GeminiConfig struct {
	APIKey        string
	Model         string
	AllowedModels []string
	Strategy      string
	PollInterval  time.Duration
	MaxPolls      int
}

type ResumeConfig struct {
	LocalPath           string
	RemoteURL           string
	FetchTimeout        time.Duration
	ProjectsPath        string
	ProjectsDeclaration string
}

type PromptConfig struct {
	SystemInstructionPath string
}

type StorageConfig struct {
	OutputDir string
}

type RetryConfig struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "5000"),
			Env:               getEnv("ENV", "development"),
			AllowOrigins:      getEnv("CORS_ALLOW_ORIGINS", "*"),
			GenerationTimeout: getEnvAsDuration("GENERATION_TIMEOUT", "5m"),
		},
		Database: DatabaseConfig{
			Enabled:  getEnvAsBool("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "cover_letters"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),

			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 5),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "30m"),
		},
		Gemini: GeminiConfig{
			APIKey:        getEnv("GEMINI_API_KEY", ""),
			Model:         getEnv("GEMINI_MODEL", "gemini-2.5-pro"),
			AllowedModels: getEnvAsList("GEMINI_ALLOWED_MODELS", DefaultAllowedModels),
			Strategy:      strings.ToLower(getEnv("GEMINI_STRATEGY", StrategyUpload)),
			PollInterval:  getEnvAsDuration("GEMINI_POLL_INTERVAL", "2s"),
			MaxPolls:      getEnvAsInt("GEMINI_MAX_POLLS", 30),
		},
		Resume: ResumeConfig{
			LocalPath:           getEnv("RESUME_PATH", "./static/resume.pdf"),
			RemoteURL:           getEnv("RESUME_URL", ""),
			FetchTimeout:        getEnvAsDuration("RESUME_FETCH_TIMEOUT", "30s"),
			ProjectsPath:        getEnv("PROJECTS_PATH", "./static/projects.js"),
			ProjectsDeclaration: getEnv("PROJECTS_DECLARATION", "projects"),
		},
		Prompt: PromptConfig{
			SystemInstructionPath: getEnv("SYSTEM_INSTRUCTION_PATH", "./static/system_instruction.txt"),
		},
		Storage: StorageConfig{
			OutputDir: getEnv("OUTPUT_DIR", "./output"),
		},
		Retry: RetryConfig{
			MaxAttempts:  getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
			InitialDelay: getEnvAsDuration("RETRY_INITIAL_DELAY", "1s"),
			MaxDelay:     getEnvAsDuration("RETRY_MAX_DELAY", "10s"),
		},
	}
}

// Validate reports settings that would make every request fail.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return errors.New("GEMINI_API_KEY is required")
	}
	if c.Gemini.Model == "" {
		return errors.New("GEMINI_MODEL is required")
	}
	if c.Gemini.Strategy != StrategyUpload && c.Gemini.Strategy != StrategyInline {
		return fmt.Errorf("unsupported GEMINI_STRATEGY %q", c.Gemini.Strategy)
	}
	if c.Gemini.MaxPolls <= 0 {
		return errors.New("GEMINI_MAX_POLLS must be positive")
	}
	if c.Retry.MaxAttempts <= 0 {
		return errors.New("RETRY_MAX_ATTEMPTS must be positive")
	}
	if c.Storage.OutputDir == "" {
		return errors.New("OUTPUT_DIR is required")
	}
	return nil
}

// IsModelAllowed accepts any model when no allow list is configured.
func (c *Config) IsModelAllowed(model string) bool {
	if len(c.Gemini.AllowedModels) == 0 {
		return true
	}
	for _, allowed := range c.Gemini.AllowedModels {
		if allowed == "*" || allowed == model {
			return true
		}
	}
	return false
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsList(key string, defaultValue string) []string {
	var items []string
	for _, item := range strings.Split(getEnv(key, defaultValue), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
