package bootstrap

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"coverletter/generator/internal/handlers"
)

const requestBodyLimit = 1 << 20

// NewRouter registers every route under /api/v1 and the legacy /api prefix.
func NewRouter(app *App) *fiber.App {
	cfg := app.Config
	withTraceback := cfg.Server.Env == "development"

	router := fiber.New(fiber.Config{
		AppName:      "Cover Letter Generator API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Server.GenerationTimeout + 30*time.Second,
		BodyLimit:    requestBodyLimit,
		ErrorHandler: customErrorHandler,
	})

	router.Use(recover.New())
	router.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	router.Use(app.Metrics.Middleware())

	generateHandler := handlers.NewGenerateHandler(app.CoverLetters, cfg.Server.GenerationTimeout, withTraceback)
	renderHandler := handlers.NewRenderHandler(app.CoverLetters, withTraceback)
	downloadHandler := handlers.NewDownloadHandler(app.Storage, withTraceback)

	for _, prefix := range []string{"/api/v1", "/api"} {
		api := router.Group(prefix)
		api.Post("/analyze", generateHandler.HandleAnalyze)
		api.Post("/generate-pdf", renderHandler.HandleGeneratePDF)
		api.Get("/download/:filename", downloadHandler.HandleDownload)
	}

	router.Get("/api/v1/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})
	router.Get("/metrics", app.Metrics.Handler())

	router.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Cover Letter Generator API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/analyze",
				"POST /api/v1/generate-pdf",
				"GET /api/v1/download/:filename",
				"GET /api/v1/health",
			},
		})
	})

	return router
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
