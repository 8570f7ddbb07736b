package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"coverletter/generator/internal/bootstrap"
	"coverletter/generator/internal/config"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize application: %v", err)
	}
	defer app.Close()

	router := bootstrap.NewRouter(app)
	log.Println("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := router.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📄 Cover letters are written to %s\n", cfg.Storage.OutputDir)

	if err := router.Listen(addr); err != nil {
		log.Printf("❌ Failed to start server: %v", err)
	}
}
