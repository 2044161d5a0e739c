package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/resume-summarizer/internal/config"
	"alfredoptarigan/resume-summarizer/internal/handlers"
	"alfredoptarigan/resume-summarizer/internal/server"
	"alfredoptarigan/resume-summarizer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	// Initialize services
	pdfParser := services.NewPDFParserService()
	promptBuilder := services.NewPromptBuilder()

	geminiService, err := services.NewGeminiService(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Printf("✅ Gemini AI initialized with model %s", geminiService.ModelName())

	summaryClient := services.NewSummaryClient(geminiService, cfg.LLM.Timeout, cfg.LLM.MaxAttempts)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	uploadHandler := handlers.NewUploadHandler(pdfParser, promptBuilder, summaryClient)
	healthHandler := handlers.NewHealthHandler(geminiService.ModelName())
	log.Println("✅ Handlers initialized")

	app := server.New(cfg, uploadHandler, healthHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := cfg.Addr()
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
