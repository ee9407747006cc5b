package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"alfredoptarigan/criteria-scorer/internal/config"
	"alfredoptarigan/criteria-scorer/internal/logger"
	"alfredoptarigan/criteria-scorer/internal/services"
)

//go:generate swag init --dir ../../ --generalInfo cmd/api/main.go --output ../../docs --outputTypes go,json --parseInternal

//	@title			Criteria Scorer API
//	@version		1.0
//	@description	Extracts the top job criteria from a job description and scores a resume against them on a 1-5 scale.
//	@BasePath		/
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// console output only while developing
	zl, err := logger.New(cfg.Log.JSON || !cfg.IsDevelopment(), cfg.Log.Debug)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zl.Sync()
	}()
	zl.Info("✅ Config loaded successfully", zap.String("env", cfg.Server.Env))

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(context.Background(), cfg.Gemini.APIKey, services.GeminiOptions{
		Model:           cfg.Gemini.Model,
		Timeout:         cfg.Gemini.Timeout,
		MaxAttempts:     cfg.Gemini.MaxAttempts,
		RetryDelay:      cfg.Gemini.RetryDelay,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		MaxLogPreview:   cfg.Log.MaxPreview,
	}, zl)
	if err != nil {
		zl.Fatal("❌ Failed to initialize Gemini AI", zap.Error(err))
	}
	zl.Info("✅ Gemini AI initialized successfully", zap.String("model", geminiService.Model()))

	// Initialize services
	extractor := services.NewCriteriaExtractor(geminiService, zl)
	scorer := services.NewResumeScorer(geminiService, zl)
	app := newServer(cfg, zl, serverServices{
		model:     geminiService.Model(),
		extractor: extractor,
		scorer:    scorer,
		evaluator: services.NewEvaluatorService(extractor, scorer, zl),
		pdfParser: services.NewPDFParserService(),
	})
	zl.Info("✅ Services initialized successfully")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.Server.WriteTimeout); err != nil {
			zl.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("🚀 Server starting", zap.String("addr", addr))
	zl.Info("📖 API Documentation", zap.String("url", fmt.Sprintf("http://localhost%s/docs/index.html", addr)))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
