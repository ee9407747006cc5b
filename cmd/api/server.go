package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"go.uber.org/zap"

	_ "alfredoptarigan/criteria-scorer/docs"
	"alfredoptarigan/criteria-scorer/internal/config"
	"alfredoptarigan/criteria-scorer/internal/handlers"
	"alfredoptarigan/criteria-scorer/internal/services"
)

// multipart framing on top of the file itself
const bodyOverhead = 1 << 20

type serverServices struct {
	model     string
	extractor services.CriteriaExtractor
	scorer    services.ResumeScorer
	evaluator services.EvaluatorService
	pdfParser services.PDFParserService
}

func newServer(cfg *config.Config, zl *zap.Logger, svc serverServices) *fiber.App {
	// Initialize Handlers
	healthHandler := handlers.NewHealthHandler(svc.model)
	criteriaHandler := handlers.NewCriteriaHandler(svc.extractor, svc.pdfParser, cfg.Storage.MaxFileSize)
	scoreHandler := handlers.NewScoreHandler(svc.scorer, svc.pdfParser, cfg.Storage.MaxFileSize)
	evaluateHandler := handlers.NewEvaluationHandler(svc.evaluator)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:           "Criteria Scorer API",
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		BodyLimit:         int(cfg.Storage.MaxFileSize) + bodyOverhead,
		ErrorHandler:      handlers.ErrorHandler(zl),
		EnablePrintRoutes: cfg.IsDevelopment(),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:requestid}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	api.Get("/health", healthHandler.HandleHealth)
	api.Post("/extract-criteria", criteriaHandler.HandleExtract)
	api.Post("/extract-criteria/upload", criteriaHandler.HandleExtractUpload)
	api.Post("/score-resume", scoreHandler.HandleScore)
	api.Post("/score-resume/upload", scoreHandler.HandleScoreUpload)
	api.Post("/evaluate", evaluateHandler.HandleEvaluate)

	app.Get("/docs/*", swagger.HandlerDefault)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Criteria Scorer API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /api/v1/health",
				"POST /api/v1/extract-criteria",
				"POST /api/v1/extract-criteria/upload",
				"POST /api/v1/score-resume",
				"POST /api/v1/score-resume/upload",
				"POST /api/v1/evaluate",
				"GET /docs/index.html",
			},
		})
	})

	return app
}
