package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/criteria-scorer/internal/config"
	"alfredoptarigan/criteria-scorer/internal/logger"
	"alfredoptarigan/criteria-scorer/internal/services"
)

type app struct {
	extractor services.CriteriaExtractor
	scorer    services.ResumeScorer
	evaluator services.EvaluatorService
	pdfParser services.PDFParserService
	logger    *zap.Logger
}

// newApp builds the services a command runs against. Tests replace it.
var newApp = loadApp

// loadApp wires the services from the environment the same way the API
// server does. Logs go to stderr so stdout stays pure JSON.
func loadApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	zl, err := logger.NewStderr(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	gemini, err := services.NewGeminiService(ctx, cfg.Gemini.APIKey, services.GeminiOptions{
		Model:           cfg.Gemini.Model,
		Timeout:         cfg.Gemini.Timeout,
		MaxAttempts:     cfg.Gemini.MaxAttempts,
		RetryDelay:      cfg.Gemini.RetryDelay,
		MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		MaxLogPreview:   cfg.Log.MaxPreview,
	}, zl)
	if err != nil {
		return nil, err
	}

	return appFor(gemini, zl), nil
}

func appFor(gemini services.GeminiService, zl *zap.Logger) *app {
	extractor := services.NewCriteriaExtractor(gemini, zl)
	scorer := services.NewResumeScorer(gemini, zl)

	return &app{
		extractor: extractor,
		scorer:    scorer,
		evaluator: services.NewEvaluatorService(extractor, scorer, zl),
		pdfParser: services.NewPDFParserService(),
		logger:    zl,
	}
}

// readDocument returns the text of path. PDFs go through the parser, anything
// else is read as plain text.
func readDocument(path string, pdfParser services.PDFParserService) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := pdfParser.ExtractText(data)
		if err != nil {
			return "", fmt.Errorf("failed to parse %s: %w", path, err)
		}
		return text, nil
	}

	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
