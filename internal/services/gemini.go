package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/criteria-scorer/internal/logger"
)

const defaultModel = "gemini-2.5-flash"

// StructuredRequest is one structured-output call: a system instruction, the
// user content and the schema the reply must follow.
type StructuredRequest struct {
	Operation   string
	System      string
	Prompt      string
	Schema      *genai.Schema
	Temperature float32
}

type GeminiService interface {
	// GenerateStructured returns the raw JSON text of the model reply.
	GenerateStructured(ctx context.Context, req StructuredRequest) (string, error)
	Model() string
}

// contentModels is the slice of *genai.Models the service needs.
type contentModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiOptions struct {
	Model           string
	Timeout         time.Duration
	MaxAttempts     int
	RetryDelay      time.Duration
	MaxOutputTokens int32
	MaxLogPreview   int
}

type geminiService struct {
	models contentModels
	opts   GeminiOptions
	logger *zap.Logger
}

func NewGeminiService(ctx context.Context, apiKey string, opts GeminiOptions, log *zap.Logger) (GeminiService, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return newGeminiService(client.Models, opts, log), nil
}

func newGeminiService(models contentModels, opts GeminiOptions, log *zap.Logger) *geminiService {
	if opts.Model = strings.TrimSpace(opts.Model); opts.Model == "" {
		opts.Model = defaultModel
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.MaxOutputTokens <= 0 {
		opts.MaxOutputTokens = 1024
	}

	return &geminiService{
		models: models,
		opts:   opts,
		logger: logger.OrNop(log).With(zap.String("ai_provider", "gemini"), zap.String("ai_model", opts.Model)),
	}
}

func (g *geminiService) Model() string {
	return g.opts.Model
}

// GenerateStructured implements GeminiService. Only transient provider errors
// are retried, and only when MaxAttempts allows it.
func (g *geminiService) GenerateStructured(ctx context.Context, req StructuredRequest) (string, error) {
	log := g.logger.With(zap.String("operation", req.Operation))

	log.Debug("gemini structured request",
		zap.Int("prompt_length", utf8.RuneCountInString(req.Prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(req.Prompt, g.opts.MaxLogPreview)),
	)

	var lastErr error
	for attempt := 1; attempt <= g.opts.MaxAttempts; attempt++ {
		start := time.Now()
		text, err := g.generateOnce(ctx, req)
		if err == nil {
			log.Debug("gemini structured response",
				zap.Int("attempt", attempt),
				zap.Duration("duration", time.Since(start)),
				zap.Int("response_length", utf8.RuneCountInString(text)),
				zap.String("response_preview", logger.TruncateForLog(text, g.opts.MaxLogPreview)),
			)
			return text, nil
		}

		lastErr = err
		if attempt == g.opts.MaxAttempts || !isRetryable(err) || ctx.Err() != nil {
			break
		}

		log.Warn("gemini call failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", g.opts.MaxAttempts),
			zap.Error(err),
		)

		if err := waitFor(ctx, g.opts.RetryDelay); err != nil {
			return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
		}
	}

	log.Error("gemini call failed", zap.Error(lastErr))
	return "", lastErr
}

func (g *geminiService) generateOnce(ctx context.Context, req StructuredRequest) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
	defer cancel()

	temperature := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  g.opts.MaxOutputTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema,
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	resp, err := g.models.GenerateContent(callCtx, g.opts.Model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	return replyText(resp)
}

func replyText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", ErrMalformedResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s", ErrMalformedResponse, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no candidates in response", ErrMalformedResponse)
	}

	if reason := resp.Candidates[0].FinishReason; reason != "" && reason != genai.FinishReasonStop {
		return "", fmt.Errorf("%w: generation stopped early: %s", ErrMalformedResponse, reason)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: no text content in response", ErrMalformedResponse)
	}

	return text, nil
}

func isRetryable(err error) bool {
	if !errors.Is(err, ErrUpstreamUnavailable) {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.Code)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return retryableStatus(apiErrPtr.Code)
	}

	return errors.Is(err, context.DeadlineExceeded)
}

func retryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
