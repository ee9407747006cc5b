package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"alfredoptarigan/criteria-scorer/internal/logger"
)

// CriteriaCount is how many criteria are extracted per job description.
const CriteriaCount = 5

type CriteriaExtractor interface {
	Extract(ctx context.Context, jobDescription string) ([]string, error)
}

type criteriaExtractor struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewCriteriaExtractor(gemini GeminiService, log *zap.Logger) CriteriaExtractor {
	return &criteriaExtractor{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		logger:        logger.OrNop(log).With(zap.String("component", "criteria_extractor")),
	}
}

type extractedCriteria struct {
	Criteria []string `json:"criteria"`
}

// Extract implements CriteriaExtractor.
func (e *criteriaExtractor) Extract(ctx context.Context, jobDescription string) ([]string, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}

	raw, err := e.gemini.GenerateStructured(ctx, StructuredRequest{
		Operation:   "extract_criteria",
		System:      e.promptBuilder.BuildCriteriaSystemPrompt(CriteriaCount),
		Prompt:      e.promptBuilder.BuildCriteriaUserPrompt(jobDescription),
		Schema:      criteriaGenaiSchema(),
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extract criteria: %w", err)
	}

	criteria, err := decodeCriteria(raw)
	if err != nil {
		e.logger.Warn("criteria reply rejected", zap.Error(err))
		return nil, fmt.Errorf("failed to extract criteria: %w", err)
	}

	e.logger.Info("criteria extracted", zap.Strings("criteria", criteria))
	return criteria, nil
}

func criteriaGenaiSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"criteria": {
				Type:        genai.TypeArray,
				Description: fmt.Sprintf("The top %d job criteria, most important first", CriteriaCount),
				Items:       &genai.Schema{Type: genai.TypeString},
				MinItems:    genai.Ptr[int64](CriteriaCount),
				MaxItems:    genai.Ptr[int64](CriteriaCount),
			},
		},
		Required: []string{"criteria"},
	}
}

func criteriaJSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"criteria": map[string]any{
				"type":        "array",
				"minItems":    CriteriaCount,
				"maxItems":    CriteriaCount,
				"uniqueItems": true,
				"items": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
			},
		},
		"required": []string{"criteria"},
	}
}

func decodeCriteria(raw string) ([]string, error) {
	if err := validateJSON(criteriaJSONSchema(), raw); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, ve.Error())
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	var reply extractedCriteria
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, fmt.Errorf("%w: failed to decode criteria: %v", ErrMalformedResponse, err)
	}

	criteria := make([]string, 0, len(reply.Criteria))
	seen := make(map[string]int, len(reply.Criteria))
	for i, c := range reply.Criteria {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, fmt.Errorf("%w: criterion %d is blank", ErrMalformedResponse, i+1)
		}

		key := strings.ToLower(c)
		if first, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: criterion %d repeats criterion %d (%q)", ErrMalformedResponse, i+1, first, c)
		}
		seen[key] = i + 1

		criteria = append(criteria, c)
	}

	return criteria, nil
}
