package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"alfredoptarigan/criteria-scorer/internal/logger"
	"alfredoptarigan/criteria-scorer/internal/models"
)

// MaxCriteria caps how many criteria one scoring call accepts.
const MaxCriteria = 20

type ResumeScorer interface {
	Score(ctx context.Context, resume string, criteria []string) (*models.ScoreSet, error)
}

type resumeScorer struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	logger        *zap.Logger
}

func NewResumeScorer(gemini GeminiService, log *zap.Logger) ResumeScorer {
	return &resumeScorer{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		logger:        logger.OrNop(log).With(zap.String("component", "resume_scorer")),
	}
}

// Score implements ResumeScorer.
func (s *resumeScorer) Score(ctx context.Context, resume string, criteria []string) (*models.ScoreSet, error) {
	if err := validateScoreInput(resume, criteria); err != nil {
		return nil, err
	}

	shape, err := BuildScoreShape(criteria)
	if err != nil {
		return nil, err
	}

	raw, err := s.gemini.GenerateStructured(ctx, StructuredRequest{
		Operation:   "score_resume",
		System:      s.promptBuilder.BuildScoringSystemPrompt(),
		Prompt:      s.promptBuilder.BuildScoringUserPrompt(resume, shape),
		Schema:      shape.GenaiSchema(),
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to score resume: %w", err)
	}

	scores, err := shape.Decode(raw)
	if err != nil {
		s.logger.Warn("score reply rejected",
			zap.Strings("fields", shape.FieldNames()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to score resume: %w", err)
	}

	s.logger.Info("resume scored", zap.Any("scores", scores.Scores))
	return scores, nil
}

func validateScoreInput(resume string, criteria []string) error {
	if strings.TrimSpace(resume) == "" {
		return fmt.Errorf("%w: resume is required", ErrInvalidInput)
	}
	if len(criteria) == 0 {
		return fmt.Errorf("%w: at least one criterion is required", ErrInvalidInput)
	}
	if len(criteria) > MaxCriteria {
		return fmt.Errorf("%w: at most %d criteria are allowed, got %d", ErrInvalidInput, MaxCriteria, len(criteria))
	}
	for i, c := range criteria {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("%w: criterion %d is empty", ErrInvalidInput, i+1)
		}
	}
	return nil
}
