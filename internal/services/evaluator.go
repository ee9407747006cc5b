package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/criteria-scorer/internal/logger"
	"alfredoptarigan/criteria-scorer/internal/models"
)

type EvaluatorService interface {
	Evaluate(ctx context.Context, jobDescription, resume string) (*models.Evaluation, error)
}

type evaluatorService struct {
	extractor CriteriaExtractor
	scorer    ResumeScorer
	logger    *zap.Logger
}

func NewEvaluatorService(extractor CriteriaExtractor, scorer ResumeScorer, log *zap.Logger) EvaluatorService {
	return &evaluatorService{
		extractor: extractor,
		scorer:    scorer,
		logger:    logger.OrNop(log).With(zap.String("component", "evaluator")),
	}
}

// Evaluate extracts criteria from the job description, then scores the resume
// against them. Either step failing fails the whole evaluation.
func (e *evaluatorService) Evaluate(ctx context.Context, jobDescription, resume string) (*models.Evaluation, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, fmt.Errorf("%w: job description is required", ErrInvalidInput)
	}
	if strings.TrimSpace(resume) == "" {
		return nil, fmt.Errorf("%w: resume is required", ErrInvalidInput)
	}

	start := time.Now()

	criteria, err := e.extractor.Extract(ctx, jobDescription)
	if err != nil {
		return nil, err
	}

	scores, err := e.scorer.Score(ctx, resume, criteria)
	if err != nil {
		return nil, err
	}

	e.logger.Info("evaluation completed",
		zap.Int("criteria", len(criteria)),
		zap.Duration("duration", time.Since(start)),
	)

	return &models.Evaluation{
		Criteria: criteria,
		Scores:   scores,
	}, nil
}
