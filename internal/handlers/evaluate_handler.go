package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/criteria-scorer/internal/models"
	"alfredoptarigan/criteria-scorer/internal/services"
)

type EvaluationHandler struct {
	evaluator services.EvaluatorService
}

func NewEvaluationHandler(evaluator services.EvaluatorService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluator: evaluator,
	}
}

// HandleEvaluate handles POST /evaluate
//
//	@Summary		Evaluate a resume against a job description
//	@Description	Extracts the top 5 criteria from the job description, then scores the resume against them.
//	@Tags			evaluation
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.EvaluateRequest	true	"Job description and resume"
//	@Success		200		{object}	models.EvaluateResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		502		{object}	models.ErrorResponse
//	@Failure		504		{object}	models.ErrorResponse
//	@Router			/api/v1/evaluate [post]
func (h *EvaluationHandler) HandleEvaluate(c *fiber.Ctx) error {
	var req models.EvaluateRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	evaluation, err := h.evaluator.Evaluate(c.UserContext(), req.JobDescription, req.Resume)
	if err != nil {
		return err
	}

	return c.JSON(models.EvaluateResponse{
		Status:   "success",
		Criteria: evaluation.Criteria,
		Scores:   evaluation.Scores.Scores,
	})
}
