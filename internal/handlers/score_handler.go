package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/criteria-scorer/internal/models"
	"alfredoptarigan/criteria-scorer/internal/services"
)

type ScoreHandler struct {
	scorer      services.ResumeScorer
	pdfParser   services.PDFParserService
	maxFileSize int64
}

func NewScoreHandler(
	scorer services.ResumeScorer,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *ScoreHandler {
	return &ScoreHandler{
		scorer:      scorer,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
	}
}

// HandleScore handles POST /score-resume
//
//	@Summary		Score a resume
//	@Description	Rates a resume from 1 to 5 against each criterion, in the order given.
//	@Tags			scoring
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ScoreResumeRequest	true	"Resume and criteria"
//	@Success		200		{object}	models.ScoreResumeResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		502		{object}	models.ErrorResponse
//	@Failure		504		{object}	models.ErrorResponse
//	@Router			/api/v1/score-resume [post]
func (h *ScoreHandler) HandleScore(c *fiber.Ctx) error {
	var req models.ScoreResumeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	return h.score(c, req)
}

// HandleScoreUpload handles POST /score-resume/upload. Criteria come as
// repeated "criteria" form values next to the PDF.
//
//	@Summary		Score a resume PDF
//	@Description	Rates an uploaded resume PDF from 1 to 5 against each criterion.
//	@Tags			scoring
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file		formData	file		true	"Resume PDF"
//	@Param			criteria	formData	[]string	true	"Criteria to score against"	collectionFormat(multi)
//	@Success		200			{object}	models.ScoreResumeResponse
//	@Failure		400			{object}	models.ErrorResponse
//	@Failure		502			{object}	models.ErrorResponse
//	@Failure		504			{object}	models.ErrorResponse
//	@Router			/api/v1/score-resume/upload [post]
func (h *ScoreHandler) HandleScoreUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "failed to parse multipart form")
	}

	resume, err := readPDFUpload(c, h.pdfParser, h.maxFileSize)
	if err != nil {
		return err
	}

	req := models.ScoreResumeRequest{
		Resume:   resume,
		Criteria: form.Value["criteria"],
	}
	if err := validateStruct(&req); err != nil {
		return err
	}

	return h.score(c, req)
}

func (h *ScoreHandler) score(c *fiber.Ctx, req models.ScoreResumeRequest) error {
	scores, err := h.scorer.Score(c.UserContext(), req.Resume, req.Criteria)
	if err != nil {
		return err
	}

	return c.JSON(models.ScoreResumeResponse{
		Status: "success",
		Scores: scores.Scores,
	})
}
