package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/criteria-scorer/internal/models"
	"alfredoptarigan/criteria-scorer/internal/services"
)

type CriteriaHandler struct {
	extractor   services.CriteriaExtractor
	pdfParser   services.PDFParserService
	maxFileSize int64
}

func NewCriteriaHandler(
	extractor services.CriteriaExtractor,
	pdfParser services.PDFParserService,
	maxFileSize int64,
) *CriteriaHandler {
	return &CriteriaHandler{
		extractor:   extractor,
		pdfParser:   pdfParser,
		maxFileSize: maxFileSize,
	}
}

// HandleExtract handles POST /extract-criteria
//
//	@Summary		Extract job criteria
//	@Description	Extracts the top 5 scoring criteria from a job description.
//	@Tags			criteria
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ExtractCriteriaRequest	true	"Job description"
//	@Success		200		{object}	models.ExtractCriteriaResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		502		{object}	models.ErrorResponse
//	@Failure		504		{object}	models.ErrorResponse
//	@Router			/api/v1/extract-criteria [post]
func (h *CriteriaHandler) HandleExtract(c *fiber.Ctx) error {
	var req models.ExtractCriteriaRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	return h.extract(c, req.JobDescription)
}

// HandleExtractUpload handles POST /extract-criteria/upload
//
//	@Summary		Extract job criteria from a PDF
//	@Description	Extracts the top 5 scoring criteria from an uploaded job description PDF.
//	@Tags			criteria
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Job description PDF"
//	@Success		200		{object}	models.ExtractCriteriaResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		502		{object}	models.ErrorResponse
//	@Failure		504		{object}	models.ErrorResponse
//	@Router			/api/v1/extract-criteria/upload [post]
func (h *CriteriaHandler) HandleExtractUpload(c *fiber.Ctx) error {
	jobDescription, err := readPDFUpload(c, h.pdfParser, h.maxFileSize)
	if err != nil {
		return err
	}

	return h.extract(c, jobDescription)
}

func (h *CriteriaHandler) extract(c *fiber.Ctx, jobDescription string) error {
	criteria, err := h.extractor.Extract(c.UserContext(), jobDescription)
	if err != nil {
		return err
	}

	return c.JSON(models.ExtractCriteriaResponse{
		Status:   "success",
		Message:  fmt.Sprintf("Extracted %d criteria", len(criteria)),
		Criteria: criteria,
	})
}
