package handlers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/criteria-scorer/internal/services"
)

const uploadField = "file"

// readPDFUpload pulls the PDF in the "file" form field and returns its text.
// Nothing is written to disk.
func readPDFUpload(c *fiber.Ctx, pdfParser services.PDFParserService, maxFileSize int64) (string, error) {
	file, err := c.FormFile(uploadField)
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "No file uploaded. Please upload a PDF in the 'file' field.")
	}

	if file.Size > maxFileSize {
		return "", fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("File too large. Max size: %d bytes", maxFileSize))
	}

	if !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return "", fiber.NewError(fiber.StatusBadRequest, "Only PDF files are supported")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return pdfParser.ExtractText(data)
}
