package services

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ValidationError lists every place where a model reply departs from the
// schema it was asked to follow.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Type    string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %d. %s: %s;", i+1, err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// onlyRange reports whether every violation is a numeric bound violation.
func (ve *ValidationError) onlyRange() bool {
	if len(ve.Errors) == 0 {
		return false
	}
	for _, err := range ve.Errors {
		switch err.Type {
		case "number_gte", "number_lte", "number_gt", "number_lt":
		default:
			return false
		}
	}
	return true
}

// validateJSON checks raw against schema. A reply that is not JSON at all is
// reported as a plain error; schema violations come back as *ValidationError.
func validateJSON(schema map[string]any, raw string) error {
	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewStringLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate reply: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Type:    desc.Type(),
			Message: desc.Description(),
		})
	}

	return validationErr
}
