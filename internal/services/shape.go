package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"google.golang.org/genai"

	"alfredoptarigan/criteria-scorer/internal/models"
)

const (
	MinScore = 1
	MaxScore = 5

	maxFieldNameLen  = 48
	fallbackField    = "criterion"
	digitFieldPrefix = "c_"
)

// ShapeField ties a normalized field identifier to the criterion it came from.
type ShapeField struct {
	Name      string
	Criterion string
}

// ResponseShape describes the object a scoring reply must be: one required
// integer field per criterion, in criteria order. A shape belongs to the
// single scoring call that built it.
type ResponseShape struct {
	Fields []ShapeField
}

// BuildScoreShape derives the response shape for a criteria list.
//
// Field names come from FieldName. When two criteria normalize to the same
// name the first keeps it and later ones get "_2", "_3", ... appended, skipping
// any name already in use. The result depends only on the input order.
func BuildScoreShape(criteria []string) (*ResponseShape, error) {
	if len(criteria) == 0 {
		return nil, fmt.Errorf("%w: at least one criterion is required", ErrInvalidInput)
	}

	used := make(map[string]struct{}, len(criteria))
	fields := make([]ShapeField, 0, len(criteria))

	for i, criterion := range criteria {
		if strings.TrimSpace(criterion) == "" {
			return nil, fmt.Errorf("%w: criterion %d is empty", ErrInvalidInput, i+1)
		}

		base := FieldName(criterion)
		name := base
		for n := 2; ; n++ {
			if _, taken := used[name]; !taken {
				break
			}
			suffix := fmt.Sprintf("_%d", n)
			name = capFieldName(base, maxFieldNameLen-len(suffix)) + suffix
		}
		used[name] = struct{}{}

		fields = append(fields, ShapeField{Name: name, Criterion: criterion})
	}

	return &ResponseShape{Fields: fields}, nil
}

// FieldName turns a criterion label into an identifier matching
// ^[a-z_][a-z0-9_]*$. Accents are folded ("Résumé" -> "resume"), every run of
// other characters becomes a single underscore, and the result is capped at
// 48 characters.
func FieldName(label string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(folder, label)
	if err != nil {
		folded = label
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}

	name := b.String()
	if name == "" {
		return fallbackField
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = digitFieldPrefix + name
	}
	return capFieldName(name, maxFieldNameLen)
}

// capFieldName cuts an ASCII identifier to limit bytes without leaving a
// trailing underscore.
func capFieldName(name string, limit int) string {
	if len(name) <= limit {
		return name
	}
	return strings.TrimRight(name[:limit], "_")
}

// FieldNames returns the field identifiers in criteria order.
func (s *ResponseShape) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// GenaiSchema renders the shape for Gemini structured output.
func (s *ResponseShape) GenaiSchema() *genai.Schema {
	names := s.FieldNames()
	props := make(map[string]*genai.Schema, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = &genai.Schema{
			Type:        genai.TypeInteger,
			Description: f.Criterion,
			Minimum:     genai.Ptr[float64](MinScore),
			Maximum:     genai.Ptr[float64](MaxScore),
		}
	}

	return &genai.Schema{
		Type:             genai.TypeObject,
		Properties:       props,
		Required:         names,
		PropertyOrdering: names,
	}
}

// JSONSchema renders the shape as a JSON Schema document used to check replies.
func (s *ResponseShape) JSONSchema() map[string]any {
	props := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		props[f.Name] = map[string]any{
			"type":        "integer",
			"description": f.Criterion,
			"minimum":     MinScore,
			"maximum":     MaxScore,
		}
	}

	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             s.FieldNames(),
		"additionalProperties": false,
	}
}

// Decode checks a raw reply against the shape and maps it back to criteria.
func (s *ResponseShape) Decode(raw string) (*models.ScoreSet, error) {
	if err := validateJSON(s.JSONSchema(), raw); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) && ve.onlyRange() {
			return nil, fmt.Errorf("%w: %s", ErrOutOfRangeScore, ve.Error())
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var values map[string]json.Number
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("%w: failed to decode scores: %v", ErrMalformedResponse, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the score object", ErrMalformedResponse)
	}

	scores := make([]models.CriterionScore, 0, len(s.Fields))
	for _, f := range s.Fields {
		value, ok := values[f.Name]
		if !ok {
			return nil, fmt.Errorf("%w: missing field %q", ErrMalformedResponse, f.Name)
		}

		score, err := integerScore(value)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrMalformedResponse, f.Name, err)
		}
		if score < MinScore || score > MaxScore {
			return nil, fmt.Errorf("%w: field %q has %d, want %d-%d", ErrOutOfRangeScore, f.Name, score, MinScore, MaxScore)
		}

		scores = append(scores, models.CriterionScore{
			Criterion: f.Criterion,
			Field:     f.Name,
			Score:     score,
		})
	}

	return &models.ScoreSet{Scores: scores}, nil
}

// integerScore accepts 4 and 4.0 but not 4.5.
func integerScore(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}

	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", n)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not an integer: %s", n)
	}
	return int(f), nil
}
