package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/criteria-scorer/internal/models"
	"alfredoptarigan/criteria-scorer/internal/services"
)

type fakeExtractor struct {
	criteria []string
	err      error
	got      []string
}

func (f *fakeExtractor) Extract(_ context.Context, jobDescription string) ([]string, error) {
	f.got = append(f.got, jobDescription)
	return f.criteria, f.err
}

type fakeScorer struct {
	err     error
	resumes []string
	got     [][]string
}

func (f *fakeScorer) Score(_ context.Context, resume string, criteria []string) (*models.ScoreSet, error) {
	f.resumes = append(f.resumes, resume)
	f.got = append(f.got, criteria)
	if f.err != nil {
		return nil, f.err
	}

	set := &models.ScoreSet{}
	for i, c := range criteria {
		set.Scores = append(set.Scores, models.CriterionScore{
			Criterion: c,
			Field:     services.FieldName(c),
			Score:     i%services.MaxScore + 1,
		})
	}
	return set, nil
}

type fakeEvaluator struct {
	extractor *fakeExtractor
	scorer    *fakeScorer
}

func (f *fakeEvaluator) Evaluate(ctx context.Context, jobDescription, resume string) (*models.Evaluation, error) {
	criteria, err := f.extractor.Extract(ctx, jobDescription)
	if err != nil {
		return nil, err
	}
	scores, err := f.scorer.Score(ctx, resume, criteria)
	if err != nil {
		return nil, err
	}
	return &models.Evaluation{Criteria: criteria, Scores: scores}, nil
}

type fakePDFParser struct {
	text string
	err  error
}

func (f *fakePDFParser) ExtractText(data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

var fiveCriteria = []string{"Python", "SQL", "Distributed systems", "API design", "5+ years"}

type testApp struct {
	app       *fiber.App
	extractor *fakeExtractor
	scorer    *fakeScorer
	parser    *fakePDFParser
}

func newTestApp() *testApp {
	ta := &testApp{
		extractor: &fakeExtractor{criteria: fiveCriteria},
		scorer:    &fakeScorer{},
		parser:    &fakePDFParser{text: "text from pdf"},
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(nil)})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	criteriaHandler := NewCriteriaHandler(ta.extractor, ta.parser, 1024)
	scoreHandler := NewScoreHandler(ta.scorer, ta.parser, 1024)
	evaluateHandler := NewEvaluationHandler(&fakeEvaluator{extractor: ta.extractor, scorer: ta.scorer})

	api := app.Group("/api/v1")
	api.Post("/extract-criteria", criteriaHandler.HandleExtract)
	api.Post("/extract-criteria/upload", criteriaHandler.HandleExtractUpload)
	api.Post("/score-resume", scoreHandler.HandleScore)
	api.Post("/score-resume/upload", scoreHandler.HandleScoreUpload)
	api.Post("/evaluate", evaluateHandler.HandleEvaluate)

	ta.app = app
	return ta
}

func (ta *testApp) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (ta *testApp) postForm(t *testing.T, path, filename string, content []byte, values map[string][]string) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := w.CreateFormFile(uploadField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for key, vals := range values {
		for _, v := range vals {
			require.NoError(t, w.WriteField(key, v))
		}
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestHandleExtract(t *testing.T) {
	ta := newTestApp()

	resp := ta.postJSON(t, "/api/v1/extract-criteria", models.ExtractCriteriaRequest{JobDescription: "Backend engineer"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[models.ExtractCriteriaResponse](t, resp)
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, fiveCriteria, body.Criteria)
	assert.Equal(t, []string{"Backend engineer"}, ta.extractor.got)
}

func TestHandleExtract_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    any
		message string
	}{
		{name: "missing field", body: map[string]string{}, message: "job_description is required"},
		{name: "broken json", body: `{"job_description": `, message: "Invalid request payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp()

			resp := ta.postJSON(t, "/api/v1/extract-criteria", tt.body)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			body := decode[models.ErrorResponse](t, resp)
			assert.Equal(t, tt.message, body.Error)
			assert.Equal(t, fiber.StatusBadRequest, body.Code)
			assert.NotEmpty(t, body.RequestID)
			assert.Empty(t, ta.extractor.got)
		})
	}
}

func TestHandleExtract_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid input", err: fmt.Errorf("%w: job description is required", services.ErrInvalidInput), status: fiber.StatusBadRequest},
		{name: "upstream", err: fmt.Errorf("%w: 503", services.ErrUpstreamUnavailable), status: fiber.StatusBadGateway},
		{name: "upstream timeout", err: fmt.Errorf("%w: %w", services.ErrUpstreamUnavailable, context.DeadlineExceeded), status: fiber.StatusGatewayTimeout},
		{name: "malformed", err: fmt.Errorf("%w: no candidates", services.ErrMalformedResponse), status: fiber.StatusBadGateway},
		{name: "out of range", err: fmt.Errorf("%w: go=7", services.ErrOutOfRangeScore), status: fiber.StatusBadGateway},
		{name: "unknown", err: fmt.Errorf("boom"), status: fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp()
			ta.extractor.err = tt.err

			resp := ta.postJSON(t, "/api/v1/extract-criteria", models.ExtractCriteriaRequest{JobDescription: "Go developer"})
			assert.Equal(t, tt.status, resp.StatusCode)

			body := decode[models.ErrorResponse](t, resp)
			assert.Equal(t, tt.status, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestHandleExtractUpload(t *testing.T) {
	ta := newTestApp()

	resp := ta.postForm(t, "/api/v1/extract-criteria/upload", "job.PDF", []byte("%PDF-1.4"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[models.ExtractCriteriaResponse](t, resp)
	assert.Len(t, body.Criteria, 5)
	assert.Equal(t, []string{"text from pdf"}, ta.extractor.got)
}

func TestHandleExtractUpload_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		parseErr error
		message  string
	}{
		{name: "no file", message: "No file uploaded. Please upload a PDF in the 'file' field."},
		{name: "not a pdf", filename: "job.docx", content: []byte("x"), message: "Only PDF files are supported"},
		{name: "too large", filename: "job.pdf", content: bytes.Repeat([]byte("a"), 2048), message: "File too large. Max size: 1024 bytes"},
		{
			name:     "unreadable pdf",
			filename: "job.pdf",
			content:  []byte("garbage"),
			parseErr: fmt.Errorf("%w: unreadable PDF", services.ErrInvalidInput),
			message:  "invalid input: unreadable PDF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp()
			ta.parser.err = tt.parseErr

			resp := ta.postForm(t, "/api/v1/extract-criteria/upload", tt.filename, tt.content, map[string][]string{"note": {"x"}})
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			body := decode[models.ErrorResponse](t, resp)
			assert.Equal(t, tt.message, body.Error)
			assert.Empty(t, ta.extractor.got)
		})
	}
}

func TestHandleScore(t *testing.T) {
	ta := newTestApp()

	resp := ta.postJSON(t, "/api/v1/score-resume", models.ScoreResumeRequest{
		Resume:   "7 years of Python",
		Criteria: []string{"Communication", "Communication"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[models.ScoreResumeResponse](t, resp)
	require.Len(t, body.Scores, 2)
	assert.Equal(t, "Communication", body.Scores[0].Criterion)
	assert.Equal(t, "Communication", body.Scores[1].Criterion)
}

func TestHandleScore_ValidationErrors(t *testing.T) {
	tooMany := make([]string, services.MaxCriteria+1)
	for i := range tooMany {
		tooMany[i] = fmt.Sprintf("c%d", i)
	}

	tests := []struct {
		name    string
		req     models.ScoreResumeRequest
		message string
	}{
		{name: "missing resume", req: models.ScoreResumeRequest{Criteria: []string{"Go"}}, message: "resume is required"},
		{name: "missing criteria", req: models.ScoreResumeRequest{Resume: "r"}, message: "criteria is required"},
		{name: "empty criteria", req: models.ScoreResumeRequest{Resume: "r", Criteria: []string{}}, message: "criteria must contain at least 1 item(s)"},
		{name: "too many criteria", req: models.ScoreResumeRequest{Resume: "r", Criteria: tooMany}, message: "criteria must contain at most 20 item(s)"},
		{name: "blank criterion", req: models.ScoreResumeRequest{Resume: "r", Criteria: []string{"Go", ""}}, message: "criteria[1] is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp()

			resp := ta.postJSON(t, "/api/v1/score-resume", tt.req)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

			body := decode[models.ErrorResponse](t, resp)
			assert.Equal(t, tt.message, body.Error)
			assert.Empty(t, ta.scorer.got)
		})
	}
}

func TestHandleScoreUpload(t *testing.T) {
	ta := newTestApp()

	resp := ta.postForm(t, "/api/v1/score-resume/upload", "resume.pdf", []byte("%PDF-1.4"), map[string][]string{
		"criteria": {"Python", "SQL"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[models.ScoreResumeResponse](t, resp)
	require.Len(t, body.Scores, 2)
	assert.Equal(t, []string{"text from pdf"}, ta.scorer.resumes)
	assert.Equal(t, [][]string{{"Python", "SQL"}}, ta.scorer.got)
}

func TestHandleScoreUpload_RequiresCriteria(t *testing.T) {
	ta := newTestApp()

	resp := ta.postForm(t, "/api/v1/score-resume/upload", "resume.pdf", []byte("%PDF-1.4"), nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decode[models.ErrorResponse](t, resp)
	assert.Equal(t, "criteria is required", body.Error)
}

func TestHandleEvaluate(t *testing.T) {
	ta := newTestApp()

	resp := ta.postJSON(t, "/api/v1/evaluate", models.EvaluateRequest{JobDescription: "jd", Resume: "resume"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode[models.EvaluateResponse](t, resp)
	assert.Equal(t, fiveCriteria, body.Criteria)
	require.Len(t, body.Scores, 5)
	assert.Equal(t, fiveCriteria, ta.scorer.got[0])
}

func TestHandleEvaluate_ScoringFailure(t *testing.T) {
	ta := newTestApp()
	ta.scorer.err = fmt.Errorf("failed to score resume: %w", services.ErrOutOfRangeScore)

	resp := ta.postJSON(t, "/api/v1/evaluate", models.EvaluateRequest{JobDescription: "jd", Resume: "resume"})
	require.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

	body := decode[models.ErrorResponse](t, resp)
	assert.Contains(t, body.Error, "outside the 1-5 scale")
}
