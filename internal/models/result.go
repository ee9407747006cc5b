package models

import "time"

type ExtractCriteriaRequest struct {
	JobDescription string `json:"job_description" validate:"required" example:"Seeking a backend engineer with Python, SQL and API design experience, 5+ years"`
}

type ExtractCriteriaResponse struct {
	Status   string   `json:"status" example:"success"`
	Message  string   `json:"message" example:"Extracted 5 criteria"`
	Criteria []string `json:"criteria"`
}

type ScoreResumeRequest struct {
	Resume   string   `json:"resume" validate:"required"`
	Criteria []string `json:"criteria" validate:"required,min=1,max=20,dive,required"`
}

type ScoreResumeResponse struct {
	Status string           `json:"status" example:"success"`
	Scores []CriterionScore `json:"scores"`
}

type EvaluateRequest struct {
	JobDescription string `json:"job_description" validate:"required"`
	Resume         string `json:"resume" validate:"required"`
}

type EvaluateResponse struct {
	Status   string           `json:"status" example:"success"`
	Criteria []string         `json:"criteria"`
	Scores   []CriterionScore `json:"scores"`
}

type HealthResponse struct {
	Status string    `json:"status" example:"healthy"`
	Model  string    `json:"model" example:"gemini-2.5-flash"`
	Time   time.Time `json:"time"`
}

type ErrorResponse struct {
	Error     string `json:"error" example:"job_description is required"`
	Code      int    `json:"code" example:"400"`
	RequestID string `json:"request_id,omitempty"`
}
