package main

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/resumeworks/resumeworker/internal/database"
	"github.com/resumeworks/resumeworker/internal/profile"
	"github.com/resumeworks/resumeworker/internal/scoring"
	"github.com/streadway/amqp"
)

type WorkerConfig struct {
	DB                *database.Queries
	R2                *R2Config
	S3                *s3.Client
	RabbitConn        *amqp.Connection
	RabbitURL         string
	Reviewer          *Reviewer
	ResumeConcurrency int
}

// Session is the queue message that starts a screening run. A slim
// message carrying only the id gets hydrated from the sessions table.
type Session struct {
	ID             uuid.UUID             `json:"id"`
	CreatedAt      time.Time             `json:"created_at"`
	Name           string                `json:"name"`
	UserID         uuid.UUID             `json:"user_id"`
	Status         string                `json:"status"`
	JobTitle       string                `json:"job_title"`
	CompanyName    string                `json:"company_name"`
	JobDescription string                `json:"job_description"`
	Requirements   *scoring.Requirements `json:"requirements,omitempty"`
}

// CandidateResult is one entry of a session's result document. Error
// entries keep the session going when a single resume cannot be read.
type CandidateResult struct {
	ResumeID       uuid.UUID `json:"resume_id"`
	FileName       string    `json:"file_name"`
	CandidateEmail string    `json:"candidate_email"`
	scoring.Result
	Profile *profile.Profile `json:"profile,omitempty"`
	Review  *ReviewerVerdict `json:"ai_review,omitempty"`
	Rank    int              `json:"rank"`
	// Error result entry
	IsErrorResult bool   `json:"is_error_result"`
	Error         string `json:"error,omitempty"`

	// raw text for the reviewer pass, never serialized
	resumeText string
}

type ResultSet struct {
	SessionID uuid.UUID         `json:"session_id"`
	Results   []CandidateResult `json:"results"`
}

// ReviewerVerdict is the advisory output of the AI reviewer. It
// annotates a ranked candidate and never changes the score.
type ReviewerVerdict struct {
	Summary        string   `json:"summary"`
	Strengths      []string `json:"strengths,omitempty"`
	Concerns       []string `json:"concerns,omitempty"`
	Recommendation string   `json:"recommendation,omitempty"`
}

type StatusUpdate struct {
	SessionID uuid.UUID `json:"session_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
