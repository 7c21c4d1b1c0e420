package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Readiness/internal/scoring"
)

// Assessment is a completed, scored submission. Records are written once and
// never updated.
type Assessment struct {
	ID          uuid.UUID                 `json:"assessment_id"`
	Fingerprint string                    `json:"fingerprint"`
	Answers     []scoring.Answer          `json:"answers"`
	Report      *scoring.Report           `json:"report"`
	Coverage    []scoring.SectionCoverage `json:"coverage"`
	CreatedAt   time.Time                 `json:"created_at"`
}

type AssessmentFilter struct {
	Verdict *scoring.Verdict
	Limit   int
	Offset  int
}

type AssessmentStats struct {
	Total          int     `json:"total"`
	Pursue         int     `json:"pursue"`
	Maybe          int     `json:"maybe"`
	NotRecommended int     `json:"not_recommended"`
	AvgOverall     float64 `json:"avg_overall_score"`
}

type Store interface {
	SaveAssessment(ctx context.Context, a *Assessment) error
	// GetAssessment returns (nil, nil) when no record has the id.
	GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error)
	ListAssessments(ctx context.Context, filter AssessmentFilter) ([]*Assessment, error)
	GetStats(ctx context.Context) (*AssessmentStats, error)
	Close() error
}
