package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS readiness_assessments (
	assessment_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	fingerprint   TEXT        NOT NULL,
	answers       JSONB       NOT NULL,
	report        JSONB       NOT NULL,
	coverage      JSONB       NOT NULL,
	verdict       TEXT        NOT NULL,
	overall_score INTEGER     NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS readiness_assessments_verdict_idx ON readiness_assessments (verdict);
CREATE INDEX IF NOT EXISTS readiness_assessments_fingerprint_idx ON readiness_assessments (fingerprint);`

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema creates the assessments table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const assessmentColumns = `assessment_id, fingerprint, answers, report, coverage, created_at`

func (s *PostgresStore) SaveAssessment(ctx context.Context, a *Assessment) error {
	if a.Report == nil {
		return errors.New("save assessment: nil report")
	}
	answersJSON, err := json.Marshal(a.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	reportJSON, err := json.Marshal(a.Report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	coverageJSON, err := json.Marshal(a.Coverage)
	if err != nil {
		return fmt.Errorf("marshal coverage: %w", err)
	}

	return s.pool.QueryRow(ctx, `
		INSERT INTO readiness_assessments (fingerprint, answers, report, coverage, verdict, overall_score)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING assessment_id, created_at`,
		a.Fingerprint, answersJSON, reportJSON, coverageJSON,
		string(a.Report.Recommendation.Verdict), a.Report.OverallScore,
	).Scan(&a.ID, &a.CreatedAt)
}

func (s *PostgresStore) GetAssessment(ctx context.Context, id uuid.UUID) (*Assessment, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+assessmentColumns+`
		FROM readiness_assessments WHERE assessment_id = $1`, id)
	a, err := scanAssessment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *PostgresStore) ListAssessments(ctx context.Context, filter AssessmentFilter) ([]*Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM readiness_assessments WHERE 1=1`
	args := []interface{}{}
	n := 0

	if filter.Verdict != nil {
		n++
		query += fmt.Sprintf(" AND verdict = $%d", n)
		args = append(args, string(*filter.Verdict))
	}

	query += " ORDER BY created_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	n++
	query += fmt.Sprintf(" LIMIT $%d", n)
	args = append(args, limit)

	if filter.Offset > 0 {
		n++
		query += fmt.Sprintf(" OFFSET $%d", n)
		args = append(args, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *PostgresStore) GetStats(ctx context.Context) (*AssessmentStats, error) {
	stats := &AssessmentStats{}
	err := s.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN verdict = 'pursue' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN verdict = 'maybe' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN verdict = 'not_recommended' THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(overall_score), 0)
		FROM readiness_assessments`,
	).Scan(&stats.Total, &stats.Pursue, &stats.Maybe, &stats.NotRecommended, &stats.AvgOverall)
	return stats, err
}

func scanAssessment(row pgx.Row) (*Assessment, error) {
	a := &Assessment{}
	var answersJSON, reportJSON, coverageJSON []byte
	if err := row.Scan(&a.ID, &a.Fingerprint, &answersJSON, &reportJSON, &coverageJSON, &a.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(answersJSON, &a.Answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if err := json.Unmarshal(reportJSON, &a.Report); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if err := json.Unmarshal(coverageJSON, &a.Coverage); err != nil {
		return nil, fmt.Errorf("decode coverage: %w", err)
	}
	return a, nil
}
