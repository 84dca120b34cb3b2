// Package store persists scored results and reads the submissions and
// contacts the workers need.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"assessment-workers/internal/common/errors"
	"assessment-workers/internal/models"
)

// ResultReader is the read side used by compatibility and staleness checks.
type ResultReader interface {
	LatestResult(ctx context.Context, personID, assessmentType string) (*models.AssessmentResult, error)
}

// ResultStore talks to PostgreSQL.
type ResultStore struct {
	db *sql.DB
}

func NewResultStore(db *sql.DB) *ResultStore {
	return &ResultStore{db: db}
}

const insertResultQuery = `
	INSERT INTO person_assessment_results (
		id, person_id, assessment_id, assessment_type, raw_responses,
		calculated_scores, confidence_level, scoring_version, completed_at,
		expires_at, notes
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// SaveResult inserts r. Results are immutable; rescoring writes a new row.
func (s *ResultStore) SaveResult(ctx context.Context, r *models.AssessmentResult) error {
	scores, err := json.Marshal(r.Scores)
	if err != nil {
		return errors.NewResultStoreFailedError(fmt.Errorf("encode scores: %w", err))
	}
	raw := []byte(r.RawResponses)
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	_, err = s.db.ExecContext(ctx, insertResultQuery,
		r.ID,
		r.PersonID,
		nullString(r.AssessmentID),
		r.AssessmentType,
		raw,
		scores,
		r.ConfidenceLevel,
		r.ScoringVersion,
		r.CompletedAt,
		r.ExpiresAt,
		r.Notes,
	)
	if err != nil {
		if isTimeout(ctx, err) {
			return errors.NewQueryTimeoutError("save_result")
		}
		return errors.NewResultStoreFailedError(err)
	}
	return nil
}

const latestResultQuery = `
	SELECT id, person_id, assessment_id, assessment_type, raw_responses,
	       calculated_scores, confidence_level, scoring_version, completed_at,
	       expires_at, notes
	FROM person_assessment_results
	WHERE person_id = $1 AND assessment_type = $2
	ORDER BY completed_at DESC
	LIMIT 1`

// LatestResult returns the most recent result of assessmentType for a person.
func (s *ResultStore) LatestResult(ctx context.Context, personID, assessmentType string) (*models.AssessmentResult, error) {
	var (
		r            models.AssessmentResult
		assessmentID sql.NullString
		raw, scores  []byte
		confidence   sql.NullFloat64
		expiresAt    sql.NullTime
		notes        sql.NullString
	)

	err := s.db.QueryRowContext(ctx, latestResultQuery, personID, assessmentType).Scan(
		&r.ID,
		&r.PersonID,
		&assessmentID,
		&r.AssessmentType,
		&raw,
		&scores,
		&confidence,
		&r.ScoringVersion,
		&r.CompletedAt,
		&expiresAt,
		&notes,
	)
	switch {
	case stderrors.Is(err, sql.ErrNoRows):
		return nil, errors.NewResultNotFoundError(personID, assessmentType)
	case err != nil:
		if isTimeout(ctx, err) {
			return nil, errors.NewQueryTimeoutError("latest_result")
		}
		return nil, errors.NewQueryExecutionFailedError("latest_result", err)
	}

	if err := json.Unmarshal(scores, &r.Scores); err != nil {
		return nil, errors.NewQueryExecutionFailedError("latest_result", fmt.Errorf("decode calculated_scores: %w", err))
	}
	r.RawResponses = json.RawMessage(raw)
	r.AssessmentID = assessmentID.String
	r.ConfidenceLevel = confidence.Float64
	if expiresAt.Valid {
		t := expiresAt.Time
		r.ExpiresAt = &t
	}
	if notes.Valid {
		n := notes.String
		r.Notes = &n
	}
	return &r, nil
}

const submissionQuery = `
	SELECT id, person_id, assessment_type, responses, submitted_at
	FROM assessment_submissions
	WHERE id = $1`

// LoadSubmission fetches a stored response set by id.
func (s *ResultStore) LoadSubmission(ctx context.Context, id string) (*models.AssessmentSubmission, error) {
	var (
		sub       models.AssessmentSubmission
		responses []byte
	)
	err := s.db.QueryRowContext(ctx, submissionQuery, id).Scan(
		&sub.ID, &sub.PersonID, &sub.AssessmentType, &responses, &sub.SubmittedAt,
	)
	switch {
	case stderrors.Is(err, sql.ErrNoRows):
		return nil, errors.NewSubmissionNotFoundError(id)
	case err != nil:
		if isTimeout(ctx, err) {
			return nil, errors.NewQueryTimeoutError("load_submission")
		}
		return nil, errors.NewQueryExecutionFailedError("load_submission", err)
	}

	if err := json.Unmarshal(responses, &sub.Responses); err != nil {
		return nil, errors.NewParseError(fmt.Errorf("submission %s responses: %w", id, err))
	}
	return &sub, nil
}

const contactQuery = `SELECT email, phone FROM users WHERE id = $1`

// LookupContact returns how to reach a person. A person with no users row
// yields a nil contact and no error.
func (s *ResultStore) LookupContact(ctx context.Context, personID string) (*models.Contact, error) {
	var email, phone sql.NullString
	err := s.db.QueryRowContext(ctx, contactQuery, personID).Scan(&email, &phone)
	switch {
	case stderrors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		if isTimeout(ctx, err) {
			return nil, errors.NewQueryTimeoutError("lookup_contact")
		}
		return nil, errors.NewQueryExecutionFailedError("lookup_contact", err)
	}
	return &models.Contact{PersonID: personID, Email: email.String, Phone: phone.String}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isTimeout(ctx context.Context, err error) bool {
	return stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(ctx.Err(), context.DeadlineExceeded)
}
