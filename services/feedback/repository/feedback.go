package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/reliefhub/internal/pkg/database"
	"github.com/piresc/reliefhub/internal/pkg/models"
)

const feedbackColumns = `f.id, f.aid_id, f.aid_type, f.volunteer_id, f.rating, f.comment, f.tags, f.created_at`

// FeedbackRepo stores volunteer feedback in Postgres
type FeedbackRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(cfg *models.Config, db *sqlx.DB) *FeedbackRepo {
	return &FeedbackRepo{
		cfg: cfg,
		db:  db,
	}
}

// Upsert inserts feedback, or replaces rating, comment and tags of the
// existing feedback for the same aid request and volunteer. The stored row
// is returned.
func (r *FeedbackRepo) Upsert(ctx context.Context, f *models.Feedback) (*models.Feedback, error) {
	query := `
		INSERT INTO feedback AS f (id, aid_id, aid_type, volunteer_id, rating, comment, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (aid_id, aid_type, volunteer_id) DO UPDATE SET
			rating = EXCLUDED.rating,
			comment = EXCLUDED.comment,
			tags = EXCLUDED.tags
		RETURNING ` + feedbackColumns

	var stored models.Feedback
	err := r.db.QueryRowxContext(ctx, query,
		f.ID, f.AidID, string(f.AidType), f.VolunteerID, f.Rating, f.Comment, f.Tags, f.CreatedAt,
	).StructScan(&stored)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, models.ErrFeedbackExists
		}
		return nil, fmt.Errorf("failed to upsert feedback: %w", err)
	}
	return &stored, nil
}

// GetByID loads feedback with the rated volunteer's name and phone
func (r *FeedbackRepo) GetByID(ctx context.Context, id string) (*models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + `, v.name AS volunteer_name, v.phone AS volunteer_phone
		FROM feedback f
		LEFT JOIN volunteers v ON v.id = f.volunteer_id
		WHERE f.id = $1`

	var f models.Feedback
	if err := r.db.GetContext(ctx, &f, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrFeedbackNotFound
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return &f, nil
}

// Update overwrites rating, comment and tags
func (r *FeedbackRepo) Update(ctx context.Context, f *models.Feedback) error {
	query := `UPDATE feedback SET rating = $1, comment = $2, tags = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, f.Rating, f.Comment, f.Tags, f.ID)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}
	return requireRow(res)
}

// Delete removes feedback
func (r *FeedbackRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}
	return requireRow(res)
}

// ListByAid returns the feedback of one aid request newest first, with volunteer details
func (r *FeedbackRepo) ListByAid(ctx context.Context, aidType models.AidType, aidID string) ([]*models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + `, v.name AS volunteer_name, v.phone AS volunteer_phone
		FROM feedback f
		LEFT JOIN volunteers v ON v.id = f.volunteer_id
		WHERE f.aid_type = $1 AND f.aid_id = $2
		ORDER BY f.created_at DESC`
	return r.selectFeedback(ctx, query, string(aidType), aidID)
}

// ListByVolunteer returns every feedback left for a volunteer newest first
func (r *FeedbackRepo) ListByVolunteer(ctx context.Context, volunteerID string) ([]*models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback f
		WHERE f.volunteer_id = $1
		ORDER BY f.created_at DESC`
	return r.selectFeedback(ctx, query, volunteerID)
}

func (r *FeedbackRepo) selectFeedback(ctx context.Context, query string, args ...interface{}) ([]*models.Feedback, error) {
	var list []*models.Feedback
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return list, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.ErrFeedbackNotFound
	}
	return nil
}
