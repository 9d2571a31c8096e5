package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/reliefhub/internal/pkg/models"
)

const notificationColumns = `n.id, n.volunteer_id, n.aid_id, n.aid_type, n.message, n.status,
	n.message_id, n.response, n.status_details, n.created_at, n.updated_at`

// NotificationRepo stores SMS send attempts in Postgres
type NotificationRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(cfg *models.Config, db *sqlx.DB) *NotificationRepo {
	return &NotificationRepo{
		cfg: cfg,
		db:  db,
	}
}

// Create inserts a notification
func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	query := `
		INSERT INTO notifications (
			id, volunteer_id, aid_id, aid_type, message, status,
			message_id, response, status_details, created_at, updated_at
		) VALUES (
			:id, :volunteer_id, :aid_id, :aid_type, :message, :status,
			:message_id, :response, :status_details, :created_at, :updated_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, n); err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// Update writes back the mutable fields of a notification
func (r *NotificationRepo) Update(ctx context.Context, n *models.Notification) error {
	query := `
		UPDATE notifications SET
			status = :status, message_id = :message_id, response = :response,
			status_details = :status_details, updated_at = :updated_at
		WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, n)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return models.ErrNotificationNotFound
	}
	return nil
}

// GetByMessageID loads the notification the provider knows as messageID
func (r *NotificationRepo) GetByMessageID(ctx context.Context, messageID string) (*models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications n
		WHERE n.message_id = $1
		ORDER BY n.created_at DESC LIMIT 1`
	return r.getOne(ctx, query, messageID)
}

// GetLatestPending returns the most recent notification of a volunteer that
// was sent or delivered but not yet answered
func (r *NotificationRepo) GetLatestPending(ctx context.Context, volunteerID string) (*models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications n
		WHERE n.volunteer_id = $1 AND n.status IN ($2, $3)
		ORDER BY n.created_at DESC LIMIT 1`
	return r.getOne(ctx, query, volunteerID,
		string(models.NotificationStatusSent), string(models.NotificationStatusDelivered))
}

// ListByAid returns the notifications of one aid request newest first, with
// the volunteer's name and phone attached
func (r *NotificationRepo) ListByAid(ctx context.Context, aidType models.AidType, aidID string) ([]*models.Notification, error) {
	query := `SELECT ` + notificationColumns + `, v.name AS volunteer_name, v.phone AS volunteer_phone
		FROM notifications n
		LEFT JOIN volunteers v ON v.id = n.volunteer_id
		WHERE n.aid_type = $1 AND n.aid_id = $2
		ORDER BY n.created_at DESC`

	var notifications []*models.Notification
	if err := r.db.SelectContext(ctx, &notifications, query, string(aidType), aidID); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// ListRecent returns at most limit notifications newest first
func (r *NotificationRepo) ListRecent(ctx context.Context, limit int) ([]*models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications n
		ORDER BY n.created_at DESC LIMIT $1`

	var notifications []*models.Notification
	if err := r.db.SelectContext(ctx, &notifications, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// ResponseStats counts the notifications a volunteer answered and the ones
// that actually reached the provider
func (r *NotificationRepo) ResponseStats(ctx context.Context, volunteerID string) (int, int, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = $2) AS responded,
			COUNT(*) FILTER (WHERE status NOT IN ($3, $4)) AS contacted
		FROM notifications
		WHERE volunteer_id = $1`

	var stats struct {
		Responded int `db:"responded"`
		Contacted int `db:"contacted"`
	}
	err := r.db.GetContext(ctx, &stats, query, volunteerID,
		string(models.NotificationStatusResponded),
		string(models.NotificationStatusQueued),
		string(models.NotificationStatusFailed))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count notification responses: %w", err)
	}
	return stats.Responded, stats.Contacted, nil
}

func (r *NotificationRepo) getOne(ctx context.Context, query string, args ...interface{}) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	return &n, nil
}
