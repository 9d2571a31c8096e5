package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/reliefhub/internal/pkg/models"
)

const (
	medicalColumns = `id, patient_name, condition, location, lat, lng, contact_number,
		urgency, additional_info, status, assigned_volunteer, created_at`
	transportColumns = `id, requestor_name, pickup_location, pickup_lat, pickup_lng,
		dropoff_location, dropoff_lat, dropoff_lng, contact_number, num_passengers,
		urgency, special_requirements, status, assigned_volunteer, created_at`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// AidRepo stores medical and transport aid requests in their own tables
type AidRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAidRepository creates a new aid request repository
func NewAidRepository(cfg *models.Config, db *sqlx.DB) *AidRepo {
	return &AidRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateMedical inserts a medical aid request
func (r *AidRepo) CreateMedical(ctx context.Context, aid *models.MedicalAid) error {
	query := `
		INSERT INTO medical_aid_requests (` + medicalColumns + `)
		VALUES (
			:id, :patient_name, :condition, :location, :lat, :lng, :contact_number,
			:urgency, :additional_info, :status, :assigned_volunteer, :created_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, aid.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert medical aid request: %w", err)
	}
	return nil
}

// CreateTransport inserts a transport aid request
func (r *AidRepo) CreateTransport(ctx context.Context, aid *models.TransportAid) error {
	query := `
		INSERT INTO transport_aid_requests (` + transportColumns + `)
		VALUES (
			:id, :requestor_name, :pickup_location, :pickup_lat, :pickup_lng,
			:dropoff_location, :dropoff_lat, :dropoff_lng, :contact_number, :num_passengers,
			:urgency, :special_requirements, :status, :assigned_volunteer, :created_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, aid.ToDTO()); err != nil {
		return fmt.Errorf("failed to insert transport aid request: %w", err)
	}
	return nil
}

// ListMedical returns medical aid requests newest first
func (r *AidRepo) ListMedical(ctx context.Context) ([]*models.MedicalAid, error) {
	query := `SELECT ` + medicalColumns + ` FROM medical_aid_requests ORDER BY created_at DESC`
	return r.selectMedical(ctx, query)
}

// ListTransport returns transport aid requests newest first
func (r *AidRepo) ListTransport(ctx context.Context) ([]*models.TransportAid, error) {
	query := `SELECT ` + transportColumns + ` FROM transport_aid_requests ORDER BY created_at DESC`

	var dtos []models.TransportAidDTO
	if err := r.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to list transport aid requests: %w", err)
	}

	aids := make([]*models.TransportAid, 0, len(dtos))
	for i := range dtos {
		aids = append(aids, dtos[i].ToTransportAid())
	}
	return aids, nil
}

// SearchMedicalByName returns medical aid requests whose patient name contains
// name, ignoring case, newest first
func (r *AidRepo) SearchMedicalByName(ctx context.Context, name string) ([]*models.MedicalAid, error) {
	query := `SELECT ` + medicalColumns + ` FROM medical_aid_requests
		WHERE patient_name ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC`
	return r.selectMedical(ctx, query, likeEscaper.Replace(name))
}

// GetMedicalByID loads a medical aid request
func (r *AidRepo) GetMedicalByID(ctx context.Context, id string) (*models.MedicalAid, error) {
	query := `SELECT ` + medicalColumns + ` FROM medical_aid_requests WHERE id = $1`

	var dto models.MedicalAidDTO
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrAidNotFound
		}
		return nil, fmt.Errorf("failed to get medical aid request: %w", err)
	}
	return dto.ToMedicalAid(), nil
}

// GetTransportByID loads a transport aid request
func (r *AidRepo) GetTransportByID(ctx context.Context, id string) (*models.TransportAid, error) {
	query := `SELECT ` + transportColumns + ` FROM transport_aid_requests WHERE id = $1`

	var dto models.TransportAidDTO
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrAidNotFound
		}
		return nil, fmt.Errorf("failed to get transport aid request: %w", err)
	}
	return dto.ToTransportAid(), nil
}

// UpdateStatus sets the status and assigned volunteer of an aid request
func (r *AidRepo) UpdateStatus(ctx context.Context, aidType models.AidType, id string, status models.AidStatus, assignedVolunteer *string) error {
	table, err := tableFor(aidType)
	if err != nil {
		return err
	}

	query := `UPDATE ` + table + ` SET status = $1, assigned_volunteer = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, string(status), assignedVolunteer, id)
	if err != nil {
		return fmt.Errorf("failed to update aid request status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.ErrAidNotFound
	}
	return nil
}

// CountCompletedByVolunteer counts completed aid requests of both kinds
// assigned to a volunteer
func (r *AidRepo) CountCompletedByVolunteer(ctx context.Context, volunteerID string) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM medical_aid_requests WHERE assigned_volunteer = $1 AND status = $2) +
			(SELECT COUNT(*) FROM transport_aid_requests WHERE assigned_volunteer = $1 AND status = $2)`

	var count int
	if err := r.db.GetContext(ctx, &count, query, volunteerID, string(models.AidStatusCompleted)); err != nil {
		return 0, fmt.Errorf("failed to count completed aid requests: %w", err)
	}
	return count, nil
}

func (r *AidRepo) selectMedical(ctx context.Context, query string, args ...interface{}) ([]*models.MedicalAid, error) {
	var dtos []models.MedicalAidDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list medical aid requests: %w", err)
	}

	aids := make([]*models.MedicalAid, 0, len(dtos))
	for i := range dtos {
		aids = append(aids, dtos[i].ToMedicalAid())
	}
	return aids, nil
}

func tableFor(aidType models.AidType) (string, error) {
	switch aidType {
	case models.AidTypeMedical:
		return "medical_aid_requests", nil
	case models.AidTypeTransport:
		return "transport_aid_requests", nil
	default:
		return "", models.ErrInvalidAidType
	}
}
