package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/reliefhub/internal/pkg/constants"
	"github.com/piresc/reliefhub/internal/pkg/database"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/utils"
)

const volunteerColumns = `
	id, name, email, phone, primary_location, additional_location,
	location_name, location_address, longitude, latitude, geohash,
	skillset, availability, average_rating, total_ratings, skill_ratings,
	response_rate, completed_aids, created_at, updated_at`

// phoneIndexDigits is how many trailing digits key the phone index
const phoneIndexDigits = 10

// VolunteerRepo stores volunteers in Postgres and keeps a Redis index from
// the trailing phone digits to the volunteer id
type VolunteerRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewVolunteerRepository creates a new volunteer repository
func NewVolunteerRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *VolunteerRepo {
	return &VolunteerRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

// Create inserts a new volunteer
func (r *VolunteerRepo) Create(ctx context.Context, v *models.Volunteer) error {
	dto, err := v.ToDTO()
	if err != nil {
		return err
	}

	query := `
		INSERT INTO volunteers (` + volunteerColumns + `
		) VALUES (
			:id, :name, :email, :phone, :primary_location, :additional_location,
			:location_name, :location_address, :longitude, :latitude, :geohash,
			:skillset, :availability, :average_rating, :total_ratings, :skill_ratings,
			:response_rate, :completed_aids, :created_at, :updated_at
		)`
	if _, err := r.db.NamedExecContext(ctx, query, dto); err != nil {
		return fmt.Errorf("failed to insert volunteer: %w", err)
	}

	r.indexPhone(ctx, v.Phone, v.ID)
	return nil
}

// GetByID loads a volunteer by id
func (r *VolunteerRepo) GetByID(ctx context.Context, id string) (*models.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE id = $1`

	var dto models.VolunteerDTO
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("failed to get volunteer: %w", err)
	}
	return dto.ToVolunteer()
}

// List returns volunteers newest first, restricted to box when given.
// Volunteers without a point never fall inside a box.
func (r *VolunteerRepo) List(ctx context.Context, box *models.BoundingBox) ([]*models.Volunteer, error) {
	if box == nil {
		query := `SELECT ` + volunteerColumns + ` FROM volunteers ORDER BY created_at DESC`
		return r.selectVolunteers(ctx, query)
	}

	query := `SELECT ` + volunteerColumns + ` FROM volunteers
		WHERE latitude BETWEEN $1 AND $2 AND longitude BETWEEN $3 AND $4
		ORDER BY created_at DESC`
	return r.selectVolunteers(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
}

// ListAvailable returns every volunteer with availability set, in registration order
func (r *VolunteerRepo) ListAvailable(ctx context.Context) ([]*models.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers
		WHERE availability = TRUE
		ORDER BY created_at ASC, id ASC`
	return r.selectVolunteers(ctx, query)
}

// Update overwrites the profile fields of a volunteer; aggregates are left untouched
func (r *VolunteerRepo) Update(ctx context.Context, v *models.Volunteer) error {
	dto, err := v.ToDTO()
	if err != nil {
		return err
	}

	query := `
		UPDATE volunteers SET
			name = :name, email = :email, phone = :phone,
			primary_location = :primary_location, additional_location = :additional_location,
			location_name = :location_name, location_address = :location_address,
			longitude = :longitude, latitude = :latitude, geohash = :geohash,
			skillset = :skillset, availability = :availability, updated_at = :updated_at
		WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, dto)
	if err != nil {
		return fmt.Errorf("failed to update volunteer: %w", err)
	}
	if err := requireRow(res); err != nil {
		return err
	}

	r.indexPhone(ctx, v.Phone, v.ID)
	return nil
}

// Delete removes a volunteer and its phone index entry
func (r *VolunteerRepo) Delete(ctx context.Context, id string) error {
	var phone string
	err := r.db.QueryRowxContext(ctx, `DELETE FROM volunteers WHERE id = $1 RETURNING phone`, id).Scan(&phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrVolunteerNotFound
		}
		return fmt.Errorf("failed to delete volunteer: %w", err)
	}

	r.unindexPhone(ctx, phone, id)
	return nil
}

// FindByPhone returns the newest volunteer whose stored phone equals phone exactly
func (r *VolunteerRepo) FindByPhone(ctx context.Context, phone string) (*models.Volunteer, error) {
	query := `SELECT ` + volunteerColumns + ` FROM volunteers WHERE phone = $1 ORDER BY created_at DESC LIMIT 1`

	var dto models.VolunteerDTO
	if err := r.db.GetContext(ctx, &dto, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("failed to find volunteer by phone: %w", err)
	}
	return dto.ToVolunteer()
}

// FindByPhoneSuffix returns the newest volunteer whose phone digits end with
// suffix, matching the index which the latest registration overwrites. The
// Redis index is consulted first; stale or missing entries fall back to a scan
// of the volunteers table.
func (r *VolunteerRepo) FindByPhoneSuffix(ctx context.Context, suffix string) (*models.Volunteer, error) {
	if suffix == "" {
		return nil, models.ErrVolunteerNotFound
	}

	if v := r.lookupPhoneIndex(ctx, suffix); v != nil {
		return v, nil
	}

	query := `SELECT ` + volunteerColumns + ` FROM volunteers
		WHERE regexp_replace(phone, '\D', '', 'g') LIKE '%' || $1
		ORDER BY created_at DESC LIMIT 1`

	var dto models.VolunteerDTO
	if err := r.db.GetContext(ctx, &dto, query, suffix); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrVolunteerNotFound
		}
		return nil, fmt.Errorf("failed to find volunteer by phone suffix: %w", err)
	}

	v, err := dto.ToVolunteer()
	if err != nil {
		return nil, err
	}
	r.indexPhone(ctx, v.Phone, v.ID)
	return v, nil
}

// UpdateRatings stores the rating aggregate of a volunteer
func (r *VolunteerRepo) UpdateRatings(ctx context.Context, id string, summary models.RatingSummary) error {
	skillRatings := summary.SkillRatings
	if skillRatings == nil {
		skillRatings = map[string]float64{}
	}
	raw, err := json.Marshal(skillRatings)
	if err != nil {
		return fmt.Errorf("failed to encode skill ratings: %w", err)
	}

	query := `UPDATE volunteers
		SET average_rating = $1, total_ratings = $2, skill_ratings = $3, updated_at = $4
		WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, summary.AverageRating, summary.TotalRatings, string(raw), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update volunteer ratings: %w", err)
	}
	return requireRow(res)
}

// UpdateResponseRate stores the share of notifications the volunteer replied to
func (r *VolunteerRepo) UpdateResponseRate(ctx context.Context, id string, rate float64) error {
	query := `UPDATE volunteers SET response_rate = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, rate, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update volunteer response rate: %w", err)
	}
	return requireRow(res)
}

// UpdateCompletedAids stores how many aid requests the volunteer completed
func (r *VolunteerRepo) UpdateCompletedAids(ctx context.Context, id string, count int) error {
	query := `UPDATE volunteers SET completed_aids = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, count, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update volunteer completed aids: %w", err)
	}
	return requireRow(res)
}

func (r *VolunteerRepo) selectVolunteers(ctx context.Context, query string, args ...interface{}) ([]*models.Volunteer, error) {
	var dtos []models.VolunteerDTO
	if err := r.db.SelectContext(ctx, &dtos, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}

	volunteers := make([]*models.Volunteer, 0, len(dtos))
	for i := range dtos {
		v, err := dtos[i].ToVolunteer()
		if err != nil {
			return nil, err
		}
		volunteers = append(volunteers, v)
	}
	return volunteers, nil
}

func (r *VolunteerRepo) lookupPhoneIndex(ctx context.Context, suffix string) *models.Volunteer {
	if r.redisClient == nil {
		return nil
	}

	key := fmt.Sprintf(constants.KeyVolunteerPhone, suffix)
	id, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Phone index lookup failed", logger.String("key", key), logger.Err(err))
		}
		return nil
	}

	v, err := r.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrVolunteerNotFound) {
			_ = r.redisClient.Delete(ctx, key)
		} else {
			logger.Warn("Failed to load indexed volunteer", logger.String("volunteer_id", id), logger.Err(err))
		}
		return nil
	}
	if utils.LastDigits(v.Phone, phoneIndexDigits) != suffix {
		// phone changed since indexing
		_ = r.redisClient.Delete(ctx, key)
		return nil
	}
	return v
}

func (r *VolunteerRepo) indexPhone(ctx context.Context, phone, id string) {
	if r.redisClient == nil {
		return
	}
	suffix := utils.LastDigits(phone, phoneIndexDigits)
	if suffix == "" {
		return
	}

	ttl := time.Duration(0)
	if r.cfg != nil && r.cfg.Redis.PhoneIndexTTL > 0 {
		ttl = time.Duration(r.cfg.Redis.PhoneIndexTTL) * time.Second
	}
	key := fmt.Sprintf(constants.KeyVolunteerPhone, suffix)
	if err := r.redisClient.Set(ctx, key, id, ttl); err != nil {
		logger.Warn("Failed to index volunteer phone", logger.String("key", key), logger.Err(err))
	}
}

func (r *VolunteerRepo) unindexPhone(ctx context.Context, phone, id string) {
	if r.redisClient == nil {
		return
	}
	key := fmt.Sprintf(constants.KeyVolunteerPhone, utils.LastDigits(phone, phoneIndexDigits))
	current, err := r.redisClient.Get(ctx, key)
	if err != nil || current != id {
		return
	}
	if err := r.redisClient.Delete(ctx, key); err != nil {
		logger.Warn("Failed to remove volunteer phone index", logger.String("key", key), logger.Err(err))
	}
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.ErrVolunteerNotFound
	}
	return nil
}
