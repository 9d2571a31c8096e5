package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var feedbackCols = []string{"id", "aid_id", "aid_type", "volunteer_id", "rating", "comment", "tags", "created_at"}

func setupFeedbackRepoTest(t *testing.T) (*FeedbackRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewFeedbackRepository(&models.Config{}, sqlxDB), mock
}

func testFeedback() *models.Feedback {
	return &models.Feedback{
		ID:          "f1",
		AidID:       "a1",
		AidType:     models.AidTypeMedical,
		VolunteerID: "v1",
		Rating:      4,
		Comment:     "quick",
		Tags:        pq.StringArray{"first-aid"},
		CreatedAt:   time.Now(),
	}
}

func TestUpsert_ReturnsStoredRow(t *testing.T) {
	repo, mock := setupFeedbackRepoTest(t)

	created := time.Now().Add(-time.Hour)
	mock.ExpectQuery("INSERT INTO feedback AS f (.+) ON CONFLICT \\(aid_id, aid_type, volunteer_id\\) DO UPDATE").
		WithArgs("f1", "a1", "medical", "v1", 4, "quick", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(feedbackCols).
			AddRow("f0", "a1", "medical", "v1", 4, "quick", "{first-aid}", created))

	stored, err := repo.Upsert(context.Background(), testFeedback())

	require.NoError(t, err)
	assert.Equal(t, "f0", stored.ID, "an existing row keeps its id")
	assert.Equal(t, pq.StringArray{"first-aid"}, stored.Tags)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsert_UniqueViolation(t *testing.T) {
	for name, dbErr := range map[string]error{
		"pgx":    &pgconn.PgError{Code: "23505"},
		"lib/pq": &pq.Error{Code: "23505"},
	} {
		t.Run(name, func(t *testing.T) {
			repo, mock := setupFeedbackRepoTest(t)

			mock.ExpectQuery("INSERT INTO feedback").WillReturnError(dbErr)

			stored, err := repo.Upsert(context.Background(), testFeedback())

			assert.Nil(t, stored)
			assert.ErrorIs(t, err, models.ErrFeedbackExists)
		})
	}
}

func TestFeedbackGetByID(t *testing.T) {
	repo, mock := setupFeedbackRepoTest(t)

	cols := append(append([]string{}, feedbackCols...), "volunteer_name", "volunteer_phone")
	mock.ExpectQuery("LEFT JOIN volunteers v ON v.id = f.volunteer_id WHERE f.id").
		WithArgs("f1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("f1", "a1", "transport", "v1", 5, "", "{}", time.Now(), "Ravi", "+919876543210"))

	f, err := repo.GetByID(context.Background(), "f1")

	require.NoError(t, err)
	assert.Equal(t, models.AidTypeTransport, f.AidType)
	assert.Equal(t, 5, f.Rating)
	assert.Empty(t, f.Tags)
	require.NotNil(t, f.VolunteerName)
	assert.Equal(t, "Ravi", *f.VolunteerName)
}

func TestFeedbackGetByID_NotFound(t *testing.T) {
	repo, mock := setupFeedbackRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM feedback f").WithArgs("nope").WillReturnError(sql.ErrNoRows)

	f, err := repo.GetByID(context.Background(), "nope")

	assert.Nil(t, f)
	assert.ErrorIs(t, err, models.ErrFeedbackNotFound)
}

func TestFeedbackUpdateAndDelete(t *testing.T) {
	tests := []struct {
		name    string
		rows    int64
		wantErr error
	}{
		{name: "found", rows: 1},
		{name: "missing", rows: 0, wantErr: models.ErrFeedbackNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupFeedbackRepoTest(t)

			mock.ExpectExec("UPDATE feedback SET rating").
				WithArgs(3, "ok", sqlmock.AnyArg(), "f1").
				WillReturnResult(sqlmock.NewResult(0, tt.rows))
			mock.ExpectExec("DELETE FROM feedback WHERE id").
				WithArgs("f1").
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			f := testFeedback()
			f.Rating, f.Comment = 3, "ok"
			updateErr := repo.Update(context.Background(), f)
			deleteErr := repo.Delete(context.Background(), "f1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, updateErr, tt.wantErr)
				assert.ErrorIs(t, deleteErr, tt.wantErr)
			} else {
				assert.NoError(t, updateErr)
				assert.NoError(t, deleteErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFeedbackListByAid(t *testing.T) {
	repo, mock := setupFeedbackRepoTest(t)

	cols := append(append([]string{}, feedbackCols...), "volunteer_name", "volunteer_phone")
	now := time.Now()
	mock.ExpectQuery("WHERE f.aid_type = (.+) AND f.aid_id = (.+) ORDER BY f.created_at DESC").
		WithArgs("medical", "a1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("f2", "a1", "medical", "v2", 5, "", "{driving}", now, "Asha", "+911111111111").
			AddRow("f1", "a1", "medical", "v1", 3, "", "{}", now.Add(-time.Minute), nil, nil))

	list, err := repo.ListByAid(context.Background(), models.AidTypeMedical, "a1")

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "f2", list[0].ID)
	assert.Nil(t, list[1].VolunteerName)
}

func TestFeedbackListByVolunteer_Error(t *testing.T) {
	repo, mock := setupFeedbackRepoTest(t)

	mock.ExpectQuery("WHERE f.volunteer_id").WithArgs("v1").WillReturnError(sql.ErrConnDone)

	_, err := repo.ListByVolunteer(context.Background(), "v1")

	assert.ErrorIs(t, err, sql.ErrConnDone)
}
