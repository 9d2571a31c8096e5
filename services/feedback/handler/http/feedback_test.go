package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/pkg/validator"
	"github.com/piresc/reliefhub/services/feedback/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*echo.Echo, *mocks.MockFeedbackUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockFeedbackUC(ctrl)
	e := echo.New()
	e.Validator = validator.New()
	NewFeedbackHandler(mockUC).RegisterRoutes(e.Group("/api"))
	return e, mockUC
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSubmitFeedback_Created(t *testing.T) {
	e, mockUC := newServer(t)

	mockUC.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.FeedbackRequest) (*models.Feedback, error) {
			assert.Equal(t, []string{"driving"}, req.Tags)
			return &models.Feedback{ID: "f1", Rating: req.Rating}, nil
		})

	rec := serve(e, http.MethodPost, "/api/feedback",
		`{"aidId":"a1","aidType":"transport","volunteerId":"v1","rating":5,"tags":["driving"]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "f1", resp["data"].(map[string]interface{})["id"])
}

func TestSubmitFeedback_InvalidRating(t *testing.T) {
	e, _ := newServer(t)

	rec := serve(e, http.MethodPost, "/api/feedback",
		`{"aidId":"a1","aidType":"transport","volunteerId":"v1","rating":9}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitFeedback_Conflict(t *testing.T) {
	e, mockUC := newServer(t)

	mockUC.EXPECT().SubmitFeedback(gomock.Any(), gomock.Any()).Return(nil, models.ErrFeedbackExists)

	rec := serve(e, http.MethodPost, "/api/feedback",
		`{"aidId":"a1","aidType":"medical","volunteerId":"v1","rating":3}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestFeedbackRoutes(t *testing.T) {
	t.Run("by aid", func(t *testing.T) {
		e, mockUC := newServer(t)
		mockUC.EXPECT().ListByAid(gomock.Any(), models.AidTypeMedical, "a1").
			Return([]*models.Feedback{{ID: "f1"}}, nil)

		rec := serve(e, http.MethodGet, "/api/feedback/medical/a1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"count":1`)
	})

	t.Run("by id", func(t *testing.T) {
		e, mockUC := newServer(t)
		mockUC.EXPECT().GetFeedback(gomock.Any(), "f404").Return(nil, models.ErrFeedbackNotFound)

		rec := serve(e, http.MethodGet, "/api/feedback/f404", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update", func(t *testing.T) {
		e, mockUC := newServer(t)
		mockUC.EXPECT().UpdateFeedback(gomock.Any(), "f1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req *models.FeedbackUpdateRequest) (*models.Feedback, error) {
				require.NotNil(t, req.Comment)
				assert.Nil(t, req.Rating)
				return &models.Feedback{ID: "f1", Comment: *req.Comment}, nil
			})

		rec := serve(e, http.MethodPut, "/api/feedback/f1", `{"comment":"great"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		e, mockUC := newServer(t)
		mockUC.EXPECT().DeleteFeedback(gomock.Any(), "f1").Return(nil)

		rec := serve(e, http.MethodDelete, "/api/feedback/f1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Feedback deleted successfully")
	})

	t.Run("by volunteer", func(t *testing.T) {
		e, mockUC := newServer(t)
		mockUC.EXPECT().ListByVolunteer(gomock.Any(), "v1").Return([]*models.Feedback{}, nil)

		rec := serve(e, http.MethodGet, "/api/volunteers/v1/feedback", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
	})
}
