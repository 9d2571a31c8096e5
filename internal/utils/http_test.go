package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newContext(http.MethodGet, "")

	require.NoError(t, SuccessResponse(c, http.StatusCreated, "Volunteer registered", map[string]string{"id": "v-1"}))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Volunteer registered", resp.Message)
	assert.Nil(t, resp.Count)
}

func TestListResponse(t *testing.T) {
	c, rec := newContext(http.MethodGet, "")

	require.NoError(t, ListResponse(c, 0, []string{}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectedCode  int
		expectedError string
	}{
		{"validation", apperrors.Validation("rating", "must be at most 5"), http.StatusBadRequest, "rating: must be at most 5"},
		{"not found", apperrors.NotFound("Volunteer not found"), http.StatusNotFound, "Volunteer not found"},
		{"conflict", apperrors.Conflict("Feedback already exists"), http.StatusConflict, "Feedback already exists"},
		{"external", apperrors.External("SMS provider unavailable", errors.New("dial tcp")), http.StatusBadGateway, "SMS provider unavailable"},
		{"internal", errors.New("pq: relation does not exist"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "")

			require.NoError(t, WriteError(c, tt.err))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}

func TestBindAndValidate_InvalidBody(t *testing.T) {
	c, _ := newContext(http.MethodPost, "{not json")

	var req struct {
		Name string `json:"name"`
	}
	err := BindAndValidate(c, &req)

	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestHelperResponses(t *testing.T) {
	c, rec := newContext(http.MethodGet, "")
	require.NoError(t, NotFoundResponse(c, ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Resource not found")

	c, rec = newContext(http.MethodGet, "")
	require.NoError(t, UnauthorizedResponse(c, ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newContext(http.MethodGet, "")
	require.NoError(t, BadRequestResponse(c, "aidType must be medical or transport"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
