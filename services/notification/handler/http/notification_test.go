package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/piresc/reliefhub/internal/pkg/middleware"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/pkg/validator"
	"github.com/piresc/reliefhub/services/notification/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, contentType, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestNotifyVolunteer_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(mockUC)

	body := `{"volunteerId":"v1","aidId":"a1","aidType":"medical","message":"Please help"}`
	c, rec := newContext(http.MethodPost, "/api/notify-volunteer", echo.MIMEApplicationJSON, body)

	mockUC.EXPECT().NotifyVolunteer(gomock.Any(), &models.NotifyVolunteerRequest{
		VolunteerID: "v1", AidID: "a1", AidType: models.AidTypeMedical, Message: "Please help",
	}).Return(&models.VolunteerSummary{ID: "v1", Name: "Ravi", Phone: "+919876543210"}, nil)

	require.NoError(t, h.NotifyVolunteer(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp NotifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Notification is being processed", resp.Message)
	assert.Equal(t, "Ravi", resp.Volunteer.Name)
}

func TestNotifyVolunteer_MissingParameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewNotificationHandler(mocks.NewMockNotificationUC(ctrl))
	c, rec := newContext(http.MethodPost, "/api/notify-volunteer", echo.MIMEApplicationJSON, `{"volunteerId":"v1"}`)

	require.NoError(t, h.NotifyVolunteer(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required parameters")
}

func TestNotifyVolunteer_UnknownVolunteer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(mockUC)

	body := `{"volunteerId":"v404","aidId":"a1","aidType":"transport","message":"Please help"}`
	c, rec := newContext(http.MethodPost, "/api/notify-volunteer", echo.MIMEApplicationJSON, body)
	mockUC.EXPECT().NotifyVolunteer(gomock.Any(), gomock.Any()).Return(nil, models.ErrVolunteerNotFound)

	require.NoError(t, h.NotifyVolunteer(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Volunteer not found")
}

func TestListAidNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/api/notifications/medical/a1", "", "")
	c.SetParamNames("aidType", "aidId")
	c.SetParamValues("medical", "a1")

	mockUC.EXPECT().ListByAid(gomock.Any(), models.AidTypeMedical, "a1").
		Return([]*models.Notification{{ID: "n2"}, {ID: "n1"}}, nil)

	require.NoError(t, h.ListAidNotifications(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(2), resp["count"])
}

func TestListAidNotifications_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/api/notifications/food/a1", "", "")
	c.SetParamNames("aidType", "aidId")
	c.SetParamValues("food", "a1")
	mockUC.EXPECT().ListByAid(gomock.Any(), models.AidType("food"), "a1").Return(nil, models.ErrInvalidAidType)

	require.NoError(t, h.ListAidNotifications(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/api/notifications", "", "")
	mockUC.EXPECT().ListRecent(gomock.Any()).Return(nil, errors.New("db down"))

	require.NoError(t, h.ListNotifications(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestInboundSMS_Bindings(t *testing.T) {
	want := &models.InboundSMS{MSISDN: "919876543210", To: "ReliefHub", Text: "YES"}

	tests := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
	}{
		{
			name:   "query",
			method: http.MethodGet,
			target: "/webhook/inbound-sms?msisdn=919876543210&to=ReliefHub&text=YES",
		},
		{
			name:        "json",
			method:      http.MethodPost,
			target:      "/webhook/inbound-sms",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"msisdn":"919876543210","to":"ReliefHub","text":"YES"}`,
		},
		{
			name:        "form",
			method:      http.MethodPost,
			target:      "/webhook/inbound-sms",
			contentType: echo.MIMEApplicationForm,
			body:        url.Values{"msisdn": {"919876543210"}, "to": {"ReliefHub"}, "text": {"YES"}}.Encode(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockNotificationUC(ctrl)
			h := NewNotificationHandler(mockUC)
			c, rec := newContext(tt.method, tt.target, tt.contentType, tt.body)

			mockUC.EXPECT().HandleInboundSMS(gomock.Any(), want).Return(nil)

			require.NoError(t, h.InboundSMS(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"result":"success"}`, rec.Body.String())
		})
	}
}

func TestDeliveryReceipt_NumericErrorCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(mockUC)

	body := `{"messageId":"msg-1","status":"failed","to":"919876543210","err_code":6}`
	c, rec := newContext(http.MethodPost, "/webhook/delivery-receipt", echo.MIMEApplicationJSON, body)

	mockUC.EXPECT().HandleDeliveryReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.DeliveryReceipt) error {
			assert.Equal(t, "msg-1", r.MessageID)
			assert.Equal(t, models.FlexString("6"), r.ErrCode)
			return nil
		})

	require.NoError(t, h.DeliveryReceipt(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeliveryReceipt_MissingMessageID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(mockUC)

	c, rec := newContext(http.MethodGet, "/webhook/delivery-receipt?status=delivered", "", "")
	mockUC.EXPECT().HandleDeliveryReceipt(gomock.Any(), gomock.Any()).
		Return(apperrors.Validation("messageId", "Missing message ID"))

	require.NoError(t, h.DeliveryReceipt(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp WebhookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Result)
	assert.Equal(t, "messageId: Missing message ID", resp.Message)
}

func TestRegisterWebhooks_RequiresSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	e := echo.New()
	NewNotificationHandler(mocks.NewMockNotificationUC(ctrl)).RegisterWebhooks(e, "signature-secret")

	req := httptest.NewRequest(http.MethodPost, "/webhook/inbound-sms", strings.NewReader(`{"msisdn":"1","text":"YES"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	e := echo.New()
	NewNotificationHandler(mockUC).RegisterRoutes(e.Group("/api"))

	mockUC.EXPECT().ListRecent(gomock.Any()).Return([]*models.Notification{}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rec.Body.String())
}

func TestSendSMS(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		setup        func(m *mocks.MockNotificationUC)
		expectedCode int
		expectedBody string
	}{
		{
			name: "sent",
			body: `{"to":"9876543210","body":"Shelter open"}`,
			setup: func(m *mocks.MockNotificationUC) {
				m.EXPECT().SendSMS(gomock.Any(), &models.SendSMSRequest{To: "9876543210", Body: "Shelter open"}).
					Return(&models.SendResult{Success: true, Message: "SMS notification sent successfully", MessageID: "msg-1"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "msg-1",
		},
		{
			name:         "missing body",
			body:         `{"to":"9876543210"}`,
			setup:        func(m *mocks.MockNotificationUC) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Phone number and message body are required",
		},
		{
			name: "provider failure",
			body: `{"to":"9876543210","body":"hi"}`,
			setup: func(m *mocks.MockNotificationUC) {
				m.EXPECT().SendSMS(gomock.Any(), gomock.Any()).
					Return(nil, apperrors.External("Failed to send SMS notification", errors.New("503")))
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: "Failed to send SMS notification",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockNotificationUC(ctrl)
			tt.setup(mockUC)
			c, rec := newContext(http.MethodPost, "/api/send-sms", echo.MIMEApplicationJSON, tt.body)

			require.NoError(t, NewNotificationHandler(mockUC).SendSMS(c))

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestRegisterRoutes_Guards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	blockSends := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return c.NoContent(http.StatusTooManyRequests)
		}
	}

	mockUC := mocks.NewMockNotificationUC(ctrl)
	e := echo.New()
	NewNotificationHandler(mockUC,
		WithSendMiddleware(blockSends),
		WithReadMiddleware(middleware.ValidateAPIKey([]string{"ops-key"})),
	).RegisterRoutes(e.Group("/api"))

	for _, path := range []string{"/api/notify-volunteer", "/api/send-sms"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusTooManyRequests, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notifications/medical/a1", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	mockUC.EXPECT().ListRecent(gomock.Any()).Return([]*models.Notification{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/notifications", nil)
	req.Header.Set(middleware.APIKeyHeader, "ops-key")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
