package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/middleware"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/utils"
	"github.com/piresc/reliefhub/services/notification"
)

// NotifyResponse acknowledges a queued volunteer notification
type NotifyResponse struct {
	Success   bool                     `json:"success"`
	Message   string                   `json:"message"`
	Volunteer *models.VolunteerSummary `json:"volunteer"`
}

// WebhookResponse is the body returned to the SMS provider
type WebhookResponse struct {
	Result  string `json:"result"`
	Message string `json:"message,omitempty"`
}

// NotificationHandler handles notification endpoints and provider webhooks
type NotificationHandler struct {
	notificationUC notification.NotificationUC
	binder         *echo.DefaultBinder
	sendGuards     []echo.MiddlewareFunc
	readGuards     []echo.MiddlewareFunc
}

// Option configures a NotificationHandler
type Option func(*NotificationHandler)

// WithSendMiddleware guards the routes that send SMS
func WithSendMiddleware(mw ...echo.MiddlewareFunc) Option {
	return func(h *NotificationHandler) {
		h.sendGuards = append(h.sendGuards, mw...)
	}
}

// WithReadMiddleware guards the notification history routes
func WithReadMiddleware(mw ...echo.MiddlewareFunc) Option {
	return func(h *NotificationHandler) {
		h.readGuards = append(h.readGuards, mw...)
	}
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationUC notification.NotificationUC, opts ...Option) *NotificationHandler {
	h := &NotificationHandler{
		notificationUC: notificationUC,
		binder:         &echo.DefaultBinder{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes mounts the notification API on api
func (h *NotificationHandler) RegisterRoutes(api *echo.Group) {
	api.POST("/notify-volunteer", h.NotifyVolunteer, h.sendGuards...)
	api.POST("/send-sms", h.SendSMS, h.sendGuards...)
	api.GET("/notifications", h.ListNotifications, h.readGuards...)
	api.GET("/notifications/:aidType/:aidId", h.ListAidNotifications, h.readGuards...)
}

// RegisterWebhooks mounts the provider callbacks on e, verified with secret when set
func (h *NotificationHandler) RegisterWebhooks(e *echo.Echo, secret string) {
	hooks := e.Group("/webhook", middleware.WebhookSignatureMiddleware(secret))
	hooks.GET("/inbound-sms", h.InboundSMS)
	hooks.POST("/inbound-sms", h.InboundSMS)
	hooks.GET("/delivery-receipt", h.DeliveryReceipt)
	hooks.POST("/delivery-receipt", h.DeliveryReceipt)
}

// NotifyVolunteer queues an SMS to one volunteer and answers before it is sent
func (h *NotificationHandler) NotifyVolunteer(c echo.Context) error {
	var req models.NotifyVolunteerRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		logger.Warn("Invalid notify volunteer request", logger.Err(err))
		return utils.BadRequestResponse(c, "Missing required parameters: volunteerId, aidId, aidType, message")
	}

	volunteer, err := h.notificationUC.NotifyVolunteer(c.Request().Context(), &req)
	if err != nil {
		return utils.WriteError(c, err)
	}

	return c.JSON(http.StatusOK, NotifyResponse{
		Success:   true,
		Message:   "Notification is being processed",
		Volunteer: volunteer,
	})
}

// SendSMS texts any number directly
func (h *NotificationHandler) SendSMS(c echo.Context) error {
	var req models.SendSMSRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.BadRequestResponse(c, "Phone number and message body are required")
	}

	result, err := h.notificationUC.SendSMS(c.Request().Context(), &req)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// ListNotifications returns the most recent notifications
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	notifications, err := h.notificationUC.ListRecent(c.Request().Context())
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.ListResponse(c, len(notifications), notifications)
}

// ListAidNotifications returns the notification history of one aid request
func (h *NotificationHandler) ListAidNotifications(c echo.Context) error {
	aidType := models.AidType(c.Param("aidType"))
	notifications, err := h.notificationUC.ListByAid(c.Request().Context(), aidType, c.Param("aidId"))
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.ListResponse(c, len(notifications), notifications)
}

// InboundSMS receives volunteer replies
func (h *NotificationHandler) InboundSMS(c echo.Context) error {
	var sms models.InboundSMS
	if err := h.bindWebhook(c, &sms); err != nil {
		return webhookError(c, err)
	}

	if err := h.notificationUC.HandleInboundSMS(c.Request().Context(), &sms); err != nil {
		return webhookError(c, err)
	}
	return c.JSON(http.StatusOK, WebhookResponse{Result: "success"})
}

// DeliveryReceipt receives provider delivery reports
func (h *NotificationHandler) DeliveryReceipt(c echo.Context) error {
	var receipt models.DeliveryReceipt
	if err := h.bindWebhook(c, &receipt); err != nil {
		return webhookError(c, err)
	}

	if err := h.notificationUC.HandleDeliveryReceipt(c.Request().Context(), &receipt); err != nil {
		return webhookError(c, err)
	}
	return c.JSON(http.StatusOK, WebhookResponse{Result: "success"})
}

// bindWebhook reads callback fields from the query string and, for requests
// with a body, from JSON or form data. Body values win.
func (h *NotificationHandler) bindWebhook(c echo.Context, dst interface{}) error {
	if err := h.binder.BindQueryParams(c, dst); err != nil {
		return apperrors.Validation("query", "invalid webhook parameters")
	}
	if c.Request().Method == http.MethodGet || c.Request().ContentLength == 0 {
		return nil
	}
	if err := h.binder.BindBody(c, dst); err != nil {
		return apperrors.Validation("body", "invalid webhook body")
	}
	return nil
}

func webhookError(c echo.Context, err error) error {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Webhook processing failed",
			logger.String("path", c.Request().URL.Path),
			logger.Err(err))
	} else {
		logger.Warn("Rejected webhook",
			logger.String("path", c.Request().URL.Path),
			logger.Err(err))
	}
	return c.JSON(status, WebhookResponse{Result: "error", Message: apperrors.Message(err)})
}
