package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/utils"
	"github.com/piresc/reliefhub/services/aid"
)

// SubmissionResponse is returned after an aid request is accepted
type SubmissionResponse struct {
	Success               bool                  `json:"success"`
	Message               string                `json:"message"`
	Data                  models.AidRequest     `json:"data"`
	VolunteerNotification *models.NotifySummary `json:"volunteerNotification"`
}

// AidHandler handles HTTP requests for aid requests
type AidHandler struct {
	aidUC        aid.AidUC
	submitGuards []echo.MiddlewareFunc
}

// NewAidHandler creates a new aid handler. submitGuards wrap the submission
// routes, which fan out SMS to nearby volunteers.
func NewAidHandler(aidUC aid.AidUC, submitGuards ...echo.MiddlewareFunc) *AidHandler {
	return &AidHandler{
		aidUC:        aidUC,
		submitGuards: submitGuards,
	}
}

// RegisterRoutes mounts the aid endpoints on g
func (h *AidHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/aid/medical", h.SubmitMedicalAid, h.submitGuards...)
	g.GET("/aid/medical", h.ListMedicalAids)
	g.GET("/aid/medical/search/name/:name", h.SearchMedicalAids)
	g.GET("/aid/medical/:id", h.GetMedicalAid)
	g.PATCH("/aid/medical/:id/status", h.UpdateMedicalStatus)

	g.POST("/aid/transport", h.SubmitTransportAid, h.submitGuards...)
	g.GET("/aid/transport", h.ListTransportAids)
	g.GET("/aid/transport/:id", h.GetTransportAid)
	g.PATCH("/aid/transport/:id/status", h.UpdateTransportStatus)
}

// SubmitMedicalAid handles medical aid submissions
func (h *AidHandler) SubmitMedicalAid(c echo.Context) error {
	var req models.MedicalAidRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		logger.Warn("Invalid medical aid request", logger.Err(err))
		return utils.WriteError(c, err)
	}

	res, err := h.aidUC.SubmitMedicalAid(c.Request().Context(), &req)
	if err != nil {
		return utils.WriteError(c, err)
	}

	return c.JSON(http.StatusCreated, SubmissionResponse{
		Success:               true,
		Message:               "Medical aid request submitted successfully",
		Data:                  res.Aid,
		VolunteerNotification: res.Notification,
	})
}

// SubmitTransportAid handles transport aid submissions
func (h *AidHandler) SubmitTransportAid(c echo.Context) error {
	var req models.TransportAidRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		logger.Warn("Invalid transport aid request", logger.Err(err))
		return utils.WriteError(c, err)
	}

	res, err := h.aidUC.SubmitTransportAid(c.Request().Context(), &req)
	if err != nil {
		return utils.WriteError(c, err)
	}

	return c.JSON(http.StatusCreated, SubmissionResponse{
		Success:               true,
		Message:               "Transport aid request submitted successfully",
		Data:                  res.Aid,
		VolunteerNotification: res.Notification,
	})
}

// ListMedicalAids lists medical aid requests newest first
func (h *AidHandler) ListMedicalAids(c echo.Context) error {
	aids, err := h.aidUC.ListMedicalAids(c.Request().Context())
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.ListResponse(c, len(aids), aids)
}

// ListTransportAids lists transport aid requests newest first
func (h *AidHandler) ListTransportAids(c echo.Context) error {
	aids, err := h.aidUC.ListTransportAids(c.Request().Context())
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.ListResponse(c, len(aids), aids)
}

// SearchMedicalAids finds medical aid requests by patient name
func (h *AidHandler) SearchMedicalAids(c echo.Context) error {
	aids, err := h.aidUC.SearchMedicalAidsByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.ListResponse(c, len(aids), aids)
}

// GetMedicalAid returns one medical aid request
func (h *AidHandler) GetMedicalAid(c echo.Context) error {
	a, err := h.aidUC.GetMedicalAid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", a)
}

// GetTransportAid returns one transport aid request
func (h *AidHandler) GetTransportAid(c echo.Context) error {
	a, err := h.aidUC.GetTransportAid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", a)
}

// UpdateMedicalStatus changes the status of a medical aid request
func (h *AidHandler) UpdateMedicalStatus(c echo.Context) error {
	return h.updateStatus(c, models.AidTypeMedical)
}

// UpdateTransportStatus changes the status of a transport aid request
func (h *AidHandler) UpdateTransportStatus(c echo.Context) error {
	return h.updateStatus(c, models.AidTypeTransport)
}

func (h *AidHandler) updateStatus(c echo.Context, aidType models.AidType) error {
	var req models.AidStatusUpdateRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.WriteError(c, err)
	}

	a, err := h.aidUC.UpdateAidStatus(c.Request().Context(), aidType, c.Param("id"), &req)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Aid request status updated", a)
}
