package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/utils"
	"github.com/piresc/reliefhub/services/feedback"
)

// FeedbackHandler handles HTTP requests for volunteer feedback
type FeedbackHandler struct {
	feedbackUC feedback.FeedbackUC
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedbackUC feedback.FeedbackUC) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUC: feedbackUC,
	}
}

// RegisterRoutes mounts the feedback endpoints on g
func (h *FeedbackHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/feedback", h.SubmitFeedback)
	g.GET("/feedback/:aidType/:aidId", h.ListAidFeedback)
	g.GET("/feedback/:id", h.GetFeedback)
	g.PUT("/feedback/:id", h.UpdateFeedback)
	g.DELETE("/feedback/:id", h.DeleteFeedback)
	g.GET("/volunteers/:id/feedback", h.ListVolunteerFeedback)
}

// SubmitFeedback stores or replaces a rating for a volunteer
func (h *FeedbackHandler) SubmitFeedback(c echo.Context) error {
	var req models.FeedbackRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		logger.Warn("Invalid feedback submission", logger.Err(err))
		return utils.WriteError(c, err)
	}

	f, err := h.feedbackUC.SubmitFeedback(c.Request().Context(), &req)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Feedback submitted successfully", f)
}

// ListAidFeedback lists the feedback of one aid request
func (h *FeedbackHandler) ListAidFeedback(c echo.Context) error {
	aidType := models.AidType(c.Param("aidType"))
	list, err := h.feedbackUC.ListByAid(c.Request().Context(), aidType, c.Param("aidId"))
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.ListResponse(c, len(list), list)
}

func (h *FeedbackHandler) GetFeedback(c echo.Context) error {
	f, err := h.feedbackUC.GetFeedback(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", f)
}

// UpdateFeedback changes rating, comment or tags of a feedback
func (h *FeedbackHandler) UpdateFeedback(c echo.Context) error {
	var req models.FeedbackUpdateRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.WriteError(c, err)
	}

	f, err := h.feedbackUC.UpdateFeedback(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Feedback updated successfully", f)
}

func (h *FeedbackHandler) DeleteFeedback(c echo.Context) error {
	if err := h.feedbackUC.DeleteFeedback(c.Request().Context(), c.Param("id")); err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Feedback deleted successfully", nil)
}

// ListVolunteerFeedback lists every feedback of a volunteer
func (h *FeedbackHandler) ListVolunteerFeedback(c echo.Context) error {
	list, err := h.feedbackUC.ListByVolunteer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.ListResponse(c, len(list), list)
}
