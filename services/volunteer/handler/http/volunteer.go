package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/utils"
	"github.com/piresc/reliefhub/services/volunteer"
)

// VolunteerHandler handles HTTP requests for volunteer operations
type VolunteerHandler struct {
	volunteerUC volunteer.VolunteerUC
}

// NewVolunteerHandler creates a new volunteer handler
func NewVolunteerHandler(volunteerUC volunteer.VolunteerUC) *VolunteerHandler {
	return &VolunteerHandler{
		volunteerUC: volunteerUC,
	}
}

// RegisterRoutes mounts the volunteer endpoints on g
func (h *VolunteerHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/volunteers", h.RegisterVolunteer)
	g.GET("/volunteers", h.ListVolunteers)
	g.GET("/volunteers/:id", h.GetVolunteer)
	g.PUT("/volunteers/:id", h.UpdateVolunteer)
	g.DELETE("/volunteers/:id", h.DeleteVolunteer)
}

// RegisterVolunteer handles volunteer registration requests
func (h *VolunteerHandler) RegisterVolunteer(c echo.Context) error {
	var req models.VolunteerRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		logger.Warn("Invalid volunteer registration", logger.Err(err))
		return utils.WriteError(c, err)
	}

	v, err := h.volunteerUC.RegisterVolunteer(c.Request().Context(), &req)
	if err != nil {
		return utils.WriteError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Volunteer registered successfully", v)
}

// ListVolunteers handles volunteer listing, optionally around a point
func (h *VolunteerHandler) ListVolunteers(c echo.Context) error {
	var query models.VolunteerQuery
	var err error
	if query.Lat, err = queryFloat(c, "lat"); err != nil {
		return utils.WriteError(c, err)
	}
	if query.Lng, err = queryFloat(c, "lng"); err != nil {
		return utils.WriteError(c, err)
	}
	if query.Radius, err = queryFloat(c, "radius"); err != nil {
		return utils.WriteError(c, err)
	}

	volunteers, err := h.volunteerUC.ListVolunteers(c.Request().Context(), &query)
	if err != nil {
		return utils.WriteError(c, err)
	}

	return utils.ListResponse(c, len(volunteers), volunteers)
}

// GetVolunteer handles volunteer retrieval requests
func (h *VolunteerHandler) GetVolunteer(c echo.Context) error {
	v, err := h.volunteerUC.GetVolunteer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", v)
}

// UpdateVolunteer handles volunteer profile replacement
func (h *VolunteerHandler) UpdateVolunteer(c echo.Context) error {
	var req models.VolunteerRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.WriteError(c, err)
	}

	v, err := h.volunteerUC.UpdateVolunteer(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Volunteer updated successfully", v)
}

// DeleteVolunteer handles volunteer removal
func (h *VolunteerHandler) DeleteVolunteer(c echo.Context) error {
	if err := h.volunteerUC.DeleteVolunteer(c.Request().Context(), c.Param("id")); err != nil {
		return utils.WriteError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Volunteer deleted successfully", nil)
}

func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.Validation(name, "must be a number")
	}
	return &f, nil
}
