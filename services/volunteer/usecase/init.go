package usecase

import (
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/services/volunteer"
)

type VolunteerUC struct {
	volunteerRepo volunteer.VolunteerRepo
	cfg           *models.Config
}

// NewVolunteerUC creates a new volunteer usecase instance
func NewVolunteerUC(
	volunteerRepo volunteer.VolunteerRepo,
	cfg *models.Config,
) *VolunteerUC {
	return &VolunteerUC{
		volunteerRepo: volunteerRepo,
		cfg:           cfg,
	}
}
