package usecase

import (
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/services/aid"
)

type AidUC struct {
	aidRepo       aid.AidRepo
	volunteerRepo aid.VolunteerRepo
	matchGW       aid.MatchGW
	eventGW       aid.EventGW
	cfg           *models.Config
}

// NewAidUC creates a new aid request usecase instance
func NewAidUC(
	aidRepo aid.AidRepo,
	volunteerRepo aid.VolunteerRepo,
	matchGW aid.MatchGW,
	eventGW aid.EventGW,
	cfg *models.Config,
) *AidUC {
	return &AidUC{
		aidRepo:       aidRepo,
		volunteerRepo: volunteerRepo,
		matchGW:       matchGW,
		eventGW:       eventGW,
		cfg:           cfg,
	}
}
