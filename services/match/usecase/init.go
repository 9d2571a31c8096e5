package usecase

import (
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/services/match"
)

const (
	defaultNearestK      = 5
	defaultMaxCandidates = 10
	defaultNotifyLimit   = 5
)

// MatchUC implements the business logic for matching aid requests to volunteers
type MatchUC struct {
	volunteerRepo match.VolunteerRepo
	notifier      match.Notifier

	nearestK      int
	maxCandidates int
	notifyLimit   int
}

// NewMatchUC creates a new match use case
func NewMatchUC(
	cfg *models.Config,
	volunteerRepo match.VolunteerRepo,
	notifier match.Notifier,
) *MatchUC {
	uc := &MatchUC{
		volunteerRepo: volunteerRepo,
		notifier:      notifier,
		nearestK:      defaultNearestK,
		maxCandidates: defaultMaxCandidates,
		notifyLimit:   defaultNotifyLimit,
	}
	if cfg != nil {
		if cfg.Match.NearestK > 0 {
			uc.nearestK = cfg.Match.NearestK
		}
		if cfg.Match.MaxCandidates > 0 {
			uc.maxCandidates = cfg.Match.MaxCandidates
		}
		if cfg.Match.NotifyLimit > 0 {
			uc.notifyLimit = cfg.Match.NotifyLimit
		}
	}
	return uc
}
