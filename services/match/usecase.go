package match

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// MatchUC defines the interface for volunteer matching
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/reliefhub/services/match MatchUC
type MatchUC interface {
	FindCandidates(ctx context.Context, target models.TargetLocation) ([]*models.Candidate, error)
	NotifyNearbyVolunteers(ctx context.Context, aidType models.AidType, aid models.AidRequest) *models.NotifySummary
}
