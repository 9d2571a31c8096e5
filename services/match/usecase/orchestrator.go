package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
)

// NotifyNearbyVolunteers finds, ranks and messages the best volunteers for a
// new aid request. Sends run concurrently and are all awaited; a failed send
// never affects the others. The summary reports how many succeeded.
func (u *MatchUC) NotifyNearbyVolunteers(ctx context.Context, aidType models.AidType, aid models.AidRequest) *models.NotifySummary {
	target, details, urgency, ok := describe(aidType, aid)
	if !ok {
		return &models.NotifySummary{Success: false, Message: "Invalid request type"}
	}
	if strings.TrimSpace(target.Address) == "" {
		return &models.NotifySummary{Success: false, Message: apperrors.Message(models.ErrNoLocation)}
	}

	candidates, err := u.FindCandidates(ctx, target)
	if err != nil {
		logger.Error("Failed to select volunteers",
			logger.String("aid_id", aid.AidID()),
			logger.Err(err))
		if errors.Is(err, models.ErrNoLocation) {
			return &models.NotifySummary{Success: false, Message: apperrors.Message(err)}
		}
		return &models.NotifySummary{Success: false, Message: "Failed to find volunteers"}
	}
	if len(candidates) == 0 {
		return &models.NotifySummary{Success: false, Message: "No volunteers found for this location"}
	}

	RankCandidates(candidates)
	if len(candidates) > u.notifyLimit {
		candidates = candidates[:u.notifyLimit]
	}

	message := fmt.Sprintf("%s URGENCY %s AID REQUEST at %s. %s. Reply YES to confirm.",
		strings.ToUpper(string(urgency)), strings.ToUpper(string(aidType)), target.Address, details)

	succeeded := make([]bool, len(candidates))
	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		go func(i int, v *models.Volunteer) {
			defer wg.Done()
			succeeded[i] = u.send(ctx, v, message, aid.AidID(), aidType)
		}(i, c.Volunteer)
	}
	wg.Wait()

	notified := 0
	for _, ok := range succeeded {
		if ok {
			notified++
		}
	}
	failed := len(candidates) - notified

	logger.Info("Volunteers notified",
		logger.String("aid_id", aid.AidID()),
		logger.String("aid_type", string(aidType)),
		logger.Int("notified", notified),
		logger.Int("failed", failed))

	return &models.NotifySummary{
		Success:       true,
		Message:       fmt.Sprintf("Notified %d volunteers (%d failed)", notified, failed),
		NotifiedCount: notified,
		FailedCount:   failed,
	}
}

func (u *MatchUC) send(ctx context.Context, v *models.Volunteer, message, aidID string, aidType models.AidType) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Panic while notifying volunteer",
				logger.String("volunteer_id", v.ID),
				logger.Any("panic", r))
			ok = false
		}
	}()

	res, err := u.notifier.SendToVolunteer(ctx, v, message, aidID, aidType)
	if err != nil {
		logger.Warn("Failed to notify volunteer",
			logger.String("volunteer_id", v.ID),
			logger.Err(err))
		return false
	}
	return res != nil && res.Success
}

// describe maps an aid request to the place to search around, the detail
// line of the message and its urgency
func describe(aidType models.AidType, aid models.AidRequest) (models.TargetLocation, string, models.Urgency, bool) {
	switch aidType {
	case models.AidTypeMedical:
		m, ok := aid.(*models.MedicalAid)
		if !ok || m == nil {
			return models.TargetLocation{}, "", "", false
		}
		return targetOf(m.Location, m.Coordinates), "Medical condition: " + m.Condition, m.Urgency, true
	case models.AidTypeTransport:
		t, ok := aid.(*models.TransportAid)
		if !ok || t == nil {
			return models.TargetLocation{}, "", "", false
		}
		return targetOf(t.PickupLocation, t.PickupCoordinates), "Transport to: " + t.DropoffLocation, t.Urgency, true
	default:
		return models.TargetLocation{}, "", "", false
	}
}

func targetOf(address string, coords *models.Coordinates) models.TargetLocation {
	target := models.TargetLocation{Address: address}
	if lat, lng, ok := coords.LatLng(); ok {
		target.Lat, target.Lng = &lat, &lng
	}
	return target
}
