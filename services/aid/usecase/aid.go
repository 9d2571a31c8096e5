package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
)

// SubmitMedicalAid stores a medical aid request and then notifies nearby
// volunteers. Notification problems are reported in the result, never as an error.
func (u *AidUC) SubmitMedicalAid(ctx context.Context, req *models.MedicalAidRequest) (*models.AidSubmission, error) {
	aid := &models.MedicalAid{
		ID:             uuid.New().String(),
		PatientName:    strings.TrimSpace(req.PatientName),
		Condition:      strings.TrimSpace(req.Condition),
		Location:       strings.TrimSpace(req.Location),
		Coordinates:    completeCoordinates(req.Coordinates),
		ContactNumber:  req.ContactNumber,
		Urgency:        urgencyOrDefault(req.Urgency),
		AdditionalInfo: req.AdditionalInfo,
		Status:         models.AidStatusPending,
		CreatedAt:      time.Now().UTC(),
	}

	if err := u.aidRepo.CreateMedical(ctx, aid); err != nil {
		return nil, err
	}
	u.publishCreated(ctx, aid.ID, models.AidTypeMedical, aid.Urgency)

	summary := u.matchGW.NotifyNearbyVolunteers(ctx, models.AidTypeMedical, aid)
	logger.Info("Medical aid request submitted",
		logger.String("aid_id", aid.ID),
		logger.Bool("volunteers_notified", summary != nil && summary.Success))

	return &models.AidSubmission{Aid: aid, Notification: summary}, nil
}

// SubmitTransportAid stores a transport aid request and then notifies
// volunteers near the pickup location
func (u *AidUC) SubmitTransportAid(ctx context.Context, req *models.TransportAidRequest) (*models.AidSubmission, error) {
	passengers := 1
	if req.NumPassengers != nil {
		passengers = *req.NumPassengers
	}

	aid := &models.TransportAid{
		ID:                  uuid.New().String(),
		RequestorName:       strings.TrimSpace(req.RequestorName),
		PickupLocation:      strings.TrimSpace(req.PickupLocation),
		PickupCoordinates:   completeCoordinates(req.PickupCoordinates),
		DropoffLocation:     strings.TrimSpace(req.DropoffLocation),
		DropoffCoordinates:  completeCoordinates(req.DropoffCoordinates),
		ContactNumber:       req.ContactNumber,
		NumPassengers:       passengers,
		Urgency:             urgencyOrDefault(req.Urgency),
		SpecialRequirements: req.SpecialRequirements,
		Status:              models.AidStatusPending,
		CreatedAt:           time.Now().UTC(),
	}

	if err := u.aidRepo.CreateTransport(ctx, aid); err != nil {
		return nil, err
	}
	u.publishCreated(ctx, aid.ID, models.AidTypeTransport, aid.Urgency)

	summary := u.matchGW.NotifyNearbyVolunteers(ctx, models.AidTypeTransport, aid)
	logger.Info("Transport aid request submitted",
		logger.String("aid_id", aid.ID),
		logger.Bool("volunteers_notified", summary != nil && summary.Success))

	return &models.AidSubmission{Aid: aid, Notification: summary}, nil
}

// ListMedicalAids returns medical aid requests newest first
func (u *AidUC) ListMedicalAids(ctx context.Context) ([]*models.MedicalAid, error) {
	return u.aidRepo.ListMedical(ctx)
}

// ListTransportAids returns transport aid requests newest first
func (u *AidUC) ListTransportAids(ctx context.Context) ([]*models.TransportAid, error) {
	return u.aidRepo.ListTransport(ctx)
}

// SearchMedicalAidsByName finds medical aid requests by patient name.
// An empty result is reported as not found.
func (u *AidUC) SearchMedicalAidsByName(ctx context.Context, name string) ([]*models.MedicalAid, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.Validation("name", "is required")
	}

	aids, err := u.aidRepo.SearchMedicalByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(aids) == 0 {
		return nil, apperrors.NotFound("No medical aid requests found for this name")
	}
	return aids, nil
}

// GetMedicalAid returns a medical aid request by id
func (u *AidUC) GetMedicalAid(ctx context.Context, id string) (*models.MedicalAid, error) {
	return u.aidRepo.GetMedicalByID(ctx, id)
}

// GetTransportAid returns a transport aid request by id
func (u *AidUC) GetTransportAid(ctx context.Context, id string) (*models.TransportAid, error) {
	return u.aidRepo.GetTransportByID(ctx, id)
}

// UpdateAidStatus changes the status of an aid request by hand. Moving into or
// out of completed recomputes completedAids of the volunteers involved.
func (u *AidUC) UpdateAidStatus(ctx context.Context, aidType models.AidType, id string, req *models.AidStatusUpdateRequest) (models.AidRequest, error) {
	current, err := u.loadAid(ctx, aidType, id)
	if err != nil {
		return nil, err
	}
	prevStatus, prevVolunteer := statusOf(current)

	assigned := prevVolunteer
	if req.AssignedVolunteer != nil {
		assigned = nil
		if v := strings.TrimSpace(*req.AssignedVolunteer); v != "" {
			assigned = &v
		}
	}
	if req.Status == models.AidStatusAssigned && assigned == nil {
		return nil, apperrors.Validation("assignedVolunteer", "is required when status is assigned")
	}

	if err := u.aidRepo.UpdateStatus(ctx, aidType, id, req.Status, assigned); err != nil {
		return nil, err
	}
	setStatus(current, req.Status, assigned)

	if prevStatus == models.AidStatusCompleted || req.Status == models.AidStatusCompleted {
		if err := u.recomputeCompleted(ctx, prevVolunteer, assigned); err != nil {
			return nil, err
		}
	}
	if req.Status == models.AidStatusAssigned && (prevStatus != models.AidStatusAssigned || !sameVolunteer(prevVolunteer, assigned)) {
		u.publishAssigned(ctx, id, aidType, *assigned)
	}

	logger.Info("Aid request status updated",
		logger.String("aid_id", id),
		logger.String("aid_type", string(aidType)),
		logger.String("from", string(prevStatus)),
		logger.String("to", string(req.Status)))
	return current, nil
}

// AssignVolunteer marks an aid request as assigned to volunteerID after the
// volunteer accepted it
func (u *AidUC) AssignVolunteer(ctx context.Context, aidType models.AidType, id, volunteerID string) error {
	current, err := u.loadAid(ctx, aidType, id)
	if err != nil {
		return err
	}
	prevStatus, prevVolunteer := statusOf(current)

	if err := u.aidRepo.UpdateStatus(ctx, aidType, id, models.AidStatusAssigned, &volunteerID); err != nil {
		return err
	}
	if prevStatus == models.AidStatusCompleted {
		if err := u.recomputeCompleted(ctx, prevVolunteer, nil); err != nil {
			return err
		}
	}

	u.publishAssigned(ctx, id, aidType, volunteerID)
	return nil
}

func (u *AidUC) loadAid(ctx context.Context, aidType models.AidType, id string) (models.AidRequest, error) {
	switch aidType {
	case models.AidTypeMedical:
		aid, err := u.aidRepo.GetMedicalByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return aid, nil
	case models.AidTypeTransport:
		aid, err := u.aidRepo.GetTransportByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return aid, nil
	default:
		return nil, models.ErrInvalidAidType
	}
}

func (u *AidUC) recomputeCompleted(ctx context.Context, volunteers ...*string) error {
	seen := map[string]struct{}{}
	for _, v := range volunteers {
		if v == nil || *v == "" {
			continue
		}
		if _, ok := seen[*v]; ok {
			continue
		}
		seen[*v] = struct{}{}

		count, err := u.aidRepo.CountCompletedByVolunteer(ctx, *v)
		if err != nil {
			return err
		}
		if err := u.volunteerRepo.UpdateCompletedAids(ctx, *v, count); err != nil {
			// the assignee may have been removed since
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				logger.Warn("Assigned volunteer no longer exists", logger.String("volunteer_id", *v))
				continue
			}
			return err
		}
	}
	return nil
}

func (u *AidUC) publishCreated(ctx context.Context, id string, aidType models.AidType, urgency models.Urgency) {
	event := models.AidEvent{
		AidID:      id,
		AidType:    aidType,
		Status:     models.AidStatusPending,
		Urgency:    urgency,
		OccurredAt: time.Now().UTC(),
	}
	if err := u.eventGW.PublishAidCreated(ctx, event); err != nil {
		logger.Warn("Failed to publish aid created event", logger.String("aid_id", id), logger.Err(err))
	}
}

func (u *AidUC) publishAssigned(ctx context.Context, id string, aidType models.AidType, volunteerID string) {
	event := models.AidEvent{
		AidID:       id,
		AidType:     aidType,
		Status:      models.AidStatusAssigned,
		VolunteerID: volunteerID,
		OccurredAt:  time.Now().UTC(),
	}
	if err := u.eventGW.PublishAidAssigned(ctx, event); err != nil {
		logger.Warn("Failed to publish aid assigned event", logger.String("aid_id", id), logger.Err(err))
	}
}

func statusOf(aid models.AidRequest) (models.AidStatus, *string) {
	switch a := aid.(type) {
	case *models.MedicalAid:
		return a.Status, a.AssignedVolunteer
	case *models.TransportAid:
		return a.Status, a.AssignedVolunteer
	}
	return "", nil
}

func setStatus(aid models.AidRequest, status models.AidStatus, assigned *string) {
	switch a := aid.(type) {
	case *models.MedicalAid:
		a.Status, a.AssignedVolunteer = status, assigned
	case *models.TransportAid:
		a.Status, a.AssignedVolunteer = status, assigned
	}
}

func sameVolunteer(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func urgencyOrDefault(u models.Urgency) models.Urgency {
	if u == "" {
		return models.UrgencyMedium
	}
	return u
}

// completeCoordinates drops a pair unless both components are usable
func completeCoordinates(c *models.Coordinates) *models.Coordinates {
	lat, lng, ok := c.LatLng()
	if !ok {
		return nil
	}
	return &models.Coordinates{Lat: &lat, Lng: &lng}
}
