package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/utils"
)

var errEmptyMessageID = errors.New("provider returned no message id")

// SendToVolunteer texts message to the volunteer and records the attempt.
// Without provider credentials the send is simulated and nothing is stored.
func (uc *NotificationUC) SendToVolunteer(
	ctx context.Context,
	volunteer *models.Volunteer,
	message, aidID string,
	aidType models.AidType,
) (*models.SendResult, error) {
	if volunteer == nil {
		return nil, models.ErrVolunteerNotFound
	}

	to := utils.FormatPhoneNumber(volunteer.Phone, uc.countryCode())

	if !uc.smsGW.Configured() {
		logger.Warn("SMS provider not configured, simulating send",
			logger.String("volunteer_id", volunteer.ID),
			logger.String("to", utils.MaskPhoneNumber(to)),
			logger.String("aid_id", aidID))
		return &models.SendResult{
			Success:   true,
			Message:   "SMS simulated (provider not configured)",
			Simulated: true,
		}, nil
	}

	now := time.Now().UTC()
	n := &models.Notification{
		ID:          uuid.New().String(),
		VolunteerID: volunteer.ID,
		AidID:       aidID,
		AidType:     aidType,
		Message:     message,
		Status:      models.NotificationStatusQueued,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	result := &models.SendResult{NotificationID: n.ID}

	messageID, err := uc.smsGW.SendText(ctx, to, message)
	if err == nil && messageID == "" {
		err = errEmptyMessageID
	}
	if err != nil {
		details := err.Error()
		n.Status = models.NotificationStatusFailed
		n.StatusDetails = &details
		result.Error = details
		logger.Warn("SMS send failed",
			logger.String("notification_id", n.ID),
			logger.String("volunteer_id", volunteer.ID),
			logger.Err(err))
	} else {
		n.Status = models.NotificationStatusSent
		n.MessageID = &messageID
		result.Success = true
		result.MessageID = messageID
		result.Message = "SMS sent"
		logger.Info("SMS sent to volunteer",
			logger.String("notification_id", n.ID),
			logger.String("volunteer_id", volunteer.ID),
			logger.String("message_id", messageID))
	}

	n.UpdatedAt = time.Now().UTC()
	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		logger.Error("Failed to store notification status",
			logger.String("notification_id", n.ID),
			logger.String("status", string(n.Status)),
			logger.Err(err))
	}
	uc.publishStatus(ctx, n)

	return result, nil
}

// NotifyVolunteer looks the volunteer up and sends the message in the
// background. Only lookup failures are reported to the caller.
func (uc *NotificationUC) NotifyVolunteer(ctx context.Context, req *models.NotifyVolunteerRequest) (*models.VolunteerSummary, error) {
	if req.VolunteerID == "" || req.AidID == "" || req.AidType == "" || req.Message == "" {
		return nil, apperrors.Validation("", "Missing required parameters: volunteerId, aidId, aidType, message")
	}
	if !req.AidType.Valid() {
		return nil, models.ErrInvalidAidType
	}

	volunteer, err := uc.volunteerRepo.GetByID(ctx, req.VolunteerID)
	if err != nil {
		return nil, err
	}

	uc.runBackground(ctx, "notify volunteer", func(ctx context.Context) error {
		res, err := uc.SendToVolunteer(ctx, volunteer, req.Message, req.AidID, req.AidType)
		if err != nil {
			return err
		}
		if !res.Success {
			return errors.New(res.Error)
		}
		return nil
	})

	return &models.VolunteerSummary{
		ID:    volunteer.ID,
		Name:  volunteer.Name,
		Phone: volunteer.Phone,
	}, nil
}

// SendSMS texts an arbitrary number. Nothing is recorded in the notification history.
func (uc *NotificationUC) SendSMS(ctx context.Context, req *models.SendSMSRequest) (*models.SendResult, error) {
	if strings.TrimSpace(req.To) == "" || strings.TrimSpace(req.Body) == "" {
		return nil, apperrors.Validation("", "Phone number and message body are required")
	}

	to := utils.FormatPhoneNumber(req.To, uc.countryCode())

	if !uc.smsGW.Configured() {
		logger.Warn("SMS provider not configured, simulating direct send",
			logger.String("to", utils.MaskPhoneNumber(to)))
		return &models.SendResult{
			Success:   true,
			Message:   "SMS notification would be sent (provider not configured)",
			Simulated: true,
		}, nil
	}

	messageID, err := uc.smsGW.SendText(ctx, to, req.Body)
	if err == nil && messageID == "" {
		err = errEmptyMessageID
	}
	if err != nil {
		return nil, apperrors.External("Failed to send SMS notification", err)
	}

	logger.Info("Direct SMS sent",
		logger.String("to", utils.MaskPhoneNumber(to)),
		logger.String("message_id", messageID))
	return &models.SendResult{
		Success:   true,
		Message:   "SMS notification sent successfully",
		MessageID: messageID,
	}, nil
}

// ListByAid returns the notification history of an aid request, newest first
func (uc *NotificationUC) ListByAid(ctx context.Context, aidType models.AidType, aidID string) ([]*models.Notification, error) {
	if !aidType.Valid() {
		return nil, models.ErrInvalidAidType
	}

	notifications, err := uc.notificationRepo.ListByAid(ctx, aidType, aidID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}
	return notifications, nil
}

// ListRecent returns the latest notifications across all aid requests
func (uc *NotificationUC) ListRecent(ctx context.Context) ([]*models.Notification, error) {
	notifications, err := uc.notificationRepo.ListRecent(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*models.Notification{}
	}
	return notifications, nil
}

func (uc *NotificationUC) publishStatus(ctx context.Context, n *models.Notification) {
	event := models.NotificationEvent{
		NotificationID: n.ID,
		VolunteerID:    n.VolunteerID,
		AidID:          n.AidID,
		AidType:        n.AidType,
		Status:         n.Status,
		OccurredAt:     n.UpdatedAt,
	}
	if err := uc.eventGW.PublishNotificationStatus(ctx, event); err != nil {
		logger.Warn("Failed to publish notification status",
			logger.String("notification_id", n.ID),
			logger.Err(err))
	}
}
