package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/piresc/reliefhub/internal/pkg/constants"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/utils"
)

// suffixDigits is how many trailing digits identify a volunteer's phone
const suffixDigits = 10

// HandleDeliveryReceipt applies a provider delivery report to the matching
// notification. Receipts for unknown messages are accepted and ignored.
func (uc *NotificationUC) HandleDeliveryReceipt(ctx context.Context, receipt *models.DeliveryReceipt) error {
	messageID := strings.TrimSpace(receipt.MessageID)
	if messageID == "" {
		return apperrors.Validation("messageId", "Missing message ID")
	}

	n, err := uc.notificationRepo.GetByMessageID(ctx, messageID)
	if err != nil {
		if errors.Is(err, models.ErrNotificationNotFound) {
			logger.Info("Delivery receipt for unknown message", logger.String("message_id", messageID))
			return nil
		}
		return err
	}

	// a reply already proves delivery
	if n.Status == models.NotificationStatusResponded {
		return nil
	}

	status, details := mapReceipt(receipt, n.Status)
	if status == n.Status {
		return nil
	}

	n.Status = status
	n.StatusDetails = details
	n.UpdatedAt = time.Now().UTC()
	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		return err
	}

	logger.Info("Notification status updated from delivery receipt",
		logger.String("notification_id", n.ID),
		logger.String("status", string(status)),
		logger.String("provider_status", receipt.ProviderStatus()))
	uc.publishStatus(ctx, n)
	return nil
}

// mapReceipt translates a provider status; unknown statuses keep current
func mapReceipt(receipt *models.DeliveryReceipt, current models.NotificationStatus) (models.NotificationStatus, *string) {
	var details *string
	if receipt.ErrCode != "" {
		d := fmt.Sprintf("error code: %s", receipt.ErrCode)
		details = &d
	}

	switch providerStatus := receipt.ProviderStatus(); providerStatus {
	case "delivered":
		return models.NotificationStatusDelivered, details
	case "accepted", "buffered":
		return models.NotificationStatusSent, details
	case "expired", "failed", "rejected":
		d := fmt.Sprintf("provider status: %s, error code: %s", providerStatus, receipt.ErrCode)
		return models.NotificationStatusFailed, &d
	default:
		return current, details
	}
}

// HandleInboundSMS records a volunteer's reply to their latest pending
// notification. A positive reply assigns the volunteer to the aid request and
// triggers a confirmation SMS.
func (uc *NotificationUC) HandleInboundSMS(ctx context.Context, sms *models.InboundSMS) error {
	msisdn := strings.TrimSpace(sms.MSISDN)
	text := utils.Truncate(utils.SanitizeString(sms.Text), maxReplyLength)
	if msisdn == "" || text == "" {
		return apperrors.Validation("", "Missing required parameters")
	}

	phone := utils.FormatPhoneNumber(msisdn, uc.countryCode())
	volunteer, err := uc.findVolunteerByPhone(ctx, phone, msisdn)
	if err != nil {
		if errors.Is(err, models.ErrVolunteerNotFound) {
			logger.Info("No volunteer matches inbound SMS", logger.String("from", utils.MaskPhoneNumber(phone)))
			return nil
		}
		return err
	}

	n, err := uc.notificationRepo.GetLatestPending(ctx, volunteer.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotificationNotFound) {
			logger.Info("No pending notification for volunteer reply", logger.String("volunteer_id", volunteer.ID))
			return nil
		}
		return err
	}

	n.Response = &text
	n.Status = models.NotificationStatusResponded
	n.UpdatedAt = time.Now().UTC()

	// stored first so a retried webhook finds nothing pending and cannot
	// assign or confirm twice
	if err := uc.notificationRepo.Update(ctx, n); err != nil {
		return err
	}
	uc.publishStatus(ctx, n)
	uc.refreshResponseRate(ctx, volunteer.ID)

	if !utils.IsPositiveReply(text) {
		logger.Info("Non-positive volunteer reply",
			logger.String("volunteer_id", volunteer.ID),
			logger.String("notification_id", n.ID))
		return nil
	}

	if err := uc.assign(ctx, n, volunteer.ID); err != nil {
		logger.Error("Failed to assign volunteer after positive reply",
			logger.String("aid_id", n.AidID),
			logger.String("volunteer_id", volunteer.ID),
			logger.Err(err))
		return err
	}
	uc.sendConfirmation(ctx, phone)
	return nil
}

// findVolunteerByPhone tries the normalized number first, then the trailing digits
func (uc *NotificationUC) findVolunteerByPhone(ctx context.Context, phone, raw string) (*models.Volunteer, error) {
	volunteer, err := uc.volunteerRepo.FindByPhone(ctx, phone)
	if err == nil {
		return volunteer, nil
	}
	if !errors.Is(err, models.ErrVolunteerNotFound) {
		return nil, err
	}
	return uc.volunteerRepo.FindByPhoneSuffix(ctx, utils.LastDigits(raw, suffixDigits))
}

func (uc *NotificationUC) assign(ctx context.Context, n *models.Notification, volunteerID string) error {
	if uc.aidAssigner == nil {
		logger.Warn("No aid assigner configured, skipping assignment", logger.String("aid_id", n.AidID))
		return nil
	}

	err := uc.aidAssigner.AssignVolunteer(ctx, n.AidType, n.AidID, volunteerID)
	if err != nil {
		if errors.Is(err, models.ErrAidNotFound) {
			logger.Warn("Aid request of confirmed notification no longer exists",
				logger.String("aid_id", n.AidID),
				logger.String("notification_id", n.ID))
			return nil
		}
		return err
	}

	logger.Info("Volunteer confirmed aid request",
		logger.String("aid_id", n.AidID),
		logger.String("aid_type", string(n.AidType)),
		logger.String("volunteer_id", volunteerID))
	return nil
}

func (uc *NotificationUC) sendConfirmation(ctx context.Context, phone string) {
	if !uc.smsGW.Configured() {
		logger.Info("SMS provider not configured, skipping confirmation",
			logger.String("to", utils.MaskPhoneNumber(phone)))
		return
	}

	uc.runBackground(ctx, "confirmation sms", func(ctx context.Context) error {
		_, err := uc.smsGW.SendText(ctx, phone, constants.ConfirmationMessage)
		return err
	})
}

// refreshResponseRate recomputes responded / contacted for a volunteer.
// Failures are logged; the reply itself is already stored.
func (uc *NotificationUC) refreshResponseRate(ctx context.Context, volunteerID string) {
	responded, contacted, err := uc.notificationRepo.ResponseStats(ctx, volunteerID)
	if err != nil {
		logger.Warn("Failed to count volunteer responses", logger.String("volunteer_id", volunteerID), logger.Err(err))
		return
	}

	rate := 0.0
	if contacted > 0 {
		rate = utils.Round2(float64(responded) / float64(contacted))
	}
	if err := uc.volunteerRepo.UpdateResponseRate(ctx, volunteerID, rate); err != nil {
		logger.Warn("Failed to update volunteer response rate", logger.String("volunteer_id", volunteerID), logger.Err(err))
	}
}
