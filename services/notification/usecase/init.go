package usecase

import (
	"sync"

	"github.com/piresc/reliefhub/internal/pkg/constants"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/services/notification"
)

const (
	// recentLimit caps the unfiltered notification listing
	recentLimit = 100

	maxReplyLength = 1000
)

type NotificationUC struct {
	notificationRepo notification.NotificationRepo
	volunteerRepo    notification.VolunteerRepo
	smsGW            notification.SMSGateway
	eventGW          notification.EventGW
	aidAssigner      notification.AidAssigner
	cfg              *models.Config

	tasks sync.WaitGroup
}

// NewNotificationUC creates a new notification usecase instance. The aid
// assigner is attached later with SetAidAssigner because the aid usecase
// itself depends on notifications through matching.
func NewNotificationUC(
	notificationRepo notification.NotificationRepo,
	volunteerRepo notification.VolunteerRepo,
	smsGW notification.SMSGateway,
	eventGW notification.EventGW,
	cfg *models.Config,
) *NotificationUC {
	return &NotificationUC{
		notificationRepo: notificationRepo,
		volunteerRepo:    volunteerRepo,
		smsGW:            smsGW,
		eventGW:          eventGW,
		cfg:              cfg,
	}
}

// SetAidAssigner wires the usecase that assigns volunteers after a positive reply
func (uc *NotificationUC) SetAidAssigner(assigner notification.AidAssigner) {
	uc.aidAssigner = assigner
}

func (uc *NotificationUC) countryCode() string {
	if uc.cfg != nil && uc.cfg.SMS.DefaultCountryCode != "" {
		return uc.cfg.SMS.DefaultCountryCode
	}
	return constants.DefaultCountryCode
}
