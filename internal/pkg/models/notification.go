package models

import (
	"encoding/json"
	"strings"
	"time"
)

// NotificationStatus represents the delivery state of an SMS send attempt
type NotificationStatus string

const (
	NotificationStatusQueued    NotificationStatus = "queued"
	NotificationStatusSent      NotificationStatus = "sent"
	NotificationStatusDelivered NotificationStatus = "delivered"
	NotificationStatusResponded NotificationStatus = "responded"
	NotificationStatusFailed    NotificationStatus = "failed"
)

// Notification records one SMS send attempt to a volunteer
type Notification struct {
	ID             string             `json:"id" db:"id"`
	VolunteerID    string             `json:"volunteerId" db:"volunteer_id"`
	AidID          string             `json:"aidId" db:"aid_id"`
	AidType        AidType            `json:"aidType" db:"aid_type"`
	Message        string             `json:"message" db:"message"`
	Status         NotificationStatus `json:"status" db:"status"`
	MessageID      *string            `json:"messageId,omitempty" db:"message_id"`
	Response       *string            `json:"response,omitempty" db:"response"`
	StatusDetails  *string            `json:"statusDetails,omitempty" db:"status_details"`
	VolunteerName  *string            `json:"volunteerName,omitempty" db:"volunteer_name"`
	VolunteerPhone *string            `json:"volunteerPhone,omitempty" db:"volunteer_phone"`
	CreatedAt      time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" db:"updated_at"`
}

// NotifyVolunteerRequest asks for a single volunteer to be messaged about an aid request
type NotifyVolunteerRequest struct {
	VolunteerID string  `json:"volunteerId" validate:"required"`
	AidID       string  `json:"aidId" validate:"required"`
	AidType     AidType `json:"aidType" validate:"required,oneof=medical transport"`
	Message     string  `json:"message" validate:"required"`
}

// SendSMSRequest is a direct SMS to any number, outside the notification history
type SendSMSRequest struct {
	To   string `json:"to" validate:"required"`
	Body string `json:"body" validate:"required"`
}

// SendResult is the outcome of a single SMS send
type SendResult struct {
	Success        bool   `json:"success"`
	Message        string `json:"message,omitempty"`
	MessageID      string `json:"messageId,omitempty"`
	NotificationID string `json:"notificationId,omitempty"`
	Simulated      bool   `json:"simulated,omitempty"`
	Error          string `json:"error,omitempty"`
}

// NotifySummary aggregates the fan-out of an aid request to nearby volunteers
type NotifySummary struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	NotifiedCount int    `json:"notifiedCount"`
	FailedCount   int    `json:"failedCount"`
}

// FlexString accepts both JSON strings and numbers
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// InboundSMS is an SMS reply received from the provider
type InboundSMS struct {
	MSISDN    string `json:"msisdn" query:"msisdn" form:"msisdn"`
	To        string `json:"to" query:"to" form:"to"`
	Text      string `json:"text" query:"text" form:"text"`
	MessageID string `json:"messageId" query:"messageId" form:"messageId"`
}

// DeliveryReceipt is a provider delivery report for a sent message
type DeliveryReceipt struct {
	MessageID string     `json:"messageId" query:"messageId" form:"messageId"`
	Status    string     `json:"status" query:"status" form:"status"`
	To        string     `json:"to" query:"to" form:"to"`
	ErrCode   FlexString `json:"err_code" query:"err_code" form:"err_code"`
}

// ProviderStatus is the receipt status lowercased and trimmed
func (r *DeliveryReceipt) ProviderStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
