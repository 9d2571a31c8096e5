package models

import (
	"time"

	"github.com/lib/pq"
)

// Feedback is a rating left for a volunteer on one aid request
type Feedback struct {
	ID             string         `json:"id" db:"id"`
	AidID          string         `json:"aidId" db:"aid_id"`
	AidType        AidType        `json:"aidType" db:"aid_type"`
	VolunteerID    string         `json:"volunteerId" db:"volunteer_id"`
	Rating         int            `json:"rating" db:"rating"`
	Comment        string         `json:"comment,omitempty" db:"comment"`
	Tags           pq.StringArray `json:"tags" db:"tags"`
	VolunteerName  *string        `json:"volunteerName,omitempty" db:"volunteer_name"`
	VolunteerPhone *string        `json:"volunteerPhone,omitempty" db:"volunteer_phone"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
}

// FeedbackRequest is the body of a feedback submission
type FeedbackRequest struct {
	AidID       string   `json:"aidId" validate:"required"`
	AidType     AidType  `json:"aidType" validate:"required,oneof=medical transport"`
	VolunteerID string   `json:"volunteerId" validate:"required"`
	Rating      int      `json:"rating" validate:"required,min=1,max=5"`
	Comment     string   `json:"comment" validate:"max=500"`
	Tags        []string `json:"tags"`
}

// FeedbackUpdateRequest changes an existing feedback; nil fields are left untouched
type FeedbackUpdateRequest struct {
	Rating  *int      `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string   `json:"comment" validate:"omitempty,max=500"`
	Tags    *[]string `json:"tags"`
}
