package models

import "time"

// TargetLocation is where help is needed
type TargetLocation struct {
	Address string
	Lat     *float64
	Lng     *float64
}

// Candidate is a volunteer selected for an aid request with its planar distance
// to the target. DistanceKnown is false for volunteers picked by name match.
type Candidate struct {
	Volunteer     *Volunteer
	Distance      float64
	DistanceKnown bool
}

// AidEvent is published when an aid request is created or assigned
type AidEvent struct {
	AidID       string    `json:"aidId"`
	AidType     AidType   `json:"aidType"`
	Status      AidStatus `json:"status"`
	Urgency     Urgency   `json:"urgency,omitempty"`
	VolunteerID string    `json:"volunteerId,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// NotificationEvent is published whenever a notification changes status
type NotificationEvent struct {
	NotificationID string             `json:"notificationId"`
	VolunteerID    string             `json:"volunteerId"`
	AidID          string             `json:"aidId"`
	AidType        AidType            `json:"aidType"`
	Status         NotificationStatus `json:"status"`
	OccurredAt     time.Time          `json:"occurredAt"`
}
