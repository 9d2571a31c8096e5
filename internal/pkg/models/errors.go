package models

import "github.com/piresc/reliefhub/internal/pkg/apperrors"

// Sentinel errors shared by repositories and use cases
var (
	ErrVolunteerNotFound    = apperrors.NotFound("Volunteer not found")
	ErrAidNotFound          = apperrors.NotFound("Aid request not found")
	ErrFeedbackNotFound     = apperrors.NotFound("Feedback not found")
	ErrNotificationNotFound = apperrors.NotFound("Notification not found")
	ErrFeedbackExists       = apperrors.Conflict("Feedback already exists for this volunteer and aid request")
	ErrInvalidAidType       = apperrors.Validation("aidType", "must be one of: medical, transport")
)

// ErrNoLocation is returned when a match is requested without an address
var ErrNoLocation = apperrors.Validation("location", "no location address provided for volunteer matching")
