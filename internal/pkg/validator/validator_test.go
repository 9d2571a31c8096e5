package validator

import (
	"strings"
	"testing"

	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func TestValidate_Volunteer(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     models.VolunteerRequest
		wantErr string
	}{
		{"valid", models.VolunteerRequest{Name: "Asha Rao", Phone: "+91 98765-43210"}, ""},
		{"missing name", models.VolunteerRequest{Phone: "9876543210"}, "name: is required"},
		{"digits in name", models.VolunteerRequest{Name: "R2D2", Phone: "9876543210"}, "name: must be 2-50 letters or spaces"},
		{"short phone", models.VolunteerRequest{Name: "Asha", Phone: "12345"}, "phone: must be 10-15 digits, optionally with +, spaces or dashes"},
		{"bad email", models.VolunteerRequest{Name: "Asha", Phone: "9876543210", Email: "asha@"}, "email: must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
			assert.Equal(t, tt.wantErr, apperrors.Message(err))
		})
	}
}

func TestValidate_Aid(t *testing.T) {
	v := New()

	valid := models.MedicalAidRequest{PatientName: "Ravi", Condition: "fracture", Location: "Sector 5", ContactNumber: "9876543210"}
	assert.NoError(t, v.Validate(&valid))

	badContact := valid
	badContact.ContactNumber = "+919876543210"
	assert.Equal(t, "contactNumber: must be exactly 10 digits", apperrors.Message(v.Validate(&badContact)))

	badUrgency := valid
	badUrgency.Urgency = "critical"
	assert.Equal(t, "urgency: must be one of: low, medium, high", apperrors.Message(v.Validate(&badUrgency)))

	transport := models.TransportAidRequest{RequestorName: "Meera", PickupLocation: "A", DropoffLocation: "B", ContactNumber: "9876543210", NumPassengers: intPtr(0)}
	assert.Equal(t, "numPassengers: must be at least 1", apperrors.Message(v.Validate(&transport)))
}

func TestValidate_Feedback(t *testing.T) {
	v := New()

	req := models.FeedbackRequest{AidID: "a-1", AidType: models.AidTypeMedical, VolunteerID: "v-1", Rating: 6}
	assert.Equal(t, "rating: must be at most 5", apperrors.Message(v.Validate(&req)))

	req.Rating = 4
	req.Comment = strings.Repeat("x", 501)
	assert.Equal(t, "comment: must be at most 500 characters", apperrors.Message(v.Validate(&req)))

	req.Comment = ""
	req.AidType = "food"
	assert.Equal(t, "aidType: must be one of: medical, transport", apperrors.Message(v.Validate(&req)))
}
