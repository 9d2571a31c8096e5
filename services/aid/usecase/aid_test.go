package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/services/aid/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type aidMocks struct {
	repo      *mocks.MockAidRepo
	volunteer *mocks.MockVolunteerRepo
	match     *mocks.MockMatchGW
	events    *mocks.MockEventGW
}

func newTestAidUC(t *testing.T) (*AidUC, aidMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := aidMocks{
		repo:      mocks.NewMockAidRepo(ctrl),
		volunteer: mocks.NewMockVolunteerRepo(ctrl),
		match:     mocks.NewMockMatchGW(ctrl),
		events:    mocks.NewMockEventGW(ctrl),
	}
	return NewAidUC(m.repo, m.volunteer, m.match, m.events, &models.Config{}), m
}

func strPtr(s string) *string { return &s }

func TestSubmitMedicalAid_PersistsThenNotifies(t *testing.T) {
	uc, m := newTestAidUC(t)

	lat := 19.07
	req := &models.MedicalAidRequest{
		PatientName:   "Meera",
		Condition:     "Fracture",
		Location:      "Bandra",
		Coordinates:   &models.Coordinates{Lat: &lat},
		ContactNumber: "9876543210",
	}
	summary := &models.NotifySummary{Success: true, NotifiedCount: 2}

	gomock.InOrder(
		m.repo.EXPECT().CreateMedical(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *models.MedicalAid) error {
				assert.Equal(t, models.UrgencyMedium, a.Urgency)
				assert.Equal(t, models.AidStatusPending, a.Status)
				assert.Nil(t, a.Coordinates, "incomplete coordinates are dropped")
				return nil
			}),
		m.events.EXPECT().PublishAidCreated(gomock.Any(), gomock.Any()).Return(nil),
		m.match.EXPECT().NotifyNearbyVolunteers(gomock.Any(), models.AidTypeMedical, gomock.Any()).Return(summary),
	)

	res, err := uc.SubmitMedicalAid(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, summary, res.Notification)
	medical, ok := res.Aid.(*models.MedicalAid)
	require.True(t, ok)
	assert.NotEmpty(t, medical.ID)
}

func TestSubmitMedicalAid_StoreFailure(t *testing.T) {
	uc, m := newTestAidUC(t)

	m.repo.EXPECT().CreateMedical(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	res, err := uc.SubmitMedicalAid(context.Background(), &models.MedicalAidRequest{PatientName: "Meera"})

	assert.Nil(t, res)
	assert.EqualError(t, err, "db down")
}

func TestSubmitTransportAid_EventFailureIsSoft(t *testing.T) {
	uc, m := newTestAidUC(t)

	m.repo.EXPECT().CreateTransport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *models.TransportAid) error {
			assert.Equal(t, 1, a.NumPassengers)
			assert.Equal(t, models.UrgencyHigh, a.Urgency)
			return nil
		})
	m.events.EXPECT().PublishAidCreated(gomock.Any(), gomock.Any()).Return(errors.New("nsqd down"))
	m.match.EXPECT().NotifyNearbyVolunteers(gomock.Any(), models.AidTypeTransport, gomock.Any()).
		Return(&models.NotifySummary{Success: false, Message: "No volunteers found for this location"})

	res, err := uc.SubmitTransportAid(context.Background(), &models.TransportAidRequest{
		RequestorName:   "Ravi",
		PickupLocation:  "Kurla",
		DropoffLocation: "Dadar",
		ContactNumber:   "9876543210",
		Urgency:         models.UrgencyHigh,
	})

	require.NoError(t, err)
	assert.False(t, res.Notification.Success)
}

func TestSearchMedicalAidsByName(t *testing.T) {
	uc, m := newTestAidUC(t)

	m.repo.EXPECT().SearchMedicalByName(gomock.Any(), "mee").Return([]*models.MedicalAid{{ID: "m1"}}, nil)
	m.repo.EXPECT().SearchMedicalByName(gomock.Any(), "zzz").Return([]*models.MedicalAid{}, nil)

	aids, err := uc.SearchMedicalAidsByName(context.Background(), " mee ")
	require.NoError(t, err)
	assert.Len(t, aids, 1)

	_, err = uc.SearchMedicalAidsByName(context.Background(), "zzz")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	_, err = uc.SearchMedicalAidsByName(context.Background(), " ")
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUpdateAidStatus_CompletedRecomputesCount(t *testing.T) {
	uc, m := newTestAidUC(t)

	current := &models.MedicalAid{ID: "m1", Status: models.AidStatusAssigned, AssignedVolunteer: strPtr("v1")}
	m.repo.EXPECT().GetMedicalByID(gomock.Any(), "m1").Return(current, nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), models.AidTypeMedical, "m1", models.AidStatusCompleted, gomock.Any()).Return(nil)
	m.repo.EXPECT().CountCompletedByVolunteer(gomock.Any(), "v1").Return(3, nil)
	m.volunteer.EXPECT().UpdateCompletedAids(gomock.Any(), "v1", 3).Return(nil)

	res, err := uc.UpdateAidStatus(context.Background(), models.AidTypeMedical, "m1", &models.AidStatusUpdateRequest{Status: models.AidStatusCompleted})

	require.NoError(t, err)
	updated := res.(*models.MedicalAid)
	assert.Equal(t, models.AidStatusCompleted, updated.Status)
	assert.Equal(t, "v1", *updated.AssignedVolunteer)
}

func TestUpdateAidStatus_ReopenRecomputesPreviousVolunteer(t *testing.T) {
	uc, m := newTestAidUC(t)

	current := &models.TransportAid{ID: "t1", Status: models.AidStatusCompleted, AssignedVolunteer: strPtr("v1")}
	m.repo.EXPECT().GetTransportByID(gomock.Any(), "t1").Return(current, nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), models.AidTypeTransport, "t1", models.AidStatusAssigned, gomock.Any()).Return(nil)
	m.repo.EXPECT().CountCompletedByVolunteer(gomock.Any(), "v1").Return(0, nil)
	m.volunteer.EXPECT().UpdateCompletedAids(gomock.Any(), "v1", 0).Return(nil)
	m.repo.EXPECT().CountCompletedByVolunteer(gomock.Any(), "v2").Return(1, nil)
	m.volunteer.EXPECT().UpdateCompletedAids(gomock.Any(), "v2", 1).Return(nil)
	m.events.EXPECT().PublishAidAssigned(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.AidEvent) error {
			assert.Equal(t, "v2", e.VolunteerID)
			return nil
		})

	_, err := uc.UpdateAidStatus(context.Background(), models.AidTypeTransport, "t1", &models.AidStatusUpdateRequest{
		Status:            models.AidStatusAssigned,
		AssignedVolunteer: strPtr("v2"),
	})

	require.NoError(t, err)
}

func TestUpdateAidStatus_AssignedNeedsVolunteer(t *testing.T) {
	uc, m := newTestAidUC(t)

	m.repo.EXPECT().GetMedicalByID(gomock.Any(), "m1").Return(&models.MedicalAid{ID: "m1", Status: models.AidStatusPending}, nil)

	_, err := uc.UpdateAidStatus(context.Background(), models.AidTypeMedical, "m1", &models.AidStatusUpdateRequest{Status: models.AidStatusAssigned})

	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUpdateAidStatus_UnknownType(t *testing.T) {
	uc, _ := newTestAidUC(t)

	_, err := uc.UpdateAidStatus(context.Background(), models.AidType("boat"), "x", &models.AidStatusUpdateRequest{Status: models.AidStatusCancelled})

	assert.ErrorIs(t, err, models.ErrInvalidAidType)
}

func TestAssignVolunteer(t *testing.T) {
	uc, m := newTestAidUC(t)

	m.repo.EXPECT().GetMedicalByID(gomock.Any(), "m1").Return(&models.MedicalAid{ID: "m1", Status: models.AidStatusPending}, nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), models.AidTypeMedical, "m1", models.AidStatusAssigned, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.AidType, _ string, _ models.AidStatus, v *string) error {
			require.NotNil(t, v)
			assert.Equal(t, "v9", *v)
			return nil
		})
	m.events.EXPECT().PublishAidAssigned(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.AssignVolunteer(context.Background(), models.AidTypeMedical, "m1", "v9")

	require.NoError(t, err)
}

func TestAssignVolunteer_NotFound(t *testing.T) {
	uc, m := newTestAidUC(t)

	m.repo.EXPECT().GetTransportByID(gomock.Any(), "t1").Return(nil, models.ErrAidNotFound)

	err := uc.AssignVolunteer(context.Background(), models.AidTypeTransport, "t1", "v9")

	assert.ErrorIs(t, err, models.ErrAidNotFound)
}
