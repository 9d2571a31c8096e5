package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
)

const maxCommentLength = 500

// SubmitFeedback stores a rating for a volunteer on an aid request, replacing
// any earlier rating of the same pair, and refreshes the volunteer's aggregate
func (uc *FeedbackUC) SubmitFeedback(ctx context.Context, req *models.FeedbackRequest) (*models.Feedback, error) {
	if req.AidID == "" || req.AidType == "" || req.VolunteerID == "" || req.Rating == 0 {
		return nil, apperrors.Validation("", "Missing required fields")
	}
	if err := validateRating(req.Rating); err != nil {
		return nil, err
	}
	if err := validateComment(req.Comment); err != nil {
		return nil, err
	}
	if !req.AidType.Valid() {
		return nil, models.ErrInvalidAidType
	}

	if _, err := uc.volunteerRepo.GetByID(ctx, req.VolunteerID); err != nil {
		return nil, err
	}
	if err := uc.ensureAidExists(ctx, req.AidType, req.AidID); err != nil {
		return nil, err
	}

	stored, err := uc.feedbackRepo.Upsert(ctx, &models.Feedback{
		ID:          uuid.New().String(),
		AidID:       req.AidID,
		AidType:     req.AidType,
		VolunteerID: req.VolunteerID,
		Rating:      req.Rating,
		Comment:     req.Comment,
		Tags:        normalizeTags(req.Tags),
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	if err := uc.RecomputeVolunteerRating(ctx, stored.VolunteerID); err != nil {
		return nil, err
	}

	logger.Info("Feedback submitted",
		logger.String("feedback_id", stored.ID),
		logger.String("volunteer_id", stored.VolunteerID),
		logger.Int("rating", stored.Rating))
	return stored, nil
}

// ListByAid returns the feedback of one aid request newest first
func (uc *FeedbackUC) ListByAid(ctx context.Context, aidType models.AidType, aidID string) ([]*models.Feedback, error) {
	if !aidType.Valid() {
		return nil, models.ErrInvalidAidType
	}
	list, err := uc.feedbackRepo.ListByAid(ctx, aidType, aidID)
	if err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

// ListByVolunteer returns the feedback of an existing volunteer newest first
func (uc *FeedbackUC) ListByVolunteer(ctx context.Context, volunteerID string) ([]*models.Feedback, error) {
	if _, err := uc.volunteerRepo.GetByID(ctx, volunteerID); err != nil {
		return nil, err
	}
	list, err := uc.feedbackRepo.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		return nil, err
	}
	return nonNil(list), nil
}

// GetFeedback returns one feedback
func (uc *FeedbackUC) GetFeedback(ctx context.Context, id string) (*models.Feedback, error) {
	return uc.feedbackRepo.GetByID(ctx, id)
}

// UpdateFeedback changes the provided fields of a feedback
func (uc *FeedbackUC) UpdateFeedback(ctx context.Context, id string, req *models.FeedbackUpdateRequest) (*models.Feedback, error) {
	if req.Rating != nil {
		if err := validateRating(*req.Rating); err != nil {
			return nil, err
		}
	}
	if req.Comment != nil {
		if err := validateComment(*req.Comment); err != nil {
			return nil, err
		}
	}

	f, err := uc.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil {
		f.Rating = *req.Rating
	}
	if req.Comment != nil {
		f.Comment = *req.Comment
	}
	if req.Tags != nil {
		f.Tags = normalizeTags(*req.Tags)
	}

	if err := uc.feedbackRepo.Update(ctx, f); err != nil {
		return nil, err
	}
	if err := uc.RecomputeVolunteerRating(ctx, f.VolunteerID); err != nil {
		return nil, err
	}
	return f, nil
}

// DeleteFeedback removes a feedback and refreshes the volunteer's aggregate
func (uc *FeedbackUC) DeleteFeedback(ctx context.Context, id string) error {
	f, err := uc.feedbackRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.feedbackRepo.Delete(ctx, id); err != nil {
		return err
	}
	return uc.RecomputeVolunteerRating(ctx, f.VolunteerID)
}

func (uc *FeedbackUC) ensureAidExists(ctx context.Context, aidType models.AidType, aidID string) error {
	var err error
	switch aidType {
	case models.AidTypeMedical:
		_, err = uc.aidRepo.GetMedicalByID(ctx, aidID)
	case models.AidTypeTransport:
		_, err = uc.aidRepo.GetTransportByID(ctx, aidID)
	default:
		err = models.ErrInvalidAidType
	}
	return err
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperrors.Validation("rating", "Rating must be between 1 and 5")
	}
	return nil
}

func validateComment(comment string) error {
	if len([]rune(comment)) > maxCommentLength {
		return apperrors.Validation("comment", "Comment cannot be more than 500 characters")
	}
	return nil
}

// normalizeTags trims tags and drops blanks and duplicates, keeping order
func normalizeTags(tags []string) pq.StringArray {
	out := make(pq.StringArray, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func nonNil(list []*models.Feedback) []*models.Feedback {
	if list == nil {
		return []*models.Feedback{}
	}
	return list
}
