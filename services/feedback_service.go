package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/prateeksteaparty/vital-wellness/models"

	"gorm.io/gorm"
)

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

type FeedbackResult struct {
	Created    bool
	Adjustment int
	Record     *models.Feedback
}

// RecordFeedback stores a scoring signal at most once per (user, nutrient).
// First write wins: a later submission returns the existing row's adjustment
// with Created=false and never overwrites it.
func (s *FeedbackService) RecordFeedback(userID uint, nutrientName string, worked bool) (*FeedbackResult, error) {
	name := strings.TrimSpace(nutrientName)
	if userID == 0 || name == "" {
		return nil, ErrMissingFields
	}

	var existing models.Feedback
	err := s.db.Where("user_id = ? AND nutrient_name = ?", userID, name).First(&existing).Error
	if err == nil {
		return &FeedbackResult{Created: false, Adjustment: existing.ScoreAdjustment, Record: &existing}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fb := &models.Feedback{
		UserID:          userID,
		NutrientName:    name,
		Worked:          worked,
		ScoreAdjustment: ScoreAdjustment(worked),
	}
	if err := s.db.Create(fb).Error; err != nil {
		// Concurrent duplicate hit the unique index first.
		if s.db.Where("user_id = ? AND nutrient_name = ?", userID, name).First(&existing).Error == nil {
			return &FeedbackResult{Created: false, Adjustment: existing.ScoreAdjustment, Record: &existing}, nil
		}
		return nil, err
	}

	s.mirrorOntoSaved(userID, name, worked)

	return &FeedbackResult{Created: true, Adjustment: fb.ScoreAdjustment, Record: fb}, nil
}

// mirrorOntoSaved copies the outcome onto the matching saved recommendation
// for display. Best effort: the Feedback row is the source of truth, so a
// failed update is logged, not propagated.
func (s *FeedbackService) mirrorOntoSaved(userID uint, nutrientName string, worked bool) {
	outcome := models.FeedbackDidNotWork
	if worked {
		outcome = models.FeedbackWorked
	}
	now := time.Now()
	err := s.db.Model(&models.SavedRecommendation{}).
		Where("user_id = ? AND nutrient_name = ?", userID, nutrientName).
		Updates(map[string]interface{}{"feedback": outcome, "feedback_at": now}).Error
	if err != nil {
		log.Printf("feedback: could not mirror outcome onto saved recommendation (user=%d nutrient=%q): %v",
			userID, nutrientName, err)
	}
}

// FeedbackView is the projection the external ranking engine reads.
type FeedbackView struct {
	NutrientName    string    `json:"nutrientName"`
	Worked          bool      `json:"worked"`
	ScoreAdjustment int       `json:"scoreAdjustment"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ListFeedback returns a user's feedback rows, including the stored score
// adjustments the ranking engine needs.
func (s *FeedbackService) ListFeedback(userID uint) ([]FeedbackView, error) {
	var views []FeedbackView
	err := s.db.Model(&models.Feedback{}).
		Select("nutrient_name", "worked", "score_adjustment", "created_at").
		Where("user_id = ?", userID).
		Find(&views).Error
	return views, err
}
