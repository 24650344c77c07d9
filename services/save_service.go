package services

import (
	"errors"
	"strings"

	"github.com/prateeksteaparty/vital-wellness/models"

	"gorm.io/gorm"
)

type SaveService struct {
	db        *gorm.DB
	scheduler *DigestScheduler
}

func NewSaveService(db *gorm.DB, scheduler *DigestScheduler) *SaveService {
	return &SaveService{db: db, scheduler: scheduler}
}

type SaveInput struct {
	NutrientName string
	Confidence   float64
	FoodSources  string
	Description  string
}

type SaveResult struct {
	Created bool
	Record  *models.SavedRecommendation
}

// RecordSave stores a recommendation the user chose to keep, at most once per
// (user, nutrient). A duplicate request returns the existing record with
// Created=false and has no side effects: no write, no digest timer arming.
func (s *SaveService) RecordSave(userID uint, in SaveInput) (*SaveResult, error) {
	name := strings.TrimSpace(in.NutrientName)
	if userID == 0 || name == "" {
		return nil, ErrMissingFields
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var existing models.SavedRecommendation
	err := s.db.Where("user_id = ? AND nutrient_name = ?", userID, name).First(&existing).Error
	if err == nil {
		return &SaveResult{Created: false, Record: &existing}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rec := &models.SavedRecommendation{
		UserID:       userID,
		NutrientName: name,
		Confidence:   in.Confidence,
		FoodSources:  in.FoodSources,
		Description:  in.Description,
	}
	if err := s.db.Create(rec).Error; err != nil {
		// Lost a concurrent race on the (user, nutrient) unique index; the
		// winner's row is the record of truth.
		if s.db.Where("user_id = ? AND nutrient_name = ?", userID, name).First(&existing).Error == nil {
			return &SaveResult{Created: false, Record: &existing}, nil
		}
		return nil, err
	}

	if s.scheduler != nil {
		s.scheduler.NotifySaved(userID)
	}
	return &SaveResult{Created: true, Record: rec}, nil
}

// ListSaved returns all of a user's saved recommendations, newest first.
func (s *SaveService) ListSaved(userID uint) ([]models.SavedRecommendation, error) {
	var recs []models.SavedRecommendation
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recs).Error
	return recs, err
}
