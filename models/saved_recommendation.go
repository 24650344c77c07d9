package models

import (
	"time"

	"gorm.io/gorm"
)

// Feedback outcomes mirrored onto a saved recommendation for display.
const (
	FeedbackWorked     = "worked"
	FeedbackDidNotWork = "did_not_work"
)

// SavedRecommendation is a nutrient suggestion the user chose to keep.
// The (user_id, nutrient_name) unique index is the serialization point for
// duplicate save requests.
type SavedRecommendation struct {
	gorm.Model
	UserID       uint    `gorm:"uniqueIndex:idx_saved_user_nutrient" json:"userId"`
	NutrientName string  `gorm:"size:100;uniqueIndex:idx_saved_user_nutrient" json:"nutrientName"`
	Confidence   float64 `json:"confidence"`
	FoodSources  string  `gorm:"type:text" json:"food_sources"`
	Description  string  `gorm:"type:text" json:"description"`

	// Set by the feedback flow; the Feedback row is the source of truth.
	Feedback   *string    `gorm:"size:20" json:"feedback"` // "worked" | "did_not_work"
	FeedbackAt *time.Time `json:"feedbackAt"`
}
