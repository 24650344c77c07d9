package models

import "gorm.io/gorm"

// Feedback is a scoring signal consumed by the external ranking engine.
// ScoreAdjustment is computed once at creation and never recomputed, so
// stored values stay stable even if the scoring rule changes later.
type Feedback struct {
	gorm.Model
	UserID          uint   `gorm:"uniqueIndex:idx_feedback_user_nutrient" json:"userId"`
	NutrientName    string `gorm:"size:100;uniqueIndex:idx_feedback_user_nutrient" json:"nutrientName"`
	Worked          bool   `json:"worked"`
	ScoreAdjustment int    `json:"scoreAdjustment"`
}
