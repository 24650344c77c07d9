package models

import "gorm.io/gorm"

// Issue records a symptom query forwarded to the ranking engine.
type Issue struct {
	gorm.Model
	UserID       uint   `gorm:"index" json:"userId"`
	SymptomsText string `gorm:"type:text" json:"symptomsText"`
}
