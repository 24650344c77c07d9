package models

import (
	"strings"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name           string `gorm:"not null"`
	Gender         string `gorm:"size:10"` // "male" | "female" | "other"
	DietPreference string `gorm:"size:20"` // "veg" | "vegan" | "nonveg" | "eggetarian"
	Lifestyle      string `gorm:"size:30"` // "sedentary" | "lightly_active" | "moderately_active" | "very_active"
	Allergies      string // comma-separated, whitelisted at signup
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
}

// AllergyList splits the stored comma-separated allergies.
func (u *User) AllergyList() []string {
	if u.Allergies == "" {
		return []string{}
	}
	return strings.Split(u.Allergies, ",")
}
