package controllers

import (
	"errors"
	"net/http"

	"github.com/prateeksteaparty/vital-wellness/services"

	"github.com/gin-gonic/gin"
)

type SaveRecommendationInput struct {
	UserID       uint    `json:"userId" binding:"required"`
	NutrientName string  `json:"nutrientName" binding:"required"`
	Confidence   float64 `json:"confidence"`
	FoodSources  string  `json:"food_sources"`
	Description  string  `json:"description"`
}

// POST /api/save
func SaveRecommendation(c *gin.Context) {
	var input SaveRecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	result, err := services.Saves.RecordSave(input.UserID, services.SaveInput{
		NutrientName: input.NutrientName,
		Confidence:   input.Confidence,
		FoodSources:  input.FoodSources,
		Description:  input.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	if !result.Created {
		// Dedup hit is a success, not an error.
		c.JSON(http.StatusOK, gin.H{
			"created": false,
			"message": "Already saved",
			"id":      result.Record.ID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"created": true,
		"message": "Recommendation saved successfully",
		"id":      result.Record.ID,
	})
}

// GET /api/saved/:userId
func GetSaved(c *gin.Context) {
	id, ok := parseUserID(c, "userId")
	if !ok {
		return
	}

	saved, err := services.Saves.ListSaved(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, saved)
}
