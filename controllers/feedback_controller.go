package controllers

import (
	"errors"
	"net/http"

	"github.com/prateeksteaparty/vital-wellness/services"

	"github.com/gin-gonic/gin"
)

type FeedbackInput struct {
	UserID       uint   `json:"userId" binding:"required"`
	NutrientName string `json:"nutrientName" binding:"required"`
	// Pointer so an explicit false still passes required validation.
	Worked *bool `json:"worked" binding:"required"`
}

// POST /api/feedback
func SubmitFeedback(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	result, err := services.Feedbacks.RecordFeedback(input.UserID, input.NutrientName, *input.Worked)
	if err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if !result.Created {
		// First write wins; tell the client, don't error.
		c.JSON(http.StatusOK, gin.H{
			"created": false,
			"message": "Feedback already submitted",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"created":    true,
		"message":    "Feedback saved",
		"adjustment": result.Adjustment,
	})
}

// GET /api/feedback/:userId
// Returns the stored score adjustments the external ranking engine reads.
func GetFeedback(c *gin.Context) {
	id, ok := parseUserID(c, "userId")
	if !ok {
		return
	}

	feedbacks, err := services.Feedbacks.ListFeedback(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, feedbacks)
}
