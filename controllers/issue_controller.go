package controllers

import (
	"log"
	"net/http"

	"github.com/prateeksteaparty/vital-wellness/config"
	"github.com/prateeksteaparty/vital-wellness/models"
	"github.com/prateeksteaparty/vital-wellness/services"

	"github.com/gin-gonic/gin"
)

type IssueInput struct {
	UserID uint   `json:"userId" binding:"required"`
	Text   string `json:"text" binding:"required"`
}

// POST /api/issues
// Forwards a symptom query to the prediction engine along with the user's
// profile and feedback history.
func AnalyzeIssue(c *gin.Context) {
	var input IssueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing fields"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, input.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	feedbacks, err := services.Feedbacks.ListFeedback(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	issue := models.Issue{UserID: user.ID, SymptomsText: input.Text}
	if err := config.DB.Create(&issue).Error; err != nil {
		log.Printf("issues: could not persist query for user %d: %v", user.ID, err)
	}

	recs, err := services.ML.Predict(&user, input.Text, feedbacks)
	if err != nil {
		log.Printf("issues: prediction failed for user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "ML server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "ML recommendations received",
		"recommendations": recs,
	})
}
