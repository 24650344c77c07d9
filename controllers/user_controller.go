package controllers

import (
	"net/http"
	"strconv"

	"github.com/prateeksteaparty/vital-wellness/config"
	"github.com/prateeksteaparty/vital-wellness/models"
	"github.com/prateeksteaparty/vital-wellness/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseUserID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

// GET /api/user/details/:id
func GetUserDetails(c *gin.Context) {
	id, ok := parseUserID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, userResponse(&user))
}

// DELETE /api/user/:id
// Removes the account and everything keyed to it, and drops any pending
// digest so no email fires for a deleted user.
func DeleteUser(c *gin.Context) {
	id, ok := parseUserID(c, "id")
	if !ok {
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	services.Scheduler.CancelAll(id)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.SavedRecommendation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Issue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
