package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/prateeksteaparty/vital-wellness/config"
	"github.com/prateeksteaparty/vital-wellness/models"
	"github.com/prateeksteaparty/vital-wellness/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SignupInput struct {
	Name           string   `json:"name" binding:"required"`
	Gender         string   `json:"gender" binding:"required"`
	DietPreference string   `json:"dietPreference" binding:"required"`
	Lifestyle      string   `json:"lifestyle" binding:"required"`
	Allergies      []string `json:"allergies"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required"`
}

type SigninInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userResponse(u *models.User) gin.H {
	return gin.H{
		"id":             u.ID,
		"name":           u.Name,
		"email":          u.Email,
		"gender":         u.Gender,
		"dietPreference": u.DietPreference,
		"lifestyle":      u.Lifestyle,
		"allergies":      u.AllergyList(),
	}
}

func Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	diet := utils.NormalizeDiet(input.DietPreference)
	if diet == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid diet preference"})
		return
	}
	allergies := utils.FilterAllergies(input.Allergies)

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:           input.Name,
		Gender:         input.Gender,
		DietPreference: diet,
		Lifestyle:      input.Lifestyle,
		Allergies:      strings.Join(allergies, ","),
		Email:          input.Email,
		Password:       hashed,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    userResponse(&user),
	})
}

func Signin(c *gin.Context) {
	var input SigninInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !utils.CheckPasswordHash(input.Password, user.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    userResponse(&user),
	})
}
