package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"portfolio-tracker/config"
	"portfolio-tracker/store"
)

type UpdateProfileInput struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func GetProfile(c *gin.Context) {
	user, err := store.FindUserByID(config.DB, currentUserID(c))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

func UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := store.FindUserByID(config.DB, currentUserID(c))
	if err != nil {
		storeError(c, err)
		return
	}

	if err := store.UpdateUserProfile(config.DB, user, input.FirstName, input.LastName, input.Email); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

func ChangePassword(c *gin.Context) {
	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := store.FindUserByID(config.DB, currentUserID(c))
	if err != nil {
		storeError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	if err := store.UpdateUserPassword(config.DB, user, string(hashedPassword)); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
