package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"portfolio-tracker/config"
	"portfolio-tracker/middleware"
	"portfolio-tracker/store"
)

type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	user, err := store.CreateUser(config.DB, input.Email, string(hashedPassword), input.FirstName, input.LastName)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": middleware.NewToken(user.ID),
		"user":  newUserResponse(user),
	})
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := store.FindUserByEmail(config.DB, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		storeError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": middleware.NewToken(user.ID),
		"user":  newUserResponse(user),
	})
}

// Me returns the account behind the presented credential.
func Me(c *gin.Context) {
	user, err := store.FindUserByID(config.DB, currentUserID(c))
	if err != nil {
		storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}
