package store

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-tracker/models"
)

func CreateUser(db *gorm.DB, email, passwordHash, firstName, lastName string) (*models.User, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	user := models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile changes name and email, refusing an email that another
// account already uses.
func UpdateUserProfile(db *gorm.DB, user *models.User, firstName, lastName, email string) error {
	if email != user.Email {
		var count int64
		if err := db.Model(&models.User{}).Where("email = ? AND id <> ?", email, user.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateEmail
		}
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Email = email
	return db.Save(user).Error
}

func UpdateUserPassword(db *gorm.DB, user *models.User, passwordHash string) error {
	user.PasswordHash = passwordHash
	return db.Save(user).Error
}
