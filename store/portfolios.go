package store

import (
	"errors"

	"gorm.io/gorm"

	"portfolio-tracker/models"
)

func CreatePortfolio(db *gorm.DB, userID uint, name, description string) (*models.Portfolio, error) {
	portfolio := models.Portfolio{
		UserID:      userID,
		Name:        name,
		Description: description,
	}
	if err := db.Create(&portfolio).Error; err != nil {
		return nil, err
	}
	return &portfolio, nil
}

func PortfoliosByUser(db *gorm.DB, userID uint) ([]models.Portfolio, error) {
	var portfolios []models.Portfolio
	err := db.Where("user_id = ?", userID).
		Preload("Investments").
		Order("created_at DESC").
		Find(&portfolios).Error
	if err != nil {
		return nil, err
	}
	return portfolios, nil
}

func PortfolioByID(db *gorm.DB, id uint) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := db.Preload("Investments").First(&portfolio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &portfolio, nil
}

func UpdatePortfolio(db *gorm.DB, id uint, name, description string) (*models.Portfolio, error) {
	portfolio, err := PortfolioByID(db, id)
	if err != nil {
		return nil, err
	}

	portfolio.Name = name
	portfolio.Description = description
	if err := db.Save(portfolio).Error; err != nil {
		return nil, err
	}
	return portfolio, nil
}

// DeletePortfolio removes the portfolio and all of its investments in one
// transaction. The cascade is explicit rather than left to a foreign-key
// constraint.
func DeletePortfolio(db *gorm.DB, id uint) error {
	var portfolio models.Portfolio
	if err := db.First(&portfolio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("portfolio_id = ?", id).Delete(&models.Investment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&portfolio).Error
	})
}

// PortfolioOwnedBy is the single ownership predicate consumed by every
// portfolio-scoped handler.
func PortfolioOwnedBy(db *gorm.DB, portfolioID, userID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Portfolio{}).
		Where("id = ? AND user_id = ?", portfolioID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
