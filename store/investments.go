package store

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"portfolio-tracker/models"
)

func CreateInvestment(db *gorm.DB, portfolioID uint, symbol, name string, shares, purchasePrice decimal.Decimal, purchaseDate time.Time) (*models.Investment, error) {
	investment := models.Investment{
		PortfolioID:   portfolioID,
		Symbol:        symbol,
		Name:          name,
		Shares:        shares,
		PurchasePrice: purchasePrice,
		PurchaseDate:  purchaseDate,
	}
	if err := db.Create(&investment).Error; err != nil {
		return nil, err
	}
	return &investment, nil
}

func InvestmentsByPortfolio(db *gorm.DB, portfolioID uint) ([]models.Investment, error) {
	var investments []models.Investment
	err := db.Where("portfolio_id = ?", portfolioID).
		Order("created_at DESC").
		Find(&investments).Error
	if err != nil {
		return nil, err
	}
	return investments, nil
}

// InvestmentByID fetches an investment and verifies it hangs off the
// addressed portfolio; a record that exists under a different portfolio
// yields ErrWrongPortfolio.
func InvestmentByID(db *gorm.DB, portfolioID, id uint) (*models.Investment, error) {
	var investment models.Investment
	if err := db.First(&investment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if investment.PortfolioID != portfolioID {
		return nil, ErrWrongPortfolio
	}
	return &investment, nil
}

func UpdateInvestment(db *gorm.DB, portfolioID, id uint, symbol, name string, shares, purchasePrice decimal.Decimal, purchaseDate time.Time) (*models.Investment, error) {
	investment, err := InvestmentByID(db, portfolioID, id)
	if err != nil {
		return nil, err
	}

	investment.Symbol = symbol
	investment.Name = name
	investment.Shares = shares
	investment.PurchasePrice = purchasePrice
	investment.PurchaseDate = purchaseDate
	if err := db.Save(investment).Error; err != nil {
		return nil, err
	}
	return investment, nil
}

func DeleteInvestment(db *gorm.DB, portfolioID, id uint) error {
	investment, err := InvestmentByID(db, portfolioID, id)
	if err != nil {
		return err
	}
	return db.Delete(investment).Error
}
