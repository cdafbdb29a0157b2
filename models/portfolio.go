package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Portfolio struct {
	gorm.Model
	UserID      uint   `gorm:"index"`
	Name        string `gorm:"size:100"`
	Description string
	Investments []Investment
}

type Investment struct {
	gorm.Model
	PortfolioID   uint            `gorm:"index"`
	Symbol        string          `gorm:"index;size:20"`
	Name          string          `gorm:"size:100"`
	Shares        decimal.Decimal `gorm:"type:numeric(18,6)"`
	PurchasePrice decimal.Decimal `gorm:"type:numeric(18,2)"`
	PurchaseDate  time.Time
}
