package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"portfolio-tracker/market"
	"portfolio-tracker/models"
)

const dateLayout = "2006-01-02"

type UserResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

type InvestmentResponse struct {
	ID            uint            `json:"id"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Shares        decimal.Decimal `json:"shares"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	PurchaseDate  string          `json:"purchaseDate"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`

	// Market-data enrichment, present only on valuation views.
	CurrentPrice       *decimal.Decimal `json:"currentPrice,omitempty"`
	TotalCost          *decimal.Decimal `json:"totalCost,omitempty"`
	CurrentValue       *decimal.Decimal `json:"currentValue,omitempty"`
	GainLoss           *decimal.Decimal `json:"gainLoss,omitempty"`
	GainLossPercentage *decimal.Decimal `json:"gainLossPercentage,omitempty"`
}

func newInvestmentResponse(inv models.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:            inv.ID,
		Symbol:        inv.Symbol,
		Name:          inv.Name,
		Shares:        inv.Shares,
		PurchasePrice: inv.PurchasePrice,
		PurchaseDate:  inv.PurchaseDate.Format(dateLayout),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

func newInvestmentResponseWithPrice(inv models.Investment, currentPrice decimal.Decimal) InvestmentResponse {
	resp := newInvestmentResponse(inv)
	v := market.Valuate(inv.Shares, inv.PurchasePrice, currentPrice)
	resp.CurrentPrice = &currentPrice
	resp.TotalCost = &v.TotalCost
	resp.CurrentValue = &v.CurrentValue
	resp.GainLoss = &v.GainLoss
	resp.GainLossPercentage = &v.GainLossPct
	return resp
}

type PortfolioResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
	Investments []InvestmentResponse `json:"investments,omitempty"`
}

func newPortfolioResponse(p *models.Portfolio) PortfolioResponse {
	return PortfolioResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type PortfolioSummaryResponse struct {
	ID                      uint            `json:"id"`
	Name                    string          `json:"name"`
	Description             string          `json:"description"`
	CreatedAt               time.Time       `json:"createdAt"`
	UpdatedAt               time.Time       `json:"updatedAt"`
	InvestmentCount         int             `json:"investmentCount"`
	TotalCost               decimal.Decimal `json:"totalCost"`
	TotalValue              decimal.Decimal `json:"totalValue"`
	TotalGainLoss           decimal.Decimal `json:"totalGainLoss"`
	TotalGainLossPercentage decimal.Decimal `json:"totalGainLossPercentage"`
}

func newPortfolioSummaryResponse(p models.Portfolio, summary market.Summary) PortfolioSummaryResponse {
	return PortfolioSummaryResponse{
		ID:                      p.ID,
		Name:                    p.Name,
		Description:             p.Description,
		CreatedAt:               p.CreatedAt,
		UpdatedAt:               p.UpdatedAt,
		InvestmentCount:         summary.Count,
		TotalCost:               summary.TotalCost,
		TotalValue:              summary.TotalValue,
		TotalGainLoss:           summary.TotalGainLoss,
		TotalGainLossPercentage: summary.TotalGainPct,
	}
}
