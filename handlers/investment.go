package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"portfolio-tracker/config"
	"portfolio-tracker/store"
)

type InvestmentInput struct {
	Symbol        string  `json:"symbol" binding:"required,max=20"`
	Name          string  `json:"name" binding:"required,max=100"`
	Shares        float64 `json:"shares" binding:"required,gt=0"`
	PurchasePrice float64 `json:"purchasePrice" binding:"required,gt=0"`
	PurchaseDate  string  `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
}

func (in *InvestmentInput) purchaseDate() time.Time {
	// Format already validated by the binding.
	t, _ := time.Parse(dateLayout, in.PurchaseDate)
	return t
}

func ListInvestments(c *gin.Context) {
	portfolioID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !requirePortfolioOwner(c, portfolioID) {
		return
	}

	investments, err := store.InvestmentsByPortfolio(config.DB, portfolioID)
	if err != nil {
		storeError(c, err)
		return
	}

	resp := make([]InvestmentResponse, 0, len(investments))
	for _, inv := range investments {
		resp = append(resp, newInvestmentResponseWithPrice(inv, Prices.CurrentPrice(inv.Symbol)))
	}
	c.JSON(http.StatusOK, resp)
}

func CreateInvestment(c *gin.Context) {
	portfolioID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !requirePortfolioOwner(c, portfolioID) {
		return
	}

	var input InvestmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	investment, err := store.CreateInvestment(config.DB, portfolioID,
		input.Symbol, input.Name,
		decimal.NewFromFloat(input.Shares), decimal.NewFromFloat(input.PurchasePrice),
		input.purchaseDate())
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newInvestmentResponse(*investment))
}

func GetInvestment(c *gin.Context) {
	portfolioID, ok := pathID(c, "id")
	if !ok {
		return
	}
	investmentID, ok := pathID(c, "investmentId")
	if !ok {
		return
	}
	if !requirePortfolioOwner(c, portfolioID) {
		return
	}

	investment, err := store.InvestmentByID(config.DB, portfolioID, investmentID)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newInvestmentResponseWithPrice(*investment, Prices.CurrentPrice(investment.Symbol)))
}

func UpdateInvestment(c *gin.Context) {
	portfolioID, ok := pathID(c, "id")
	if !ok {
		return
	}
	investmentID, ok := pathID(c, "investmentId")
	if !ok {
		return
	}
	if !requirePortfolioOwner(c, portfolioID) {
		return
	}

	var input InvestmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	investment, err := store.UpdateInvestment(config.DB, portfolioID, investmentID,
		input.Symbol, input.Name,
		decimal.NewFromFloat(input.Shares), decimal.NewFromFloat(input.PurchasePrice),
		input.purchaseDate())
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newInvestmentResponse(*investment))
}

func DeleteInvestment(c *gin.Context) {
	portfolioID, ok := pathID(c, "id")
	if !ok {
		return
	}
	investmentID, ok := pathID(c, "investmentId")
	if !ok {
		return
	}
	if !requirePortfolioOwner(c, portfolioID) {
		return
	}

	if err := store.DeleteInvestment(config.DB, portfolioID, investmentID); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Investment deleted successfully"})
}
