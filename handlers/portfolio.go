package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"portfolio-tracker/config"
	"portfolio-tracker/market"
	"portfolio-tracker/store"
)

type PortfolioInput struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// requirePortfolioOwner enforces the ownership invariant for every
// portfolio-scoped operation.
func requirePortfolioOwner(c *gin.Context, portfolioID uint) bool {
	owned, err := store.PortfolioOwnedBy(config.DB, portfolioID, currentUserID(c))
	if err != nil {
		storeError(c, err)
		return false
	}
	if !owned {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return false
	}
	return true
}

func ListPortfolios(c *gin.Context) {
	portfolios, err := store.PortfoliosByUser(config.DB, currentUserID(c))
	if err != nil {
		storeError(c, err)
		return
	}

	resp := make([]PortfolioResponse, 0, len(portfolios))
	for i := range portfolios {
		resp = append(resp, newPortfolioResponse(&portfolios[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// PortfolioSummaries aggregates every portfolio of the caller against
// current market prices, with one oracle lookup per distinct symbol.
func PortfolioSummaries(c *gin.Context) {
	portfolios, err := store.PortfoliosByUser(config.DB, currentUserID(c))
	if err != nil {
		storeError(c, err)
		return
	}

	prices := make(map[string]decimal.Decimal)
	for _, p := range portfolios {
		for _, inv := range p.Investments {
			if _, ok := prices[inv.Symbol]; !ok {
				prices[inv.Symbol] = Prices.CurrentPrice(inv.Symbol)
			}
		}
	}

	resp := make([]PortfolioSummaryResponse, 0, len(portfolios))
	for _, p := range portfolios {
		resp = append(resp, newPortfolioSummaryResponse(p, market.Aggregate(p.Investments, prices)))
	}
	c.JSON(http.StatusOK, resp)
}

func CreatePortfolio(c *gin.Context) {
	var input PortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	portfolio, err := store.CreatePortfolio(config.DB, currentUserID(c), input.Name, input.Description)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPortfolioResponse(portfolio))
}

func GetPortfolio(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !requirePortfolioOwner(c, id) {
		return
	}

	portfolio, err := store.PortfolioByID(config.DB, id)
	if err != nil {
		storeError(c, err)
		return
	}

	resp := newPortfolioResponse(portfolio)
	resp.Investments = make([]InvestmentResponse, 0, len(portfolio.Investments))
	for _, inv := range portfolio.Investments {
		resp.Investments = append(resp.Investments, newInvestmentResponseWithPrice(inv, Prices.CurrentPrice(inv.Symbol)))
	}
	c.JSON(http.StatusOK, resp)
}

func UpdatePortfolio(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !requirePortfolioOwner(c, id) {
		return
	}

	var input PortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	portfolio, err := store.UpdatePortfolio(config.DB, id, input.Name, input.Description)
	if err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPortfolioResponse(portfolio))
}

func DeletePortfolio(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if !requirePortfolioOwner(c, id) {
		return
	}

	if err := store.DeletePortfolio(config.DB, id); err != nil {
		storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Portfolio deleted successfully"})
}
