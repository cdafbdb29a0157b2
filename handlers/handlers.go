package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-tracker/ipo"
	"portfolio-tracker/market"
	"portfolio-tracker/store"
)

// Prices is the process-wide price oracle.
var Prices = market.NewOracle()

// IpoCalendar is the IPO-calendar lookup used by the ipo handlers; main
// wires in the Finnhub client.
type IpoCalendar interface {
	Calendar(ctx context.Context, from, to string) ([]ipo.Offering, error)
	CurrentMonth(ctx context.Context) ([]ipo.Offering, error)
	Next30Days(ctx context.Context) ([]ipo.Offering, error)
}

var Ipo IpoCalendar

func currentUserID(c *gin.Context) uint {
	return c.MustGet("user_id").(uint)
}

// storeError translates store sentinel errors into an HTTP response.
func storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
	case errors.Is(err, store.ErrWrongPortfolio):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}
