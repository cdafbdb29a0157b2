package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-tracker/ipo"
)

// GetIpoCalendar proxies the IPO calendar for an explicit date range, or
// for the next 30 days when no range is given.
func GetIpoCalendar(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")

	var offerings []ipo.Offering
	var err error
	if from != "" && to != "" {
		offerings, err = Ipo.Calendar(c.Request.Context(), from, to)
	} else {
		offerings, err = Ipo.Next30Days(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to fetch IPO calendar: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ipoOfferings": offerings,
		"count":        len(offerings),
		"source":       "Finnhub API",
	})
}

func GetCurrentMonthIpoCalendar(c *gin.Context) {
	offerings, err := Ipo.CurrentMonth(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to fetch current month IPO calendar: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ipoOfferings": offerings,
		"count":        len(offerings),
		"period":       "Current Month",
		"source":       "Finnhub API",
	})
}

func GetNext30DaysIpoCalendar(c *gin.Context) {
	offerings, err := Ipo.Next30Days(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to fetch next 30 days IPO calendar: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ipoOfferings": offerings,
		"count":        len(offerings),
		"period":       "Next 30 Days",
		"source":       "Finnhub API",
	})
}
