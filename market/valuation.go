package market

import (
	"github.com/shopspring/decimal"

	"portfolio-tracker/models"
)

var hundred = decimal.NewFromInt(100)

// Valuation is the per-holding cost/value breakdown.
type Valuation struct {
	TotalCost    decimal.Decimal
	CurrentValue decimal.Decimal
	GainLoss     decimal.Decimal
	GainLossPct  decimal.Decimal
}

// Summary is the portfolio-level roll-up of its holdings.
type Summary struct {
	Count         int
	TotalCost     decimal.Decimal
	TotalValue    decimal.Decimal
	TotalGainLoss decimal.Decimal
	TotalGainPct  decimal.Decimal
}

// Valuate computes the cost basis and market value of a single holding.
// The percentage is the quotient rounded half-up to 4 places, then scaled
// by 100; a non-positive cost yields zero to avoid dividing by zero.
func Valuate(shares, purchasePrice, currentPrice decimal.Decimal) Valuation {
	totalCost := shares.Mul(purchasePrice)
	currentValue := shares.Mul(currentPrice)
	gainLoss := currentValue.Sub(totalCost)

	return Valuation{
		TotalCost:    totalCost,
		CurrentValue: currentValue,
		GainLoss:     gainLoss,
		GainLossPct:  gainLossPct(gainLoss, totalCost),
	}
}

// Aggregate rolls the holdings of a portfolio up into totals. A holding
// whose symbol is absent from prices is valued at its purchase price, which
// is what list views pass when market data is intentionally skipped.
func Aggregate(investments []models.Investment, prices map[string]decimal.Decimal) Summary {
	totalCost := decimal.Zero
	totalValue := decimal.Zero

	for _, inv := range investments {
		currentPrice, ok := prices[inv.Symbol]
		if !ok {
			currentPrice = inv.PurchasePrice
		}
		totalCost = totalCost.Add(inv.Shares.Mul(inv.PurchasePrice))
		totalValue = totalValue.Add(inv.Shares.Mul(currentPrice))
	}

	gainLoss := totalValue.Sub(totalCost)
	return Summary{
		Count:         len(investments),
		TotalCost:     totalCost,
		TotalValue:    totalValue,
		TotalGainLoss: gainLoss,
		TotalGainPct:  gainLossPct(gainLoss, totalCost),
	}
}

func gainLossPct(gainLoss, totalCost decimal.Decimal) decimal.Decimal {
	if totalCost.Cmp(decimal.Zero) <= 0 {
		return decimal.Zero
	}
	return gainLoss.DivRound(totalCost, 4).Mul(hundred)
}
