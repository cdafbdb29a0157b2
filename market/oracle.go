package market

import (
	"hash/fnv"
	"math/rand"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Oracle serves current prices for ticker symbols. A fixed seed table covers
// the common symbols; anything else gets a price derived deterministically
// from the symbol itself, so repeated lookups agree for the lifetime of the
// process.
type Oracle struct {
	mu     sync.RWMutex
	prices map[string]decimal.Decimal
	rng    *rand.Rand
}

func NewOracle() *Oracle {
	return &Oracle{
		prices: map[string]decimal.Decimal{
			"AAPL":  decimal.RequireFromString("175.50"),
			"GOOGL": decimal.RequireFromString("2850.75"),
			"MSFT":  decimal.RequireFromString("415.20"),
			"TSLA":  decimal.RequireFromString("245.80"),
			"AMZN":  decimal.RequireFromString("3150.40"),
			"NVDA":  decimal.RequireFromString("485.60"),
			"META":  decimal.RequireFromString("325.90"),
			"NFLX":  decimal.RequireFromString("485.30"),
			"AMD":   decimal.RequireFromString("125.40"),
			"INTC":  decimal.RequireFromString("45.80"),
		},
		rng: rand.New(rand.NewSource(rand.Int63())),
	}
}

// CurrentPrice returns the price for symbol, case-insensitively. Unknown
// symbols get a price seeded from the symbol's hash, in [10, 1000], cached
// so the next lookup returns the same value.
func (o *Oracle) CurrentPrice(symbol string) decimal.Decimal {
	key := strings.ToUpper(symbol)

	o.mu.RLock()
	price, ok := o.prices[key]
	o.mu.RUnlock()
	if ok {
		return price
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	// Another caller may have derived it while we waited for the lock.
	if price, ok := o.prices[key]; ok {
		return price
	}

	h := fnv.New64a()
	h.Write([]byte(key))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))
	price = decimal.NewFromFloat(10 + rng.Float64()*990).Round(2)
	o.prices[key] = price
	return price
}

// VolatilePrice returns the current price perturbed by a uniform variation
// in [-5%, +5%].
func (o *Oracle) VolatilePrice(symbol string) decimal.Decimal {
	base := o.CurrentPrice(symbol)

	o.mu.Lock()
	variation := -0.05 + o.rng.Float64()*0.10
	o.mu.Unlock()

	multiplier := decimal.NewFromFloat(1 + variation).Round(4)
	return base.Mul(multiplier).Round(2)
}

// RefreshPrices rewrites every cached price with a volatile variant of
// itself. Not wired to any endpoint; kept for manual demo refreshes.
func (o *Oracle) RefreshPrices() {
	o.mu.Lock()
	symbols := make([]string, 0, len(o.prices))
	for symbol := range o.prices {
		symbols = append(symbols, symbol)
	}
	o.mu.Unlock()

	for _, symbol := range symbols {
		price := o.VolatilePrice(symbol)
		o.mu.Lock()
		o.prices[symbol] = price
		o.mu.Unlock()
	}
}
