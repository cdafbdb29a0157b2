package market

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentPriceSeeded(t *testing.T) {
	o := NewOracle()

	assert.True(t, o.CurrentPrice("AAPL").Equal(d("175.50")))
	assert.True(t, o.CurrentPrice("INTC").Equal(d("45.80")))
}

func TestCurrentPriceCaseInsensitive(t *testing.T) {
	o := NewOracle()

	assert.True(t, o.CurrentPrice("aapl").Equal(d("175.50")))
	assert.True(t, o.CurrentPrice("zzzq").Equal(o.CurrentPrice("ZZZQ")))
}

func TestCurrentPriceUnknownSymbolStable(t *testing.T) {
	o := NewOracle()

	first := o.CurrentPrice("UNSEEN")
	second := o.CurrentPrice("UNSEEN")
	assert.True(t, first.Equal(second), "%s != %s", first, second)

	// Same symbol in a fresh oracle derives the same price.
	assert.True(t, NewOracle().CurrentPrice("UNSEEN").Equal(first))
}

func TestCurrentPriceUnknownSymbolRange(t *testing.T) {
	o := NewOracle()

	for _, symbol := range []string{"AB", "XYZ", "QQQQ", "FOO", "BARBAZ"} {
		price := o.CurrentPrice(symbol)
		assert.True(t, price.GreaterThanOrEqual(d("10")), "%s price %s below 10", symbol, price)
		assert.True(t, price.LessThanOrEqual(d("1000")), "%s price %s above 1000", symbol, price)
		assert.True(t, price.Equal(price.Round(2)), "%s price %s not rounded to cents", symbol, price)
	}
}

func TestCurrentPriceConcurrentFirstLookup(t *testing.T) {
	o := NewOracle()

	var wg sync.WaitGroup
	prices := make([]decimal.Decimal, 16)
	for i := range prices {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			prices[i] = o.CurrentPrice("RACE")
		}(i)
	}
	wg.Wait()

	for _, p := range prices[1:] {
		require.True(t, p.Equal(prices[0]))
	}
}

func TestVolatilePriceWithinBand(t *testing.T) {
	o := NewOracle()
	base := o.CurrentPrice("AAPL")
	low := base.Mul(d("0.9499"))
	high := base.Mul(d("1.0501"))

	for i := 0; i < 50; i++ {
		p := o.VolatilePrice("AAPL")
		assert.True(t, p.GreaterThanOrEqual(low.Round(2)), "volatile price %s below band", p)
		assert.True(t, p.LessThanOrEqual(high.Round(2)), "volatile price %s above band", p)
	}
}

func TestVolatilePriceDoesNotMutateCache(t *testing.T) {
	o := NewOracle()
	o.VolatilePrice("AAPL")

	assert.True(t, o.CurrentPrice("AAPL").Equal(d("175.50")))
}

func TestRefreshPrices(t *testing.T) {
	o := NewOracle()
	before := o.CurrentPrice("AAPL")

	o.RefreshPrices()

	after := o.CurrentPrice("AAPL")
	low := before.Mul(d("0.9499")).Round(2)
	high := before.Mul(d("1.0501")).Round(2)
	assert.True(t, after.GreaterThanOrEqual(low), "refreshed price %s below band", after)
	assert.True(t, after.LessThanOrEqual(high), "refreshed price %s above band", after)
}
