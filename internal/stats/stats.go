// Package stats derives summary statistics from a K-line series: trend
// distribution, price change, volume aggregates and a buy-and-hold
// investment simulation.
package stats

import (
	"github.com/shopspring/decimal"

	"astock/internal/model"
)

// Notional is the fixed investment used by the buy-and-hold simulation,
// in currency units.
var Notional = decimal.NewFromInt(10000)

var hundred = decimal.NewFromInt(100)

// Investment is the outcome of the buy-and-hold simulation. When Active is
// false (single bar, or first close of zero) the simulation is a no-op:
// FinalValue equals the notional and Profit is zero.
type Investment struct {
	Notional   decimal.Decimal
	Shares     decimal.Decimal
	FinalValue decimal.Decimal
	Profit     decimal.Decimal
	ProfitPct  decimal.Decimal
	Active     bool
}

// Summary is the read-only aggregate over one series.
//
// TradingDates is the count of distinct calendar dates and is populated
// for intraday frequencies only. HasPriceChange is false for single-bar
// series, where the price-change fields are unavailable.
type Summary struct {
	Frequency      model.Frequency
	TotalBars      int
	TradingDates   int
	Up             int
	Down           int
	Flat           int
	FirstClose     decimal.Decimal
	LastClose      decimal.Decimal
	PriceChange    decimal.Decimal
	PriceChangePct decimal.Decimal
	HasPriceChange bool
	AvgVolume      decimal.Decimal
	MaxVolume      int64
	Investment     Investment
}

// Summarize computes the Summary for a non-empty series. An empty series
// is a caller contract violation: callers must handle the no-data case
// before invoking the engine.
func Summarize(series *model.Series) *Summary {
	props := series.Frequency.Props()
	s := &Summary{
		Frequency:  series.Frequency,
		TotalBars:  series.Len(),
		FirstClose: series.Bars[0].Close,
		LastClose:  series.Bars[series.Len()-1].Close,
	}

	classify(series, props.ChangeMode, s)
	if props.Intraday {
		s.TradingDates = countDates(series.Bars)
	}

	if s.TotalBars > 1 {
		s.HasPriceChange = true
		s.PriceChange = s.LastClose.Sub(s.FirstClose)
		if !s.FirstClose.IsZero() {
			s.PriceChangePct = s.PriceChange.Div(s.FirstClose).Mul(hundred)
		}
	}

	var volSum int64
	for _, b := range series.Bars {
		volSum += b.Volume
		if b.Volume > s.MaxVolume {
			s.MaxVolume = b.Volume
		}
	}
	s.AvgVolume = decimal.NewFromInt(volSum).Div(decimal.NewFromInt(int64(s.TotalBars)))

	s.Investment = simulate(s.FirstClose, s.LastClose, s.TotalBars)
	return s
}

// classify counts up, down and flat bars. Daily bars use the provider's
// percent change; weekly and monthly bars derive it from consecutive
// closes with the first bar pinned to zero; intraday bars are all flat.
func classify(series *model.Series, mode model.ChangeMode, s *Summary) {
	if mode == model.ChangeNone {
		s.Flat = series.Len()
		return
	}
	for i, b := range series.Bars {
		change := b.PctChange
		if mode == model.ChangeDerived {
			change = derivedChange(series.Bars, i)
		}
		switch {
		case change.IsPositive():
			s.Up++
		case change.IsNegative():
			s.Down++
		default:
			s.Flat++
		}
	}
}

func derivedChange(bars []model.Bar, i int) decimal.Decimal {
	if i == 0 {
		return decimal.Zero
	}
	prev := bars[i-1].Close
	if prev.IsZero() {
		return decimal.Zero
	}
	return bars[i].Close.Sub(prev).Div(prev).Mul(hundred)
}

func countDates(bars []model.Bar) int {
	seen := make(map[string]struct{}, len(bars))
	for _, b := range bars {
		seen[b.Date] = struct{}{}
	}
	return len(seen)
}

func simulate(first, last decimal.Decimal, n int) Investment {
	inv := Investment{Notional: Notional, FinalValue: Notional}
	if n <= 1 || first.IsZero() {
		return inv
	}
	inv.Active = true
	inv.Shares = Notional.Div(first)
	inv.FinalValue = inv.Shares.Mul(last)
	inv.Profit = inv.FinalValue.Sub(Notional)
	inv.ProfitPct = inv.Profit.Div(Notional).Mul(hundred)
	return inv
}
