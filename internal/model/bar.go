package model

import "github.com/shopspring/decimal"

// Bar is a single K-line observation for one period.
//
// Date is always set (YYYY-MM-DD). Time is set for intraday bars only.
// PrevClose, Turnover, PctChange, TradeStatus and IsST are populated for
// daily bars only; weekly, monthly and intraday queries do not return them.
type Bar struct {
	Date        string
	Time        string
	Open        decimal.Decimal
	High        decimal.Decimal
	Low         decimal.Decimal
	Close       decimal.Decimal
	PrevClose   decimal.Decimal
	Volume      int64
	Amount      decimal.Decimal
	Turnover    decimal.Decimal
	PctChange   decimal.Decimal
	TradeStatus string
	IsST        string
}

// Label returns the period label for display: the date, plus the time for
// intraday bars.
func (b Bar) Label() string {
	if b.Time != "" {
		return b.Date + " " + b.Time
	}
	return b.Date
}

// Series is an ordered sequence of Bars for one ticker over one date range
// and one frequency. It is never mutated after construction.
type Series struct {
	Code      string
	Frequency Frequency
	Start     string
	End       string
	Bars      []Bar
}

// Len returns the number of bars in the series.
func (s *Series) Len() int { return len(s.Bars) }
