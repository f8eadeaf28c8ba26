package model

import "fmt"

// Frequency identifies the period granularity of a Series.
type Frequency int

const (
	Min5 Frequency = iota
	Min15
	Min30
	Min60
	Daily
	Weekly
	Monthly
)

// ChangeMode tells the statistics engine where per-bar percent changes
// come from for a given frequency.
type ChangeMode int

const (
	// ChangeProvided means the provider returns a pctChg field per bar.
	ChangeProvided ChangeMode = iota
	// ChangeDerived means percent changes are derived from consecutive closes.
	ChangeDerived
	// ChangeNone means bars are not classified by percent change at all.
	ChangeNone
)

// Properties describes everything frequency-dependent in one place: the
// provider query token and field list, display labels, and how percent
// changes are obtained.
type Properties struct {
	Flag       string // CLI token
	Token      string // provider frequency parameter
	Label      string
	PeriodNoun string // unit for the period count ("days", "weeks", ...)
	Fields     string // provider field list for K-data queries
	ChangeMode ChangeMode
	Intraday   bool
}

var frequencyProps = map[Frequency]Properties{
	Min5:    {Flag: "5m", Token: "5", Label: "5-minute", PeriodNoun: "bars", Fields: intradayFields, ChangeMode: ChangeNone, Intraday: true},
	Min15:   {Flag: "15m", Token: "15", Label: "15-minute", PeriodNoun: "bars", Fields: intradayFields, ChangeMode: ChangeNone, Intraday: true},
	Min30:   {Flag: "30m", Token: "30", Label: "30-minute", PeriodNoun: "bars", Fields: intradayFields, ChangeMode: ChangeNone, Intraday: true},
	Min60:   {Flag: "60m", Token: "60", Label: "60-minute", PeriodNoun: "bars", Fields: intradayFields, ChangeMode: ChangeNone, Intraday: true},
	Daily:   {Flag: "d", Token: "d", Label: "daily", PeriodNoun: "days", Fields: dailyFields, ChangeMode: ChangeProvided},
	Weekly:  {Flag: "w", Token: "w", Label: "weekly", PeriodNoun: "weeks", Fields: longFields, ChangeMode: ChangeDerived},
	Monthly: {Flag: "M", Token: "M", Label: "monthly", PeriodNoun: "months", Fields: longFields, ChangeMode: ChangeDerived},
}

// Provider field lists per frequency class. Daily is the only class that
// carries preclose, turnover, trade status and percent change.
const (
	dailyFields    = "date,code,open,high,low,close,preclose,volume,amount,adjustflag,turn,tradestatus,pctChg,isST"
	longFields     = "date,code,open,high,low,close,volume,amount,adjustflag"
	intradayFields = "date,time,code,open,high,low,close,volume,amount,adjustflag"
)

// Props returns the property table entry for the frequency.
func (f Frequency) Props() Properties { return frequencyProps[f] }

// Intraday reports whether the frequency is a minute-level one.
func (f Frequency) Intraday() bool { return frequencyProps[f].Intraday }

func (f Frequency) String() string { return frequencyProps[f].Label }

// ParseFrequency maps a CLI token (5m, 15m, 30m, 60m, d, w, M) to its
// Frequency. The token set is closed; anything else is an error.
func ParseFrequency(flag string) (Frequency, error) {
	for f, p := range frequencyProps {
		if p.Flag == flag {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown frequency %q (expected one of 5m, 15m, 30m, 60m, d, w, M)", flag)
}
