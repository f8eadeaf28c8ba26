// Package render formats query results as console tables and panels. Every
// function takes an explicit io.Writer; the package holds no ambient output
// state.
package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// A-share convention: red marks gains, green marks losses.
var (
	upStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	downStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

var (
	hundredMillion = decimal.New(1, 8)
	tenThousand    = decimal.New(1, 4)
)

// formatVolume renders a share count with thousands separators, or "-"
// for zero.
func formatVolume(v int64) string {
	if v <= 0 {
		return "-"
	}
	s := fmt.Sprintf("%d", v)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

// formatAmount scales a currency amount to 亿 (1e8) or 万 (1e4) units.
func formatAmount(a decimal.Decimal) string {
	abs := a.Abs()
	switch {
	case abs.GreaterThanOrEqual(hundredMillion):
		return a.Div(hundredMillion).StringFixed(2) + "亿"
	case abs.GreaterThanOrEqual(tenThousand):
		return a.Div(tenThousand).StringFixed(2) + "万"
	default:
		return a.StringFixed(0)
	}
}

// formatNullAmount renders a possibly-missing statement figure.
func formatNullAmount(a decimal.NullDecimal) string {
	if !a.Valid {
		return "-"
	}
	return formatAmount(a.Decimal)
}

// signedPct renders a percent value with an explicit sign, e.g. "+5.00%".
func signedPct(p decimal.Decimal) string {
	s := p.StringFixed(2)
	if p.IsPositive() {
		s = "+" + s
	}
	return s + "%"
}

// signed renders a decimal with an explicit sign for positive values.
func signed(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if d.IsPositive() {
		s = "+" + s
	}
	return s
}

// trendStyle picks the up/down/neutral style for a change value.
func trendStyle(change decimal.Decimal) lipgloss.Style {
	switch {
	case change.IsPositive():
		return upStyle
	case change.IsNegative():
		return downStyle
	default:
		return lipgloss.NewStyle()
	}
}
