package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"astock/internal/model"
	"astock/internal/stats"
)

func panel(borderColor, title string, lines ...string) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1).
		MarginRight(1)
	content := titleStyle.Render(title) + "\n" + strings.Join(lines, "\n")
	return style.Render(content)
}

func countLine(label string, n, total int, style lipgloss.Style) string {
	pct := float64(n) / float64(total) * 100
	return fmt.Sprintf("%s: %s", label, style.Render(fmt.Sprintf("%d (%.1f%%)", n, pct)))
}

// SummaryPanels writes the statistics panels for one series summary:
// trading stats, trend distribution and price change on the first row,
// investment simulation and volume on the second.
func SummaryPanels(w io.Writer, s *stats.Summary) {
	props := s.Frequency.Props()

	var periodLine string
	if props.Intraday {
		periodLine = fmt.Sprintf("Trading days: %d (%d %s bars)", s.TradingDates, s.TotalBars, props.Label)
	} else {
		periodLine = fmt.Sprintf("Total %s: %d", props.PeriodNoun, s.TotalBars)
	}
	trading := panel("4", "📊 Trading", periodLine)

	trendLines := []string{
		countLine("Up", s.Up, s.TotalBars, upStyle),
		countLine("Down", s.Down, s.TotalBars, downStyle),
	}
	if s.Flat > 0 {
		trendLines = append(trendLines, countLine("Flat", s.Flat, s.TotalBars, dimStyle))
	}
	trend := panel("1", "📈 Trend", trendLines...)

	var priceLines []string
	if s.HasPriceChange {
		style := trendStyle(s.PriceChange)
		priceLines = []string{
			"Period change: " + style.Render(signed(s.PriceChange)+" ("+signedPct(s.PriceChangePct)+")"),
			"First close: " + s.FirstClose.StringFixed(2),
			"Last close: " + s.LastClose.StringFixed(2),
		}
	} else {
		priceLines = []string{dimStyle.Render("single period, n/a")}
	}
	price := panel("3", "💰 Price", priceLines...)

	invLines := []string{"Principal: ¥" + s.Investment.Notional.StringFixed(0)}
	if s.TotalBars > 1 {
		inv := s.Investment
		style := trendStyle(inv.Profit)
		invLines = append(invLines,
			fmt.Sprintf("Shares bought: %s", inv.Shares.StringFixed(0)),
			"Final value: ¥"+inv.FinalValue.StringFixed(2),
			"P/L: "+style.Render(signed(inv.Profit)+" ("+signedPct(inv.ProfitPct)+")"),
		)
	}
	investment := panel("6", "💰 Investment", invLines...)

	volume := panel("5", "📊 Volume",
		"Average: "+formatVolume(s.AvgVolume.IntPart()),
		"Maximum: "+formatVolume(s.MaxVolume),
	)

	fmt.Fprintln(w)
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, trading, trend, price))
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, investment, volume))
}

// IndexPanels writes the index information and exchange distribution panels
// shown under a constituents table.
func IndexPanels(w io.Writer, index model.Index, constituents []model.IndexConstituent) {
	var sh, sz int
	for _, c := range constituents {
		switch {
		case strings.HasPrefix(c.Code, "sh."):
			sh++
		case strings.HasPrefix(c.Code, "sz."):
			sz++
		}
	}

	info := panel("4", "📈 Index",
		"Name: "+index.Name,
		"Code: "+index.Code,
		fmt.Sprintf("Constituents: %d", len(constituents)),
	)
	distribution := panel("2", "🏢 Exchanges",
		fmt.Sprintf("Shanghai: %d", sh),
		fmt.Sprintf("Shenzhen: %d", sz),
	)

	fmt.Fprintln(w)
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, info, distribution))
}

// LinksPanel writes the external quote links for one stock code.
func LinksPanel(w io.Writer, code string) {
	plain := strings.TrimPrefix(strings.TrimPrefix(code, "sz."), "sh.")
	full := strings.ToUpper(strings.ReplaceAll(code, ".", ""))

	lines := []string{
		"Gushitong: https://gushitong.baidu.com/stock/ab-" + plain,
		"Eastmoney: https://quote.eastmoney.com/concept/" + full + ".html?from=data",
		"Baidu:     https://www.baidu.com/s?wd=" + plain,
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, panel("6", "🔗 More", lines...))
}
