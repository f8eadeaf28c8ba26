package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"astock/internal/model"
)

// KLineTable writes the per-bar detail table for a series. Daily series get
// a colorized change column; weekly, monthly and intraday series show the
// reduced column set the provider returns for them.
func KLineTable(w io.Writer, series *model.Series) {
	props := series.Frequency.Props()

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s %s K-line (%s ~ %s)",
		series.Code, props.Label, series.Start, series.End)))

	var header []string
	switch {
	case props.Intraday:
		header = []string{"Datetime", "Open", "High", "Low", "Close", "Volume", "Amount"}
	case series.Frequency == model.Daily:
		header = []string{"Date", "Open", "High", "Low", "Close", "Change", "Volume", "Amount"}
	default:
		header = []string{"Date", "Open", "High", "Low", "Close", "Volume", "Amount"}
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader(header),
	)
	for _, b := range series.Bars {
		row := []string{
			b.Label(),
			b.Open.StringFixed(2),
			b.High.StringFixed(2),
			b.Low.StringFixed(2),
			b.Close.StringFixed(2),
		}
		if series.Frequency == model.Daily {
			row = append(row, trendStyle(b.PctChange).Render(signedPct(b.PctChange)))
		}
		row = append(row, formatVolume(b.Volume), formatAmount(b.Amount))
		table.Append(row)
	}
	table.Render()
}
