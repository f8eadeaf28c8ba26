package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"astock/internal/export"
	"astock/internal/model"
	"astock/internal/render"
	"astock/internal/stats"
)

var (
	klineStart     string
	klineEnd       string
	klineDays      int
	klineFrequency string
	klineExport    string
)

var klineCmd = &cobra.Command{
	Use:   "kline <stock-code>",
	Short: "Fetch K-line history with summary statistics",
	Long: `Fetch historical bars for one stock and show the detail table plus
summary panels (trend distribution, price change, volume, and a 10,000 yuan
buy-and-hold simulation).

Frequencies: 5m, 15m, 30m, 60m (intraday), d (daily), w (weekly), M (monthly).`,
	Args: cobra.ExactArgs(1),
	RunE: runKline,
}

func init() {
	klineCmd.Flags().StringVarP(&klineStart, "start", "s", "", "start date (YYYY-MM-DD)")
	klineCmd.Flags().StringVarP(&klineEnd, "end", "e", "", "end date (YYYY-MM-DD)")
	klineCmd.Flags().IntVarP(&klineDays, "days", "d", 0, "lookback days when no range is given (default from config)")
	klineCmd.Flags().StringVarP(&klineFrequency, "frequency", "f", "d", "bar frequency: 5m, 15m, 30m, 60m, d, w, M")
	klineCmd.Flags().StringVar(&klineExport, "export", "", "export bars to a CSV file")
}

func runKline(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	stockCode, ok := normalizeCode(out, args[0])
	if !ok {
		return nil
	}
	freq, err := model.ParseFrequency(klineFrequency)
	if err != nil {
		return err
	}
	start, end, err := resolveRange(klineStart, klineEnd, lookbackDays(klineDays))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "fetching %s %s bars from %s to %s...\n", stockCode, freq, start, end)

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(out, "provider login failed: %v\n", err)
		return nil
	}
	defer session.Close()

	series, err := session.QueryKData(stockCode, freq, start, end)
	if err != nil {
		fmt.Fprintf(out, "fetch failed: %v\n", err)
		return nil
	}
	if series.Len() == 0 {
		fmt.Fprintf(out, "no data for %s between %s and %s\n", stockCode, start, end)
		return nil
	}

	render.KLineTable(out, series)
	render.SummaryPanels(out, stats.Summarize(series))

	if klineExport != "" {
		if err := export.WriteSeries(klineExport, series); err != nil {
			fmt.Fprintf(out, "export failed: %v\n", err)
		} else {
			fmt.Fprintf(out, "\nexported to %s\n", klineExport)
		}
	}

	render.LinksPanel(out, stockCode)
	return nil
}
