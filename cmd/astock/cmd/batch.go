package cmd

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"astock/internal/config"
	"astock/internal/model"
	"astock/internal/render"
	"astock/internal/stats"
)

var (
	batchWatchlist string
	batchDays      int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Summarize daily bars for every watchlist stock",
	Long: `Read the watchlist file (one code per line, '#' starts a comment),
fetch daily bars for each stock over the lookback window, and print the
summary panels only, without the detail tables. A missing watchlist file is
created with example entries.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchWatchlist, "watchlist", "", "watchlist file (default from config)")
	batchCmd.Flags().IntVarP(&batchDays, "days", "d", 0, "lookback days (default from config)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path := batchWatchlist
	if path == "" {
		path = cfg.Watchlist
	}
	if err := config.EnsureWatchlist(path); err != nil {
		return err
	}
	codes, err := config.ReadWatchlist(path)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		fmt.Fprintf(out, "watchlist %s holds no usable stock codes\n", path)
		return nil
	}

	start, end, err := resolveRange("", "", lookbackDays(batchDays))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "batch statistics for %d stocks from %s (%s ~ %s)\n", len(codes), path, start, end)

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(out, "provider login failed: %v\n", err)
		return nil
	}
	defer session.Close()

	type result struct {
		code    string
		summary *stats.Summary
		skip    string
	}

	bar := progressbar.NewOptions(len(codes),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Querying"),
	)

	var results []result
	for _, raw := range codes {
		res := result{code: raw}
		if stockCode, ok := normalizeCode(out, raw); !ok {
			res.skip = "unrecognized code"
		} else {
			res.code = stockCode
			series, err := session.QueryKData(stockCode, model.Daily, start, end)
			switch {
			case err != nil:
				res.skip = fmt.Sprintf("fetch failed: %v", err)
			case series.Len() == 0:
				res.skip = "no data in range"
			default:
				res.summary = stats.Summarize(series)
			}
		}
		results = append(results, res)
		bar.Add(1)
	}
	fmt.Fprintln(out)

	for _, res := range results {
		fmt.Fprintf(out, "\nStats: %s\n", res.code)
		if res.skip != "" {
			fmt.Fprintf(out, "  skipped: %s\n", res.skip)
			continue
		}
		render.SummaryPanels(out, res.summary)
	}
	return nil
}
