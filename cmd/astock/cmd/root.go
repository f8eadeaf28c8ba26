// Package cmd wires the astock subcommands.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"astock/internal/code"
	"astock/internal/config"
	"astock/internal/provider"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "astock",
	Short: "A-share market data CLI",
	Long: `astock queries A-share market data and renders it as console tables
and summary panels.

Stock code formats:
  sz.000001 / sh.600000   full exchange-qualified form
  000001, 300750          leading 0 or 3 resolves to Shenzhen (sz.)
  600000                  leading 6 resolves to Shanghai (sh.)

Examples:
  astock kline 000001                     last 30 days of daily bars
  astock kline 600000 -f w -d 180         weekly bars over 180 days
  astock kline 000001 --export data.csv   export bars to CSV
  astock info sz.000001                   company reference data
  astock finance 600000 -y 2023 -q 4      2023 annual statements
  astock index -i hs300                   CSI 300 constituents
  astock batch --days 60                  watchlist statistics`,
	Version:      "1.0.0",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "config.yaml", "application config file")

	rootCmd.AddCommand(klineCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(realtimeCmd)
	rootCmd.AddCommand(financeCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(batchCmd)
}

func initConfig() error {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return err
	}
	return cfg.Validate()
}

// querySession is what commands need from an open session: the query
// capability plus release.
type querySession interface {
	provider.Querier
	Close()
}

// openSession logs in to the provider gateway using the loaded config.
// Tests swap it for a mock-backed session.
var openSession = func() (querySession, error) {
	return provider.Connect(cfg.Provider.BaseURL, cfg.Provider.APIKey, cfg.Proxy, cfg.HTTPTimeout())
}

// normalizeCode canonicalizes a user-supplied stock code, printing usage
// hints on failure. The bool reports whether the code is usable.
func normalizeCode(out io.Writer, raw string) (string, bool) {
	normalized, err := code.Normalize(raw)
	if err == nil {
		return normalized, true
	}
	if errors.Is(err, code.ErrEmpty) {
		fmt.Fprintln(out, "error: stock code must not be empty")
	} else {
		fmt.Fprintf(out, "error: %v\n", err)
	}
	fmt.Fprintln(out, "supported formats:")
	fmt.Fprintln(out, "  sz.000001  (Shenzhen, full form)")
	fmt.Fprintln(out, "  sh.600000  (Shanghai, full form)")
	fmt.Fprintln(out, "  000001     (short form, leading 0 or 3)")
	fmt.Fprintln(out, "  600000     (short form, leading 6)")
	return "", false
}

const dateLayout = "2006-01-02"

// resolveRange fills in missing range bounds: no bounds means the last
// `days` days ending today, a lone end means `days` days before it, a lone
// start runs through today.
func resolveRange(start, end string, days int) (string, string, error) {
	now := time.Now()
	switch {
	case start == "" && end == "":
		return now.AddDate(0, 0, -days).Format(dateLayout), now.Format(dateLayout), nil
	case start == "":
		endDate, err := time.Parse(dateLayout, end)
		if err != nil {
			return "", "", fmt.Errorf("invalid end date %q (expected YYYY-MM-DD)", end)
		}
		return endDate.AddDate(0, 0, -days).Format(dateLayout), end, nil
	case end == "":
		if _, err := time.Parse(dateLayout, start); err != nil {
			return "", "", fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", start)
		}
		return start, now.Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, start); err != nil {
		return "", "", fmt.Errorf("invalid start date %q (expected YYYY-MM-DD)", start)
	}
	if _, err := time.Parse(dateLayout, end); err != nil {
		return "", "", fmt.Errorf("invalid end date %q (expected YYYY-MM-DD)", end)
	}
	return start, end, nil
}

// lookbackDays resolves the --days flag against the configured default.
func lookbackDays(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return cfg.Defaults.LookbackDays
}
