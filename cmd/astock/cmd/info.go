package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"astock/internal/render"
)

var infoCmd = &cobra.Command{
	Use:   "info <stock-code>",
	Short: "Show company reference data and industry classification",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	stockCode, ok := normalizeCode(out, args[0])
	if !ok {
		return nil
	}

	fmt.Fprintf(out, "fetching reference data for %s...\n", stockCode)

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(out, "provider login failed: %v\n", err)
		return nil
	}
	defer session.Close()

	info, err := session.QueryStockBasic(stockCode)
	if err != nil {
		fmt.Fprintf(out, "fetch failed: %v\n", err)
		return nil
	}
	if info == nil {
		fmt.Fprintf(out, "no reference data for %s\n", stockCode)
		return nil
	}
	render.InfoTable(out, info)

	// Industry classification is best effort; its absence never blocks the
	// basic record.
	industry, err := session.QueryStockIndustry(stockCode)
	if err != nil {
		log.Printf("[WARN] industry lookup failed: %v", err)
	} else if industry != nil {
		render.IndustryTable(out, industry)
	}

	render.LinksPanel(out, stockCode)
	return nil
}
