package cmd

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"astock/internal/model"
	"astock/internal/render"
)

var (
	financeYear    string
	financeQuarter int
)

var financeCmd = &cobra.Command{
	Use:   "finance <stock-code>",
	Short: "Show quarterly financial statements",
	Long: `Show the quarterly income statement, balance sheet and cash flow
statement. Defaults to last year's Q4 report, the most complete one.`,
	Args: cobra.ExactArgs(1),
	RunE: runFinance,
}

func init() {
	financeCmd.Flags().StringVarP(&financeYear, "year", "y", "", "report year (YYYY, default last year)")
	financeCmd.Flags().IntVarP(&financeQuarter, "quarter", "q", 4, "report quarter (1-4)")
}

func runFinance(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	stockCode, ok := normalizeCode(out, args[0])
	if !ok {
		return nil
	}
	if financeQuarter < 1 || financeQuarter > 4 {
		return fmt.Errorf("quarter must be between 1 and 4, got %d", financeQuarter)
	}
	year := financeYear
	if year == "" {
		// Current-year reports are usually unpublished.
		year = strconv.Itoa(time.Now().Year() - 1)
	}

	fmt.Fprintf(out, "fetching %s statements for %sQ%d...\n", stockCode, year, financeQuarter)

	session, err := openSession()
	if err != nil {
		fmt.Fprintf(out, "provider login failed: %v\n", err)
		return nil
	}
	defer session.Close()

	// Each statement is independent; one failed query never hides the
	// other two.
	profit, err := session.QueryProfitData(stockCode, year, financeQuarter)
	if err != nil {
		log.Printf("[WARN] profit query failed: %v", err)
	}
	balance, err := session.QueryBalanceData(stockCode, year, financeQuarter)
	if err != nil {
		log.Printf("[WARN] balance query failed: %v", err)
	}
	cash, err := session.QueryCashFlowData(stockCode, year, financeQuarter)
	if err != nil {
		log.Printf("[WARN] cash flow query failed: %v", err)
	}

	if statementsEmpty(profit, balance, cash) {
		fmt.Fprintf(out, "no financial data for %s in %sQ%d\n", stockCode, year, financeQuarter)
		fmt.Fprintln(out, "hint: try another year or quarter")
		return nil
	}

	render.FinanceTables(out, year, financeQuarter, profit, balance, cash)
	render.LinksPanel(out, stockCode)
	return nil
}

func statementsEmpty(p *model.ProfitStatement, b *model.BalanceStatement, c *model.CashFlowStatement) bool {
	return (p == nil || p.Empty()) && (b == nil || b.Empty()) && (c == nil || c.Empty())
}
