package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"astock/internal/model"
)

// InfoTable writes the basic reference-data table for one stock.
func InfoTable(w io.Writer, info *model.StockInfo) {
	fmt.Fprintln(w, titleStyle.Render("📋 "+info.Code+" basic info"))

	outDate := info.OutDate
	if outDate == "" {
		outDate = "listed"
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Field", "Value"}),
	)
	table.Append([]string{"Code", info.Code})
	table.Append([]string{"Name", info.Name})
	table.Append([]string{"IPO date", info.IPODate})
	table.Append([]string{"Delisting date", outDate})
	table.Append([]string{"Type", info.TypeDescription()})
	table.Append([]string{"Status", info.StatusDescription()})
	table.Render()
}

// IndustryTable writes the industry classification table.
func IndustryTable(w io.Writer, industry *model.Industry) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("🏢 Industry"))

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Field", "Value"}),
	)
	table.Append([]string{"Industry", orDash(industry.Industry)})
	table.Append([]string{"Classification", orDash(industry.Classification)})
	table.Render()
}

// FinanceTables writes the three statement tables for one quarter. Empty
// statements are skipped; the caller decides what to do when all three are
// missing.
func FinanceTables(w io.Writer, year string, quarter int, profit *model.ProfitStatement, balance *model.BalanceStatement, cash *model.CashFlowStatement) {
	period := year + "Q" + strconv.Itoa(quarter)

	if profit != nil && !profit.Empty() {
		fmt.Fprintln(w, titleStyle.Render("📊 Income statement ("+period+")"))
		table := tablewriter.NewTable(w,
			tablewriter.WithHeader([]string{"Metric", "Amount"}),
		)
		table.Append([]string{"Operating revenue", formatNullAmount(profit.OperatingRevenue)})
		table.Append([]string{"Operating cost", formatNullAmount(profit.OperatingCost)})
		table.Append([]string{"Operating profit", formatNullAmount(profit.OperatingProfit)})
		table.Append([]string{"Total profit", formatNullAmount(profit.TotalProfit)})
		table.Append([]string{"Net profit", formatNullAmount(profit.NetProfit)})
		table.Append([]string{"Basic EPS", formatNullAmount(profit.BasicEPS)})
		table.Render()
	}

	if balance != nil && !balance.Empty() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, titleStyle.Render("🏦 Balance sheet ("+period+")"))
		table := tablewriter.NewTable(w,
			tablewriter.WithHeader([]string{"Metric", "Amount"}),
		)
		table.Append([]string{"Total assets", formatNullAmount(balance.TotalAssets)})
		table.Append([]string{"Total liabilities", formatNullAmount(balance.TotalLiabilities)})
		table.Append([]string{"Shareholder equity", formatNullAmount(balance.ShareholderEquity)})
		table.Append([]string{"Current assets", formatNullAmount(balance.CurrentAssets)})
		table.Append([]string{"Current liabilities", formatNullAmount(balance.CurrentLiabilities)})
		table.Render()
	}

	if cash != nil && !cash.Empty() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, titleStyle.Render("💰 Cash flow ("+period+")"))
		table := tablewriter.NewTable(w,
			tablewriter.WithHeader([]string{"Metric", "Amount"}),
		)
		table.Append([]string{"Operating", formatNullAmount(cash.OperatingFlow)})
		table.Append([]string{"Investing", formatNullAmount(cash.InvestingFlow)})
		table.Append([]string{"Financing", formatNullAmount(cash.FinancingFlow)})
		table.Append([]string{"Net increase", formatNullAmount(cash.NetIncrease)})
		table.Render()
	}
}

// ConstituentsTable writes the index membership table.
func ConstituentsTable(w io.Writer, index model.Index, constituents []model.IndexConstituent) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("📊 %s constituents (%d)", index.Name, len(constituents))))

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Code", "Name", "Updated"}),
	)
	for i, c := range constituents {
		table.Append([]string{
			strconv.Itoa(i + 1),
			c.Code,
			orDash(c.Name),
			orDash(c.UpdateDate),
		})
	}
	table.Render()
}

// RealtimeStubTable writes the placeholder realtime quote table. Live data
// needs a realtime feed the tool is not wired to.
func RealtimeStubTable(w io.Writer, codes []string) {
	fmt.Fprintln(w, titleStyle.Render("⚡ Realtime quotes"))

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Code", "Name", "Price", "Change", "Change %"}),
	)
	for _, code := range codes {
		table.Append([]string{code, "sample stock", "10.00", "+0.50", "+5.26%"})
	}
	table.Render()
	fmt.Fprintln(w, dimStyle.Render("note: realtime quotes require a live data feed; sample values shown"))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
