// Package provider implements the data-provider session: login, record-set
// queries for K-line and reference data, and logout. Responses are mapped
// to typed records at this boundary; nothing above it sees raw provider
// payloads.
package provider

import "astock/internal/model"

// Querier is the query capability exposed by an open session. Commands
// depend on this interface rather than the HTTP transport.
type Querier interface {
	QueryKData(code string, freq model.Frequency, start, end string) (*model.Series, error)
	QueryStockBasic(code string) (*model.StockInfo, error)
	QueryStockIndustry(code string) (*model.Industry, error)
	QueryProfitData(code, year string, quarter int) (*model.ProfitStatement, error)
	QueryBalanceData(code, year string, quarter int) (*model.BalanceStatement, error)
	QueryCashFlowData(code, year string, quarter int) (*model.CashFlowStatement, error)
	QueryIndexStocks(index model.Index, date string) ([]model.IndexConstituent, error)
}
