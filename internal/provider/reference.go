package provider

import (
	"fmt"
	"net/url"
	"strconv"

	"astock/internal/model"
)

// QueryStockBasic fetches the basic reference record for one code.
// Returns (nil, nil) when the provider has no record for it.
func (s *Session) QueryStockBasic(code string) (*model.StockInfo, error) {
	params := url.Values{}
	params.Set("code", code)
	rs, err := s.query("query_stock_basic", params)
	if err != nil {
		return nil, err
	}
	if len(rs.rows) == 0 {
		return nil, nil
	}
	row := rs.rows[0]
	return &model.StockInfo{
		Code:    rs.str(row, "code"),
		Name:    rs.str(row, "code_name"),
		IPODate: rs.str(row, "ipoDate"),
		OutDate: rs.str(row, "outDate"),
		Type:    rs.str(row, "type"),
		Status:  rs.str(row, "status"),
	}, nil
}

// QueryStockIndustry fetches the industry classification for one code.
// Returns (nil, nil) when no classification exists.
func (s *Session) QueryStockIndustry(code string) (*model.Industry, error) {
	params := url.Values{}
	params.Set("code", code)
	rs, err := s.query("query_stock_industry", params)
	if err != nil {
		return nil, err
	}
	if len(rs.rows) == 0 {
		return nil, nil
	}
	row := rs.rows[0]
	return &model.Industry{
		Industry:       rs.str(row, "industry"),
		Classification: rs.str(row, "industryClassification"),
		UpdateDate:     rs.str(row, "updateDate"),
	}, nil
}

func quarterParams(code, year string, quarter int) url.Values {
	params := url.Values{}
	params.Set("code", code)
	params.Set("year", year)
	params.Set("quarter", strconv.Itoa(quarter))
	return params
}

// QueryProfitData fetches the quarterly income statement. Returns
// (nil, nil) when the quarter has no published figures.
func (s *Session) QueryProfitData(code, year string, quarter int) (*model.ProfitStatement, error) {
	rs, err := s.query("query_profit_data", quarterParams(code, year, quarter))
	if err != nil {
		return nil, err
	}
	if len(rs.rows) == 0 {
		return nil, nil
	}
	row := rs.rows[0]
	return &model.ProfitStatement{
		Code:             rs.str(row, "code"),
		StatDate:         rs.str(row, "statDate"),
		OperatingRevenue: rs.nullDec(row, "totalOperatingRevenue"),
		OperatingCost:    rs.nullDec(row, "operatingCost"),
		OperatingProfit:  rs.nullDec(row, "operatingProfit"),
		TotalProfit:      rs.nullDec(row, "totalProfit"),
		NetProfit:        rs.nullDec(row, "netProfit"),
		BasicEPS:         rs.nullDec(row, "basicEarningsPerShare"),
	}, nil
}

// QueryBalanceData fetches the quarterly balance sheet. Returns (nil, nil)
// when the quarter has no published figures.
func (s *Session) QueryBalanceData(code, year string, quarter int) (*model.BalanceStatement, error) {
	rs, err := s.query("query_balance_data", quarterParams(code, year, quarter))
	if err != nil {
		return nil, err
	}
	if len(rs.rows) == 0 {
		return nil, nil
	}
	row := rs.rows[0]
	return &model.BalanceStatement{
		Code:               rs.str(row, "code"),
		StatDate:           rs.str(row, "statDate"),
		TotalAssets:        rs.nullDec(row, "totalAssets"),
		TotalLiabilities:   rs.nullDec(row, "totalLiabilities"),
		ShareholderEquity:  rs.nullDec(row, "totalShareholderEquity"),
		CurrentAssets:      rs.nullDec(row, "totalCurrentAssets"),
		CurrentLiabilities: rs.nullDec(row, "totalCurrentLiabilities"),
	}, nil
}

// QueryCashFlowData fetches the quarterly cash flow statement. Returns
// (nil, nil) when the quarter has no published figures.
func (s *Session) QueryCashFlowData(code, year string, quarter int) (*model.CashFlowStatement, error) {
	rs, err := s.query("query_cash_flow_data", quarterParams(code, year, quarter))
	if err != nil {
		return nil, err
	}
	if len(rs.rows) == 0 {
		return nil, nil
	}
	row := rs.rows[0]
	return &model.CashFlowStatement{
		Code:          rs.str(row, "code"),
		StatDate:      rs.str(row, "statDate"),
		OperatingFlow: rs.nullDec(row, "operatingCashFlow"),
		InvestingFlow: rs.nullDec(row, "investingCashFlow"),
		FinancingFlow: rs.nullDec(row, "financingCashFlow"),
		NetIncrease:   rs.nullDec(row, "netIncreaseInCash"),
	}, nil
}

// QueryIndexStocks fetches the constituents of a market index as of the
// given date.
func (s *Session) QueryIndexStocks(index model.Index, date string) ([]model.IndexConstituent, error) {
	params := url.Values{}
	params.Set("date", date)
	rs, err := s.query(fmt.Sprintf("query_%s_stocks", index.Key), params)
	if err != nil {
		return nil, err
	}
	constituents := make([]model.IndexConstituent, 0, len(rs.rows))
	for _, row := range rs.rows {
		constituents = append(constituents, model.IndexConstituent{
			Code:       rs.str(row, "code"),
			Name:       rs.str(row, "code_name"),
			UpdateDate: rs.str(row, "updateDate"),
		})
	}
	return constituents, nil
}
