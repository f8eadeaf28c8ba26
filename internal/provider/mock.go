package provider

import "astock/internal/model"

// MockQuerier returns controllable fixed data for development and testing.
type MockQuerier struct {
	Series       *model.Series
	Info         *model.StockInfo
	Industry     *model.Industry
	Profit       *model.ProfitStatement
	Balance      *model.BalanceStatement
	CashFlow     *model.CashFlowStatement
	Constituents []model.IndexConstituent
	Err          error
}

func (m *MockQuerier) QueryKData(code string, freq model.Frequency, start, end string) (*model.Series, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series != nil {
		return m.Series, nil
	}
	return &model.Series{Code: code, Frequency: freq, Start: start, End: end}, nil
}

func (m *MockQuerier) QueryStockBasic(code string) (*model.StockInfo, error) {
	return m.Info, m.Err
}

func (m *MockQuerier) QueryStockIndustry(code string) (*model.Industry, error) {
	return m.Industry, m.Err
}

func (m *MockQuerier) QueryProfitData(code, year string, quarter int) (*model.ProfitStatement, error) {
	return m.Profit, m.Err
}

func (m *MockQuerier) QueryBalanceData(code, year string, quarter int) (*model.BalanceStatement, error) {
	return m.Balance, m.Err
}

func (m *MockQuerier) QueryCashFlowData(code, year string, quarter int) (*model.CashFlowStatement, error) {
	return m.CashFlow, m.Err
}

func (m *MockQuerier) QueryIndexStocks(index model.Index, date string) ([]model.IndexConstituent, error) {
	return m.Constituents, m.Err
}
