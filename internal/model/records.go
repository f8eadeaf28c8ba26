package model

import "github.com/shopspring/decimal"

// StockInfo is the basic reference record for one listed instrument.
// Type and Status keep the provider's code values; the description
// methods translate them for display.
type StockInfo struct {
	Code    string
	Name    string
	IPODate string
	OutDate string
	Type    string
	Status  string
}

// TypeDescription translates the provider's security type code.
func (s StockInfo) TypeDescription() string {
	switch s.Type {
	case "1":
		return "Stock"
	case "2":
		return "B-share"
	case "3":
		return "Depositary receipt"
	}
	if s.Type == "" {
		return "-"
	}
	return s.Type
}

// StatusDescription translates the provider's trading status code.
func (s StockInfo) StatusDescription() string {
	switch s.Status {
	case "1":
		return "Trading"
	case "0":
		return "Suspended"
	}
	if s.Status == "" {
		return "-"
	}
	return s.Status
}

// Industry is the industry classification record for one instrument.
type Industry struct {
	Industry       string
	Classification string
	UpdateDate     string
}

// ProfitStatement holds the quarterly income statement figures shown by the
// finance command. Missing provider values stay invalid.
type ProfitStatement struct {
	Code             string
	StatDate         string
	OperatingRevenue decimal.NullDecimal
	OperatingCost    decimal.NullDecimal
	OperatingProfit  decimal.NullDecimal
	TotalProfit      decimal.NullDecimal
	NetProfit        decimal.NullDecimal
	BasicEPS         decimal.NullDecimal
}

// Empty reports whether no figure was returned at all.
func (p ProfitStatement) Empty() bool {
	return !p.OperatingRevenue.Valid && !p.OperatingCost.Valid && !p.OperatingProfit.Valid &&
		!p.TotalProfit.Valid && !p.NetProfit.Valid && !p.BasicEPS.Valid
}

// BalanceStatement holds the quarterly balance sheet figures.
type BalanceStatement struct {
	Code               string
	StatDate           string
	TotalAssets        decimal.NullDecimal
	TotalLiabilities   decimal.NullDecimal
	ShareholderEquity  decimal.NullDecimal
	CurrentAssets      decimal.NullDecimal
	CurrentLiabilities decimal.NullDecimal
}

// Empty reports whether no figure was returned at all.
func (b BalanceStatement) Empty() bool {
	return !b.TotalAssets.Valid && !b.TotalLiabilities.Valid && !b.ShareholderEquity.Valid &&
		!b.CurrentAssets.Valid && !b.CurrentLiabilities.Valid
}

// CashFlowStatement holds the quarterly cash flow figures.
type CashFlowStatement struct {
	Code          string
	StatDate      string
	OperatingFlow decimal.NullDecimal
	InvestingFlow decimal.NullDecimal
	FinancingFlow decimal.NullDecimal
	NetIncrease   decimal.NullDecimal
}

// Empty reports whether no figure was returned at all.
func (c CashFlowStatement) Empty() bool {
	return !c.OperatingFlow.Valid && !c.InvestingFlow.Valid && !c.FinancingFlow.Valid &&
		!c.NetIncrease.Valid
}

// IndexConstituent is one membership row of a market index.
type IndexConstituent struct {
	Code       string
	Name       string
	UpdateDate string
}

// Index identifies one of the supported market indexes.
type Index struct {
	Key  string
	Code string
	Name string
}

// Indexes lists the supported indexes by CLI key.
var Indexes = map[string]Index{
	"sz50":  {Key: "sz50", Code: "sh.000016", Name: "SSE 50"},
	"hs300": {Key: "hs300", Code: "sh.000300", Name: "CSI 300"},
	"zz500": {Key: "zz500", Code: "sh.000905", Name: "CSI 500"},
}
