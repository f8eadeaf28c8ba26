package provider

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"astock/internal/model"
)

const loginResponse = `{"error_code":"0","error_msg":"success","access_token":"tok-1"}`

func newGateway(t *testing.T, queryResponse string) (*httptest.Server, *Session) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/login"):
			fmt.Fprint(w, loginResponse)
		case strings.HasSuffix(r.URL.Path, "/logout"):
			fmt.Fprint(w, `{"error_code":"0","error_msg":"success"}`)
		default:
			if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
				t.Errorf("query carried Authorization %q, want bearer token", got)
			}
			fmt.Fprint(w, queryResponse)
		}
	}))
	t.Cleanup(srv.Close)

	session, err := Connect(srv.URL, "key", "", 5*time.Second)
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	t.Cleanup(session.Close)
	return srv, session
}

func TestQueryKData_Daily(t *testing.T) {
	response := `{"error_code":"0","error_msg":"success",
		"fields":["date","code","open","high","low","close","preclose","volume","amount","adjustflag","turn","tradestatus","pctChg","isST"],
		"data":[
			["2024-01-03","sz.000001","10.20","10.60","10.10","10.50","10.00","120000","1260000.00","3","0.95","1","5.00","0"],
			["2024-01-02","sz.000001","9.90","10.10","9.80","10.00","9.95","100000","1000000.00","3","0.80","1","0.50","0"]
		]}`
	_, session := newGateway(t, response)

	series, err := session.QueryKData("sz.000001", model.Daily, "2024-01-01", "2024-01-05")
	if err != nil {
		t.Fatalf("QueryKData: %v", err)
	}
	if series.Len() != 2 {
		t.Fatalf("got %d bars, want 2", series.Len())
	}
	// Rows arrive unordered; the series must be sorted by date.
	if series.Bars[0].Date != "2024-01-02" {
		t.Errorf("first bar date = %s, want 2024-01-02", series.Bars[0].Date)
	}
	last := series.Bars[1]
	if !last.Close.Equal(decOrDie(t, "10.50")) {
		t.Errorf("close = %s, want 10.50", last.Close)
	}
	if !last.PctChange.Equal(decOrDie(t, "5.00")) {
		t.Errorf("pctChg = %s, want 5.00", last.PctChange)
	}
	if last.Volume != 120000 {
		t.Errorf("volume = %d, want 120000", last.Volume)
	}
	if last.TradeStatus != "1" {
		t.Errorf("tradestatus = %q, want \"1\"", last.TradeStatus)
	}
}

func TestQueryKData_IntradayCarriesTime(t *testing.T) {
	response := `{"error_code":"0","error_msg":"success",
		"fields":["date","time","code","open","high","low","close","volume","amount","adjustflag"],
		"data":[["2024-01-02","09:35:00","sz.000001","10.0","10.1","9.9","10.05","5000","50000.0","3"]]}`
	_, session := newGateway(t, response)

	series, err := session.QueryKData("sz.000001", model.Min5, "2024-01-02", "2024-01-02")
	if err != nil {
		t.Fatalf("QueryKData: %v", err)
	}
	if series.Bars[0].Time != "09:35:00" {
		t.Errorf("time = %q, want 09:35:00", series.Bars[0].Time)
	}
	if series.Bars[0].Label() != "2024-01-02 09:35:00" {
		t.Errorf("label = %q", series.Bars[0].Label())
	}
}

func TestQueryStockBasic_Empty(t *testing.T) {
	response := `{"error_code":"0","error_msg":"success","fields":["code","code_name"],"data":[]}`
	_, session := newGateway(t, response)

	info, err := session.QueryStockBasic("sz.999999")
	if err != nil {
		t.Fatalf("QueryStockBasic: %v", err)
	}
	if info != nil {
		t.Errorf("expected nil record for unknown code, got %+v", info)
	}
}

func TestQueryProfitData_MissingCellsStayInvalid(t *testing.T) {
	response := `{"error_code":"0","error_msg":"success",
		"fields":["code","statDate","totalOperatingRevenue","netProfit"],
		"data":[["sh.600000","2023-12-31","161813000000",""]]}`
	_, session := newGateway(t, response)

	p, err := session.QueryProfitData("sh.600000", "2023", 4)
	if err != nil {
		t.Fatalf("QueryProfitData: %v", err)
	}
	if !p.OperatingRevenue.Valid {
		t.Error("revenue should be valid")
	}
	if p.NetProfit.Valid {
		t.Error("empty cell should stay invalid")
	}
	if p.OperatingCost.Valid {
		t.Error("absent field should stay invalid")
	}
}

func TestQuery_ProviderError(t *testing.T) {
	response := `{"error_code":"10001","error_msg":"session expired"}`
	_, session := newGateway(t, response)

	_, err := session.QueryKData("sz.000001", model.Daily, "2024-01-01", "2024-01-05")
	if err == nil || !strings.Contains(err.Error(), "session expired") {
		t.Errorf("expected provider error message, got %v", err)
	}
}

func decOrDie(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}
