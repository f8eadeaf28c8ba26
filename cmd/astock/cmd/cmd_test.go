package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"astock/internal/config"
	"astock/internal/model"
	"astock/internal/provider"
)

type mockSession struct {
	provider.MockQuerier
	closed bool
}

func (m *mockSession) Close() { m.closed = true }

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// withSession installs a mock-backed session factory and a default config
// for the duration of one test.
func withSession(t *testing.T, m *mockSession) {
	t.Helper()
	prevOpen := openSession
	prevCfg := cfg
	openSession = func() (querySession, error) { return m, nil }
	var err error
	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		openSession = prevOpen
		cfg = prevCfg
	})
}

func TestRunKline_RendersTableAndStats(t *testing.T) {
	m := &mockSession{MockQuerier: provider.MockQuerier{
		Series: &model.Series{
			Code:      "sz.000001",
			Frequency: model.Daily,
			Start:     "2024-01-01",
			End:       "2024-01-05",
			Bars: []model.Bar{
				{Date: "2024-01-02", Close: dec("10.00"), PctChange: dec("0.00"), Volume: 100},
				{Date: "2024-01-03", Close: dec("10.50"), PctChange: dec("5.00"), Volume: 200},
			},
		},
	}}
	withSession(t, m)

	var buf bytes.Buffer
	klineCmd.SetOut(&buf)
	if err := runKline(klineCmd, []string{"000001"}); err != nil {
		t.Fatalf("runKline: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"sz.000001", "2024-01-03", "Trend", "gushitong"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !m.closed {
		t.Error("session must be closed on the success path")
	}
}

func TestRunKline_NoData(t *testing.T) {
	m := &mockSession{}
	withSession(t, m)

	var buf bytes.Buffer
	klineCmd.SetOut(&buf)
	if err := runKline(klineCmd, []string{"600000"}); err != nil {
		t.Fatalf("runKline: %v", err)
	}
	if !strings.Contains(buf.String(), "no data for sh.600000") {
		t.Errorf("expected no-data message, got:\n%s", buf.String())
	}
	if !m.closed {
		t.Error("session must be closed on the empty-result path")
	}
}

func TestRunKline_BadCodeIsNonFatal(t *testing.T) {
	m := &mockSession{}
	withSession(t, m)

	var buf bytes.Buffer
	klineCmd.SetOut(&buf)
	if err := runKline(klineCmd, []string{"abc"}); err != nil {
		t.Fatalf("bad code must not become a command error, got %v", err)
	}
	if !strings.Contains(buf.String(), "supported formats") {
		t.Error("expected usage hints for an unrecognized code")
	}
	if m.closed {
		t.Error("no session should be opened for an unusable code")
	}
}

func TestRunKline_FetchFailureExitsZero(t *testing.T) {
	m := &mockSession{MockQuerier: provider.MockQuerier{Err: errors.New("gateway down")}}
	withSession(t, m)

	var buf bytes.Buffer
	klineCmd.SetOut(&buf)
	if err := runKline(klineCmd, []string{"000001"}); err != nil {
		t.Fatalf("fetch failure must not become a command error, got %v", err)
	}
	if !strings.Contains(buf.String(), "gateway down") {
		t.Error("failure message should reach the user")
	}
	if !m.closed {
		t.Error("session must be closed on the failure path")
	}
}

func TestRunInfo_NoReferenceData(t *testing.T) {
	m := &mockSession{}
	withSession(t, m)

	var buf bytes.Buffer
	infoCmd.SetOut(&buf)
	if err := runInfo(infoCmd, []string{"000001"}); err != nil {
		t.Fatalf("runInfo: %v", err)
	}
	if !strings.Contains(buf.String(), "no reference data for sz.000001") {
		t.Errorf("expected no-data message, got:\n%s", buf.String())
	}
}

func TestRunInfo_RendersIndustry(t *testing.T) {
	m := &mockSession{MockQuerier: provider.MockQuerier{
		Info:     &model.StockInfo{Code: "sz.000001", Name: "Ping An Bank", IPODate: "1991-04-03", Type: "1", Status: "1"},
		Industry: &model.Industry{Industry: "Banking", Classification: "CSRC"},
	}}
	withSession(t, m)

	var buf bytes.Buffer
	infoCmd.SetOut(&buf)
	if err := runInfo(infoCmd, []string{"000001"}); err != nil {
		t.Fatalf("runInfo: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Ping An Bank", "Trading", "Banking"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunIndex_UnknownKey(t *testing.T) {
	m := &mockSession{}
	withSession(t, m)

	indexKey = "nope"
	t.Cleanup(func() { indexKey = "" })

	var buf bytes.Buffer
	indexCmd.SetOut(&buf)
	if err := runIndex(indexCmd, nil); err == nil {
		t.Fatal("unknown index key must be a usage error")
	}
}

func TestRunIndex_RendersConstituents(t *testing.T) {
	m := &mockSession{MockQuerier: provider.MockQuerier{
		Constituents: []model.IndexConstituent{
			{Code: "sh.600000", Name: "SPD Bank", UpdateDate: "2024-06-17"},
			{Code: "sz.000001", Name: "Ping An Bank", UpdateDate: "2024-06-17"},
		},
	}}
	withSession(t, m)

	indexKey = "hs300"
	t.Cleanup(func() { indexKey = "" })

	var buf bytes.Buffer
	indexCmd.SetOut(&buf)
	if err := runIndex(indexCmd, nil); err != nil {
		t.Fatalf("runIndex: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"CSI 300", "sh.600000", "Shanghai: 1", "Shenzhen: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestResolveRange(t *testing.T) {
	start, end, err := resolveRange("2024-01-01", "2024-02-01", 30)
	if err != nil || start != "2024-01-01" || end != "2024-02-01" {
		t.Errorf("explicit range mangled: %s ~ %s, err %v", start, end, err)
	}

	start, end, err = resolveRange("", "2024-02-01", 30)
	if err != nil || start != "2024-01-02" || end != "2024-02-01" {
		t.Errorf("end-only range = %s ~ %s, err %v; want 2024-01-02 ~ 2024-02-01", start, end, err)
	}

	if _, _, err := resolveRange("2024/01/01", "", 30); err == nil {
		t.Error("malformed start date must fail")
	}
}
