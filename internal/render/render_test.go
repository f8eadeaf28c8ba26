package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"astock/internal/model"
	"astock/internal/stats"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "-"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatVolume(tt.in); got != tt.want {
			t.Errorf("formatVolume(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123", "123"},
		{"12345", "1.23万"},
		{"250000000", "2.50亿"},
		{"-250000000", "-2.50亿"},
	}
	for _, tt := range tests {
		if got := formatAmount(dec(tt.in)); got != tt.want {
			t.Errorf("formatAmount(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSignedPct(t *testing.T) {
	if got := signedPct(dec("5")); got != "+5.00%" {
		t.Errorf("signedPct(5) = %q", got)
	}
	if got := signedPct(dec("-6.67")); got != "-6.67%" {
		t.Errorf("signedPct(-6.67) = %q", got)
	}
	if got := signedPct(decimal.Zero); got != "0.00%" {
		t.Errorf("signedPct(0) = %q", got)
	}
}

func sampleSeries() *model.Series {
	return &model.Series{
		Code:      "sz.000001",
		Frequency: model.Daily,
		Start:     "2024-01-01",
		End:       "2024-01-05",
		Bars: []model.Bar{
			{Date: "2024-01-02", Open: dec("9.90"), High: dec("10.10"), Low: dec("9.80"), Close: dec("10.00"), Volume: 100000, Amount: dec("1000000"), PctChange: dec("0.50")},
			{Date: "2024-01-03", Open: dec("10.20"), High: dec("10.60"), Low: dec("10.10"), Close: dec("10.50"), Volume: 120000, Amount: dec("1260000"), PctChange: dec("5.00")},
		},
	}
}

func TestKLineTable(t *testing.T) {
	var buf bytes.Buffer
	KLineTable(&buf, sampleSeries())
	out := buf.String()
	for _, want := range []string{"sz.000001", "2024-01-03", "10.50", "120,000", "126.00万"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}

func TestSummaryPanels(t *testing.T) {
	var buf bytes.Buffer
	SummaryPanels(&buf, stats.Summarize(sampleSeries()))
	out := buf.String()
	for _, want := range []string{"Total days: 2", "Up", "Period change", "Principal", "Average"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel output missing %q", want)
		}
	}
}

func TestLinksPanel(t *testing.T) {
	var buf bytes.Buffer
	LinksPanel(&buf, "sz.000001")
	out := buf.String()
	if !strings.Contains(out, "gushitong.baidu.com/stock/ab-000001") {
		t.Error("missing gushitong link")
	}
	if !strings.Contains(out, "SZ000001") {
		t.Error("eastmoney link should carry the uppercased full code")
	}
}
