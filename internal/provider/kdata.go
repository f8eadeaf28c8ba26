package provider

import (
	"net/url"
	"sort"

	"astock/internal/model"
)

// No-adjustment pricing, matching the provider default.
const adjustFlagNone = "3"

// QueryKData fetches historical bars for one code over [start, end] at the
// given frequency. The field list and percent-change handling come from the
// frequency's property table. Returns an empty series when the range holds
// no data.
func (s *Session) QueryKData(code string, freq model.Frequency, start, end string) (*model.Series, error) {
	props := freq.Props()
	params := url.Values{}
	params.Set("code", code)
	params.Set("fields", props.Fields)
	params.Set("start_date", start)
	params.Set("end_date", end)
	params.Set("frequency", props.Token)
	params.Set("adjustflag", adjustFlagNone)

	rs, err := s.query("query_history_k_data", params)
	if err != nil {
		return nil, err
	}

	series := &model.Series{Code: code, Frequency: freq, Start: start, End: end}
	for _, row := range rs.rows {
		bar := model.Bar{
			Date:   rs.str(row, "date"),
			Open:   rs.dec(row, "open"),
			High:   rs.dec(row, "high"),
			Low:    rs.dec(row, "low"),
			Close:  rs.dec(row, "close"),
			Volume: rs.int64Field(row, "volume"),
			Amount: rs.dec(row, "amount"),
		}
		if props.Intraday {
			bar.Time = rs.str(row, "time")
		}
		if freq == model.Daily {
			bar.PrevClose = rs.dec(row, "preclose")
			bar.Turnover = rs.dec(row, "turn")
			bar.PctChange = rs.dec(row, "pctChg")
			bar.TradeStatus = rs.str(row, "tradestatus")
			bar.IsST = rs.str(row, "isST")
		}
		series.Bars = append(series.Bars, bar)
	}

	// The gateway returns bars in period order already; sorting keeps the
	// invariant cheap to trust. ISO dates sort lexically.
	sort.SliceStable(series.Bars, func(i, j int) bool {
		if series.Bars[i].Date != series.Bars[j].Date {
			return series.Bars[i].Date < series.Bars[j].Date
		}
		return series.Bars[i].Time < series.Bars[j].Time
	})
	return series, nil
}
