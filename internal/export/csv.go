// Package export writes query results to CSV files (UTF-8 with BOM, header
// row, one row per record).
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"astock/internal/model"
)

// Spreadsheet apps detect UTF-8 from the BOM.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const adjustFlag = "3"

// WriteSeries exports a series to path. The column set matches what the
// provider returns for the series' frequency.
func WriteSeries(path string, series *model.Series) error {
	header := strings.Split(series.Frequency.Props().Fields, ",")
	rows := make([][]string, 0, series.Len())
	for _, b := range series.Bars {
		rows = append(rows, barRow(series, b))
	}
	return writeCSV(path, header, rows)
}

func barRow(series *model.Series, b model.Bar) []string {
	row := []string{b.Date}
	if series.Frequency.Intraday() {
		row = append(row, b.Time)
	}
	row = append(row,
		series.Code,
		b.Open.String(),
		b.High.String(),
		b.Low.String(),
		b.Close.String(),
	)
	if series.Frequency == model.Daily {
		row = append(row, b.PrevClose.String())
	}
	row = append(row,
		strconv.FormatInt(b.Volume, 10),
		b.Amount.String(),
		adjustFlag,
	)
	if series.Frequency == model.Daily {
		row = append(row, b.Turnover.String(), b.TradeStatus, b.PctChange.String(), b.IsST)
	}
	return row
}

// WriteConstituents exports index membership rows to path.
func WriteConstituents(path string, constituents []model.IndexConstituent) error {
	rows := make([][]string, 0, len(constituents))
	for _, c := range constituents {
		rows = append(rows, []string{c.UpdateDate, c.Code, c.Name})
	}
	return writeCSV(path, []string{"updateDate", "code", "code_name"}, rows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
