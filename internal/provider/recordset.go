package provider

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// The gateway answers every method with the same record-set envelope:
//
//	{"error_code":"0","error_msg":"success","fields":[...],"data":[[...],...]}
//
// error_code "0" means success; anything else carries a message.

// parseEnvelope validates the error_code/error_msg envelope and returns the
// parsed document.
func parseEnvelope(body []byte) (gjson.Result, error) {
	root := gjson.ParseBytes(body)
	if code := root.Get("error_code").String(); code != "0" {
		return gjson.Result{}, fmt.Errorf("provider error %s: %s", code, root.Get("error_msg").String())
	}
	return root, nil
}

// recordSet is one parsed record-set response: a field-name index plus the
// data rows.
type recordSet struct {
	fields map[string]int
	rows   [][]gjson.Result
}

func parseRecordSet(body []byte) (*recordSet, error) {
	root, err := parseEnvelope(body)
	if err != nil {
		return nil, err
	}
	rs := &recordSet{fields: make(map[string]int)}
	for i, f := range root.Get("fields").Array() {
		rs.fields[f.String()] = i
	}
	for _, row := range root.Get("data").Array() {
		rs.rows = append(rs.rows, row.Array())
	}
	return rs, nil
}

// str returns the named field of a row, or "" when the field or cell is
// absent.
func (r *recordSet) str(row []gjson.Result, field string) string {
	i, ok := r.fields[field]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i].String()
}

// dec coerces the named field to a decimal; malformed or empty cells
// become zero, mirroring the tolerant parsing the display layer expects.
func (r *recordSet) dec(row []gjson.Result, field string) decimal.Decimal {
	d, err := decimal.NewFromString(r.str(row, field))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// nullDec coerces the named field to a nullable decimal; malformed or
// empty cells stay invalid.
func (r *recordSet) nullDec(row []gjson.Result, field string) decimal.NullDecimal {
	d, err := decimal.NewFromString(r.str(row, field))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// int64Field coerces the named field to an integer, truncating any decimal
// part the provider tacks onto volumes.
func (r *recordSet) int64Field(row []gjson.Result, field string) int64 {
	d, err := decimal.NewFromString(r.str(row, field))
	if err != nil {
		return 0
	}
	return d.IntPart()
}
