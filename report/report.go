// Package report renders screen rows into downloadable tabular artifacts.
// Exporters are pure: same columns and rows in, same artifact out, row
// order preserved exactly.
package report

import "api-waste-admin/model"

// Column maps a header to an accessor that renders one cell, applying the
// same missing-field defaults the screens use.
type Column struct {
	Header   string
	Accessor func(model.Row) string
}

// Table describes one screen's export: title line, fixed download
// filename (without extension), and the ordered column set.
type Table struct {
	Title    string
	Filename string
	Columns  []Column
}

// BuildGrid evaluates the column accessors over every row, in input order.
func (t Table) BuildGrid(rows []model.Row) (headers []string, body [][]string) {
	headers = make([]string, len(t.Columns))
	for i, col := range t.Columns {
		headers[i] = col.Header
	}
	body = make([][]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			cells[i] = col.Accessor(row)
		}
		body = append(body, cells)
	}
	return headers, body
}
