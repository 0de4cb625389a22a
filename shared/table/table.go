// Package table holds the tabular result of a read statement and renders it for the menu.
package table

import (
	"database/sql"
	"strconv"
)

// Table is an ordered list of column names and rows of nullable cells.
type Table struct {
	Columns []string
	Rows    [][]sql.NullString
}

// Value returns a non-null cell.
func Value(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

// Null is the null cell.
var Null = sql.NullString{}

// New builds a table from column names and rows of plain values.
func New(columns []string, rows ...[]string) Table {
	t := Table{Columns: columns}
	for _, row := range rows {
		cells := make([]sql.NullString, len(row))
		for i, v := range row {
			cells[i] = Value(v)
		}

		t.Rows = append(t.Rows, cells)
	}

	return t
}

func (t Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of name, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}

	return -1
}

// Cell returns the cell at row, col; out of range cells are null.
func (t Table) Cell(row, col int) sql.NullString {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return Null
	}

	return t.Rows[row][col]
}

// String returns the first cell of the first row, "" when absent or null.
func (t Table) String() string {
	return t.Cell(0, 0).String
}

// Int parses the first cell of the first row.
func (t Table) Int() (int, bool) {
	cell := t.Cell(0, 0)
	if !cell.Valid {
		return 0, false
	}

	v, err := strconv.Atoi(cell.String)
	if err != nil {
		return 0, false
	}

	return v, true
}

// Filter returns a copy holding only the rows keep accepts.
func (t Table) Filter(keep func(row []sql.NullString) bool) Table {
	out := Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}

	return out
}

// AppendColumn adds a column whose cells are computed from each row.
func (t Table) AppendColumn(name string, compute func(row []sql.NullString) sql.NullString) Table {
	out := Table{Columns: append(append([]string{}, t.Columns...), name)}
	for _, row := range t.Rows {
		cells := append(append([]sql.NullString{}, row...), compute(row))
		out.Rows = append(out.Rows, cells)
	}

	return out
}
