package market

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is a raw tabular input: header-indexed string cells in source row
// order. Typing happens later, in the mappers.
type Table struct {
	columns map[string]int
	rows    [][]string
}

// Row is one record of a Table.
type Row struct {
	table *Table
	cells []string
}

// ReadTable loads a CSV file into a Table. All cells stay strings; numeric and
// temporal coercion is the mappers' job, so a malformed cell can fail soft per
// the column's contract instead of poisoning the whole load.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("required input file %q: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, df.Err)
	}

	columns := make(map[string]int, len(df.Names()))
	for i, name := range df.Names() {
		columns[name] = i
	}

	// Records includes the header as its first row.
	records := df.Records()
	if len(records) > 0 {
		records = records[1:]
	}

	return &Table{columns: columns, rows: records}, nil
}

// HasColumn reports whether the source carried the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th data row in source order.
func (t *Table) Row(i int) Row {
	return Row{table: t, cells: t.rows[i]}
}

// Get returns the named cell, or "" when the column is absent. Missing and
// malformed cells are indistinguishable downstream, which is the intended
// fails-soft contract.
func (r Row) Get(column string) string {
	i, ok := r.table.columns[column]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}
