// Package arrow provides a datagrid.DataSource over Apache Arrow tables.
package arrow

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

// Source is a read-only DataSource holding the values of an Arrow table.
// Values are copied out of the table when the source is created, so the
// table may be released afterwards.
type Source struct {
	names    []string
	types    []datagrid.DataType
	rows     [][]datagrid.Value
	metadata datagrid.Metadata
}

var _ datagrid.DataSource = (*Source)(nil)

// NewFromArrowTable reads every row of table.
func NewFromArrowTable(table arrow.Table) (*Source, error) {
	if table == nil {
		return nil, datagrid.ErrNoDataSource
	}

	schema := table.Schema()
	s := &Source{
		names:    make([]string, schema.NumFields()),
		types:    make([]datagrid.DataType, schema.NumFields()),
		rows:     make([][]datagrid.Value, 0, table.NumRows()),
		metadata: datagrid.Metadata{"rows": table.NumRows(), "columns": table.NumCols()},
	}
	for i, field := range schema.Fields() {
		s.names[i] = field.Name
		s.types[i] = dataTypeOf(field.Type)
	}
	if md := schema.Metadata(); md.Len() > 0 {
		for i, key := range md.Keys() {
			s.metadata[key] = md.Values()[i]
		}
	}

	tr := array.NewTableReader(table, table.NumRows())
	defer tr.Release()

	for tr.Next() {
		rec := tr.Record()
		for row := 0; row < int(rec.NumRows()); row++ {
			values := make([]datagrid.Value, rec.NumCols())
			for col, column := range rec.Columns() {
				values[col] = datagrid.NewValue(typedValue(column, row), s.types[col])
			}
			s.rows = append(s.rows, values)
		}
	}
	if err := tr.Err(); err != nil {
		return nil, fmt.Errorf("error reading table: %w", err)
	}
	return s, nil
}

// NewFromRecords builds a table from records and reads it.
func NewFromRecords(schema *arrow.Schema, records ...arrow.Record) (*Source, error) {
	table := array.NewTableFromRecords(schema, records)
	defer table.Release()
	return NewFromArrowTable(table)
}

func (s *Source) RowCount() int    { return len(s.rows) }
func (s *Source) ColumnCount() int { return len(s.names) }

func (s *Source) ColumnName(col int) (string, error) {
	if col < 0 || col >= len(s.names) {
		return "", fmt.Errorf("%w: %d", datagrid.ErrInvalidColumn, col)
	}
	return s.names[col], nil
}

func (s *Source) ColumnType(col int) (datagrid.DataType, error) {
	if col < 0 || col >= len(s.types) {
		return datagrid.TypeString, fmt.Errorf("%w: %d", datagrid.ErrInvalidColumn, col)
	}
	return s.types[col], nil
}

func (s *Source) Cell(row, col int) (datagrid.Value, error) {
	if row < 0 || row >= len(s.rows) {
		return datagrid.Value{}, fmt.Errorf("%w: %d", datagrid.ErrInvalidRow, row)
	}
	if col < 0 || col >= len(s.names) {
		return datagrid.Value{}, fmt.Errorf("%w: %d", datagrid.ErrInvalidColumn, col)
	}
	return s.rows[row][col], nil
}

func (s *Source) Row(row int) ([]datagrid.Value, error) {
	if row < 0 || row >= len(s.rows) {
		return nil, fmt.Errorf("%w: %d", datagrid.ErrInvalidRow, row)
	}
	values := make([]datagrid.Value, len(s.rows[row]))
	copy(values, s.rows[row])
	return values, nil
}

func (s *Source) Metadata() datagrid.Metadata { return s.metadata }
