// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datagrid

import (
	"fmt"
	"reflect"
)

// DataSource provides read-only access to tabular data.
// All methods should return errors rather than panic.
type DataSource interface {
	// RowCount returns the total number of rows in the data source.
	RowCount() int

	// ColumnCount returns the total number of columns in the data source.
	ColumnCount() int

	// ColumnName returns the name of the column at the given index.
	// Returns ErrInvalidColumn if col is out of range.
	ColumnName(col int) (string, error)

	// ColumnType returns the data type of the column at the given index.
	// Returns ErrInvalidColumn if col is out of range.
	ColumnType(col int) (DataType, error)

	// Cell returns the value at the specified row and column.
	// Returns ErrInvalidRow if row is out of range.
	// Returns ErrInvalidColumn if col is out of range.
	Cell(row, col int) (Value, error)

	// Row returns all values for the specified row.
	// Returns ErrInvalidRow if row is out of range.
	Row(row int) ([]Value, error)

	// Metadata returns optional metadata about the data source.
	// Returns an empty Metadata map if no metadata is available.
	Metadata() Metadata
}

// Schema is the column layout shared by the records of one data source.
type Schema struct {
	Names []string
	Types []DataType
	index map[string]int
}

// SchemaOf reads the column names and types of ds.
func SchemaOf(ds DataSource) (*Schema, error) {
	if ds == nil {
		return nil, ErrNoDataSource
	}
	s := &Schema{index: make(map[string]int, ds.ColumnCount())}
	for col := 0; col < ds.ColumnCount(); col++ {
		name, err := ds.ColumnName(col)
		if err != nil {
			return nil, err
		}
		dt, err := ds.ColumnType(col)
		if err != nil {
			return nil, err
		}
		s.Names = append(s.Names, name)
		s.Types = append(s.Types, dt)
		s.index[name] = col
	}
	return s, nil
}

// Index returns the position of the column called name.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// FieldType implements ItemType for records of this schema.
func (s *Schema) FieldType(path string) (reflect.Type, error) {
	col, ok := s.Index(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFieldNotFound, path)
	}
	return s.Types[col].GoType(), nil
}

// Record is one editable row read from a DataSource.
type Record struct {
	schema *Schema
	values []Value
}

var _ FieldAccessor = (*Record)(nil)

// Records copies every row of ds into records sharing one schema.
func Records(ds DataSource) ([]*Record, *Schema, error) {
	schema, err := SchemaOf(ds)
	if err != nil {
		return nil, nil, err
	}
	records := make([]*Record, 0, ds.RowCount())
	for row := 0; row < ds.RowCount(); row++ {
		values, err := ds.Row(row)
		if err != nil {
			return nil, nil, fmt.Errorf("reading row %d: %w", row, err)
		}
		records = append(records, &Record{schema: schema, values: values})
	}
	return records, schema, nil
}

// Schema returns the schema of the record.
func (r *Record) Schema() *Schema { return r.schema }

// Value returns the typed value of the column called name.
func (r *Record) Value(name string) (Value, bool) {
	col, ok := r.schema.Index(name)
	if !ok || col >= len(r.values) {
		return Value{}, false
	}
	return r.values[col], true
}

// FieldValue returns the raw value of the column called name.
func (r *Record) FieldValue(name string) (any, bool) {
	v, ok := r.Value(name)
	if !ok {
		return nil, false
	}
	return v.Raw, true
}

// SetFieldValue replaces the value of the column called name. The value is
// converted to the column type; nil stores a null.
func (r *Record) SetFieldValue(name string, value any) error {
	col, ok := r.schema.Index(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	dt := r.schema.Types[col]
	if value == nil {
		r.values[col] = NewNullValue(dt)
		return nil
	}
	dst := reflect.New(dt.GoType()).Elem()
	if err := assign(dst, value); err != nil {
		return fmt.Errorf("column %q: %w", name, err)
	}
	r.values[col] = NewValue(dst.Interface(), dt)
	return nil
}

// String returns the formatted values of the record.
func (r *Record) String() string {
	return fmt.Sprint(r.formatted())
}

func (r *Record) formatted() []string {
	out := make([]string, len(r.values))
	for i, v := range r.values {
		out[i] = v.Formatted
	}
	return out
}
