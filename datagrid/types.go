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

// Package datagrid provides an editable data grid widget for Fyne applications.
//
// A DataGrid owns an ordered collection of Columns and a list of items. Every
// item is rendered by a Row that rebuilds its cells whenever the columns, the
// selection, the edit target or the bound item change. Rows observe the grid
// through weak subscriptions, so rows dropped by the grid are never kept alive
// by the grid's events.
package datagrid

import (
	"fmt"
	"math/big"
	"reflect"
	"time"
)

// DataType represents the type of data in a DataSource column.
type DataType int

const (
	// TypeString represents string data.
	TypeString DataType = iota
	// TypeInt represents integer data (any size).
	TypeInt
	// TypeFloat represents floating-point data (any precision).
	TypeFloat
	// TypeBool represents boolean data.
	TypeBool
	// TypeDate represents date data (without time).
	TypeDate
	// TypeTimestamp represents timestamp data (date + time).
	TypeTimestamp
	// TypeBinary represents binary/blob data.
	TypeBinary
	// TypeDecimal represents decimal/numeric data (fixed precision).
	TypeDecimal
	// TypeStruct represents structured data (nested fields).
	TypeStruct
	// TypeList represents list/array data.
	TypeList
)

// String returns the string representation of a DataType.
func (dt DataType) String() string {
	switch dt {
	case TypeString:
		return "String"
	case TypeInt:
		return "Int"
	case TypeFloat:
		return "Float"
	case TypeBool:
		return "Bool"
	case TypeDate:
		return "Date"
	case TypeTimestamp:
		return "Timestamp"
	case TypeBinary:
		return "Binary"
	case TypeDecimal:
		return "Decimal"
	case TypeStruct:
		return "Struct"
	case TypeList:
		return "List"
	default:
		return fmt.Sprintf("Unknown(%d)", dt)
	}
}

// GoType returns the Go type used for raw values of this DataType.
func (dt DataType) GoType() reflect.Type {
	switch dt {
	case TypeString:
		return reflect.TypeFor[string]()
	case TypeInt:
		return reflect.TypeFor[int64]()
	case TypeFloat:
		return reflect.TypeFor[float64]()
	case TypeBool:
		return reflect.TypeFor[bool]()
	case TypeDate, TypeTimestamp:
		return reflect.TypeFor[time.Time]()
	case TypeBinary:
		return reflect.TypeFor[[]byte]()
	case TypeDecimal:
		return reflect.TypeFor[*big.Float]()
	default:
		return reflect.TypeFor[any]()
	}
}

// dataTypeOf maps a field kind back to the DataType used by filters.
func dataTypeOf(kind FieldKind) DataType {
	switch {
	case kind == KindString:
		return TypeString
	case kind == KindBool:
		return TypeBool
	case kind == KindDecimal:
		return TypeDecimal
	case kind == KindTime:
		return TypeTimestamp
	case kind.IsFloat():
		return TypeFloat
	case kind.IsInteger():
		return TypeInt
	default:
		return TypeStruct
	}
}

// Value is a typed container for cell values.
// It holds the raw value, type information, and a pre-formatted string for display.
type Value struct {
	// Raw holds the underlying value.
	// The type depends on the DataType field.
	Raw interface{}

	// Type indicates the data type of this value.
	Type DataType

	// IsNull indicates whether this value is null/nil.
	IsNull bool

	// Formatted is a pre-formatted string representation for display.
	Formatted string
}

// NewValue creates a new Value from a raw value and type.
func NewValue(raw interface{}, dataType DataType) Value {
	if raw == nil {
		return NewNullValue(dataType)
	}

	return Value{
		Raw:       raw,
		Type:      dataType,
		IsNull:    false,
		Formatted: formatValue(raw, dataType),
	}
}

// NewNullValue creates a null value of the specified type.
func NewNullValue(dataType DataType) Value {
	return Value{
		Raw:       nil,
		Type:      dataType,
		IsNull:    true,
		Formatted: "",
	}
}

// formatValue converts a raw value to its display string.
func formatValue(raw interface{}, dataType DataType) string {
	if raw == nil {
		return ""
	}

	switch v := raw.(type) {
	case time.Time:
		if dataType == TypeDate {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.DateTime)
	case *big.Float:
		if v == nil {
			return ""
		}
		return v.Text('f', -1)
	case []byte:
		return string(v)
	}
	return fmt.Sprintf("%v", raw)
}

// Metadata holds optional metadata about a data source.
type Metadata map[string]interface{}

// SortDirection specifies the direction of sorting.
type SortDirection int

const (
	// SortNone indicates no sorting.
	SortNone SortDirection = iota
	// SortAscending indicates ascending sort order.
	SortAscending
	// SortDescending indicates descending sort order.
	SortDescending
)

// String returns the string representation of a SortDirection.
func (sd SortDirection) String() string {
	switch sd {
	case SortNone:
		return "None"
	case SortAscending:
		return "Ascending"
	case SortDescending:
		return "Descending"
	default:
		return fmt.Sprintf("Unknown(%d)", sd)
	}
}

// SortState represents the current sorting configuration.
type SortState struct {
	// Column is the index of the sorted column (-1 if unsorted).
	Column int
	// Direction is the sort direction.
	Direction SortDirection
}

// IsSorted returns true if this state represents an active sort.
func (s SortState) IsSorted() bool {
	return s.Column >= 0 && s.Direction != SortNone
}

// SelectionMode controls how rows can be selected.
type SelectionMode int

const (
	// SelectionNone disables selection.
	SelectionNone SelectionMode = iota
	// SelectionSingle allows one selected item at a time.
	SelectionSingle
	// SelectionMultiple allows any number of selected items.
	SelectionMultiple
)

// String returns the string representation of a SelectionMode.
func (m SelectionMode) String() string {
	switch m {
	case SelectionNone:
		return "None"
	case SelectionSingle:
		return "Single"
	case SelectionMultiple:
		return "Multiple"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}
