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
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// FieldKind is the closed set of field types the grid knows how to edit.
type FieldKind int

const (
	// KindUnknown is any type without a default editor.
	KindUnknown FieldKind = iota
	KindString
	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	// KindDecimal is big.Float.
	KindDecimal
	// KindTime is time.Time.
	KindTime
)

var (
	timeType       = reflect.TypeFor[time.Time]()
	bigFloatType   = reflect.TypeFor[big.Float]()
	comparableType = reflect.TypeFor[Comparable]()
)

// Comparable is implemented by field types that define their own ordering.
// Compare returns a negative number, zero or a positive number when the
// receiver sorts before, together with or after other.
type Comparable interface {
	Compare(other any) int
}

// String returns the string representation of a FieldKind.
func (k FieldKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindDecimal:
		return "decimal"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// IsInteger reports whether k is a signed or unsigned integer kind.
func (k FieldKind) IsInteger() bool {
	return k >= KindInt && k <= KindUint64
}

// IsFloat reports whether k is a floating point kind.
func (k FieldKind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsNumeric reports whether k is edited with a numeric entry.
func (k FieldKind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat() || k == KindDecimal
}

// bits returns the size used when parsing numbers of kind k.
func (k FieldKind) bits() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt, KindUint:
		return strconv.IntSize
	default:
		return 64
	}
}

// Parse converts text to a value of kind k. Integers parse to int64 or
// uint64, floats to float64 and decimals to *big.Float. A trailing decimal
// separator is accepted for floats and decimals so partial input stays valid.
func (k FieldKind) Parse(text string) (any, error) {
	switch {
	case k >= KindInt && k <= KindInt64:
		return strconv.ParseInt(text, 10, k.bits())
	case k >= KindUint && k <= KindUint64:
		return strconv.ParseUint(text, 10, k.bits())
	case k.IsFloat():
		return strconv.ParseFloat(strings.TrimRight(text, ",."), k.bits())
	case k == KindDecimal:
		f, ok := new(big.Float).SetString(strings.TrimRight(text, ",."))
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a decimal", ErrTypeMismatch, text)
		}
		return f, nil
	case k == KindString:
		return text, nil
	case k == KindBool:
		return strconv.ParseBool(text)
	case k == KindTime:
		return time.Parse(time.DateOnly, text)
	default:
		return nil, fmt.Errorf("%w: cannot parse %s", ErrTypeMismatch, k)
	}
}

// KindOf resolves the FieldKind of t. Pointers resolve to their element kind.
func KindOf(t reflect.Type) FieldKind {
	if t == nil {
		return KindUnknown
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t {
	case timeType:
		return KindTime
	case bigFloatType:
		return KindDecimal
	}
	switch t.Kind() {
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	default:
		return KindUnknown
	}
}

// isOrdered reports whether values of type t can be sorted.
func isOrdered(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Implements(comparableType) || reflect.PointerTo(t).Implements(comparableType) {
		return true
	}
	return KindOf(t) != KindUnknown
}
