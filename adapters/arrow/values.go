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

package arrow

import (
	"encoding/json"
	"math/big"
	"slices"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

// dataTypeOf maps an Arrow type to the grid's DataType.
func dataTypeOf(dt arrow.DataType) datagrid.DataType {
	switch dt.ID() {
	case arrow.STRING, arrow.LARGE_STRING:
		return datagrid.TypeString
	case arrow.BOOL:
		return datagrid.TypeBool
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64:
		return datagrid.TypeInt
	case arrow.FLOAT16, arrow.FLOAT32, arrow.FLOAT64:
		return datagrid.TypeFloat
	case arrow.DATE32, arrow.DATE64:
		return datagrid.TypeDate
	case arrow.TIMESTAMP:
		return datagrid.TypeTimestamp
	case arrow.BINARY:
		return datagrid.TypeBinary
	case arrow.DECIMAL128:
		return datagrid.TypeDecimal
	case arrow.STRUCT:
		return datagrid.TypeStruct
	case arrow.LIST:
		return datagrid.TypeList
	default:
		return datagrid.TypeString
	}
}

// typedValue returns the value at pos as the Go type used by the grid for
// the column's DataType: int64, float64, string, bool, time.Time, []byte or
// *big.Float. Nested values are returned as their JSON or list text.
func typedValue(col arrow.Array, pos int) any {
	if col.IsNull(pos) {
		return nil
	}

	switch c := col.(type) {
	case *array.String:
		return strings.Clone(c.Value(pos))
	case *array.LargeString:
		return strings.Clone(c.Value(pos))
	case *array.Binary:
		return slices.Clone(c.Value(pos))
	case *array.Boolean:
		return c.Value(pos)
	case *array.Int8:
		return int64(c.Value(pos))
	case *array.Int16:
		return int64(c.Value(pos))
	case *array.Int32:
		return int64(c.Value(pos))
	case *array.Int64:
		return c.Value(pos)
	case *array.Uint8:
		return int64(c.Value(pos))
	case *array.Uint16:
		return int64(c.Value(pos))
	case *array.Uint32:
		return int64(c.Value(pos))
	case *array.Uint64:
		return int64(c.Value(pos))
	case *array.Float16:
		return float64(c.Value(pos).Float32())
	case *array.Float32:
		return float64(c.Value(pos))
	case *array.Float64:
		return c.Value(pos)
	case *array.Date32:
		return c.Value(pos).ToTime().UTC()
	case *array.Date64:
		return c.Value(pos).ToTime().UTC()
	case *array.Timestamp:
		unit := c.DataType().(*arrow.TimestampType).Unit
		return c.Value(pos).ToTime(unit)
	case *array.Decimal128:
		scale := c.DataType().(*arrow.Decimal128Type).Scale
		return decimal(c.Value(pos).BigInt(), scale)
	case *array.Struct:
		b, err := json.Marshal(c.GetOneForMarshal(pos))
		if err != nil {
			return c.ValueStr(pos)
		}
		return string(b)
	default:
		return col.ValueStr(pos)
	}
}

// decimal scales an unscaled integer by 10^-scale.
func decimal(unscaled *big.Int, scale int32) *big.Float {
	f := new(big.Float).SetInt(unscaled)
	if scale <= 0 {
		return f
	}
	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	return f.Quo(f, new(big.Float).SetInt(div))
}
