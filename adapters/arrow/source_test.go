package arrow

import (
	"math/big"
	"testing"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

func buildSource(t *testing.T) *Source {
	t.Helper()
	pool := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer pool.AssertSize(t, 0)

	schema := arrow.NewSchema([]arrow.Field{
		{Name: "team", Type: arrow.BinaryTypes.String},
		{Name: "won", Type: arrow.PrimitiveTypes.Int32},
		{Name: "pct", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		{Name: "active", Type: arrow.FixedWidthTypes.Boolean},
		{Name: "since", Type: arrow.FixedWidthTypes.Date32},
		{Name: "updated", Type: &arrow.TimestampType{Unit: arrow.Millisecond}},
		{Name: "payroll", Type: &arrow.Decimal128Type{Precision: 10, Scale: 2}},
	}, nil)

	b := array.NewRecordBuilder(pool, schema)
	defer b.Release()

	since := time.Date(1946, 6, 6, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2024, 4, 1, 12, 30, 0, 0, time.UTC)
	b.Field(0).(*array.StringBuilder).AppendValues([]string{"Celtics", "Lakers"}, nil)
	b.Field(1).(*array.Int32Builder).AppendValues([]int32{57, 47}, nil)
	b.Field(2).(*array.Float64Builder).AppendValues([]float64{0.695, 0}, []bool{true, false})
	b.Field(3).(*array.BooleanBuilder).AppendValues([]bool{true, false}, nil)
	b.Field(4).(*array.Date32Builder).AppendValues([]arrow.Date32{arrow.Date32FromTime(since), arrow.Date32FromTime(since)}, nil)
	ts, err := arrow.TimestampFromTime(updated, arrow.Millisecond)
	require.NoError(t, err)
	b.Field(5).(*array.TimestampBuilder).AppendValues([]arrow.Timestamp{ts, ts}, nil)
	b.Field(6).(*array.Decimal128Builder).AppendValues([]decimal128.Num{decimal128.FromI64(12345), decimal128.FromI64(-50)}, nil)

	rec := b.NewRecord()
	defer rec.Release()

	src, err := NewFromRecords(schema, rec)
	require.NoError(t, err)
	return src
}

func TestNewFromArrowTable(t *testing.T) {
	src := buildSource(t)

	assert.Equal(t, 2, src.RowCount())
	assert.Equal(t, 7, src.ColumnCount())

	types := make([]datagrid.DataType, src.ColumnCount())
	for i := range types {
		types[i], _ = src.ColumnType(i)
	}
	assert.Equal(t, []datagrid.DataType{
		datagrid.TypeString, datagrid.TypeInt, datagrid.TypeFloat, datagrid.TypeBool,
		datagrid.TypeDate, datagrid.TypeTimestamp, datagrid.TypeDecimal,
	}, types)
}

func TestSourceValues(t *testing.T) {
	src := buildSource(t)

	row, err := src.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "Celtics", row[0].Raw)
	assert.Equal(t, int64(57), row[1].Raw)
	assert.Equal(t, 0.695, row[2].Raw)
	assert.Equal(t, true, row[3].Raw)
	assert.Equal(t, "1946-06-06", row[4].Formatted)
	assert.Equal(t, "2024-04-01 12:30:00", row[5].Formatted)
	assert.Equal(t, "123.45", row[6].Formatted)
	assert.IsType(t, &big.Float{}, row[6].Raw)

	pct, err := src.Cell(1, 2)
	require.NoError(t, err)
	assert.True(t, pct.IsNull)

	payroll, _ := src.Cell(1, 6)
	assert.Equal(t, "-0.5", payroll.Formatted)
}

func TestSourceBounds(t *testing.T) {
	src := buildSource(t)

	_, err := src.Cell(2, 0)
	assert.ErrorIs(t, err, datagrid.ErrInvalidRow)
	_, err = src.Cell(0, 9)
	assert.ErrorIs(t, err, datagrid.ErrInvalidColumn)
	_, err = src.ColumnName(-1)
	assert.ErrorIs(t, err, datagrid.ErrInvalidColumn)
	_, err = src.Row(5)
	assert.ErrorIs(t, err, datagrid.ErrInvalidRow)
}

func TestNilTable(t *testing.T) {
	_, err := NewFromArrowTable(nil)
	assert.ErrorIs(t, err, datagrid.ErrNoDataSource)
}

func TestSourceFeedsRecords(t *testing.T) {
	records, schema, err := datagrid.Records(buildSource(t))
	require.NoError(t, err)

	require.Len(t, records, 2)
	typ, err := schema.FieldType("payroll")
	require.NoError(t, err)
	assert.Equal(t, datagrid.KindDecimal, datagrid.KindOf(typ))

	require.NoError(t, records[0].SetFieldValue("won", 60))
	v, _ := records[0].Value("won")
	assert.Equal(t, int64(60), v.Raw)
}
