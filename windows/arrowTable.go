package windows

import (
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/memory"

	arrowsrc "github.com/magpierre/fyne-datagrid/adapters/arrow"
	"github.com/magpierre/fyne-datagrid/datagrid"
)

// seasonEnd is the last day of the sample season.
var seasonEnd = time.Date(2024, 4, 14, 0, 0, 0, 0, time.UTC)

// standingsSchema is the Arrow layout of the standings table.
var standingsSchema = arrow.NewSchema([]arrow.Field{
	{Name: "team", Type: arrow.BinaryTypes.String},
	{Name: "conf", Type: arrow.BinaryTypes.String},
	{Name: "won", Type: arrow.PrimitiveTypes.Int32},
	{Name: "lost", Type: arrow.PrimitiveTypes.Int32},
	{Name: "pct", Type: &arrow.Decimal128Type{Precision: 5, Scale: 3}},
	{Name: "streak", Type: arrow.PrimitiveTypes.Int32},
	{Name: "season_end", Type: arrow.FixedWidthTypes.Date32},
}, func() *arrow.Metadata {
	md := arrow.NewMetadata([]string{"season"}, []string{"2023-24"})
	return &md
}())

// StandingsRecord converts teams into an Arrow record. The caller releases it.
func StandingsRecord(mem memory.Allocator, teams []Team) (arrow.Record, error) {
	b := array.NewRecordBuilder(mem, standingsSchema)
	defer b.Release()

	name := b.Field(0).(*array.StringBuilder)
	conf := b.Field(1).(*array.StringBuilder)
	won := b.Field(2).(*array.Int32Builder)
	lost := b.Field(3).(*array.Int32Builder)
	pct := b.Field(4).(*array.Decimal128Builder)
	streak := b.Field(5).(*array.Int32Builder)
	end := b.Field(6).(*array.Date32Builder)

	for _, t := range teams {
		p, err := decimal128.FromFloat64(t.Percentage, 5, 3)
		if err != nil {
			return nil, fmt.Errorf("team %q: percentage: %w", t.Name, err)
		}
		name.Append(t.Name)
		conf.Append(t.Conf)
		won.Append(int32(t.Won))
		lost.Append(int32(t.Lost))
		pct.Append(p)
		streak.Append(int32(t.Streak.score()))
		end.Append(arrow.Date32FromTime(seasonEnd))
	}
	return b.NewRecord(), nil
}

// NewStandingsSource reads teams through an in-memory Arrow table.
func NewStandingsSource(teams []Team) (*arrowsrc.Source, error) {
	rec, err := StandingsRecord(memory.NewGoAllocator(), teams)
	if err != nil {
		return nil, err
	}
	defer rec.Release()
	return arrowsrc.NewFromRecords(standingsSchema, rec)
}

// ColumnsFor returns one star-sized column per field of ds.
func ColumnsFor(ds datagrid.DataSource) ([]*datagrid.Column, error) {
	columns := make([]*datagrid.Column, 0, ds.ColumnCount())
	for i := 0; i < ds.ColumnCount(); i++ {
		name, err := ds.ColumnName(i)
		if err != nil {
			return nil, err
		}
		col := datagrid.NewColumn(name, name)
		if t, err := ds.ColumnType(i); err == nil && t == datagrid.TypeString {
			col.SetHorizontalContentAlignment(datagrid.AlignStart)
		}
		columns = append(columns, col)
	}
	return columns, nil
}
