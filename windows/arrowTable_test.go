package windows

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

func TestStandingsRecord(t *testing.T) {
	pool := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer pool.AssertSize(t, 0)

	s, err := DefaultStandings()
	require.NoError(t, err)

	rec, err := StandingsRecord(pool, s.Teams)
	require.NoError(t, err)
	defer rec.Release()

	assert.EqualValues(t, 12, rec.NumRows())
	assert.EqualValues(t, 7, rec.NumCols())
}

func TestNewStandingsSource(t *testing.T) {
	s, err := DefaultStandings()
	require.NoError(t, err)

	src, err := NewStandingsSource(s.Teams)
	require.NoError(t, err)
	require.Equal(t, 12, src.RowCount())

	row, err := src.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "Boston Celtics", row[0].Formatted)
	assert.Equal(t, "64", row[2].Formatted)
	assert.Equal(t, "0.78", row[4].Formatted)
	assert.Equal(t, "1", row[5].Formatted)
	assert.Equal(t, "2024-04-14", row[6].Formatted)

	losing, err := src.Cell(2, 5)
	require.NoError(t, err)
	assert.Equal(t, "-2", losing.Formatted)

	assert.Equal(t, "2023-24", src.Metadata()["season"])
}

func TestColumnsFor(t *testing.T) {
	s, err := DefaultStandings()
	require.NoError(t, err)
	src, err := NewStandingsSource(s.Teams)
	require.NoError(t, err)

	columns, err := ColumnsFor(src)
	require.NoError(t, err)
	require.Len(t, columns, 7)
	assert.Equal(t, "team", columns[0].PropertyName())
	assert.Equal(t, datagrid.AlignStart, columns[0].HorizontalContentAlignment())
	assert.Equal(t, datagrid.AlignCenter, columns[2].HorizontalContentAlignment())
}
