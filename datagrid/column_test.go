package datagrid

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubReloader struct {
	calls int
	err   error
}

func (s *stubReloader) Reload() error {
	s.calls++
	return s.err
}

type countingItemType struct {
	calls int
	t     reflect.Type
	err   error
	panic bool
}

func (c *countingItemType) FieldType(string) (reflect.Type, error) {
	c.calls++
	if c.panic {
		panic("inspection failed")
	}
	return c.t, c.err
}

func TestColumnWidthRaisesSizeChanged(t *testing.T) {
	c := NewColumn("Won", "Won")
	sizes := 0
	c.SizeChanged.Subscribe(func(any, struct{}) { sizes++ })
	before := c.Definition()

	c.SetWidth(Absolute(80))
	c.SetWidth(Absolute(80))

	assert.Equal(t, 1, sizes)
	assert.NotSame(t, before, c.Definition())
	assert.Equal(t, Absolute(80), c.Definition().Width)
}

func TestColumnInvisibleDefinitionIsZero(t *testing.T) {
	c := NewColumn("Won", "Won")
	c.SetWidth(Absolute(80))

	c.SetVisible(false)
	assert.Equal(t, Absolute(0), c.Definition().Width)

	c.SetWidth(Star(2))
	assert.Equal(t, Absolute(0), c.Definition().Width, "hidden columns stay zero width")

	c.SetVisible(true)
	assert.Equal(t, Star(2), c.Definition().Width)
}

func TestColumnVisibilityReloadsGridFirst(t *testing.T) {
	c := NewColumn("Won", "Won")
	grid := &stubReloader{}
	c.grid = grid
	var order []string
	c.SizeChanged.Subscribe(func(any, struct{}) {
		order = append(order, "size")
		assert.Equal(t, 1, grid.calls)
	})
	c.PropertyChanged.Subscribe(func(_ any, name string) { order = append(order, name) })

	c.SetVisible(false)

	assert.Equal(t, []string{"size", "IsVisible"}, order)
}

func TestColumnVisibilityReloadErrorIsDiscarded(t *testing.T) {
	c := NewColumn("Won", "Won")
	c.grid = &stubReloader{err: errors.New("boom")}
	sizes := 0
	c.SizeChanged.Subscribe(func(any, struct{}) { sizes++ })

	assert.NotPanics(t, func() { c.SetVisible(false) })

	assert.Equal(t, 1, sizes)
	assert.False(t, c.Visible())
}

func TestColumnIsSortableIsCached(t *testing.T) {
	c := NewColumn("Won", "Won")
	it := &countingItemType{t: reflect.TypeFor[int]()}

	assert.True(t, c.IsSortable(it))
	assert.True(t, c.IsSortable(it))
	assert.Equal(t, 1, it.calls)

	c.SetPropertyName("Name")
	it.t = reflect.TypeFor[[]byte]()
	assert.False(t, c.IsSortable(it))
	assert.Equal(t, 2, it.calls)
}

func TestColumnIsSortableFailures(t *testing.T) {
	tests := []struct {
		name string
		it   ItemType
	}{
		{"nil item type", nil},
		{"lookup error", &countingItemType{err: ErrFieldNotFound}},
		{"panic", &countingItemType{panic: true}},
		{"unordered", &countingItemType{t: reflect.TypeFor[map[string]int]()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewColumn("X", "X")
			assert.False(t, c.IsSortable(tt.it))
			assert.False(t, c.IsSortable(tt.it))
		})
	}
}

func TestColumnSettersRaisePropertyChanged(t *testing.T) {
	c := NewColumn("Team", "Name")
	var names []string
	c.PropertyChanged.Subscribe(func(_ any, name string) { names = append(names, name) })

	c.SetTitle("Club")
	c.SetStringFormat("%s!")
	c.SetLineBreakMode(LineBreakTruncate)
	c.SetHorizontalContentAlignment(AlignEnd)
	c.SetVerticalContentAlignment(AlignStart)
	c.SetSortingEnabled(false)
	c.SetCellTemplate(nil)

	assert.Equal(t, []string{
		"Title", "StringFormat", "LineBreakMode", "HorizontalContentAlignment",
		"VerticalContentAlignment", "SortingEnabled", "CellTemplate",
	}, names)
}

func TestColumnTextAlignmentFollowsHorizontalAlignment(t *testing.T) {
	c := NewColumn("Team", "Name")
	assert.Equal(t, AlignCenter.textAlign(), c.TextAlignment())

	c.SetHorizontalContentAlignment(AlignEnd)

	assert.Equal(t, AlignEnd.textAlign(), c.TextAlignment())
}
