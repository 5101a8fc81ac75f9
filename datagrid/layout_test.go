package datagrid

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWidths(t *testing.T) {
	tests := []struct {
		name   string
		tracks []GridLength
		autos  []float32
		total  float32
		want   []float32
	}{
		{"absolute", []GridLength{Absolute(50), Absolute(30)}, nil, 200, []float32{50, 30}},
		{"star shares remainder", []GridLength{Absolute(40), Star(1), Star(3)}, nil, 200, []float32{40, 40, 120}},
		{"auto uses content", []GridLength{GridLengthAuto, GridLengthStar}, []float32{25, 0}, 100, []float32{25, 75}},
		{"overflow leaves stars empty", []GridLength{Absolute(150), GridLengthStar}, nil, 100, []float32{150, 0}},
		{"hidden column", []GridLength{GridLengthStar, Absolute(0), GridLengthStar}, nil, 100, []float32{50, 0, 50}},
		{"empty", nil, nil, 100, []float32{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveWidths(tt.tracks, tt.autos, tt.total)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("resolveWidths() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseGridLength(t *testing.T) {
	for in, want := range map[string]GridLength{
		"120":  Absolute(120),
		"*":    GridLengthStar,
		"2*":   Star(2),
		"Auto": GridLengthAuto,
		"auto": GridLengthAuto,
	} {
		got, err := ParseGridLength(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		if in != "auto" {
			assert.Equal(t, in, got.String())
		}
	}

	_, err := ParseGridLength("wide")
	assert.Error(t, err)
	_, err = ParseGridLength("-1")
	assert.Error(t, err)
}

func TestTrackLayoutPlacesObjectsInSlots(t *testing.T) {
	a := canvas.NewRectangle(nil)
	c := canvas.NewRectangle(nil)
	l := &trackLayout{
		tracks: []*ColumnDefinition{{Width: Absolute(40)}, {Width: Absolute(0)}, {Width: GridLengthStar}},
		slots:  []int{0, 2},
	}

	l.Layout([]fyne.CanvasObject{a, c}, fyne.NewSize(100, 20))

	got := []fyne.Position{a.Position(), c.Position()}
	want := []fyne.Position{fyne.NewPos(0, 0), fyne.NewPos(40, 0)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, fyne.NewSize(40, 20), a.Size())
	assert.Equal(t, fyne.NewSize(60, 20), c.Size())
}

func TestTrackLayoutMinSize(t *testing.T) {
	a := canvas.NewRectangle(nil)
	a.SetMinSize(fyne.NewSize(10, 30))
	b := canvas.NewRectangle(nil)
	b.SetMinSize(fyne.NewSize(25, 12))
	l := &trackLayout{tracks: []*ColumnDefinition{{Width: Absolute(40)}, {Width: GridLengthAuto}}}

	assert.Equal(t, fyne.NewSize(65, 30), l.MinSize([]fyne.CanvasObject{a, b}))
}

func TestTrackLayoutShowsObjectsOnceTheirTrackExists(t *testing.T) {
	a := canvas.NewRectangle(nil)
	l := &trackLayout{
		tracks: []*ColumnDefinition{{Width: Absolute(40)}},
		slots:  []int{1},
	}

	l.Layout([]fyne.CanvasObject{a}, fyne.NewSize(100, 20))
	assert.True(t, a.Visible())
	assert.Equal(t, fyne.NewSize(0, 20), a.Size())

	l.tracks = append(l.tracks, &ColumnDefinition{Width: GridLengthStar})
	l.Layout([]fyne.CanvasObject{a}, fyne.NewSize(100, 20))
	assert.True(t, a.Visible())
	assert.Equal(t, fyne.NewPos(40, 0), a.Position())
	assert.Equal(t, fyne.NewSize(60, 20), a.Size())
}

func TestTrackLayoutSharedAutoWidths(t *testing.T) {
	a := canvas.NewRectangle(nil)
	a.SetMinSize(fyne.NewSize(10, 20))
	l := &trackLayout{
		tracks: []*ColumnDefinition{{Width: GridLengthAuto}, {Width: GridLengthStar}},
		autos:  func() []float32 { return []float32{70, 0} },
	}
	b := canvas.NewRectangle(nil)

	l.Layout([]fyne.CanvasObject{a, b}, fyne.NewSize(100, 20))

	assert.Equal(t, fyne.NewSize(70, 20), a.Size())
	assert.Equal(t, fyne.NewSize(30, 20), b.Size())
	assert.Equal(t, fyne.NewSize(70, 20), l.MinSize([]fyne.CanvasObject{a, b}))
}

func TestPlaceAlignments(t *testing.T) {
	tests := []struct {
		align        LayoutAlignment
		size, offset float32
	}{
		{AlignCenter, 20, 40},
		{AlignStart, 20, 0},
		{AlignEnd, 20, 80},
		{AlignFill, 100, 0},
	}
	for _, tt := range tests {
		size, offset := place(tt.align, 20, 100)
		assert.Equal(t, tt.size, size, "size for %d", tt.align)
		assert.Equal(t, tt.offset, offset, "offset for %d", tt.align)
	}

	size, offset := place(AlignCenter, 150, 100)
	assert.Equal(t, float32(100), size, "content wider than the cell fills it")
	assert.Zero(t, offset)
}
