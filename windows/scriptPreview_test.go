package windows

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styleAt(t *testing.T, rows []widget.TextGridRow, line, col int) widget.TextGridStyle {
	t.Helper()
	require.Less(t, line, len(rows))
	require.Less(t, col, len(rows[line].Cells))
	return rows[line].Cells[col].Style
}

func TestHighlightScript(t *testing.T) {
	rows := highlightScript("x := 42 // answer\nfor i := range len(\"ab\") {}")

	require.Len(t, rows, 2)
	assert.Len(t, rows[0].Cells, len("x := 42 // answer"))
	assert.Nil(t, styleAt(t, rows, 0, 0), "identifiers keep the theme color")
	assert.Equal(t, scriptStyles[classOperator], styleAt(t, rows, 0, 2))
	assert.Equal(t, scriptStyles[classNumber], styleAt(t, rows, 0, 5))
	assert.Equal(t, scriptStyles[classComment], styleAt(t, rows, 0, 10))
	assert.Equal(t, scriptStyles[classKeyword], styleAt(t, rows, 1, 0))
	assert.Equal(t, scriptStyles[classBuiltin], styleAt(t, rows, 1, 15))
	assert.Equal(t, scriptStyles[classString], styleAt(t, rows, 1, 19))
}

func TestHighlightScriptMultiByte(t *testing.T) {
	rows := highlightScript(`s := "héllo"`)

	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Cells, 12)
	assert.Equal(t, 'é', rows[0].Cells[7].Rune)
	assert.Equal(t, scriptStyles[classString], rows[0].Cells[7].Style)
}

func TestErrorLine(t *testing.T) {
	assert.Equal(t, 2, errorLine(errors.New("_.go:22:3: undefined: foo"), 20))
	assert.Zero(t, errorLine(errors.New("_.go:5:1: expected declaration"), 20))
	assert.Zero(t, errorLine(errors.New("runtime panic"), 20))
	assert.Zero(t, errorLine(nil, 20))
}

func TestMarkLine(t *testing.T) {
	test.NewTempApp(t)
	rows := highlightScript("a := 1\nb := 2")
	markLine(rows, 2)

	assert.Nil(t, rows[0].Style)
	require.NotNil(t, rows[1].Style)
	style, ok := rows[1].Cells[5].Style.(*widget.CustomTextGridStyle)
	require.True(t, ok)
	assert.NotNil(t, style.BGColor)
	assert.Equal(t, scriptStyles[classNumber].(*widget.CustomTextGridStyle).FGColor, style.FGColor)

	markLine(rows, 7)
}

func TestConsolePreviewMarksFailingLine(t *testing.T) {
	c, _ := newTestConsole(t)

	c.SetCode("fmt.Println(1)\nundefinedFunction()")
	c.executeCode()

	require.Len(t, c.preview.grid.Rows, 2)
	assert.Nil(t, c.preview.grid.Rows[0].Style)
	assert.NotNil(t, c.preview.grid.Rows[1].Style)
}
