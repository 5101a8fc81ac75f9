package windows

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(t *testing.T) (*Console, *Standings) {
	t.Helper()
	grid := newOptionsGrid(t)
	s, err := DefaultStandings()
	require.NoError(t, err)
	return NewConsole(test.NewWindow(nil), grid, s), s
}

func TestConsoleRunPrints(t *testing.T) {
	c, _ := newTestConsole(t)

	out, err := c.Run(`fmt.Println(len(app.Grid().Items()), len(app.Teams()))`)
	require.NoError(t, err)
	assert.Equal(t, "12 12\n", out)
}

func TestConsoleRunChangesGrid(t *testing.T) {
	c, _ := newTestConsole(t)

	_, err := c.Run(`col, ok := app.Grid().Column("Div")
if ok {
	col.SetVisible(false)
}`)
	require.NoError(t, err)

	col, ok := c.grid.Column("Div")
	require.True(t, ok)
	assert.False(t, col.Visible())
}

func TestConsoleRunFilter(t *testing.T) {
	c, _ := newTestConsole(t)

	out, err := c.Run(`f, err := filter.Parse("Conf = West", []string{"Name", "Won", "Lost", "Percentage", "Conf"})
if err != nil {
	fmt.Println(err)
	return
}
fmt.Println(f.Description())`)
	require.NoError(t, err)
	assert.Contains(t, out, "Conf")
}

func TestConsoleRunErrors(t *testing.T) {
	c, _ := newTestConsole(t)

	_, err := c.Run("")
	assert.ErrorIs(t, err, ErrNoCode)

	_, err = c.Run("undefinedFunction()")
	assert.Error(t, err)
}

func TestConsoleExecuteShowsOutput(t *testing.T) {
	c, _ := newTestConsole(t)

	c.SetCode(`fmt.Println("hello")`)
	test.Tap(c.runButton)

	var text string
	for _, seg := range c.outputText.Segments {
		text += seg.Textual()
	}
	assert.Contains(t, text, "hello")
	assert.NotContains(t, text, "Execution error")
}
