package windows

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMainWindow(t *testing.T) *MainWindow {
	t.Helper()
	mw, err := NewMainWindow(test.NewTempApp(t))
	require.NoError(t, err)
	return mw
}

func statusText(t *testing.T, mw *MainWindow) string {
	t.Helper()
	s, err := mw.status.Get()
	require.NoError(t, err)
	return s
}

func TestMainWindowShowsStandings(t *testing.T) {
	mw := newTestMainWindow(t)

	assert.Len(t, mw.Grid().Items(), 12)
	assert.Len(t, mw.arrowGrid.Items(), 12)
	assert.Equal(t, "Ready", statusText(t, mw))
}

func TestMainWindowApplyFilter(t *testing.T) {
	mw := newTestMainWindow(t)

	mw.ApplyFilter("Conf = East")
	assert.Len(t, mw.Grid().Items(), 6)
	assert.Contains(t, statusText(t, mw), "Showing 6 teams")

	mw.ApplyFilter("Conf = West AND Won > 55")
	assert.Len(t, mw.Grid().Items(), 3)

	mw.ApplyFilter("NOT Conf = East")
	assert.Len(t, mw.Grid().Items(), 6)

	mw.ApplyFilter("")
	assert.Len(t, mw.Grid().Items(), 12)
	assert.Equal(t, "Filter cleared", statusText(t, mw))
}

func TestMainWindowInvalidFilterKeepsItems(t *testing.T) {
	mw := newTestMainWindow(t)

	mw.ApplyFilter("Payroll > 10")
	assert.Len(t, mw.Grid().Items(), 12)
	assert.Equal(t, "Invalid filter", statusText(t, mw))
}

func TestMainWindowSelectionUpdatesList(t *testing.T) {
	mw := newTestMainWindow(t)
	items := mw.Grid().Items()

	mw.Grid().SetSelectedItems(items[0], items[1])

	names, err := mw.selectedBindList.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Boston Celtics", "New York Knicks"}, names)
	assert.Equal(t, "Selected 2 teams", statusText(t, mw))
}

func TestMainWindowEditSelected(t *testing.T) {
	mw := newTestMainWindow(t)
	items := mw.Grid().Items()

	mw.Grid().SetSelectedItem(items[2])
	mw.EditSelected()

	assert.Same(t, items[2], mw.Grid().RowToEdit())
	assert.Equal(t, "Editing Milwaukee Bucks", statusText(t, mw))
}

func TestMainWindowRefresh(t *testing.T) {
	mw := newTestMainWindow(t)
	first := mw.Grid().Items()[0].(*Team)
	first.Won = 0

	mw.Grid().RefreshView().BeginRefresh()

	assert.False(t, mw.Grid().RefreshView().IsRefreshing())
	assert.Equal(t, 64, mw.Grid().Items()[0].(*Team).Won)
	assert.Equal(t, "Reloaded 12 teams", statusText(t, mw))
}

func TestMainWindowRefreshClearsStaleSelection(t *testing.T) {
	mw := newTestMainWindow(t)
	items := mw.Grid().Items()
	mw.Grid().SetSelectedItem(items[0])
	mw.EditSelected()

	mw.Grid().RefreshView().BeginRefresh()

	names, err := mw.selectedBindList.Get()
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.Empty(t, mw.Grid().SelectedItems())
	assert.Nil(t, mw.Grid().RowToEdit())
	assert.Equal(t, "Reloaded 12 teams", statusText(t, mw))
}
