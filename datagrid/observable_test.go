package datagrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordChanges[T any](l *ObservableList[T]) *[]CollectionChange[T] {
	var changes []CollectionChange[T]
	l.CollectionChanged.Subscribe(func(_ any, c CollectionChange[T]) { changes = append(changes, c) })
	return &changes
}

func TestObservableListEmitsOncePerChange(t *testing.T) {
	l := NewObservableList("a", "b")
	changes := recordChanges(l)

	l.Add("c", "d")
	require.NoError(t, l.Insert(0, "z"))
	require.NoError(t, l.Set(1, "A"))
	require.NoError(t, l.Move(0, 4))
	require.NoError(t, l.RemoveAt(0))
	assert.True(t, l.Remove(func(s string) bool { return s == "c" }))
	l.Reset("x")

	var actions []CollectionAction
	for _, c := range *changes {
		actions = append(actions, c.Action)
	}
	assert.Equal(t, []CollectionAction{
		CollectionAdd, CollectionAdd, CollectionReplace, CollectionMove,
		CollectionRemove, CollectionRemove, CollectionReset,
	}, actions)
	assert.Equal(t, []string{"x"}, l.Items())
}

func TestObservableListAddReportsIndex(t *testing.T) {
	l := NewObservableList(1, 2)
	changes := recordChanges(l)

	l.Add(3, 4)

	require.Len(t, *changes, 1)
	c := (*changes)[0]
	assert.Equal(t, 2, c.NewIndex)
	assert.Equal(t, []int{3, 4}, c.NewItems)
}

func TestObservableListMove(t *testing.T) {
	l := NewObservableList("a", "b", "c")

	require.NoError(t, l.Move(2, 0))

	assert.Equal(t, []string{"c", "a", "b"}, l.Items())
}

func TestObservableListOutOfRange(t *testing.T) {
	l := NewObservableList("a")
	changes := recordChanges(l)

	assert.ErrorIs(t, l.Insert(3, "b"), ErrInvalidColumn)
	assert.ErrorIs(t, l.RemoveAt(1), ErrInvalidColumn)
	assert.ErrorIs(t, l.Set(-1, "b"), ErrInvalidColumn)
	assert.ErrorIs(t, l.Move(0, 1), ErrInvalidColumn)
	assert.False(t, l.Remove(func(s string) bool { return s == "b" }))
	l.Add()

	assert.Empty(t, *changes)
}

func TestObservableListItemsIsSnapshot(t *testing.T) {
	l := NewObservableList("a")
	items := l.Items()
	items[0] = "changed"

	assert.Equal(t, "a", l.At(0))
}

func TestPropertyNotifiesOnChange(t *testing.T) {
	var notifier Event[string]
	var names []string
	notifier.Subscribe(func(_ any, name string) { names = append(names, name) })
	var olds, news []int
	p := NewProperty(nil, &notifier, "Count", 1, func(o, n int) {
		olds = append(olds, o)
		news = append(news, n)
	})

	assert.False(t, p.Set(1))
	assert.True(t, p.Set(2))

	assert.Equal(t, 2, p.Get())
	assert.Equal(t, []string{"Count"}, names)
	assert.Equal(t, []int{1}, olds)
	assert.Equal(t, []int{2}, news)
}

func TestPropertyRejectsInvalidName(t *testing.T) {
	for _, name := range []string{"", "count", "Two Words", "1st"} {
		t.Run(name, func(t *testing.T) {
			assert.PanicsWithError(t, `invalid property declaration: "`+name+`" is not an exported identifier`, func() {
				NewProperty[int](nil, nil, name, 0, nil)
			})
		})
	}
}
