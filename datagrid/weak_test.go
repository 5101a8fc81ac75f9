package datagrid

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticker struct {
	Ticked Event[string]
}

func newTickerProxy() *WeakEventProxy[ticker, string] {
	return NewWeakEventProxy(func(t *ticker) *Event[string] { return &t.Ticked })
}

func TestWeakProxyRelaysToHandler(t *testing.T) {
	src := &ticker{}
	p := newTickerProxy()
	var got []string
	h := handler(func(_ any, v string) { got = append(got, v) })

	p.Subscribe(src, h)
	src.Ticked.Emit(src, "one")

	assert.Equal(t, []string{"one"}, got)
	assert.True(t, p.Subscribed())
	s, ok := p.TryGetSource()
	require.True(t, ok)
	assert.Same(t, src, s)
	runtime.KeepAlive(h)
}

func TestWeakProxyResubscribeMovesToNewSource(t *testing.T) {
	first, second := &ticker{}, &ticker{}
	p := newTickerProxy()
	calls := 0
	h := handler(func(any, string) { calls++ })

	p.Subscribe(first, h)
	p.Subscribe(second, h)
	first.Ticked.Emit(first, "a")
	second.Ticked.Emit(second, "b")

	assert.Equal(t, 1, calls)
	assert.Zero(t, first.Ticked.Len())
	assert.Equal(t, 1, second.Ticked.Len())
	runtime.KeepAlive(h)
}

func TestWeakProxySubscribeSameSourceTwice(t *testing.T) {
	src := &ticker{}
	p := newTickerProxy()
	calls := 0
	h := handler(func(any, string) { calls++ })

	p.Subscribe(src, h)
	p.Subscribe(src, h)
	src.Ticked.Emit(src, "a")

	assert.Equal(t, 1, calls)
	runtime.KeepAlive(h)
}

func TestWeakProxyUnsubscribeIsIdempotent(t *testing.T) {
	src := &ticker{}
	p := newTickerProxy()
	h := handler(func(any, string) { t.Fatal("handler called after Unsubscribe") })

	p.Subscribe(src, h)
	p.Unsubscribe()
	p.Unsubscribe()
	src.Ticked.Emit(src, "a")

	assert.Zero(t, src.Ticked.Len())
	assert.False(t, p.Subscribed())
	_, ok := p.TryGetHandler()
	assert.False(t, ok)
	runtime.KeepAlive(h)
}

func TestWeakProxyDropsCollectedHandler(t *testing.T) {
	src := &ticker{}
	p := newTickerProxy()
	calls := 0
	func() {
		h := handler(func(any, string) { calls++ })
		p.Subscribe(src, h)
		src.Ticked.Emit(src, "alive")
		runtime.KeepAlive(h)
	}()

	runtime.GC()
	src.Ticked.Emit(src, "collected")

	assert.Equal(t, 1, calls)
	assert.Zero(t, src.Ticked.Len())
}

func TestWeakProxyDoesNotKeepSourceAlive(t *testing.T) {
	p := newTickerProxy()
	h := handler(func(any, string) {})
	func() {
		p.Subscribe(&ticker{}, h)
	}()

	runtime.GC()

	_, ok := p.TryGetSource()
	assert.False(t, ok)
	assert.False(t, p.Subscribed())
	p.Unsubscribe()
	runtime.KeepAlive(h)
}

func TestWeakCollectionChangedProxy(t *testing.T) {
	list := NewObservableList[string]()
	p := NewWeakCollectionChangedProxy[string]()
	var actions []CollectionAction
	h := handler(func(_ any, c CollectionChange[string]) { actions = append(actions, c.Action) })

	p.Subscribe(list, h)
	list.Add("a")
	list.Clear()

	assert.Equal(t, []CollectionAction{CollectionAdd, CollectionReset}, actions)
	runtime.KeepAlive(h)
}
