// Copyright 2025 Magnus Pierre
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package datagrid

import "weak"

// WeakEventProxy subscribes a handler to an event of a source without keeping
// either of them alive.
//
// The source only holds the proxy's relay. The proxy holds the source and the
// handler through weak pointers, so the handler must be kept alive by its owner
// (usually a field of the owner). Once the owner is collected the next event
// unsubscribes the proxy instead of calling a dead handler.
type WeakEventProxy[S any, A any] struct {
	event   func(*S) *Event[A]
	source  weak.Pointer[S]
	handler weak.Pointer[EventHandler[A]]
	token   Token
}

// NewWeakEventProxy returns a proxy for the event selected by event.
func NewWeakEventProxy[S any, A any](event func(*S) *Event[A]) *WeakEventProxy[S, A] {
	return &WeakEventProxy[S, A]{event: event}
}

// NewWeakCollectionChangedProxy returns a proxy for the CollectionChanged
// event of an observable list.
func NewWeakCollectionChangedProxy[T any]() *WeakEventProxy[ObservableList[T], CollectionChange[T]] {
	return NewWeakEventProxy(func(l *ObservableList[T]) *Event[CollectionChange[T]] {
		return &l.CollectionChanged
	})
}

// NewWeakSelectionChangedProxy returns a proxy for the SelectionChanged event
// of a grid.
func NewWeakSelectionChangedProxy() *WeakEventProxy[DataGrid, SelectionChange] {
	return NewWeakEventProxy(func(g *DataGrid) *Event[SelectionChange] {
		return &g.SelectionChanged
	})
}

// NewWeakRefreshingProxy returns a proxy for the Refreshing event of a
// RefreshView.
func NewWeakRefreshingProxy() *WeakEventProxy[RefreshView, struct{}] {
	return NewWeakEventProxy(func(v *RefreshView) *Event[struct{}] {
		return &v.Refreshing
	})
}

// NewWeakSizeChangedProxy returns a proxy for the SizeChanged event of a column.
func NewWeakSizeChangedProxy() *WeakEventProxy[Column, struct{}] {
	return NewWeakEventProxy(func(c *Column) *Event[struct{}] {
		return &c.SizeChanged
	})
}

// NewWeakEditTargetProxy returns a proxy for the EditTargetChanged event of a grid.
func NewWeakEditTargetProxy() *WeakEventProxy[DataGrid, EditTargetChange] {
	return NewWeakEventProxy(func(g *DataGrid) *Event[EditTargetChange] {
		return &g.EditTargetChanged
	})
}

// TryGetSource returns the source if it is still alive.
func (p *WeakEventProxy[S, A]) TryGetSource() (*S, bool) {
	s := p.source.Value()
	return s, s != nil
}

// TryGetHandler returns the handler if its owner still holds it.
func (p *WeakEventProxy[S, A]) TryGetHandler() (EventHandler[A], bool) {
	h := p.handler.Value()
	if h == nil || *h == nil {
		return nil, false
	}
	return *h, true
}

// Subscribe relays the source's event to handler, replacing any previous
// subscription of this proxy.
func (p *WeakEventProxy[S, A]) Subscribe(source *S, handler *EventHandler[A]) {
	p.detach()
	p.token = p.event(source).Subscribe(p.relay)
	p.source = weak.Make(source)
	p.handler = weak.Make(handler)
}

// Unsubscribe detaches from the current source and forgets the handler.
// It is safe to call more than once.
func (p *WeakEventProxy[S, A]) Unsubscribe() {
	p.detach()
	p.source = weak.Pointer[S]{}
	p.handler = weak.Pointer[EventHandler[A]]{}
}

// Subscribed reports whether the proxy is attached to a live source.
func (p *WeakEventProxy[S, A]) Subscribed() bool {
	_, ok := p.TryGetSource()
	return ok && p.token != 0
}

func (p *WeakEventProxy[S, A]) detach() {
	if s, ok := p.TryGetSource(); ok && p.token != 0 {
		p.event(s).Unsubscribe(p.token)
	}
	p.token = 0
}

func (p *WeakEventProxy[S, A]) relay(sender any, args A) {
	handler, ok := p.TryGetHandler()
	if !ok {
		p.Unsubscribe()
		return
	}
	handler(sender, args)
}
