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

import (
	"fmt"
	"go/token"
	"slices"
)

// Property is an observable value. Set runs the change callback and then
// raises the owner's PropertyChanged event with the property name.
type Property[T comparable] struct {
	name     string
	value    T
	changed  func(old, new T)
	sender   any
	notifier *Event[string]
}

// NewProperty declares a property named name on sender.
//
// name must be an exported Go identifier; anything else is a programming
// error and panics with ErrInvalidProperty.
func NewProperty[T comparable](sender any, notifier *Event[string], name string, def T, changed func(old, new T)) *Property[T] {
	if !token.IsIdentifier(name) || !token.IsExported(name) {
		panic(fmt.Errorf("%w: %q is not an exported identifier", ErrInvalidProperty, name))
	}
	return &Property[T]{
		name:     name,
		value:    def,
		changed:  changed,
		sender:   sender,
		notifier: notifier,
	}
}

// Name returns the declared property name.
func (p *Property[T]) Name() string {
	return p.name
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	return p.value
}

// Set stores v and reports whether the value changed.
func (p *Property[T]) Set(v T) bool {
	old := p.value
	if old == v {
		return false
	}
	p.value = v
	if p.changed != nil {
		p.changed(old, v)
	}
	if p.notifier != nil {
		p.notifier.Emit(p.sender, p.name)
	}
	return true
}

// CollectionAction describes the kind of change made to an ObservableList.
type CollectionAction int

const (
	// CollectionAdd means items were inserted.
	CollectionAdd CollectionAction = iota
	// CollectionRemove means items were removed.
	CollectionRemove
	// CollectionReplace means an item was replaced in place.
	CollectionReplace
	// CollectionMove means an item changed position.
	CollectionMove
	// CollectionReset means the whole content changed.
	CollectionReset
)

// String returns the string representation of a CollectionAction.
func (a CollectionAction) String() string {
	switch a {
	case CollectionAdd:
		return "Add"
	case CollectionRemove:
		return "Remove"
	case CollectionReplace:
		return "Replace"
	case CollectionMove:
		return "Move"
	case CollectionReset:
		return "Reset"
	default:
		return fmt.Sprintf("Unknown(%d)", a)
	}
}

// CollectionChange describes one logical change of an ObservableList.
type CollectionChange[T any] struct {
	Action   CollectionAction
	NewItems []T
	OldItems []T
	// NewIndex is the position of NewItems, or -1.
	NewIndex int
	// OldIndex is the former position of OldItems, or -1.
	OldIndex int
}

// ObservableList is an ordered list that raises exactly one CollectionChanged
// event for every logical change.
type ObservableList[T any] struct {
	CollectionChanged Event[CollectionChange[T]]

	items []T
}

// NewObservableList returns a list holding items.
func NewObservableList[T any](items ...T) *ObservableList[T] {
	return &ObservableList[T]{items: slices.Clone(items)}
}

// Len returns the number of items.
func (l *ObservableList[T]) Len() int {
	return len(l.items)
}

// At returns the item at index i.
func (l *ObservableList[T]) At(i int) T {
	return l.items[i]
}

// Items returns a snapshot of the list.
func (l *ObservableList[T]) Items() []T {
	return slices.Clone(l.items)
}

// IndexOf returns the position of the first item for which match returns true, or -1.
func (l *ObservableList[T]) IndexOf(match func(T) bool) int {
	return slices.IndexFunc(l.items, match)
}

// Add appends items.
func (l *ObservableList[T]) Add(items ...T) {
	if len(items) == 0 {
		return
	}
	index := len(l.items)
	l.items = append(l.items, items...)
	l.emit(CollectionChange[T]{Action: CollectionAdd, NewItems: slices.Clone(items), NewIndex: index, OldIndex: -1})
}

// Insert places item at index i.
func (l *ObservableList[T]) Insert(i int, item T) error {
	if i < 0 || i > len(l.items) {
		return fmt.Errorf("%w: insert at %d of %d", ErrInvalidColumn, i, len(l.items))
	}
	l.items = slices.Insert(l.items, i, item)
	l.emit(CollectionChange[T]{Action: CollectionAdd, NewItems: []T{item}, NewIndex: i, OldIndex: -1})
	return nil
}

// RemoveAt removes the item at index i.
func (l *ObservableList[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: remove at %d of %d", ErrInvalidColumn, i, len(l.items))
	}
	old := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	l.emit(CollectionChange[T]{Action: CollectionRemove, OldItems: []T{old}, NewIndex: -1, OldIndex: i})
	return nil
}

// Remove removes the first item for which match returns true and reports
// whether one was found.
func (l *ObservableList[T]) Remove(match func(T) bool) bool {
	i := l.IndexOf(match)
	if i < 0 {
		return false
	}
	return l.RemoveAt(i) == nil
}

// Set replaces the item at index i.
func (l *ObservableList[T]) Set(i int, item T) error {
	if i < 0 || i >= len(l.items) {
		return fmt.Errorf("%w: set at %d of %d", ErrInvalidColumn, i, len(l.items))
	}
	old := l.items[i]
	l.items[i] = item
	l.emit(CollectionChange[T]{Action: CollectionReplace, NewItems: []T{item}, OldItems: []T{old}, NewIndex: i, OldIndex: i})
	return nil
}

// Move moves the item at from to position to.
func (l *ObservableList[T]) Move(from, to int) error {
	if from < 0 || from >= len(l.items) || to < 0 || to >= len(l.items) {
		return fmt.Errorf("%w: move %d to %d of %d", ErrInvalidColumn, from, to, len(l.items))
	}
	if from == to {
		return nil
	}
	item := l.items[from]
	l.items = slices.Delete(l.items, from, from+1)
	l.items = slices.Insert(l.items, to, item)
	l.emit(CollectionChange[T]{Action: CollectionMove, NewItems: []T{item}, OldItems: []T{item}, NewIndex: to, OldIndex: from})
	return nil
}

// Clear removes every item.
func (l *ObservableList[T]) Clear() {
	l.Reset()
}

// Reset replaces the whole content with items.
func (l *ObservableList[T]) Reset(items ...T) {
	old := l.items
	l.items = slices.Clone(items)
	l.emit(CollectionChange[T]{Action: CollectionReset, NewItems: slices.Clone(items), OldItems: old, NewIndex: -1, OldIndex: -1})
}

func (l *ObservableList[T]) emit(change CollectionChange[T]) {
	l.CollectionChanged.Emit(l, change)
}
