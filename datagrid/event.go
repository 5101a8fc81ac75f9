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

// EventHandler receives an event raised by sender.
type EventHandler[A any] func(sender any, args A)

// Token identifies a handler registered on an Event.
type Token uint64

type eventEntry[A any] struct {
	token   Token
	handler EventHandler[A]
}

// Event is an ordered list of handlers. The zero value is ready to use.
// Events are not safe for concurrent use; they are raised on the UI goroutine.
type Event[A any] struct {
	last     Token
	handlers []eventEntry[A]
}

// Subscribe registers handler and returns the token that removes it.
func (e *Event[A]) Subscribe(handler EventHandler[A]) Token {
	e.last++
	e.handlers = append(e.handlers, eventEntry[A]{token: e.last, handler: handler})
	return e.last
}

// Unsubscribe removes the handler registered under token.
// It reports whether a handler was removed.
func (e *Event[A]) Unsubscribe(token Token) bool {
	for i, entry := range e.handlers {
		if entry.token == token {
			e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
			return true
		}
	}
	return false
}

// Emit calls every handler registered when Emit started, in subscription order.
// Handlers may subscribe or unsubscribe while the event is being emitted.
func (e *Event[A]) Emit(sender any, args A) {
	if len(e.handlers) == 0 {
		return
	}
	snapshot := make([]eventEntry[A], len(e.handlers))
	copy(snapshot, e.handlers)
	for _, entry := range snapshot {
		entry.handler(sender, args)
	}
}

// Len returns the number of registered handlers.
func (e *Event[A]) Len() int {
	return len(e.handlers)
}
