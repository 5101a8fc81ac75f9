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
	"reflect"
	"strings"
)

// FieldAccessor is implemented by items that expose named fields without
// being plain structs, such as Record.
type FieldAccessor interface {
	FieldValue(name string) (any, bool)
	SetFieldValue(name string, value any) error
}

// ItemType describes the fields of the items bound to a grid.
type ItemType interface {
	// FieldType returns the type of the field at path.
	FieldType(path string) (reflect.Type, error)
}

// TypeOfItems returns the ItemType of items of Go type t.
// Struct fields are looked up by name; dotted paths walk nested structs.
func TypeOfItems(t reflect.Type) ItemType {
	if t == nil {
		return nil
	}
	return structItemType{t: t}
}

type structItemType struct {
	t reflect.Type
}

func (s structItemType) FieldType(path string) (reflect.Type, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty property name", ErrFieldNotFound)
	}
	t := s.t
	for _, name := range strings.Split(path, ".") {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		switch t.Kind() {
		case reflect.Struct:
			f, ok := t.FieldByName(name)
			if !ok || !f.IsExported() {
				return nil, fmt.Errorf("%w: %s has no field %q", ErrFieldNotFound, t, name)
			}
			t = f.Type
		case reflect.Map:
			if t.Key().Kind() != reflect.String {
				return nil, fmt.Errorf("%w: %s is not keyed by string", ErrFieldNotFound, t)
			}
			t = t.Elem()
		default:
			return nil, fmt.Errorf("%w: %s has no field %q", ErrFieldNotFound, t, name)
		}
	}
	return t, nil
}

// fieldValue reads the field at path from item.
func fieldValue(item any, path string) (any, bool) {
	if item == nil || strings.TrimSpace(path) == "" {
		return nil, false
	}
	if fa, ok := item.(FieldAccessor); ok {
		return fa.FieldValue(path)
	}
	v, ok := walkField(reflect.ValueOf(item), path)
	if !ok || !v.CanInterface() {
		return nil, false
	}
	for isPlainPointer(v.Type()) {
		if v.IsNil() {
			return nil, true
		}
		v = v.Elem()
	}
	return v.Interface(), true
}

// isPlainPointer reports whether t points to a value shown and sorted as its
// element. Decimals and Comparable types keep their pointer.
func isPlainPointer(t reflect.Type) bool {
	if t.Kind() != reflect.Pointer || t == reflect.PointerTo(bigFloatType) || t.Implements(comparableType) {
		return false
	}
	return KindOf(t) != KindUnknown
}

// setFieldValue writes value to the field at path of item. Struct items must
// be passed by pointer to be writable.
func setFieldValue(item any, path string, value any) error {
	if item == nil {
		return fmt.Errorf("%w: nil item", ErrReadOnlyField)
	}
	if fa, ok := item.(FieldAccessor); ok {
		return fa.SetFieldValue(path, value)
	}

	names := strings.Split(path, ".")
	parent := reflect.ValueOf(item)
	if len(names) > 1 {
		var ok bool
		parent, ok = walkField(parent, strings.Join(names[:len(names)-1], "."))
		if !ok {
			return fmt.Errorf("%w: %q", ErrFieldNotFound, path)
		}
	}
	parent = indirect(parent)
	last := names[len(names)-1]

	switch parent.Kind() {
	case reflect.Struct:
		sf, ok := parent.Type().FieldByName(last)
		if !ok || !sf.IsExported() {
			return fmt.Errorf("%w: %q", ErrFieldNotFound, path)
		}
		field := parent.FieldByIndex(sf.Index)
		if !field.CanSet() {
			return fmt.Errorf("%w: %q", ErrReadOnlyField, path)
		}
		return assign(field, value)
	case reflect.Map:
		if parent.IsNil() || parent.Type().Key().Kind() != reflect.String {
			return fmt.Errorf("%w: %q", ErrReadOnlyField, path)
		}
		elem := reflect.New(parent.Type().Elem()).Elem()
		if err := assign(elem, value); err != nil {
			return err
		}
		parent.SetMapIndex(reflect.ValueOf(last).Convert(parent.Type().Key()), elem)
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrFieldNotFound, path)
	}
}

func walkField(v reflect.Value, path string) (reflect.Value, bool) {
	for _, name := range strings.Split(path, ".") {
		v = indirect(v)
		switch v.Kind() {
		case reflect.Struct:
			sf, ok := v.Type().FieldByName(name)
			if !ok || !sf.IsExported() {
				return reflect.Value{}, false
			}
			v = v.FieldByIndex(sf.Index)
		case reflect.Map:
			if v.Type().Key().Kind() != reflect.String {
				return reflect.Value{}, false
			}
			v = v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
			if !v.IsValid() {
				return reflect.Value{}, false
			}
		default:
			return reflect.Value{}, false
		}
	}
	return v, true
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

// assign stores value in dst, converting between numeric kinds.
func assign(dst reflect.Value, value any) error {
	if value == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	src := reflect.ValueOf(value)
	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	case dst.Kind() == reflect.Pointer && src.Type().AssignableTo(dst.Type().Elem()):
		p := reflect.New(dst.Type().Elem())
		p.Elem().Set(src)
		dst.Set(p)
	case src.Kind() == reflect.Pointer && !src.IsNil() && src.Elem().Type().AssignableTo(dst.Type()):
		dst.Set(src.Elem())
	case isNumber(src.Kind()) && isNumber(dst.Kind()):
		dst.Set(src.Convert(dst.Type()))
	case dst.Kind() == reflect.Pointer && isNumber(src.Kind()) && isNumber(dst.Type().Elem().Kind()):
		p := reflect.New(dst.Type().Elem())
		p.Elem().Set(src.Convert(dst.Type().Elem()))
		dst.Set(p)
	default:
		return fmt.Errorf("%w: cannot assign %s to %s", ErrTypeMismatch, src.Type(), dst.Type())
	}
	return nil
}

func isNumber(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}
