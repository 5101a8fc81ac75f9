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
	"image/color"
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// createViewCell builds the read-only cell of col for the row's item.
func (r *Row) createViewCell(col *Column) *cellFrame {
	if template := col.CellTemplate(); template != nil {
		return r.wrap(r.templated(template, col), col)
	}

	label := widget.NewLabel(formatField(r.item, col))
	label.Alignment = col.TextAlignment()
	label.Wrapping = col.LineBreakMode().wrapping()
	label.Truncation = col.LineBreakMode().truncation()
	label.TextStyle = r.grid.config.TextStyle

	frame := r.wrap(label, col)
	frame.label = label
	frame.layout.text = label
	return frame
}

// createEditCell builds the editor of col for the row's item.
func (r *Row) createEditCell(col *Column) *cellFrame {
	if template := col.EditCellTemplate(); template != nil {
		return r.wrap(r.templated(template, col), col)
	}
	editor := r.defaultEditor(col)
	frame := r.wrap(editor, col)
	frame.editor = editor
	return frame
}

func (r *Row) wrap(content fyne.CanvasObject, col *Column) *cellFrame {
	return wrapCellWithBorder(content, col, r.grid.config, r.bgColor)
}

func (r *Row) templated(template CellTemplate, col *Column) fyne.CanvasObject {
	content := template()
	if binder, ok := content.(ContextBinder); ok && strings.TrimSpace(col.PropertyName()) != "" {
		v, _ := fieldValue(r.item, col.PropertyName())
		binder.SetContext(v)
	}
	return content
}

// defaultEditor picks an editor for the kind of the column's field.
// Fields without a known kind get an empty placeholder.
func (r *Row) defaultEditor(col *Column) (editor fyne.CanvasObject) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("datagrid: creating editor for %s: %v", col, p)
			editor = placeholder()
		}
	}()

	kind := col.FieldKind(r.grid.itemType)
	value, _ := fieldValue(r.item, col.PropertyName())

	switch {
	case kind == KindString:
		entry := widget.NewEntry()
		entry.TextStyle = r.grid.config.TextStyle
		entry.SetText(formatField(r.item, col))
		entry.OnChanged = func(text string) { r.writeBack(col, text) }
		return entry
	case kind == KindBool:
		check := widget.NewCheck("", nil)
		b, _ := value.(bool)
		check.SetChecked(b)
		check.OnChanged = func(checked bool) { r.writeBack(col, checked) }
		return check
	case kind.IsNumeric():
		return newNumericEntry(kind, rawText(value), func(v any) { r.writeBack(col, v) })
	case kind == KindTime:
		date := widget.NewDateEntry()
		if t, ok := value.(time.Time); ok && !t.IsZero() {
			date.SetDate(&t)
		}
		date.OnChanged = func(t *time.Time) {
			if t != nil {
				r.writeBack(col, *t)
			}
		}
		return date
	default:
		return placeholder()
	}
}

func placeholder() fyne.CanvasObject {
	return canvas.NewRectangle(color.Transparent)
}

func (r *Row) writeBack(col *Column, value any) {
	if err := setFieldValue(r.item, col.PropertyName(), value); err != nil {
		log.Printf("datagrid: updating %s: %v", col, err)
	}
}

// formatField returns the display text of the column's field in item.
func formatField(item any, col *Column) string {
	name := col.PropertyName()
	if strings.TrimSpace(name) == "" {
		return ""
	}
	format := col.StringFormat()
	if rec, ok := item.(*Record); ok && format == "" {
		v, _ := rec.Value(name)
		return v.Formatted
	}
	v, ok := fieldValue(item, name)
	if !ok || v == nil {
		return ""
	}
	if format != "" {
		return fmt.Sprintf(format, v)
	}
	return rawText(v)
}

// rawText formats a field value without a column format. Times without a
// clock part print as dates.
func rawText(v any) string {
	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		if h, m, sec := t.Clock(); h == 0 && m == 0 && sec == 0 && t.Nanosecond() == 0 {
			return t.Format(time.DateOnly)
		}
	}
	return formatValue(v, TypeTimestamp)
}

// numericEntry is an entry that only keeps text that parses as its kind.
// Empty text is allowed and leaves the field unchanged.
type numericEntry struct {
	widget.Entry

	kind      FieldKind
	valid     string
	reverting bool
	onValue   func(any)
}

func newNumericEntry(kind FieldKind, text string, onValue func(any)) *numericEntry {
	e := &numericEntry{kind: kind, valid: text, onValue: onValue}
	e.ExtendBaseWidget(e)
	e.SetText(text)
	e.OnChanged = e.changed
	return e
}

func (e *numericEntry) changed(text string) {
	if e.reverting {
		return
	}
	if text == "" {
		e.valid = text
		return
	}
	v, err := e.kind.Parse(text)
	if err != nil {
		e.reverting = true
		e.SetText(e.valid)
		e.reverting = false
		return
	}
	e.valid = text
	if e.onValue != nil {
		e.onValue(v)
	}
}
