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

package windows

import (
	"go/scanner"
	"go/token"
	"image/color"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// tokenClass is the highlighting class of a script token
type tokenClass int

const (
	classPlain tokenClass = iota
	classKeyword
	classString
	classComment
	classNumber
	classOperator
	classBuiltin
)

// scriptStyles is the color scheme of the script preview
var scriptStyles = map[tokenClass]widget.TextGridStyle{
	classKeyword: &widget.CustomTextGridStyle{
		FGColor:   color.NRGBA{R: 255, G: 20, B: 147, A: 255},
		TextStyle: fyne.TextStyle{Bold: true},
	},
	classString: &widget.CustomTextGridStyle{
		FGColor: color.NRGBA{R: 0, G: 180, B: 0, A: 255},
	},
	classComment: &widget.CustomTextGridStyle{
		FGColor:   color.NRGBA{R: 128, G: 128, B: 128, A: 255},
		TextStyle: fyne.TextStyle{Italic: true},
	},
	classNumber: &widget.CustomTextGridStyle{
		FGColor: color.NRGBA{R: 0, G: 150, B: 255, A: 255},
	},
	classOperator: &widget.CustomTextGridStyle{
		FGColor: color.NRGBA{R: 120, G: 120, B: 120, A: 255},
	},
	classBuiltin: &widget.CustomTextGridStyle{
		FGColor:   color.NRGBA{R: 0, G: 180, B: 180, A: 255},
		TextStyle: fyne.TextStyle{Bold: true},
	},
}

var goBuiltins = map[string]bool{
	"bool": true, "byte": true, "error": true, "float32": true, "float64": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"rune": true, "string": true, "uint": true, "uint8": true, "uint16": true,
	"uint32": true, "uint64": true, "any": true, "nil": true, "true": true,
	"false": true, "len": true, "cap": true, "append": true, "make": true,
	"new": true, "panic": true,
}

func classify(tok token.Token, lit string) tokenClass {
	switch {
	case tok.IsKeyword():
		return classKeyword
	case tok == token.STRING || tok == token.CHAR:
		return classString
	case tok == token.COMMENT:
		return classComment
	case tok == token.INT || tok == token.FLOAT || tok == token.IMAG:
		return classNumber
	case tok == token.IDENT && goBuiltins[lit]:
		return classBuiltin
	case tok.IsOperator():
		return classOperator
	}
	return classPlain
}

// highlightScript splits src into styled text grid rows.
// Text the scanner rejects keeps the plain style.
func highlightScript(src string) []widget.TextGridRow {
	styles := make([]tokenClass, len(src))

	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))
	var s scanner.Scanner
	s.Init(file, []byte(src), nil, scanner.ScanComments)
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok == token.SEMICOLON && lit == "\n" {
			continue
		}
		class := classify(tok, lit)
		if class == classPlain {
			continue
		}
		text := lit
		if text == "" {
			text = tok.String()
		}
		start := file.Offset(pos)
		for i := start; i < start+len(text) && i < len(styles); i++ {
			styles[i] = class
		}
	}

	var rows []widget.TextGridRow
	var row widget.TextGridRow
	for i, r := range src {
		if r == '\n' {
			rows = append(rows, row)
			row = widget.TextGridRow{}
			continue
		}
		row.Cells = append(row.Cells, widget.TextGridCell{Rune: r, Style: scriptStyles[styles[i]]})
	}
	return append(rows, row)
}

// markLine gives every cell of row a highlighted background.
func markLine(rows []widget.TextGridRow, line int) {
	if line < 1 || line > len(rows) {
		return
	}
	bg := theme.Color(theme.ColorNameError)
	row := &rows[line-1]
	row.Style = &widget.CustomTextGridStyle{BGColor: bg}
	for i, cell := range row.Cells {
		style := &widget.CustomTextGridStyle{BGColor: bg}
		if custom, ok := cell.Style.(*widget.CustomTextGridStyle); ok {
			style.FGColor = custom.FGColor
			style.TextStyle = custom.TextStyle
		}
		row.Cells[i].Style = style
	}
}

var errorPosition = regexp.MustCompile(`^[^:\s]*\.go:(\d+):(\d+)`)

// errorLine returns the script line an interpreter error points at, or 0.
// offset is the number of lines wrapped around the script.
func errorLine(err error, offset int) int {
	if err == nil {
		return 0
	}
	m := errorPosition.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	line, _ := strconv.Atoi(m[1])
	if line -= offset; line < 1 {
		return 0
	}
	return line
}

// scriptPreview is a line-numbered, highlighted copy of the console script.
type scriptPreview struct {
	grid *widget.TextGrid
	text string
}

func newScriptPreview() *scriptPreview {
	grid := widget.NewTextGrid()
	grid.ShowLineNumbers = true
	return &scriptPreview{grid: grid}
}

// SetText highlights text, marking line when it is positive.
func (p *scriptPreview) SetText(text string, line int) {
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	p.text = text
	rows := highlightScript(text)
	markLine(rows, line)
	p.grid.Rows = rows
	p.grid.Refresh()
}
