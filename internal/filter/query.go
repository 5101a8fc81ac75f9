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

package filter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

// CompOp is a comparison operator of a Condition.
type CompOp int

const (
	OpEqual CompOp = iota
	OpNotEqual
	OpGreater
	OpLess
	OpGreaterEqual
	OpLessEqual
	OpContains
)

// operators in matching order, so ">=" is found before "=".
var operators = []struct {
	op     CompOp
	symbol string
}{
	{OpGreaterEqual, ">="},
	{OpLessEqual, "<="},
	{OpNotEqual, "!="},
	{OpEqual, "="},
	{OpGreater, ">"},
	{OpLess, "<"},
	{OpContains, "~"},
}

func (op CompOp) String() string {
	for _, o := range operators {
		if o.op == op {
			return o.symbol
		}
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// Condition compares one column with a value. Values that parse as numbers
// on both sides compare numerically, everything else case-insensitively.
type Condition struct {
	Column   string
	Operator CompOp
	Value    string
}

var _ datagrid.Filter = Condition{}

// Evaluate implements datagrid.Filter. Rows without the column never match.
func (c Condition) Evaluate(row []datagrid.Value, columnNames []string) (bool, error) {
	col := indexOf(columnNames, c.Column)
	if col < 0 || col >= len(row) {
		return false, nil
	}
	cell := row[col].Formatted

	switch c.Operator {
	case OpEqual:
		return strings.EqualFold(cell, c.Value), nil
	case OpNotEqual:
		return !strings.EqualFold(cell, c.Value), nil
	case OpContains:
		return strings.Contains(strings.ToLower(cell), strings.ToLower(c.Value)), nil
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		return compare(cell, c.Value, c.Operator), nil
	default:
		return false, fmt.Errorf("%w: unknown operator %d", datagrid.ErrInvalidFilter, c.Operator)
	}
}

// Description implements datagrid.Filter.
func (c Condition) Description() string {
	return fmt.Sprintf("%s %s %s", c.Column, c.Operator, c.Value)
}

// Search matches rows where any cell contains Term, ignoring case.
type Search struct {
	Term string
}

var _ datagrid.Filter = Search{}

// Evaluate implements datagrid.Filter.
func (s Search) Evaluate(row []datagrid.Value, _ []string) (bool, error) {
	term := strings.ToLower(s.Term)
	for _, v := range row {
		if strings.Contains(strings.ToLower(v.Formatted), term) {
			return true, nil
		}
	}
	return false, nil
}

// Description implements datagrid.Filter.
func (s Search) Description() string {
	return fmt.Sprintf("contains %q", s.Term)
}

// Parse reads a query such as "Won > 40 AND Conf = East". Expressions are
// "column op value" with op one of = != > < >= <= ~, or bare words searched
// in every column, and NOT negates one expression. AND and OR combine
// expressions from left to right.
// An empty query returns a nil filter.
func Parse(query string, columnNames []string) (datagrid.Filter, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	var (
		result   datagrid.Filter
		pending  *LogicOp
		operands int
	)
	for _, part := range splitByLogicOps(query) {
		if part.isOperator {
			if result == nil || pending != nil {
				return nil, fmt.Errorf("%w: unexpected %s", datagrid.ErrInvalidFilter, part.text)
			}
			op := LogicAND
			if part.text == "OR" {
				op = LogicOR
			}
			pending = &op
			continue
		}

		expr, err := parseExpression(part.text, columnNames)
		if err != nil {
			return nil, err
		}
		switch {
		case result == nil:
			result = expr
		case pending == nil:
			return nil, fmt.Errorf("%w: missing AND/OR before %q", datagrid.ErrInvalidFilter, part.text)
		default:
			result = join(*pending, result, expr)
		}
		pending = nil
		operands++
	}

	if pending != nil || operands == 0 {
		return nil, fmt.Errorf("%w: query ends with an operator", datagrid.ErrInvalidFilter)
	}
	return result, nil
}

type queryPart struct {
	text       string
	isOperator bool
}

// splitByLogicOps splits query by AND/OR while preserving the operators.
func splitByLogicOps(query string) []queryPart {
	var parts []queryPart
	var current strings.Builder
	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			parts = append(parts, queryPart{text: text})
		}
		current.Reset()
	}

	for i := 0; i < len(query); {
		if word, ok := logicWordAt(query, i); ok {
			flush()
			parts = append(parts, queryPart{text: word, isOperator: true})
			i += len(word)
			continue
		}
		current.WriteByte(query[i])
		i++
	}
	flush()
	return parts
}

// logicWordAt reports whether AND or OR starts at i as a whole word.
func logicWordAt(query string, i int) (string, bool) {
	for _, word := range []string{"AND", "OR"} {
		end := i + len(word)
		if end > len(query) || !strings.EqualFold(query[i:end], word) {
			continue
		}
		if (i == 0 || isWhitespace(query[i-1])) && (end == len(query) || isWhitespace(query[end])) {
			return word, true
		}
	}
	return "", false
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// parseExpression parses a single expression like "column = value",
// optionally negated with a leading NOT.
func parseExpression(text string, columnNames []string) (datagrid.Filter, error) {
	if len(text) > 4 && strings.EqualFold(text[:3], "NOT") && isWhitespace(text[3]) {
		inner, err := parseExpression(strings.TrimSpace(text[4:]), columnNames)
		if err != nil {
			return nil, err
		}
		return Not{Filter: inner}, nil
	}
	for _, o := range operators {
		idx := strings.Index(text, o.symbol)
		if idx <= 0 {
			continue
		}
		column := strings.TrimSpace(text[:idx])
		value := strings.Trim(strings.TrimSpace(text[idx+len(o.symbol):]), "\"'")
		if indexOf(columnNames, column) < 0 {
			return nil, fmt.Errorf("%w: unknown column %q", datagrid.ErrInvalidFilter, column)
		}
		return Condition{Column: column, Operator: o.op, Value: value}, nil
	}
	return Search{Term: strings.Trim(text, "\"'")}, nil
}

func indexOf(columnNames []string, name string) int {
	for i, n := range columnNames {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}

// compare orders cell and value numerically when both are numbers.
func compare(cell, value string, op CompOp) bool {
	a, errA := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	b, errB := strconv.ParseFloat(strings.TrimSpace(value), 64)

	var c int
	switch {
	case errA == nil && errB == nil:
		switch {
		case a < b:
			c = -1
		case a > b:
			c = 1
		}
	default:
		c = strings.Compare(strings.ToLower(cell), strings.ToLower(value))
	}

	switch op {
	case OpGreater:
		return c > 0
	case OpLess:
		return c < 0
	case OpGreaterEqual:
		return c >= 0
	case OpLessEqual:
		return c <= 0
	}
	return false
}
