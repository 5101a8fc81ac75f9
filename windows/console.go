package windows

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/magpierre/fyne-datagrid/datagrid"
)

// ErrNoCode is returned when the console is asked to run an empty script.
var ErrNoCode = errors.New("no code to execute")

const consoleExample = `// app.Grid() is the standings grid, app.Teams() its teams.
col, _ := app.Grid().Column("Last10")
col.SetVisible(true)
for _, t := range app.Teams() {
	if strings.HasPrefix(t.Streak.String(), "Won") {
		fmt.Println(t.Name, t.Streak)
	}
}`

// scriptTemplate wraps a console script into a program.
const scriptTemplate = `package main

import (
	"fmt"
	"strings"
	"app"
	"github.com/magpierre/fyne-datagrid/datagrid"
	"github.com/magpierre/fyne-datagrid/filter"
)

var (
	_ = fmt.Sprint
	_ = strings.TrimSpace
	_ = datagrid.NewColumn
	_ = filter.Parse
	_ = app.Grid
)

func main() {
%s
}
`

// scriptLineOffset is the number of template lines before the script.
var scriptLineOffset = strings.Count(scriptTemplate[:strings.Index(scriptTemplate, "%s")], "\n")

// Console runs Go snippets against the live grid with the yaegi interpreter
type Console struct {
	w          fyne.Window
	grid       *datagrid.DataGrid
	standings  *Standings
	codeEditor *widget.Entry
	preview    *scriptPreview
	outputText *widget.RichText
	runButton  *widget.Button
	container  *fyne.Container
}

// NewConsole creates a console scripting grid
func NewConsole(w fyne.Window, grid *datagrid.DataGrid, standings *Standings) *Console {
	c := &Console{
		w:         w,
		grid:      grid,
		standings: standings,
	}
	c.createUI()
	return c
}

func (c *Console) createUI() {
	c.codeEditor = widget.NewMultiLineEntry()
	c.codeEditor.SetPlaceHolder(consoleExample)
	c.codeEditor.Wrapping = fyne.TextWrapOff
	c.codeEditor.TextStyle = fyne.TextStyle{Monospace: true}

	c.preview = newScriptPreview()
	c.codeEditor.OnChanged = func(text string) {
		c.preview.SetText(text, 0)
	}

	c.outputText = widget.NewRichText()
	c.outputText.Wrapping = fyne.TextWrapWord
	c.setOutput("Output will appear here...")

	c.runButton = widget.NewButtonWithIcon("Run", theme.MediaPlayIcon(), c.executeCode)
	clearButton := widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), c.clearOutput)
	exampleButton := widget.NewButtonWithIcon("Example", theme.DocumentIcon(), func() {
		c.SetCode(consoleExample)
	})

	editorSplit := container.NewVSplit(
		container.NewScroll(c.codeEditor),
		container.NewScroll(c.preview.grid),
	)
	editorSplit.SetOffset(0.5)

	split := container.NewHSplit(
		widget.NewCard("", "Script:", editorSplit),
		widget.NewCard("", "Result of execution:", container.NewScroll(c.outputText)),
	)
	split.SetOffset(0.55)

	c.container = container.NewBorder(
		container.NewHBox(c.runButton, clearButton, exampleButton),
		nil, nil, nil,
		split,
	)
}

// GetContainer returns the console content
func (c *Console) GetContainer() *fyne.Container {
	return c.container
}

// SetCode replaces the script
func (c *Console) SetCode(code string) {
	c.codeEditor.SetText(code)
}

// Run evaluates code as the body of a main function and returns what it
// printed. It runs on the calling goroutine so scripts may change the grid.
func (c *Console) Run(code string) (string, error) {
	if code == "" {
		return "", ErrNoCode
	}

	var out bytes.Buffer
	i := interp.New(interp.Options{
		Stdout: &out,
		Stderr: &out,
	})
	if err := i.Use(stdlib.Symbols); err != nil {
		return "", fmt.Errorf("loading stdlib: %w", err)
	}
	if err := i.Use(GridSymbols); err != nil {
		return "", fmt.Errorf("loading datagrid: %w", err)
	}
	if err := i.Use(sessionSymbols(c.grid, c.standings)); err != nil {
		return "", fmt.Errorf("loading session: %w", err)
	}

	wrapped := fmt.Sprintf(scriptTemplate, code)

	_, err := i.Eval(wrapped)
	return out.String(), err
}

func (c *Console) executeCode() {
	c.setOutput("Executing...\n")
	c.appendOutput("----------------------------------------\n")

	code := c.codeEditor.Text
	output, err := c.Run(code)
	c.preview.SetText(code, errorLine(err, scriptLineOffset))
	if output != "" {
		c.appendOutputStyled(output, true)
	}
	if err != nil {
		c.appendOutput(fmt.Sprintf("\nExecution error: %v\n", err))
	}
	c.appendOutput("----------------------------------------\n")
}

func (c *Console) setOutput(text string) {
	c.outputText.Segments = nil
	c.appendOutput(text)
}

func (c *Console) appendOutput(text string) {
	c.appendOutputStyled(text, false)
}

func (c *Console) appendOutputStyled(text string, bold bool) {
	c.outputText.Segments = append(c.outputText.Segments, &widget.TextSegment{
		Text: text,
		Style: widget.RichTextStyle{
			TextStyle: fyne.TextStyle{Bold: bold, Monospace: bold},
			ColorName: theme.ColorNameForeground,
		},
	})
	c.outputText.Refresh()
}

func (c *Console) clearOutput() {
	c.outputText.Segments = nil
	c.outputText.Refresh()
}
