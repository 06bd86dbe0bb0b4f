package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/classmate/internal/catalog"
	"github.com/alexisbeaulieu97/classmate/pkg/cm"
	"github.com/alexisbeaulieu97/classmate/pkg/cm/html"
	"github.com/alexisbeaulieu97/classmate/pkg/cm/term"
)

// Model contains the Bubbletea state for the catalog previewer.
type Model struct {
	lib      *catalog.Library
	ids      []string
	cursor   int
	input    textinput.Model
	props    cm.Props
	inputErr string
	terminal *term.Renderer
	markup   *html.Renderer
	width    int
	quitting bool
}

// NewModel constructs a previewer for every component of lib.
func NewModel(lib *catalog.Library) Model {
	input := textinput.New()
	input.Placeholder = "$size=lg $disabled children=Save"
	input.Prompt = "props › "
	input.CharLimit = 512
	input.Focus()

	opts := lib.Options()
	return Model{
		lib:      lib,
		ids:      lib.IDs(),
		input:    input,
		props:    cm.Props{},
		terminal: term.NewRenderer(opts...),
		markup:   html.NewRenderer(opts...),
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Selected returns the id of the highlighted component.
func (m Model) Selected() string {
	if len(m.ids) == 0 {
		return ""
	}
	return m.ids[m.cursor]
}

// Props returns the props applied to the preview.
func (m Model) Props() cm.Props {
	return m.props.Clone()
}

// InputError returns the last props parsing error, if any.
func (m Model) InputError() string {
	return m.inputErr
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) move(delta int) {
	if len(m.ids) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.ids)) % len(m.ids)
}

func (m *Model) applyInput() {
	props, err := catalog.ParseProps(strings.Fields(m.input.Value()))
	if err != nil {
		m.inputErr = err.Error()
		return
	}
	m.inputErr = ""
	m.props = props
}

// Run starts the previewer and blocks until the user quits.
func Run(lib *catalog.Library, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(NewModel(lib), opts...).Run()
	return err
}
