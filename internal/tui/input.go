package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/guestsheet/internal/sheet"
)

// fieldInput edits one sheet field. Single-line kinds are backed by a
// textinput, KindMultiline by a textarea. Neither caps the input length.
type fieldInput struct {
	field sheet.Field
	text  textinput.Model
	area  textarea.Model
}

func newFieldInput(f sheet.Field, mask rune, rows int) fieldInput {
	in := fieldInput{field: f}

	switch f.Kind {
	case sheet.KindMultiline:
		ta := textarea.New()
		ta.Placeholder = f.Label
		ta.ShowLineNumbers = false
		ta.Prompt = ""
		ta.CharLimit = 0
		ta.MaxHeight = 0
		ta.SetHeight(rows)
		ta.Blur()
		in.area = ta
	default:
		ti := textinput.New()
		ti.Placeholder = f.Label
		ti.Prompt = ""
		ti.CharLimit = 0
		if f.Kind == sheet.KindPassword {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = mask
		}
		in.text = ti
	}

	return in
}

func (in fieldInput) multiline() bool {
	return in.field.Kind == sheet.KindMultiline
}

// Value returns the current input text
func (in fieldInput) Value() string {
	if in.multiline() {
		return in.area.Value()
	}
	return in.text.Value()
}

// SetValue replaces the input text
func (in *fieldInput) SetValue(v string) {
	if in.Value() == v {
		return
	}
	if in.multiline() {
		in.area.SetValue(v)
		return
	}
	in.text.SetValue(v)
}

// Focus gives the input keyboard focus
func (in *fieldInput) Focus() tea.Cmd {
	if in.multiline() {
		return in.area.Focus()
	}
	return in.text.Focus()
}

// Blur removes keyboard focus
func (in *fieldInput) Blur() {
	if in.multiline() {
		in.area.Blur()
		return
	}
	in.text.Blur()
}

// SetWidth sizes the editable area
func (in *fieldInput) SetWidth(w int) {
	if w < 10 {
		w = 10
	}
	if in.multiline() {
		in.area.SetWidth(w)
		return
	}
	in.text.Width = w
}

// Update forwards a message to the underlying bubble
func (in fieldInput) Update(msg tea.Msg) (fieldInput, tea.Cmd) {
	var cmd tea.Cmd
	if in.multiline() {
		in.area, cmd = in.area.Update(msg)
	} else {
		in.text, cmd = in.text.Update(msg)
	}
	return in, cmd
}

// View renders the input
func (in fieldInput) View() string {
	if in.multiline() {
		return in.area.View()
	}
	return in.text.View()
}

func newFieldInputs(fields []sheet.Field, mask rune, rows int) []fieldInput {
	out := make([]fieldInput, len(fields))
	for i, f := range fields {
		out[i] = newFieldInput(f, mask, rows)
	}
	return out
}

func inputViews(inputs []fieldInput) []string {
	out := make([]string, len(inputs))
	for i, in := range inputs {
		out[i] = in.View()
	}
	return out
}
