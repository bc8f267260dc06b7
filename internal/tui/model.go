package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/guestsheet/internal/logging"
	"github.com/muurk/guestsheet/internal/sheet"
)

// Defaults applied to zero-valued Options
const (
	DefaultTitle    = "Guest Information Sheet"
	DefaultMaskChar = '•'
	DefaultNoteRows = 3
)

// Options configures the sheet screen
type Options struct {
	Title     string // Heading shown above the toggle button
	MaskChar  rune   // Echo character for the WiFi password input
	NoteRows  int    // Height of the note description textarea
	AltScreen bool   // Run in the terminal's alternate screen

	// Output is where the UI draws; nil means stdout
	Output io.Writer
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.MaskChar == 0 {
		o.MaskChar = DefaultMaskChar
	}
	if o.NoteRows <= 0 {
		o.NoteRows = DefaultNoteRows
	}
	return o
}

// focusSlot indexes the focusable elements of the edit form, in tab order
type focusSlot int

const slotToggle focusSlot = 0

func houseSlot(i int) focusSlot { return focusSlot(1 + i) }
func petSlot(i int) focusSlot   { return houseSlot(len(sheet.HouseFields)) + focusSlot(i) }
func noteSlot(i int) focusSlot  { return slotAddPet + 1 + focusSlot(i) }

var (
	slotAddPet  = petSlot(len(sheet.PetFields))
	slotAddNote = noteSlot(len(sheet.NoteFields))
	slotCount   = slotAddNote + 1
)

func (f focusSlot) next() focusSlot {
	return (f + 1) % slotCount
}

func (f focusSlot) prev() focusSlot {
	return (f + slotCount - 1) % slotCount
}

// Model is the Bubble Tea model for the guest information sheet. It holds
// the form controller and one input per editable field, and renders the
// edit form or the guest view depending on the controller's mode.
type Model struct {
	Sheet *sheet.Sheet

	opts Options

	// Inputs, in descriptor order
	house []fieldInput
	pet   []fieldInput
	note  []fieldInput

	focus    focusSlot
	content  string
	viewport viewport.Model

	// Help
	help     help.Model
	editKeys editKeyMap
	viewKeys viewKeyMap

	// UI state
	Width  int
	Height int
}

// New creates a sheet model. A nil sheet starts a fresh one.
func New(s *sheet.Sheet, opts Options) Model {
	if s == nil {
		s = sheet.New()
	}
	opts = opts.withDefaults()

	m := Model{
		Sheet:    s,
		opts:     opts,
		house:    newFieldInputs(sheet.HouseFields, opts.MaskChar, opts.NoteRows),
		pet:      newFieldInputs(sheet.PetFields, opts.MaskChar, opts.NoteRows),
		note:     newFieldInputs(sheet.NoteFields, opts.MaskChar, opts.NoteRows),
		viewport: viewport.New(0, 0),
		help:     help.New(),
		editKeys: newEditKeyMap(),
		viewKeys: newViewKeyMap(),
	}

	m.syncInputs()
	if s.Editing() {
		m.setFocus(houseSlot(0))
	}
	m.refreshViewport()

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Global quit handler
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.Sheet.Editing() {
			cmd = m.updateEditing(msg)
		} else {
			cmd = m.updateViewing(msg)
		}

	default:
		// Cursor blink and friends
		if m.Sheet.Editing() {
			if in := m.focusedInput(); in != nil {
				*in, cmd = in.Update(msg)
			}
		}
	}

	m.refreshViewport()
	return m, cmd
}

func (m *Model) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.editKeys.Toggle):
		return m.toggle()
	case key.Matches(msg, m.editKeys.Next) && !m.inputKeeps(msg):
		return m.setFocus(m.focus.next())
	case key.Matches(msg, m.editKeys.Prev) && !m.inputKeeps(msg):
		return m.setFocus(m.focus.prev())
	case key.Matches(msg, m.editKeys.Activate) && !m.inputKeeps(msg):
		return m.activate()
	}
	return m.forward(msg)
}

func (m *Model) updateViewing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.viewKeys.Quit):
		return tea.Quit
	case key.Matches(msg, m.viewKeys.Toggle):
		return m.toggle()
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

// inputKeeps reports whether the focused input consumes a navigation key
// itself. Only the textarea does: arrows move its cursor and enter breaks a line.
func (m *Model) inputKeeps(msg tea.KeyMsg) bool {
	in := m.focusedInput()
	if in == nil || !in.multiline() {
		return false
	}
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyEnter:
		return true
	}
	return false
}

// activate presses the focused button, or moves past a single-line input
func (m *Model) activate() tea.Cmd {
	switch m.focus {
	case slotToggle:
		return m.toggle()
	case slotAddPet:
		if m.Sheet.AddPet() {
			m.syncInputs()
		}
		return nil
	case slotAddNote:
		if m.Sheet.AddNote() {
			m.syncInputs()
		}
		return nil
	}
	return m.setFocus(m.focus.next())
}

// toggle switches mode through the controller. A refused toggle focuses
// the first house input carrying an error.
func (m *Model) toggle() tea.Cmd {
	if !m.Sheet.ToggleMode() {
		for i, f := range sheet.HouseFields {
			if m.Sheet.Error(sheet.HouseField(f.Name)) != "" {
				return m.setFocus(houseSlot(i))
			}
		}
		return nil
	}

	m.viewport.GotoTop()
	if m.Sheet.Editing() {
		return m.setFocus(houseSlot(0))
	}
	m.setFocus(slotToggle)
	logging.Debug("Showing guest view")
	return nil
}

// forward sends a key to the focused input and pushes its value into the sheet
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	in := m.focusedInput()
	if in == nil {
		return nil
	}

	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	m.push(m.focus, in.Value())
	return cmd
}

// push copies an input value into the controller when it differs from the
// stored one, so cursor movement does not count as an edit.
func (m *Model) push(slot focusSlot, value string) {
	section, i := m.locate(slot)
	switch section {
	case sectionHouse:
		field := sheet.HouseField(sheet.HouseFields[i].Name)
		if m.Sheet.House().Get(field) != value {
			m.Sheet.UpdateHouseField(field, value)
		}
	case sectionPet:
		field := sheet.PetField(sheet.PetFields[i].Name)
		if m.Sheet.PendingPet().Get(field) != value {
			m.Sheet.UpdatePetBuffer(field, value)
		}
	case sectionNote:
		field := sheet.NoteField(sheet.NoteFields[i].Name)
		if m.Sheet.PendingNote().Get(field) != value {
			m.Sheet.UpdateNoteBuffer(field, value)
		}
	}
}

// syncInputs reloads every input from the controller
func (m *Model) syncInputs() {
	house := m.Sheet.House()
	for i := range m.house {
		m.house[i].SetValue(house.Get(sheet.HouseField(m.house[i].field.Name)))
	}
	pet := m.Sheet.PendingPet()
	for i := range m.pet {
		m.pet[i].SetValue(pet.Get(sheet.PetField(m.pet[i].field.Name)))
	}
	note := m.Sheet.PendingNote()
	for i := range m.note {
		m.note[i].SetValue(note.Get(sheet.NoteField(m.note[i].field.Name)))
	}
}

// setFocus moves focus, blurring the previously focused input
func (m *Model) setFocus(slot focusSlot) tea.Cmd {
	if in := m.focusedInput(); in != nil {
		in.Blur()
	}
	m.focus = slot
	if !m.Sheet.Editing() {
		return nil
	}
	if in := m.focusedInput(); in != nil {
		return in.Focus()
	}
	return nil
}

type section int

const (
	sectionNone section = iota
	sectionHouse
	sectionPet
	sectionNote
)

// locate maps a focus slot to its input section and index
func (m *Model) locate(slot focusSlot) (section, int) {
	switch {
	case slot >= houseSlot(0) && slot < petSlot(0):
		return sectionHouse, int(slot - houseSlot(0))
	case slot >= petSlot(0) && slot < slotAddPet:
		return sectionPet, int(slot - petSlot(0))
	case slot >= noteSlot(0) && slot < slotAddNote:
		return sectionNote, int(slot - noteSlot(0))
	}
	return sectionNone, 0
}

// focusedInput returns the focused input, or nil when a button has focus
func (m *Model) focusedInput() *fieldInput {
	section, i := m.locate(m.focus)
	switch section {
	case sectionHouse:
		return &m.house[i]
	case sectionPet:
		return &m.pet[i]
	case sectionNote:
		return &m.note[i]
	}
	return nil
}

func (m *Model) resize(width, height int) {
	m.Width = width
	m.Height = height
	cw := contentWidth(width)
	m.help.Width = cw
	m.viewport.Width = cw
	m.viewport.Height = viewportHeight(height)

	inputWidth := cw - LabelWidth - 4
	for _, inputs := range [][]fieldInput{m.house, m.pet, m.note} {
		for i := range inputs {
			inputs[i].SetWidth(inputWidth)
		}
	}
}

func (m Model) screen() screen {
	width := 0
	if m.Width > 0 {
		width = contentWidth(m.Width)
	}
	return screen{
		title: m.opts.Title,
		sheet: m.Sheet,
		house: inputViews(m.house),
		pet:   inputViews(m.pet),
		note:  inputViews(m.note),
		focus: m.focus,
		width: width,
	}
}

// refreshViewport re-renders the sheet into the viewport, scrolling so the
// focused element stays visible while editing
func (m *Model) refreshViewport() {
	if !m.Sheet.Editing() {
		m.content = renderViewing(m.screen())
		m.viewport.SetContent(m.content)
		return
	}

	content, focusLine := renderEditing(m.screen())
	m.content = content
	m.viewport.SetContent(content)

	h := m.viewport.Height
	if h <= 0 {
		return
	}
	// Keep two lines of context around the focused line, enough for an
	// error message or the textarea rows
	switch {
	case focusLine < m.viewport.YOffset:
		m.viewport.SetYOffset(max(0, focusLine-2))
	case focusLine+2 >= m.viewport.YOffset+h:
		m.viewport.SetYOffset(focusLine + 3 - h)
	}
}

func (m Model) helpView() string {
	label := strings.ToLower(m.Sheet.ToggleLabel())
	if m.Sheet.Editing() {
		keys := m.editKeys
		keys.Toggle.SetHelp("ctrl+t", label)
		return m.help.View(keys)
	}
	keys := m.viewKeys
	keys.Toggle.SetHelp("enter/e", label)
	return m.help.View(keys)
}

// View renders the model. Before the first WindowSizeMsg the sheet is
// rendered without the surrounding container.
func (m Model) View() string {
	if m.Width == 0 {
		return m.content
	}
	return RenderApplicationContainer(m.viewport.View(), m.helpView(), m.Width, m.Height)
}

// Run shows the sheet until the user quits. The sheet is edited in place,
// so the caller reads the final state from s afterwards.
func Run(ctx context.Context, s *sheet.Sheet, opts Options) error {
	logging.Info("Starting sheet UI")
	_, err := tea.NewProgram(New(s, opts), programOptions(ctx, opts)...).Run()
	return err
}

func programOptions(ctx context.Context, opts Options) []tea.ProgramOption {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	return programOpts
}
