package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/guestsheet/internal/sheet"
)

// Section titles, shared by both modes
const (
	houseSectionTitle = "House Information"
	petSectionTitle   = "Pet Information"
	noteSectionTitle  = "Quirky House Notes"
)

// Button labels
const (
	addPetLabel  = "Add Pet"
	addNoteLabel = "Add Note"
)

// layout accumulates rendered blocks and remembers the line on which the
// focused block starts, so the viewport can keep it on screen.
type layout struct {
	b         strings.Builder
	lines     int
	focusLine int
}

func (l *layout) add(block string, focused bool) {
	if focused {
		l.focusLine = l.lines
	}
	l.b.WriteString(block)
	l.b.WriteString("\n")
	l.lines += lipgloss.Height(block)
}

func (l *layout) gap() {
	l.add("", false)
}

func (l *layout) String() string {
	return strings.TrimSuffix(l.b.String(), "\n")
}

// inputRow is a rendered input plus what the row needs around it
type inputRow struct {
	label   string
	view    string
	focused bool
	err     string
}

// renderInputRow renders "Label  [input]" with an optional error line beneath
func renderInputRow(row inputRow) string {
	labelStyle := LabelStyle
	if row.focused {
		labelStyle = FocusedLabelStyle
	}

	line := lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row.label+":"), "  ", row.view)
	if row.err == "" {
		return line
	}
	return line + "\n" + FieldErrorStyle.Render(row.err)
}

// renderButton renders a "[ Label ]" button in its enabled, focused or disabled style
func renderButton(label string, enabled bool, focused bool) string {
	text := "[ " + label + " ]"

	switch {
	case !enabled:
		return DisabledButtonStyle.Render(text)
	case focused:
		return FocusedButtonStyle.Render(text)
	default:
		return ButtonStyle.Render(text)
	}
}

// renderValueRow renders a read-only "Label: value" pair for the guest view
func renderValueRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label+":"), "  ", ValueStyle.Render(value))
}

// renderPetEntry renders one pet card
func renderPetEntry(p sheet.PetInfo, width int) string {
	body := []string{
		EntryTitleStyle.Render(sheet.FormatPetHeading(p)),
		EntryBodyStyle.Render("Feeding: " + p.FeedingInstructions),
		EntryBodyStyle.Render("Notes: " + sheet.FormatPetNotes(p)),
	}
	return entryBox(width).Render(strings.Join(body, "\n"))
}

// renderNoteEntry renders one note card
func renderNoteEntry(n sheet.QuirkyNote, width int) string {
	body := EntryTitleStyle.Render(n.Title) + "\n" + EntryBodyStyle.Render(n.Description)
	return entryBox(width).Render(body)
}

func entryBox(width int) lipgloss.Style {
	if width <= 0 {
		return EntryStyle
	}
	// Border and padding take four columns
	return EntryStyle.Width(width - 4)
}

// renderPetList renders the pet cards. An empty list renders the placeholder
// when showPlaceholder is set and nothing otherwise.
func renderPetList(pets []sheet.PetInfo, showPlaceholder bool, width int) string {
	if len(pets) == 0 {
		if showPlaceholder {
			return PlaceholderStyle.Render(sheet.NoPetsMessage)
		}
		return ""
	}

	cards := make([]string, 0, len(pets))
	for _, p := range pets {
		cards = append(cards, renderPetEntry(p, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderNoteList renders the note cards, see renderPetList
func renderNoteList(notes []sheet.QuirkyNote, showPlaceholder bool, width int) string {
	if len(notes) == 0 {
		if showPlaceholder {
			return PlaceholderStyle.Render(sheet.NoNotesMessage)
		}
		return ""
	}

	cards := make([]string, 0, len(notes))
	for _, n := range notes {
		cards = append(cards, renderNoteEntry(n, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderGuestHouse renders the non-empty house fields as label/value rows
func renderGuestHouse(h sheet.HouseInfo) string {
	rows := make([]string, 0, len(sheet.HouseFields))
	for _, f := range sheet.HouseFields {
		value := h.Get(sheet.HouseField(f.Name))
		if value == "" {
			continue
		}
		rows = append(rows, renderValueRow(f.Label, value))
	}
	return strings.Join(rows, "\n")
}

// screen is everything the sheet renderers read. Building it is the only
// place the Model is consulted, so the render functions stay pure.
type screen struct {
	title string
	sheet *sheet.Sheet
	house []string // rendered input views, HouseFields order
	pet   []string // rendered input views, PetFields order
	note  []string // rendered input views, NoteFields order
	focus focusSlot
	width int
}

// renderEditing renders the edit form and returns the line of the focused element
func renderEditing(sc screen) (string, int) {
	var l layout
	s := sc.sheet

	l.add(TitleStyle.Render(sc.title), false)
	l.add(renderButton(s.ToggleLabel(), true, sc.focus == slotToggle), sc.focus == slotToggle)
	l.add(StatusStyle.Render(s.Summary()), false)
	l.gap()

	l.add(SectionTitleStyle.Render(houseSectionTitle), false)
	for i, f := range sheet.HouseFields {
		slot := houseSlot(i)
		l.add(renderInputRow(inputRow{
			label:   f.Label,
			view:    sc.house[i],
			focused: sc.focus == slot,
			err:     s.Error(sheet.HouseField(f.Name)),
		}), sc.focus == slot)
	}
	l.gap()

	l.add(SectionTitleStyle.Render(petSectionTitle), false)
	for i, f := range sheet.PetFields {
		slot := petSlot(i)
		l.add(renderInputRow(inputRow{label: f.Label, view: sc.pet[i], focused: sc.focus == slot}), sc.focus == slot)
	}
	l.add(renderButton(addPetLabel, s.CanAddPet(), sc.focus == slotAddPet), sc.focus == slotAddPet)
	if list := renderPetList(s.Pets(), false, sc.width); list != "" {
		l.add(list, false)
	}
	l.gap()

	l.add(SectionTitleStyle.Render(noteSectionTitle), false)
	for i, f := range sheet.NoteFields {
		slot := noteSlot(i)
		l.add(renderInputRow(inputRow{label: f.Label, view: sc.note[i], focused: sc.focus == slot}), sc.focus == slot)
	}
	l.add(renderButton(addNoteLabel, s.CanAddNote(), sc.focus == slotAddNote), sc.focus == slotAddNote)
	if list := renderNoteList(s.Notes(), false, sc.width); list != "" {
		l.add(list, false)
	}

	return l.String(), l.focusLine
}

// renderViewing renders the read-only guest view
func renderViewing(sc screen) string {
	var l layout
	s := sc.sheet

	l.add(TitleStyle.Render(sc.title), false)
	l.add(renderButton(s.ToggleLabel(), true, true), true)
	l.gap()

	l.add(SectionTitleStyle.Render(houseSectionTitle), false)
	if house := renderGuestHouse(s.House()); house != "" {
		l.add(house, false)
	}
	l.gap()

	l.add(SectionTitleStyle.Render(petSectionTitle), false)
	l.add(renderPetList(s.Pets(), true, sc.width), false)
	l.gap()

	l.add(SectionTitleStyle.Render(noteSectionTitle), false)
	l.add(renderNoteList(s.Notes(), true, sc.width), false)

	return l.String()
}
