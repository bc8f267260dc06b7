package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/muurk/guestsheet/internal/sheet"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// update runs one message through the model (test helper)
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	out, ok := updated.(Model)
	require.True(t, ok, "Update should return a tui.Model")
	return out, cmd
}

func press(t *testing.T, m Model, k tea.KeyType) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: k})
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

// filledSheet returns a sheet with every required house field set
func filledSheet() *sheet.Sheet {
	s := sheet.New()
	s.UpdateHouseField(sheet.FieldWiFiName, "Home")
	s.UpdateHouseField(sheet.FieldWiFiPassword, "secret")
	s.UpdateHouseField(sheet.FieldFirstAidLocation, "Kitchen")
	return s
}

// --- Focus Tests ---

func TestNew_FocusesFirstHouseInput(t *testing.T) {
	m := New(nil, Options{})

	require.NotNil(t, m.Sheet)
	require.True(t, m.Sheet.Editing())
	require.Equal(t, houseSlot(0), m.focus)
	require.True(t, m.house[0].text.Focused())
	require.Equal(t, DefaultTitle, m.opts.Title)
}

func TestFocusCycling_Forward(t *testing.T) {
	m := New(nil, Options{})

	m = press(t, m, tea.KeyTab)
	require.Equal(t, houseSlot(1), m.focus)
	require.False(t, m.house[0].text.Focused(), "previous input should blur")
	require.True(t, m.house[1].text.Focused())

	// A full cycle comes back around
	for i := 0; i < int(slotCount); i++ {
		m = press(t, m, tea.KeyTab)
	}
	require.Equal(t, houseSlot(1), m.focus)
}

func TestFocusCycling_Reverse(t *testing.T) {
	m := New(nil, Options{})

	m = press(t, m, tea.KeyShiftTab)
	require.Equal(t, slotToggle, m.focus)

	m = press(t, m, tea.KeyShiftTab)
	require.Equal(t, slotAddNote, m.focus, "shift+tab should wrap to the last button")
}

func TestFocusCycling_ArrowKeys(t *testing.T) {
	m := New(nil, Options{})

	m = press(t, m, tea.KeyDown)
	require.Equal(t, houseSlot(1), m.focus)

	m = press(t, m, tea.KeyUp)
	require.Equal(t, houseSlot(0), m.focus)
}

func TestFocusCycling_ArrowsStayInTextarea(t *testing.T) {
	m := New(nil, Options{})
	m.setFocus(noteSlot(1))

	m = typeText(t, m, "one")
	m = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "two")
	m = press(t, m, tea.KeyUp)

	require.Equal(t, noteSlot(1), m.focus, "up inside the textarea should move its cursor, not focus")
	require.Equal(t, "one\ntwo", m.Sheet.PendingNote().Description)
}

func TestEnter_AdvancesFromSingleLineInput(t *testing.T) {
	m := New(nil, Options{})

	m = press(t, m, tea.KeyEnter)
	require.Equal(t, houseSlot(1), m.focus)
}

// --- Editing Tests ---

func TestTyping_UpdatesSheet(t *testing.T) {
	m := New(nil, Options{})

	m = typeText(t, m, "Home")
	require.Equal(t, "Home", m.Sheet.House().WiFiName)

	m = press(t, m, tea.KeyBackspace)
	require.Equal(t, "Hom", m.Sheet.House().WiFiName)
}

func TestTyping_LongValuesAreNotTruncated(t *testing.T) {
	m := New(nil, Options{})

	long := strings.Repeat("a", 300)
	m = typeText(t, m, long)
	require.Equal(t, long, m.Sheet.House().WiFiName)

	m.setFocus(noteSlot(1))
	lines := make([]string, 120)
	for i := range lines {
		lines[i] = strings.Repeat("b", 30)
	}
	for i, line := range lines {
		if i > 0 {
			m = press(t, m, tea.KeyEnter)
		}
		m = typeText(t, m, line)
	}
	require.Equal(t, strings.Join(lines, "\n"), m.Sheet.PendingNote().Description)
}

func TestTyping_PetAndNoteBuffers(t *testing.T) {
	m := New(nil, Options{})

	m.setFocus(petSlot(0))
	m = typeText(t, m, "Rex")
	m.setFocus(noteSlot(0))
	m = typeText(t, m, "Doorbell")

	require.Equal(t, "Rex", m.Sheet.PendingPet().Name)
	require.Equal(t, "Doorbell", m.Sheet.PendingNote().Title)
	require.Empty(t, m.Sheet.House().WiFiName, "house info should be untouched")
}

func TestPasswordInput_IsMasked(t *testing.T) {
	m := New(nil, Options{MaskChar: '*'})

	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "secret")

	require.Equal(t, "secret", m.Sheet.House().WiFiPassword)
	view := m.View()
	require.NotContains(t, view, "secret")
	require.Contains(t, view, "******")
}

// --- Toggle Tests ---

func TestToggle_EmptyFieldsStaysEditing(t *testing.T) {
	m := New(nil, Options{})

	m = press(t, m, tea.KeyCtrlT)

	require.True(t, m.Sheet.Editing())
	require.Len(t, m.Sheet.Errors(), 3)
	view := m.View()
	for _, req := range sheet.RequiredHouseFields {
		require.Contains(t, view, req.Message)
	}
	require.NotContains(t, view, "Emergency contact is required")
}

func TestToggle_FailureFocusesFirstError(t *testing.T) {
	s := sheet.New()
	s.UpdateHouseField(sheet.FieldWiFiName, "Home")
	m := New(s, Options{})

	m = press(t, m, tea.KeyCtrlT)

	require.True(t, m.Sheet.Editing())
	require.Equal(t, houseSlot(1), m.focus, "focus should jump to the WiFi password")
}

func TestTyping_ClearsOnlyThatFieldsError(t *testing.T) {
	m := New(nil, Options{})
	m = press(t, m, tea.KeyCtrlT)
	require.Equal(t, houseSlot(0), m.focus)

	m = typeText(t, m, "H")

	require.Empty(t, m.Sheet.Error(sheet.FieldWiFiName))
	require.NotEmpty(t, m.Sheet.Error(sheet.FieldWiFiPassword))
	require.NotEmpty(t, m.Sheet.Error(sheet.FieldFirstAidLocation))
	require.NotContains(t, m.View(), "WiFi name is required")
}

func TestCursorMovement_KeepsError(t *testing.T) {
	m := New(nil, Options{})
	m = press(t, m, tea.KeyCtrlT)

	m = press(t, m, tea.KeyLeft)

	require.NotEmpty(t, m.Sheet.Error(sheet.FieldWiFiName), "no value change, no edit")
}

func TestToggle_ToViewingAndBack(t *testing.T) {
	m := New(filledSheet(), Options{})

	m = press(t, m, tea.KeyCtrlT)
	require.False(t, m.Sheet.Editing())
	require.Equal(t, slotToggle, m.focus)
	require.False(t, m.house[0].text.Focused(), "inputs should blur in the guest view")

	m = typeText(t, m, "e")
	require.True(t, m.Sheet.Editing())
	require.Equal(t, houseSlot(0), m.focus)
	require.Equal(t, "Home", m.Sheet.House().WiFiName, "the e key should not be typed anywhere")
}

func TestToggle_EnterOnToggleButton(t *testing.T) {
	m := New(filledSheet(), Options{})
	m.setFocus(slotToggle)

	m = press(t, m, tea.KeyEnter)
	require.False(t, m.Sheet.Editing())

	m = press(t, m, tea.KeyEnter)
	require.True(t, m.Sheet.Editing())
}

// --- Add Button Tests ---

func TestAddPet_DisabledIsInert(t *testing.T) {
	m := New(nil, Options{})
	m.setFocus(petSlot(0))
	m = typeText(t, m, "Rex")
	m.setFocus(slotAddPet)

	m = press(t, m, tea.KeyEnter)

	require.Empty(t, m.Sheet.Pets())
	require.Equal(t, "Rex", m.Sheet.PendingPet().Name)
	require.Equal(t, "Rex", m.pet[0].Value())
}

func TestAddPet_ClearsInputs(t *testing.T) {
	m := New(nil, Options{})
	m.setFocus(petSlot(0))
	m = typeText(t, m, "Rex")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "Dog")
	m.setFocus(slotAddPet)

	m = press(t, m, tea.KeyEnter)

	pets := m.Sheet.Pets()
	require.Len(t, pets, 1)
	require.Equal(t, sheet.PetInfo{Name: "Rex", Type: "Dog"}, pets[0])
	for i := range m.pet {
		require.Empty(t, m.pet[i].Value(), "pet input %d should be cleared", i)
	}
	require.Contains(t, m.View(), "Rex (Dog)")
}

func TestAddNote_MultilineDescription(t *testing.T) {
	m := New(nil, Options{})
	m.setFocus(noteSlot(0))
	m = typeText(t, m, "Doorbell")
	m = press(t, m, tea.KeyTab)
	m = typeText(t, m, "Rings twice")
	m = press(t, m, tea.KeyEnter)
	m = typeText(t, m, "Ignore it")
	m = press(t, m, tea.KeyTab)
	require.Equal(t, slotAddNote, m.focus)

	m = press(t, m, tea.KeyEnter)

	notes := m.Sheet.Notes()
	require.Len(t, notes, 1)
	require.Equal(t, "Doorbell", notes[0].Title)
	require.Equal(t, "Rings twice\nIgnore it", notes[0].Description)
	require.Empty(t, m.note[0].Value())
	require.Empty(t, m.note[1].Value())
}

// --- Viewing Tests ---

func TestViewing_HidesEmptyFieldsAndShowsPlaceholders(t *testing.T) {
	m := New(filledSheet(), Options{})
	m = press(t, m, tea.KeyCtrlT)

	view := m.View()
	require.Contains(t, view, "WiFi Password")
	require.Contains(t, view, "secret", "the guest view shows the password")
	require.NotContains(t, view, "Emergency Contact")
	require.Contains(t, view, sheet.NoPetsMessage)
	require.Contains(t, view, sheet.NoNotesMessage)
	require.Contains(t, view, "Edit Information")
}

func TestEditing_NoPlaceholders(t *testing.T) {
	view := New(nil, Options{}).View()

	require.Contains(t, view, "View as Guest")
	require.NotContains(t, view, sheet.NoPetsMessage)
	require.NotContains(t, view, sheet.NoNotesMessage)
}

func TestViewing_QuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
	} {
		t.Run(k.String(), func(t *testing.T) {
			m := New(filledSheet(), Options{})
			m = press(t, m, tea.KeyCtrlT)

			_, cmd := update(t, m, k)
			require.NotNil(t, cmd)
			require.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestEditing_QKeyIsText(t *testing.T) {
	m := New(nil, Options{})

	m = typeText(t, m, "q")

	require.True(t, m.Sheet.Editing())
	require.Equal(t, "q", m.Sheet.House().WiFiName)
}

func TestCtrlC_Quits(t *testing.T) {
	m := New(nil, Options{})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

// --- Layout Tests ---

func TestWindowSize_RendersContainer(t *testing.T) {
	m := New(nil, Options{Title: "Beach House"})

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	require.Equal(t, 100, m.Width)
	require.Equal(t, contentWidth(100), m.viewport.Width)
	require.Equal(t, viewportHeight(40), m.viewport.Height)
	view := m.View()
	require.Contains(t, view, AppName)
	require.Contains(t, view, "Beach House")
	require.Contains(t, view, "view as guest", "help should name the toggle")
}

func TestViewport_FollowsFocus(t *testing.T) {
	m := New(nil, Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 16})
	require.Equal(t, 0, m.viewport.YOffset)

	for m.focus != slotAddNote {
		m = press(t, m, tea.KeyTab)
	}
	require.Greater(t, m.viewport.YOffset, 0, "viewport should scroll down to the Add Note button")

	for m.focus != slotToggle {
		m = press(t, m, tea.KeyShiftTab)
	}
	require.Equal(t, 0, m.viewport.YOffset)
}

func TestHelp_TracksToggleLabel(t *testing.T) {
	m := New(filledSheet(), Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	require.True(t, strings.Contains(m.helpView(), "view as guest"))

	m = press(t, m, tea.KeyCtrlT)
	require.True(t, strings.Contains(m.helpView(), "edit information"))
}
