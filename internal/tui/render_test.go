package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/muurk/guestsheet/internal/sheet"
)

func emptyViews(n int) []string {
	return make([]string, n)
}

func testScreen(s *sheet.Sheet, focus focusSlot) screen {
	return screen{
		title: "Guest Information Sheet",
		sheet: s,
		house: emptyViews(len(sheet.HouseFields)),
		pet:   emptyViews(len(sheet.PetFields)),
		note:  emptyViews(len(sheet.NoteFields)),
		focus: focus,
	}
}

func TestRenderButton(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		focused bool
		want    lipgloss.Style
	}{
		{"enabled", true, false, ButtonStyle},
		{"focused", true, true, FocusedButtonStyle},
		{"disabled", false, false, DisabledButtonStyle},
		{"disabled wins over focus", false, true, DisabledButtonStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderButton(addPetLabel, tt.enabled, tt.focused)
			require.Equal(t, tt.want.Render("[ Add Pet ]"), got)
		})
	}
}

func TestRenderInputRow_Error(t *testing.T) {
	row := renderInputRow(inputRow{label: "WiFi Name", view: "Home", err: "WiFi name is required"})

	require.Equal(t, 2, lipgloss.Height(row))
	require.Contains(t, row, "WiFi Name:")
	require.Contains(t, row, "WiFi name is required")

	row = renderInputRow(inputRow{label: "WiFi Name", view: "Home"})
	require.Equal(t, 1, lipgloss.Height(row))
}

func TestRenderGuestHouse_SkipsEmptyFields(t *testing.T) {
	out := renderGuestHouse(sheet.HouseInfo{WiFiName: "Home", FirstAidLocation: "Kitchen"})

	require.Contains(t, out, "Home")
	require.Contains(t, out, "Kitchen")
	require.NotContains(t, out, "WiFi Password")
	require.NotContains(t, out, "Emergency Contact")
	require.Less(t, strings.Index(out, "WiFi Name"), strings.Index(out, "First Aid Location"))
}

func TestRenderLists_Placeholders(t *testing.T) {
	require.Empty(t, renderPetList(nil, false, 0))
	require.Empty(t, renderNoteList(nil, false, 0))
	require.Contains(t, renderPetList(nil, true, 0), sheet.NoPetsMessage)
	require.Contains(t, renderNoteList(nil, true, 0), sheet.NoNotesMessage)
}

func TestRenderPetList_Order(t *testing.T) {
	out := renderPetList([]sheet.PetInfo{
		{Name: "Rex", Type: "Dog", FeedingInstructions: "Twice a day"},
		{Name: "Tom", Type: "Cat", Notes: "Shy"},
	}, true, 60)

	require.NotContains(t, out, sheet.NoPetsMessage)
	require.Less(t, strings.Index(out, "Rex (Dog)"), strings.Index(out, "Tom (Cat)"))
	require.Contains(t, out, "Notes: None")
	require.Contains(t, out, "Notes: Shy")
}

func TestRenderNoteEntry_Multiline(t *testing.T) {
	out := renderNoteEntry(sheet.QuirkyNote{Title: "Doorbell", Description: "Rings twice\nIgnore it"}, 0)

	require.Contains(t, out, "Doorbell")
	require.Contains(t, out, "Rings twice")
	require.Contains(t, out, "Ignore it")
}

func TestRenderEditing_FocusLine(t *testing.T) {
	s := sheet.New()

	_, toggleLine := renderEditing(testScreen(s, slotToggle))
	_, houseLine := renderEditing(testScreen(s, houseSlot(0)))
	_, addNoteLine := renderEditing(testScreen(s, slotAddNote))

	require.Less(t, toggleLine, houseLine)
	require.Less(t, houseLine, addNoteLine)
}

func TestRenderEditing_ErrorsShiftFocusLine(t *testing.T) {
	s := sheet.New()
	_, before := renderEditing(testScreen(s, slotAddPet))

	s.Validate()
	_, after := renderEditing(testScreen(s, slotAddPet))

	require.Equal(t, before+len(sheet.RequiredHouseFields), after, "each error adds one line")
}

func TestRenderViewing(t *testing.T) {
	s := filledSheet()
	s.UpdatePetBuffer(sheet.PetFieldName, "Rex")
	s.UpdatePetBuffer(sheet.PetFieldType, "Dog")
	s.AddPet()
	require.True(t, s.ToggleMode())

	out := renderViewing(testScreen(s, slotToggle))

	require.Contains(t, out, "Edit Information")
	require.Contains(t, out, "Rex (Dog)")
	require.Contains(t, out, sheet.NoNotesMessage)
	require.NotContains(t, out, sheet.NoPetsMessage)
	require.NotContains(t, out, addPetLabel, "the guest view has no add buttons")
}
