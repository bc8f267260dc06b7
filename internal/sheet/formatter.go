package sheet

import (
	"fmt"
	"strings"
)

// Placeholder text shown in the guest view for empty lists.
const (
	NoPetsMessage  = "No pet information provided."
	NoNotesMessage = "No quirky notes provided."
)

// Summary returns a one-line summary of the sheet
func (s *Sheet) Summary() string {
	return fmt.Sprintf("%s: %s, %s", s.mode, plural(len(s.pets), "pet"), plural(len(s.notes), "note"))
}

// FormatPetHeading returns the "Name (Type)" heading for a pet.
func FormatPetHeading(p PetInfo) string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Type)
}

// FormatPetNotes returns the pet's notes, or "None" when there are none.
func FormatPetNotes(p PetInfo) string {
	if p.Notes == "" {
		return "None"
	}
	return p.Notes
}

// FormatHouseInfo returns the non-empty house fields as "Label: value" lines.
func FormatHouseInfo(h HouseInfo) string {
	var b strings.Builder

	b.WriteString("=== House Information ===\n")
	for _, f := range HouseFields {
		value := h.Get(HouseField(f.Name))
		if value == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", f.Label, value))
	}

	return b.String()
}

// FormatPets returns the pet list, or the placeholder when it is empty.
func FormatPets(pets []PetInfo) string {
	var b strings.Builder

	b.WriteString("=== Pet Information ===\n")
	if len(pets) == 0 {
		b.WriteString(NoPetsMessage + "\n")
		return b.String()
	}
	for _, p := range pets {
		b.WriteString(FormatPetHeading(p) + "\n")
		b.WriteString(fmt.Sprintf("  Feeding: %s\n", p.FeedingInstructions))
		b.WriteString(fmt.Sprintf("  Notes: %s\n", FormatPetNotes(p)))
	}

	return b.String()
}

// FormatNotes returns the note list, or the placeholder when it is empty.
func FormatNotes(notes []QuirkyNote) string {
	var b strings.Builder

	b.WriteString("=== Quirky House Notes ===\n")
	if len(notes) == 0 {
		b.WriteString(NoNotesMessage + "\n")
		return b.String()
	}
	for _, n := range notes {
		b.WriteString(n.Title + "\n")
		for _, line := range strings.Split(n.Description, "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	return b.String()
}

// FormatGuestView renders the read-only guest view as plain text.
// The WiFi password is shown in clear: sharing it is the point of the sheet.
func FormatGuestView(s *Sheet, title string) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(title + "\n\n")
	}
	b.WriteString(FormatHouseInfo(s.house))
	b.WriteString("\n")
	b.WriteString(FormatPets(s.pets))
	b.WriteString("\n")
	b.WriteString(FormatNotes(s.notes))

	return b.String()
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
