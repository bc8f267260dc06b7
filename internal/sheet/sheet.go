package sheet

import (
	"github.com/muurk/guestsheet/internal/logging"
)

// Sheet is the form controller. It owns all sheet state and exposes the
// operations the presentation layer calls in response to user input.
//
// A Sheet is not safe for concurrent use; the TUI only touches it from its
// Update loop.
type Sheet struct {
	house HouseInfo
	pets  []PetInfo
	notes []QuirkyNote

	// Pending entries, appended by AddPet/AddNote
	pendingPet  PetInfo
	pendingNote QuirkyNote

	errors ErrorMap
	mode   Mode
}

// New creates an empty sheet in edit mode.
func New() *Sheet {
	return &Sheet{
		errors: make(ErrorMap),
		mode:   ModeEditing,
	}
}

// UpdateHouseField sets a house field and clears any error recorded for it.
// Errors on other fields are left alone. Unknown fields are ignored.
func (s *Sheet) UpdateHouseField(field HouseField, value string) {
	p := s.house.fieldPtr(field)
	if p == nil {
		logging.Debug("Ignoring update for unknown house field")
		return
	}
	*p = value
	delete(s.errors, field)
	logging.LogFieldUpdate("house", string(field), len(value))
}

// UpdatePetBuffer sets a field on the pending pet entry.
func (s *Sheet) UpdatePetBuffer(field PetField, value string) {
	p := s.pendingPet.fieldPtr(field)
	if p == nil {
		return
	}
	*p = value
	logging.LogFieldUpdate("pet", string(field), len(value))
}

// UpdateNoteBuffer sets a field on the pending note entry.
func (s *Sheet) UpdateNoteBuffer(field NoteField, value string) {
	p := s.pendingNote.fieldPtr(field)
	if p == nil {
		return
	}
	*p = value
	logging.LogFieldUpdate("note", string(field), len(value))
}

// CanAddPet reports whether the pending pet has a name and a type.
func (s *Sheet) CanAddPet() bool {
	return s.pendingPet.Complete()
}

// CanAddNote reports whether the pending note has a title and a description.
func (s *Sheet) CanAddNote() bool {
	return s.pendingNote.Complete()
}

// AddPet appends a copy of the pending pet to the pet list and resets the
// pending entry. It does nothing when the entry is incomplete.
// Returns true if a pet was appended.
func (s *Sheet) AddPet() bool {
	if !s.CanAddPet() {
		logging.LogEntryRejected("pet")
		return false
	}
	s.pets = append(s.pets, s.pendingPet)
	s.pendingPet = PetInfo{}
	logging.LogEntryAdded("pet", len(s.pets))
	return true
}

// AddNote appends a copy of the pending note to the note list and resets the
// pending entry. It does nothing when the entry is incomplete.
// Returns true if a note was appended.
func (s *Sheet) AddNote() bool {
	if !s.CanAddNote() {
		logging.LogEntryRejected("note")
		return false
	}
	s.notes = append(s.notes, s.pendingNote)
	s.pendingNote = QuirkyNote{}
	logging.LogEntryAdded("note", len(s.notes))
	return true
}

// Validate recomputes the error map from scratch and reports whether the
// required house fields are all set.
func (s *Sheet) Validate() bool {
	s.errors = ValidateHouseInfo(s.house)
	logging.LogValidation(s.errors.Err())

	return len(s.errors) == 0
}

// ToggleMode switches between editing and viewing.
//
// Leaving viewing mode always succeeds. Leaving editing mode runs Validate
// first and stays in editing, with errors populated, if it fails.
// Returns true if the mode changed.
func (s *Sheet) ToggleMode() bool {
	from := s.mode

	switch s.mode {
	case ModeViewing:
		s.mode = ModeEditing
	case ModeEditing:
		if !s.Validate() {
			return false
		}
		s.mode = ModeViewing
	}

	logging.LogModeChange(from.String(), s.mode.String())
	return true
}

// House returns a copy of the house info.
func (s *Sheet) House() HouseInfo {
	return s.house
}

// Pets returns a copy of the pet list, in insertion order.
func (s *Sheet) Pets() []PetInfo {
	out := make([]PetInfo, len(s.pets))
	copy(out, s.pets)
	return out
}

// Notes returns a copy of the note list, in insertion order.
func (s *Sheet) Notes() []QuirkyNote {
	out := make([]QuirkyNote, len(s.notes))
	copy(out, s.notes)
	return out
}

// PendingPet returns the pet entry being composed.
func (s *Sheet) PendingPet() PetInfo {
	return s.pendingPet
}

// PendingNote returns the note entry being composed.
func (s *Sheet) PendingNote() QuirkyNote {
	return s.pendingNote
}

// Errors returns a copy of the current error map.
func (s *Sheet) Errors() ErrorMap {
	return s.errors.Clone()
}

// Error returns the error message for a house field, or "".
func (s *Sheet) Error(field HouseField) string {
	return s.errors[field]
}

// Mode returns the current mode.
func (s *Sheet) Mode() Mode {
	return s.mode
}

// Editing reports whether the sheet is in edit mode.
func (s *Sheet) Editing() bool {
	return s.mode == ModeEditing
}

// ToggleLabel names the mode a toggle would switch to.
func (s *Sheet) ToggleLabel() string {
	if s.Editing() {
		return "View as Guest"
	}
	return "Edit Information"
}
