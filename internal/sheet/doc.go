// Package sheet holds the state and rules of a guest information sheet.
//
// A sheet records house information (WiFi credentials, first aid kit location,
// emergency contact), a list of pets with care instructions, and a list of
// quirky household notes. It is either being edited by the host or shown
// read-only to a guest.
//
// # Controller
//
// Sheet is the single owner of that state. The presentation layer never
// mutates it directly; it calls the controller operations:
//
//	s := sheet.New()
//	s.UpdateHouseField(sheet.FieldWiFiName, "Home")
//	s.UpdatePetBuffer(sheet.PetFieldName, "Rex")
//	s.UpdatePetBuffer(sheet.PetFieldType, "Dog")
//	s.AddPet()
//
//	if !s.ToggleMode() {
//	    // still editing; s.Errors() says which fields are missing
//	}
//
// # Validation
//
// Leaving edit mode requires the WiFi name, WiFi password and first aid
// location. Validation replaces the error map wholesale. Editing a field
// clears only that field's error and does not revalidate, so an emptied
// field shows no error until the next toggle attempt.
//
// # Lists
//
// Pets and notes are append-only. Entries are copied in and accessors return
// copies, so nothing outside the controller can change or remove them.
//
// # Field Descriptors
//
// HouseFields, PetFields and NoteFields are static (name, label, kind)
// tables. Renderers loop over them instead of reflecting over struct fields.
package sheet
