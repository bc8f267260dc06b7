package sheet

import "testing"

func TestFieldKinds(t *testing.T) {
	for _, f := range HouseFields {
		wantPassword := f.Name == string(FieldWiFiPassword)
		if (f.Kind == KindPassword) != wantPassword {
			t.Errorf("house field %s has kind %s", f.Name, f.Kind)
		}
		if f.Kind == KindMultiline {
			t.Errorf("house field %s should not be multiline", f.Name)
		}
	}

	for _, f := range PetFields {
		if f.Kind != KindText {
			t.Errorf("pet field %s has kind %s, want text", f.Name, f.Kind)
		}
	}

	for _, f := range NoteFields {
		wantMultiline := f.Name == string(NoteFieldDescription)
		if (f.Kind == KindMultiline) != wantMultiline {
			t.Errorf("note field %s has kind %s", f.Name, f.Kind)
		}
	}
}

// Every descriptor must address a real field on the controller
func TestDescriptorsRoundTrip(t *testing.T) {
	s := New()

	for _, f := range HouseFields {
		s.UpdateHouseField(HouseField(f.Name), "v-"+f.Name)
		if got := s.House().Get(HouseField(f.Name)); got != "v-"+f.Name {
			t.Errorf("house %s: got %q", f.Name, got)
		}
	}
	for _, f := range PetFields {
		s.UpdatePetBuffer(PetField(f.Name), "v-"+f.Name)
		if got := s.PendingPet().Get(PetField(f.Name)); got != "v-"+f.Name {
			t.Errorf("pet %s: got %q", f.Name, got)
		}
	}
	for _, f := range NoteFields {
		s.UpdateNoteBuffer(NoteField(f.Name), "v-"+f.Name)
		if got := s.PendingNote().Get(NoteField(f.Name)); got != "v-"+f.Name {
			t.Errorf("note %s: got %q", f.Name, got)
		}
	}
}
