package sheet

// HouseField names one of the HouseInfo fields.
// Values match the field names used in error maps and logs.
type HouseField string

const (
	FieldWiFiName         HouseField = "wifiName"
	FieldWiFiPassword     HouseField = "wifiPassword"
	FieldFirstAidLocation HouseField = "firstAidLocation"
	FieldEmergencyContact HouseField = "emergencyContact"
)

// PetField names one of the PetInfo fields.
type PetField string

const (
	PetFieldName                PetField = "name"
	PetFieldType                PetField = "type"
	PetFieldFeedingInstructions PetField = "feedingInstructions"
	PetFieldNotes               PetField = "notes"
)

// NoteField names one of the QuirkyNote fields.
type NoteField string

const (
	NoteFieldTitle       NoteField = "title"
	NoteFieldDescription NoteField = "description"
)

// HouseInfo holds the house details shown to guests.
// WiFiName, WiFiPassword and FirstAidLocation must be set before
// the sheet can leave edit mode.
type HouseInfo struct {
	WiFiName         string // Network SSID
	WiFiPassword     string // Network password (masked while editing)
	FirstAidLocation string // Where the first aid kit lives
	EmergencyContact string // Optional
}

// Get returns the value of the named field, or "" for an unknown field.
func (h HouseInfo) Get(field HouseField) string {
	if p := h.fieldPtr(field); p != nil {
		return *p
	}
	return ""
}

func (h *HouseInfo) fieldPtr(field HouseField) *string {
	switch field {
	case FieldWiFiName:
		return &h.WiFiName
	case FieldWiFiPassword:
		return &h.WiFiPassword
	case FieldFirstAidLocation:
		return &h.FirstAidLocation
	case FieldEmergencyContact:
		return &h.EmergencyContact
	default:
		return nil
	}
}

// PetInfo describes one pet and how to care for it.
type PetInfo struct {
	Name                string
	Type                string // e.g. "Dog", "Cat"
	FeedingInstructions string
	Notes               string
}

// Get returns the value of the named field, or "" for an unknown field.
func (p PetInfo) Get(field PetField) string {
	if f := p.fieldPtr(field); f != nil {
		return *f
	}
	return ""
}

func (p *PetInfo) fieldPtr(field PetField) *string {
	switch field {
	case PetFieldName:
		return &p.Name
	case PetFieldType:
		return &p.Type
	case PetFieldFeedingInstructions:
		return &p.FeedingInstructions
	case PetFieldNotes:
		return &p.Notes
	default:
		return nil
	}
}

// Complete reports whether the pet has both a name and a type.
func (p PetInfo) Complete() bool {
	return p.Name != "" && p.Type != ""
}

// QuirkyNote is a free-form household fact ("the back door sticks").
type QuirkyNote struct {
	Title       string
	Description string
}

// Get returns the value of the named field, or "" for an unknown field.
func (n QuirkyNote) Get(field NoteField) string {
	if f := n.fieldPtr(field); f != nil {
		return *f
	}
	return ""
}

func (n *QuirkyNote) fieldPtr(field NoteField) *string {
	switch field {
	case NoteFieldTitle:
		return &n.Title
	case NoteFieldDescription:
		return &n.Description
	default:
		return nil
	}
}

// Complete reports whether the note has both a title and a description.
func (n QuirkyNote) Complete() bool {
	return n.Title != "" && n.Description != ""
}

// Mode is the sheet's view mode.
type Mode int

const (
	// ModeEditing shows inputs. This is the initial mode.
	ModeEditing Mode = iota
	// ModeViewing shows the read-only guest summary.
	ModeViewing
)

// String returns a human-readable name for the mode
func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeViewing:
		return "viewing"
	default:
		return "unknown"
	}
}
