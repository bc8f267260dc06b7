package sheet

// FieldKind selects the kind of input used to edit a field.
type FieldKind int

const (
	KindText      FieldKind = iota // Single-line text input
	KindPassword                   // Single-line input with masked echo
	KindMultiline                  // Multi-line text area
)

// String returns the kind name
func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindPassword:
		return "password"
	case KindMultiline:
		return "multiline"
	default:
		return "unknown"
	}
}

// Field describes one editable field: its name, display label and input kind.
// The descriptor tables below drive every render loop, in display order.
type Field struct {
	Name  string
	Label string
	Kind  FieldKind
}

// HouseFields lists the HouseInfo fields in display order.
var HouseFields = []Field{
	{Name: string(FieldWiFiName), Label: "WiFi Name", Kind: KindText},
	{Name: string(FieldWiFiPassword), Label: "WiFi Password", Kind: KindPassword},
	{Name: string(FieldFirstAidLocation), Label: "First Aid Location", Kind: KindText},
	{Name: string(FieldEmergencyContact), Label: "Emergency Contact", Kind: KindText},
}

// PetFields lists the PetInfo fields in display order.
var PetFields = []Field{
	{Name: string(PetFieldName), Label: "Name", Kind: KindText},
	{Name: string(PetFieldType), Label: "Type", Kind: KindText},
	{Name: string(PetFieldFeedingInstructions), Label: "Feeding Instructions", Kind: KindText},
	{Name: string(PetFieldNotes), Label: "Notes", Kind: KindText},
}

// NoteFields lists the QuirkyNote fields in display order.
var NoteFields = []Field{
	{Name: string(NoteFieldTitle), Label: "Title", Kind: KindText},
	{Name: string(NoteFieldDescription), Label: "Description", Kind: KindMultiline},
}
