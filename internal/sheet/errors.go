package sheet

import (
	"fmt"
	"strings"
)

// ErrorMap maps a house field to the message explaining why it is invalid.
// It only ever holds fields found invalid by the last validation pass,
// minus the ones edited since.
type ErrorMap map[HouseField]string

// Has reports whether the field currently carries an error.
func (e ErrorMap) Has(field HouseField) bool {
	_, ok := e[field]
	return ok
}

// Clone returns an independent copy of the map.
func (e ErrorMap) Clone() ErrorMap {
	out := make(ErrorMap, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Fields returns the fields carrying an error, in display order.
func (e ErrorMap) Fields() []HouseField {
	var fields []HouseField
	for _, f := range HouseFields {
		if e.Has(HouseField(f.Name)) {
			fields = append(fields, HouseField(f.Name))
		}
	}
	return fields
}

// Err folds the map into a *ValidationError, or returns nil when the map is empty.
func (e ErrorMap) Err() error {
	if len(e) == 0 {
		return nil
	}
	fields := e.Fields()
	messages := make([]string, 0, len(fields))
	for _, f := range fields {
		messages = append(messages, e[f])
	}
	return &ValidationError{Fields: fields, Messages: messages}
}

// ValidationError reports the required house fields that were empty
// when the sheet tried to leave edit mode.
type ValidationError struct {
	Fields   []HouseField // Invalid fields, display order
	Messages []string     // Messages, parallel to Fields
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Messages) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Messages[0])
	}
	return fmt.Sprintf("validation failed: %d fields: %s", len(e.Messages), strings.Join(e.Messages, "; "))
}
