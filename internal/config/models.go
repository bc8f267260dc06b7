package config

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CurrentVersion is the preferences file format version.
const CurrentVersion = 1

// Default preference values
const (
	DefaultTitle         = "Guest Information Sheet"
	DefaultMaskCharacter = "•"
	DefaultNoteRows      = 3
	MaxNoteRows          = 20
	MaxTitleLength       = 80
)

// Preferences represents application-wide user preferences.
//
// Sheet contents (WiFi credentials, pets, notes) are NEVER stored here.
// They live only as long as the running program.
type Preferences struct {
	Version       int    `yaml:"version"`
	Title         string `yaml:"title"`               // Heading shown above the sheet
	MaskCharacter string `yaml:"mask_character"`      // Echo character for the WiFi password input
	NoteRows      int    `yaml:"note_rows"`           // Height of the note description text area
	AltScreen     bool   `yaml:"alt_screen"`          // Run the TUI in the terminal's alternate screen
	LogLevel      string `yaml:"log_level,omitempty"` // Empty disables logging
}

// NewPreferences creates Preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version:       CurrentVersion,
		Title:         DefaultTitle,
		MaskCharacter: DefaultMaskCharacter,
		NoteRows:      DefaultNoteRows,
		AltScreen:     true,
	}
}

// applyDefaults fills zero values left out of a hand-edited file.
func (p *Preferences) applyDefaults() {
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	if p.MaskCharacter == "" {
		p.MaskCharacter = DefaultMaskCharacter
	}
	if p.NoteRows == 0 {
		p.NoteRows = DefaultNoteRows
	}
}

// MaskRune returns the mask character as a rune.
func (p *Preferences) MaskRune() rune {
	r, _ := utf8.DecodeRuneInString(p.MaskCharacter)
	if r == utf8.RuneError {
		r, _ = utf8.DecodeRuneInString(DefaultMaskCharacter)
	}
	return r
}

// Validate checks the preferences.
// Returns a slice of validation errors (empty if valid).
func (p *Preferences) Validate() []error {
	var errors []error

	if p.Version != CurrentVersion {
		errors = append(errors, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, p.Version, CurrentVersion))
	}

	if utf8.RuneCountInString(p.Title) > MaxTitleLength {
		errors = append(errors, fmt.Errorf("title too long (max %d chars): %d chars", MaxTitleLength, utf8.RuneCountInString(p.Title)))
	}

	if utf8.RuneCountInString(p.MaskCharacter) != 1 {
		errors = append(errors, fmt.Errorf("mask_character must be a single character, got %q", p.MaskCharacter))
	}

	if p.NoteRows < 1 || p.NoteRows > MaxNoteRows {
		errors = append(errors, fmt.Errorf("note_rows must be 1-%d, got %d", MaxNoteRows, p.NoteRows))
	}

	switch strings.ToLower(p.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Errorf("log_level must be one of debug, info, warn, warning, error, got %q", p.LogLevel))
	}

	return errors
}
