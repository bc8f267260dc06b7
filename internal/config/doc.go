// Package config provides user preferences for guestsheet.
//
// Preferences live in a small YAML file and only control presentation:
// the sheet title, the password mask character, the height of the note
// editor, whether to use the alternate screen, and the log level.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/guestsheet/config.yaml or $HOME/.config/guestsheet/config.yaml
//   - macOS: $HOME/.config/guestsheet/config.yaml
//   - Windows: %LOCALAPPDATA%\guestsheet\config.yaml
//
// # Security
//
// IMPORTANT: Sheet contents are never persisted. WiFi credentials, pets and
// notes exist only in the running program.
//
// # Usage Example
//
//	prefs, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//	for _, err := range prefs.Validate() {
//	    fmt.Fprintln(os.Stderr, "warning:", err)
//	}
//
// # File Format
//
//	version: 1
//	title: Guest Information Sheet
//	mask_character: "•"
//	note_rows: 3
//	alt_screen: true
//	log_level: ""
package config
