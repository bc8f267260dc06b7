// Package tui implements the interactive guest information sheet.
//
// The screen is a single Bubble Tea model wrapping a *sheet.Sheet. It follows
// the Elm architecture: Update forwards keys to the focused input, pushes the
// new value into the sheet controller and re-renders; View draws whatever the
// controller currently holds.
//
// # Modes
//
// The controller's mode picks the screen:
//   - Editing: house inputs with inline validation errors, the pet and note
//     sub-forms with their Add buttons, and the entries added so far
//   - Viewing: the read-only guest view, with placeholders for empty lists
//
// # Framework Components
//
//   - bubbles/textinput: single-line fields, password echo for the WiFi password
//   - bubbles/textarea: the note description
//   - bubbles/viewport: scrolling that follows focus
//   - bubbles/help: context-sensitive key help in the footer
//   - lipgloss: styling and the application container
//
// # Usage Example
//
//	s := sheet.New()
//	if err := tui.Run(ctx, s, tui.Options{AltScreen: true}); err != nil {
//	    return err
//	}
//	fmt.Print(sheet.FormatGuestView(s, ""))
//
// Rendering is split from state: render.go holds pure functions of the sheet,
// the rendered input views, the focus slot and the width.
package tui
