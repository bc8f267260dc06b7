package urls

import "strings"

// Project links shown in the TUI header and in CLI hints.
// All URLs point to the repository at https://github.com/muurk/guestsheet

// Repository is the project home page.
const Repository = "https://github.com/muurk/guestsheet"

// Issues is where bugs and feature requests go.
const Issues = Repository + "/issues"

// Display returns a URL without its scheme, for tight header layouts.
func Display(url string) string {
	return strings.TrimPrefix(strings.TrimPrefix(url, "https://"), "http://")
}
