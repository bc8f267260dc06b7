// Package urls provides centralized constants for the project links used
// throughout the application.
//
// Links are defined here once so the header, help text and error hints
// stay in agreement.
//
// Usage:
//
//	import "github.com/muurk/guestsheet/internal/urls"
//
//	fmt.Printf("Report problems at: %s\n", urls.Issues)
package urls
