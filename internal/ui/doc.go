// Package ui provides non-interactive terminal output for the guestsheet CLI.
//
// The interactive sheet lives in package tui. This package covers everything
// printed before or after it runs: result boxes for the config subcommands
// and the guest view printed by --print.
//
// Output is styled with Lipgloss when the writer is a terminal and degrades to
// plain text when piped:
//
//	p := ui.NewPrinter(nil)
//	p.PrintResult(ui.NewSuccessResult("Preferences written",
//	    ui.Detail{Key: "Path", Value: path},
//	))
package ui
