// Guestsheet is a terminal form for house sitters and holiday-let hosts.
//
// The host fills in WiFi details, the first aid kit location, an emergency
// contact, pets and quirky house notes, then flips the sheet into a
// read-only guest view. Nothing typed into the sheet is written to disk.
//
// Usage:
//
//	guestsheet [command] [flags]
//
// Running without arguments opens the sheet.
// See 'guestsheet --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/guestsheet/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "guestsheet",
	Short: "Guest Information Sheet",
	Long: `An interactive guest information sheet for the terminal.

Fill in the house details (WiFi name and password, first aid kit location,
emergency contact), add pets and quirky house notes, then press ctrl+t to
switch to the read-only guest view.

Sheet contents live only as long as the program runs. Use --print to write
the guest view to stdout on exit.`,
	Example: `  # Open the sheet
  guestsheet

  # Custom heading, print the guest view after quitting from it
  guestsheet --title "Beach House" --print > guest-sheet.txt

  # Debug logging to a file
  guestsheet --log-level debug --log-file /tmp/guestsheet.log`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSheet,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "guestsheet %s\n", version.Full())
	},
}
