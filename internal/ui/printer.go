package ui

import (
	"fmt"
	"io"
	"os"
)

// Printer provides methods for printing UI components to a writer.
// CLI commands use it for everything they print outside the TUI.
type Printer struct {
	out    io.Writer
	width  int
	styled bool
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used. Styling is only applied when w is a file
// attached to a terminal, so piped or redirected output stays plain text.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:    w,
		width:  GetTerminalWidth(),
		styled: isTerminalWriter(w),
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintResult prints a result box, or a plain "TITLE" line plus details when unstyled
func (p *Printer) PrintResult(r *Result) {
	if p.styled {
		p.Println(r.SetWidth(p.width).Render())
		return
	}

	var label string
	switch r.Type {
	case ResultFailure:
		label = "FAILED"
	case ResultWarning:
		label = "WARNING"
	default:
		label = "OK"
	}
	p.Println(label + ": " + r.Title)
	if r.Error != nil {
		p.Println("  Error: " + r.Error.Error())
	}
	for _, d := range r.Details {
		p.Println("  " + d.Key + ": " + d.Value)
	}
	for _, msg := range r.Messages {
		p.Println("  - " + msg)
	}
}

// PrintSheet prints a titled block of plain text, boxed when styled
func (p *Printer) PrintSheet(title string, body string) {
	if !p.styled {
		if title != "" {
			p.Println(title)
			p.Println("")
		}
		p.Print(body)
		return
	}

	content := body
	if title != "" {
		content = SheetTitleStyle.Render(title) + "\n\n" + body
	}
	p.Println(SheetBoxStyle(p.width).Render(content))
}
