// Where: internal/ui/console.go
// What: Console output helpers.
// Why: Keep deploy/env/logs output formatting consistent.
package ui

import (
	"fmt"
	"io"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out io.Writer
}

// New creates a Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Header prints a section title.
func (c *Console) Header(title string) {
	fmt.Fprintf(c.Out, "%s\n", title)
}

// Item prints an indented key-value line.
// Example:    RPC_URL:           set
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-20s %v\n", key+":", value)
}

// Line prints an indented plain line.
func (c *Console) Line(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", msg)
}

// Successf prints a formatted success message.
func (c *Console) Successf(format string, args ...any) {
	fmt.Fprintf(c.Out, format+"\n", args...)
}
