// Package notify delivers blocking user-facing notifications: success
// confirmations and surfaced errors. Every mutating flow reports through it.
package notify

import (
	"fmt"
	"io"
	"os"
)

// Notifier delivers one user-facing message.
type Notifier interface {
	Info(message string)
	Error(message string)
}

// TerminalNotifier writes notifications to the terminal.
type TerminalNotifier struct {
	out io.Writer
}

// NewTerminalNotifier creates a notifier writing to stdout.
func NewTerminalNotifier() *TerminalNotifier {
	return &TerminalNotifier{out: os.Stdout}
}

// NewTerminalNotifierTo creates a notifier writing to w.
func NewTerminalNotifierTo(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: w}
}

func (n *TerminalNotifier) Info(message string) {
	fmt.Fprintf(n.out, "%s\n", message)
}

func (n *TerminalNotifier) Error(message string) {
	fmt.Fprintf(n.out, "ERROR: %s\n", message)
}
