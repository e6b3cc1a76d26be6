// Package ui centralizes user-facing terminal output. Styled output
// goes through pterm when stdout is a terminal; otherwise plain text,
// so piped output stays clean.
package ui

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Success prints a success message.
func Success(format string, args ...any) {
	if !IsTTY() {
		fmt.Printf("ok: "+format+"\n", args...)
		return
	}
	pterm.Success.Printfln(format, args...)
}

// Warning prints a non-fatal finding.
func Warning(format string, args ...any) {
	if !IsTTY() {
		fmt.Printf("warning: "+format+"\n", args...)
		return
	}
	pterm.Warning.Printfln(format, args...)
}

// Error prints an error message.
func Error(format string, args ...any) {
	if !IsTTY() {
		fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
		return
	}
	pterm.Error.Printfln(format, args...)
}

// Info prints a progress/status line.
func Info(format string, args ...any) {
	if !IsTTY() {
		fmt.Printf(format+"\n", args...)
		return
	}
	pterm.Info.Printfln(format, args...)
}

// Header prints a section header.
func Header(text string) {
	if !IsTTY() {
		fmt.Printf("== %s ==\n", text)
		return
	}
	pterm.DefaultSection.Println(text)
}
