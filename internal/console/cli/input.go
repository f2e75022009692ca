package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a seam so tests can avoid touching a real terminal.
var readPassword = term.ReadPassword

// prompt prints a label and reads one trimmed line. A partial line at EOF
// still counts as input.
func (a *App) prompt(label string) (string, error) {
	a.printf("%s: ", label)

	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echo when stdin is a terminal,
// falling back to a plain line read otherwise (piped input in tests and
// scripts).
func (a *App) promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return a.prompt(label)
	}

	a.printf("%s: ", label)
	raw, err := readPassword(fd)
	a.println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

// promptInt reads a line and parses it as an integer, re-using the label in
// the error so the REPL message reads naturally.
func (a *App) promptInt(label string) (int64, error) {
	s, err := a.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", strings.ToLower(label))
	}
	return n, nil
}

// pageArg interprets an optional trailing argument as a one-based page
// number, returning the zero-based index the backend expects.
func pageArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(args[len(args)-1])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("page must be a positive number")
	}
	return n - 1, nil
}
