package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"atomicgo.dev/cursor"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"learndash/admincli/internal/apierrors"
	"learndash/admincli/internal/httperrors"
	"learndash/admincli/internal/terminal"
)

// presentError converts an operation error into what the operator sees.
// Transport failures get troubleshooting guidance; everything else is
// reduced to a single user-facing line.
func presentError(err error, doing string) error {
	if err == nil {
		return nil
	}
	if apierrors.IsTransport(err) {
		return httperrors.ShowNetworkError(err, doing)
	}
	return errors.New(httperrors.Describe(err))
}

// promptLine prints a prompt and reads one trimmed line from stdin.
func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret reads a line without echoing it, falling back to a plain
// line read when stdin is not a terminal (tests, pipes). Only the line
// ending is stripped: passwords may legitimately carry leading or
// trailing spaces.
func promptSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", err
		}
		return trimNewline(line), nil
	}
	secret, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

// trimNewline strips the trailing line ending and nothing else.
func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// promptThenClear reads a line and erases the prompt and input from the
// terminal afterwards, so addresses and codes do not linger on screen.
func promptThenClear(prompt string) (string, error) {
	line, err := promptLine(prompt)
	if err != nil {
		return "", err
	}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		terminal.ClearPreviousLines(len(prompt) + len(line))
	}
	return line, nil
}

// withSpinner runs fn behind a pterm spinner with the cursor hidden.
// The spinner is removed once fn returns, success or not.
func withSpinner(text string, fn func() error) error {
	cursor.Hide()
	defer cursor.Show()

	spinner, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	if err != nil {
		// Degrade to no spinner on exotic terminals.
		return fn()
	}
	runErr := fn()
	_ = spinner.Stop()
	return runErr
}

// formatMoney renders a backend amount for display.
func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// formatDate shortens a backend RFC 3339 timestamp to its date part.
// Values that do not parse are shown verbatim.
func formatDate(ts string) string {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Format("2006-01-02")
	}
	return ts
}

// fullName joins the name parts, tolerating either being empty.
func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
