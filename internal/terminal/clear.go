// Package terminal provides small terminal utilities used by the
// interactive prompts, such as erasing previously printed input lines.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines erases text that was previously printed to stdout.
// textLength is the total character count of prompt plus user input; the
// function works out how many terminal lines that occupied at the current
// width and clears each one with ANSI escape sequences.
//
// Used after credential prompts so email addresses and codes do not
// linger on screen.
func ClearPreviousLines(textLength int) {
	termWidth := 80 // fallback when not a tty
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	totalLines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if totalLines < 1 {
		totalLines = 1
	}

	// After Enter the cursor sits on a fresh line below the input, so one
	// extra line needs clearing.
	linesToClear := totalLines + 1

	for i := 0; i < linesToClear; i++ {
		fmt.Print("\r\x1b[2K")
		if i < linesToClear-1 {
			fmt.Print("\x1b[1A")
		}
	}
}
