package ui

import (
	"fmt"
	"os"
	"strings"
)

// OK prints a success message to stdout.
func OK(msg string) {
	fmt.Println(current.Success.Render("✔ " + msg))
}

// Fail prints an error message to stderr.
func Fail(msg string) {
	fmt.Fprintln(os.Stderr, current.Error.Render("✖ "+msg))
}

// Panel draws a framed box around the given lines using the current
// theme's border style.
func Panel(lines []string) {
	fmt.Println(current.Border.Render(strings.Join(lines, "\n")))
}

// ProgressBar renders a Unicode progress bar with a done/total count.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 0 {
		width = 28
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}
