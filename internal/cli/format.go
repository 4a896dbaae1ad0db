package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/danieljhkim/blobsplit/internal/engine"
)

var (
	// Color functions - will be nil if output is not a TTY
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	promptColor  = color.New(color.Bold)

	// Status badge colors, matching the listing legend: green for files
	// that would be created, blue for files that would be overwritten,
	// red for paths rejected by the safety check.
	newColor      = color.New(color.FgGreen)
	existingColor = color.New(color.FgBlue)
	unsafeColor   = color.New(color.FgRed, color.Bold)
)

// initColors initializes color output - fatih/color handles TTY detection automatically
// This is a no-op but kept for potential future initialization needs
func initColors() {
	// fatih/color automatically detects TTY and disables colors when needed
	// No explicit initialization required
}

// PrintSection prints a section header
func PrintSection(title string) {
	initColors()
	fmt.Println()
	_, _ = headerColor.Printf("▸ %s\n", title)
	fmt.Println()
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	initColors()
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintWarning prints a warning message with a warning symbol
func PrintWarning(msg string) {
	initColors()
	_, _ = warningColor.Printf("⚠ %s\n", msg)
}

// PrintInfo prints an informational message
func PrintInfo(msg string) {
	initColors()
	fmt.Println(msg)
}

// PrintList prints a list of items with bullet points
func PrintList(items []string, indent int) {
	initColors()
	indentStr := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = infoColor.Printf("%s• %s\n", indentStr, item)
	}
}

// PrintStatusLine prints one entry of the pre-write listing with its
// colored status badge.
func PrintStatusLine(entry engine.StatusEntry) {
	initColors()
	var clr *color.Color
	switch entry.Status {
	case engine.StatusUnsafe:
		clr = unsafeColor
	case engine.StatusExisting:
		clr = existingColor
	default:
		clr = newColor
	}
	fmt.Printf(" - %s [%s]\n", entry.Path, clr.Sprint(string(entry.Status)))
}

// PrintCount prints a count with proper formatting
func PrintCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
