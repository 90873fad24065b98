package parinfer

import (
	"strings"

	"github.com/parinfer-go/parinfer/internal/column"
)

// chompCR strips a single trailing carriage return from a line. Input
// may mix \n and \r\n; each line's \r is stripped before processing
// (spec.md §6 "Line terminators").
func chompCR(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}

// splitLines splits text into input lines, a single time, stripping any
// trailing \r from each.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = chompCR(l)
	}
	return out
}

// splitLinesRaw is splitLines used for the bodies of Change.OldText /
// Change.NewText, which are not full input buffers but still may
// contain embedded line terminators.
func splitLinesRaw(text string) []string {
	return splitLines(text)
}

func displayWidth(s string) int {
	return column.StringWidth(s)
}

// lineEnding scans the original input for any \r to choose the
// prevailing line terminator (spec.md §6).
func lineEnding(origText string) string {
	if strings.ContainsRune(origText, '\r') {
		return "\r\n"
	}
	return "\n"
}
