// Package column provides the grapheme/display-column primitives the
// parinfer engine builds on: every position the engine exposes is a
// display column, measured in extended grapheme clusters rather than
// bytes or codepoints.
package column

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Cluster is one extended grapheme cluster together with the display
// column at which it starts.
type Cluster struct {
	Col  int
	Text string
}

// Split segments s into its extended grapheme clusters, each tagged with
// its starting display column. Widths come from Width, so a tab counts
// as one column here.
func Split(s string) []Cluster {
	var out []Cluster
	col := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		text := g.Str()
		out = append(out, Cluster{Col: col, Text: text})
		col += Width(text)
	}
	return out
}

// Width returns the East-Asian-aware display width of a single grapheme
// cluster: 0, 1, or 2 cells. A bare tab is measured as width 1; in code
// context the engine later rewrites it to two spaces and measures the
// replacement separately.
func Width(cluster string) int {
	if cluster == "\t" {
		return 1
	}
	w := uniseg.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	return w
}

// StringWidth returns the total display width of s.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}

// ByteIndex returns the byte offset in s of the grapheme cluster whose
// display column is exactly x. If no cluster starts at x (x lies at or
// past the end of the line), len(s) is returned.
func ByteIndex(s string, x int) int {
	col := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		if col == x {
			start, _ := g.Positions()
			return start
		}
		col += Width(g.Str())
	}
	return len(s)
}

// ReplaceRange replaces the display-column range [startCol, endCol) of
// orig with replace. The replacement's own display width need not match
// the width of the range it replaces; everything to the right of the
// edit shifts by the difference on this call alone — it is the caller's
// job to propagate that shift into any tracked column state.
func ReplaceRange(orig string, startCol, endCol int, replace string) string {
	startI := ByteIndex(orig, startCol)
	endI := ByteIndex(orig, endCol)
	var b strings.Builder
	b.Grow(startI + len(replace) + (len(orig) - endI))
	b.WriteString(orig[:startI])
	b.WriteString(replace)
	b.WriteString(orig[endI:])
	return b.String()
}

// Repeat returns text repeated n times. n <= 0 yields the empty string.
func Repeat(text string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(text, n)
}
