// Package diff computes the []parinfer.Change list the engine consumes
// when a caller supplies only a previous and current text buffer instead
// of an explicit edit list. It is a supplemental external collaborator
// (spec.md §6 "diff collaborator"), registered into the parinfer package
// at init time to avoid an import cycle.
package diff

import (
	"strings"

	"github.com/parinfer-go/parinfer/internal/column"
	"github.com/parinfer-go/parinfer/parinfer"
)

func init() {
	parinfer.RegisterDiff(Changes)
}

// Changes derives a single-region edit between prevText and text: the
// common leading lines/columns and common trailing lines/columns are
// stripped, and whatever remains in between is reported as one
// replacement. This mirrors how most editors report a single contiguous
// edit per keystroke or paste, and is sufficient to drive the per-change
// indent-delta bookkeeping the engine relies on Changes for.
func Changes(prevText, text string) []parinfer.Change {
	if prevText == text {
		return nil
	}

	prevLines := strings.Split(prevText, "\n")
	lines := strings.Split(text, "\n")

	prefixLines := commonPrefixLines(prevLines, lines)

	prevSuffixLines := prevLines[prefixLines:]
	suffixLines := lines[prefixLines:]
	commonSuffix := commonSuffixLines(prevSuffixLines, suffixLines)

	prevMidLines := prevSuffixLines[:len(prevSuffixLines)-commonSuffix]
	midLines := suffixLines[:len(suffixLines)-commonSuffix]

	startLine := prefixLines
	startCol := 0
	if len(prevMidLines) > 0 && len(midLines) > 0 {
		startCol = commonPrefixCols(prevMidLines[0], midLines[0])
		prevMidLines[0] = prevMidLines[0][column.ByteIndex(prevMidLines[0], startCol):]
		midLines[0] = midLines[0][column.ByteIndex(midLines[0], startCol):]

		// Strip the common trailing clusters of the last remaining lines.
		pl, ml := len(prevMidLines)-1, len(midLines)-1
		pg, mg := column.Split(prevMidLines[pl]), column.Split(midLines[ml])
		cut := 0
		for n := 1; n <= len(pg) && n <= len(mg) && pg[len(pg)-n].Text == mg[len(mg)-n].Text; n++ {
			cut += len(pg[len(pg)-n].Text)
		}
		prevMidLines[pl] = prevMidLines[pl][:len(prevMidLines[pl])-cut]
		midLines[ml] = midLines[ml][:len(midLines[ml])-cut]
	}

	oldText := strings.Join(prevMidLines, "\n")
	newText := strings.Join(midLines, "\n")

	if oldText == "" && newText == "" {
		return nil
	}

	return []parinfer.Change{{
		Line:    startLine,
		Col:     startCol,
		OldText: oldText,
		NewText: newText,
	}}
}

func commonPrefixLines(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffixLines(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

// commonPrefixCols returns the shared leading display-column length of
// two lines, clamped to a full grapheme cluster boundary so a diff never
// splits one apart.
func commonPrefixCols(a, b string) int {
	ag, bg := column.Split(a), column.Split(b)
	n := 0
	for n < len(ag) && n < len(bg) && ag[n].Text == bg[n].Text {
		n++
	}
	if n == 0 {
		return 0
	}
	return column.StringWidth(joinClusters(ag[:n]))
}

func joinClusters(cs []column.Cluster) string {
	var b strings.Builder
	for _, c := range cs {
		b.WriteString(c.Text)
	}
	return b.String()
}
