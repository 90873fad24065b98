package parinfer

// ---- cursor helpers (spec.md §4.4, §4.7) ----

func isCursorLeftOf(cursorCol Column, cursorLine LineNumber, col Column, line LineNumber) bool {
	if col == noColumn || cursorCol == noColumn {
		return false
	}
	// inclusive since (cursorCol == col) implies (col-1 < cursor < col)
	return cursorLine == line && cursorCol <= col
}

func isCursorRightOf(cursorCol Column, cursorLine LineNumber, col Column, line LineNumber) bool {
	if col == noColumn || cursorCol == noColumn {
		return false
	}
	return cursorLine == line && cursorCol > col
}

func (s *state) isCursorInComment(cursorCol Column, cursorLine LineNumber) bool {
	return isCursorRightOf(cursorCol, cursorLine, s.commentCol, s.line)
}

// handleChangeDelta looks up the change ending at the current
// (inputLine, inputCol) and, if found, folds its horizontal delta into
// indentDelta — exactly once per change, per spec.md's "Change map"
// design note.
func (s *state) handleChangeDelta() {
	if len(s.changes) == 0 || !(s.smart || s.mode == ModeParen) {
		return
	}
	if c, ok := s.changes[changeKey{line: s.inputLine, col: s.inputCol}]; ok {
		s.indentDelta += c.newEndCol - c.oldEndCol
	}
}

// transformChanges precomputes each change's post-edit endpoint and the
// horizontal delta it introduces, keyed for O(1) lookup by that
// endpoint — see spec.md §3 "Change" and the "Change map" design note.
func transformChanges(changes []Change) map[changeKey]transformedChange {
	if len(changes) == 0 {
		return nil
	}
	out := make(map[changeKey]transformedChange, len(changes))
	for _, c := range changes {
		oldLines := splitLinesRaw(c.OldText)
		newLines := splitLinesRaw(c.NewText)

		lastOldLen := displayWidth(oldLines[len(oldLines)-1])
		lastNewLen := displayWidth(newLines[len(newLines)-1])

		oldEndCol := lastOldLen
		if len(oldLines) == 1 {
			oldEndCol += c.Col
		}
		newEndCol := lastNewLen
		if len(newLines) == 1 {
			newEndCol += c.Col
		}
		newEndLine := c.Line + len(newLines) - 1

		out[changeKey{line: newEndLine, col: newEndCol}] = transformedChange{
			oldEndCol: oldEndCol,
			newEndCol: newEndCol,
		}
	}
	return out
}
