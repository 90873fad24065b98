package parinfer

import "github.com/parinfer-go/parinfer/internal/column"

func (s *state) resetParenTrail(line LineNumber, col Column) {
	s.parenTrail.line = line
	s.parenTrail.startCol = col
	s.parenTrail.endCol = col
	s.parenTrail.openers = nil
	s.parenTrail.clamped.startCol = noColumn
	s.parenTrail.clamped.endCol = noColumn
	s.parenTrail.clamped.openers = nil
}

func (s *state) isCursorClampingParenTrail(cursorCol Column, cursorLine LineNumber) bool {
	return isCursorRightOf(cursorCol, cursorLine, s.parenTrail.startCol, s.line) &&
		!s.isCursorInComment(cursorCol, cursorLine)
}

// clampParenTrailToCursor implements §4.4's Indent-mode clamp: if the
// cursor sits strictly right of the trail's start (and not in a
// comment), the trail shrinks to start at the cursor, and any
// close-brackets dropped from its prefix are stashed as "clamped"
// openers — still remembered, but treated as if the user is mid-edit.
func (s *state) clampParenTrailToCursor() {
	if !s.isCursorClampingParenTrail(s.cursorCol, s.cursorLine) {
		return
	}

	startCol := s.parenTrail.startCol
	endCol := s.parenTrail.endCol

	newStart := startCol
	if s.cursorCol > newStart {
		newStart = s.cursorCol
	}
	newEnd := endCol
	if s.cursorCol > newEnd {
		newEnd = s.cursorCol
	}

	removeCount := 0
	for _, cl := range column.Split(s.lines[s.line]) {
		if cl.Col < startCol || cl.Col >= newStart {
			continue
		}
		if len(cl.Text) > 0 && isCloseParen(cl.Text[0]) {
			removeCount++
		}
	}

	openers := s.parenTrail.openers
	s.parenTrail.openers = append([]*Paren(nil), openers[removeCount:]...)
	s.parenTrail.startCol = newStart
	s.parenTrail.endCol = newEnd

	s.parenTrail.clamped.openers = append([]*Paren(nil), openers[:removeCount]...)
	s.parenTrail.clamped.startCol = startCol
	s.parenTrail.clamped.endCol = endCol
}

// popParenTrail moves any openers remaining in the active trail back
// onto the stack, as if their closers were never seen — used when
// Indent mode decides the trail shouldn't be closed after all.
func (s *state) popParenTrail() {
	if s.parenTrail.startCol == s.parenTrail.endCol {
		return
	}
	for i := len(s.parenTrail.openers) - 1; i >= 0; i-- {
		s.parenStack = append(s.parenStack, s.parenTrail.openers[i])
	}
	s.parenTrail.openers = nil
}

// correctParenTrail implements §4.5's Indent-mode trail correction:
// determine how many stack openers sit above indentCol, pop them,
// build the matching closer string, and splice it in as the previous
// line's new trail.
func (s *state) correctParenTrail(indentCol Column) {
	var closers []byte

	index := s.getParentOpenerIndex(indentCol)
	for i := 0; i < index; i++ {
		opener := s.parenStack[len(s.parenStack)-1]
		s.parenStack = s.parenStack[:len(s.parenStack)-1]
		closeCh := matchParen(opener.Ch)
		if s.returnParens {
			setCloser(opener, s.parenTrail.line, s.parenTrail.startCol+i, closeCh)
		}
		s.parenTrail.openers = append(s.parenTrail.openers, opener)
		closers = append(closers, closeCh)
	}

	if s.parenTrail.line != noLine {
		line := s.parenTrail.line
		start, end := s.parenTrail.startCol, s.parenTrail.endCol
		s.replaceWithinLine(line, start, end, string(closers))
		s.parenTrail.endCol = s.parenTrail.startCol + len(closers)
		s.rememberParenTrail()
	}
}

// cleanParenTrail removes interior whitespace from the trail, keeping
// only close-brackets — Paren mode does this when the cursor isn't on
// the line being finalized.
func (s *state) cleanParenTrail() {
	startCol, endCol := s.parenTrail.startCol, s.parenTrail.endCol
	if startCol == endCol || s.line != s.parenTrail.line {
		return
	}

	var newTrail []byte
	spaceCount := 0
	for _, cl := range column.Split(s.lines[s.line]) {
		if cl.Col < startCol || cl.Col >= endCol {
			continue
		}
		if len(cl.Text) > 0 && isCloseParen(cl.Text[0]) {
			newTrail = append(newTrail, cl.Text[0])
		} else {
			spaceCount++
		}
	}

	if spaceCount > 0 {
		s.replaceWithinLine(s.line, startCol, endCol, string(newTrail))
		s.parenTrail.endCol -= spaceCount
	}
}

// appendParenTrail lifts a lone leading close-paren on this line up into
// the previous line's paren trail (Paren mode, §4.5).
func (s *state) appendParenTrail() {
	opener := s.parenStack[len(s.parenStack)-1]
	s.parenStack = s.parenStack[:len(s.parenStack)-1]
	closeCh := matchParen(opener.Ch)
	if s.returnParens {
		setCloser(opener, s.parenTrail.line, s.parenTrail.endCol, closeCh)
	}

	s.setMaxIndent(opener)
	line, end := s.parenTrail.line, s.parenTrail.endCol
	s.insertWithinLine(line, end, string(closeCh))

	s.parenTrail.endCol++
	s.parenTrail.openers = append(s.parenTrail.openers, opener)
	s.updateRememberedParenTrail()
}

func (s *state) invalidateParenTrail() {
	s.parenTrail = newInternalParenTrail()
}

func (s *state) checkUnmatchedOutsideParenTrail() error {
	if cache, ok := s.errorPosCache[UnmatchedCloseParen]; ok {
		if s.parenTrail.startCol != noColumn && cache.Col < s.parenTrail.startCol {
			return s.error(UnmatchedCloseParen)
		}
	}
	return nil
}

func (s *state) setMaxIndent(opener *Paren) {
	if parent := peek(s.parenStack, 0); parent != nil {
		v := opener.Col
		parent.MaxChildIndent = &v
	} else {
		v := opener.Col
		s.maxIndent = &v
	}
}

func (s *state) rememberParenTrail() {
	if len(s.parenTrail.clamped.openers) == 0 && len(s.parenTrail.openers) == 0 {
		return
	}
	isClamped := s.parenTrail.clamped.startCol != noColumn
	trail := ParenTrail{
		Line: s.parenTrail.line,
	}
	if isClamped {
		trail.StartCol = s.parenTrail.clamped.startCol
		trail.EndCol = s.parenTrail.clamped.endCol
	} else {
		trail.StartCol = s.parenTrail.startCol
		trail.EndCol = s.parenTrail.endCol
	}

	s.parenTrails = append(s.parenTrails, trail)

	if s.returnParens {
		for _, opener := range s.parenTrail.openers {
			if opener.Closer != nil {
				t := trail
				opener.Closer.Trail = &t
			}
		}
	}
}

func (s *state) updateRememberedParenTrail() {
	if len(s.parenTrails) == 0 || s.parenTrails[len(s.parenTrails)-1].Line != s.parenTrail.line {
		s.rememberParenTrail()
		return
	}
	trail := &s.parenTrails[len(s.parenTrails)-1]
	trail.EndCol = s.parenTrail.endCol
	if s.returnParens && len(s.parenTrail.openers) > 0 {
		opener := s.parenTrail.openers[len(s.parenTrail.openers)-1]
		t := *trail
		opener.Closer.Trail = &t
	}
}

// finishNewParenTrail dispatches the per-line trail finalization
// (spec.md §4.4).
func (s *state) finishNewParenTrail() {
	switch {
	case s.isInStringish():
		s.invalidateParenTrail()
	case s.mode == ModeIndent:
		s.clampParenTrailToCursor()
		s.popParenTrail()
	case s.mode == ModeParen:
		if opener := peek(s.parenTrail.openers, 0); opener != nil {
			s.setMaxIndent(opener)
		}
		if s.line != s.cursorLine {
			s.cleanParenTrail()
		}
		s.rememberParenTrail()
	}
}
