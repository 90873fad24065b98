package parinfer

import "github.com/parinfer-go/parinfer/internal/column"

func clampInt(val, min int, max *int) int {
	if min >= val {
		return min
	}
	if max != nil && *max <= val {
		return *max
	}
	return val
}

// addIndent rewrites the current line's leading whitespace to newIndent
// columns of spaces, and bumps indentDelta by the shift applied.
func (s *state) addIndent(delta int) {
	origIndent := s.col
	newIndent := origIndent + delta
	indentStr := column.Repeat(" ", newIndent)
	s.replaceWithinLine(s.line, 0, origIndent, indentStr)
	s.col = newIndent
	s.indentCol = newIndent
	s.indentDelta += delta
}

// shouldAddOpenerIndent reports whether opener's indentDelta still needs
// to be folded into the current line — it is a no-op once the user has
// already added it by hand (multiple lines indented together).
func shouldAddOpenerIndent(lineIndentDelta int, opener *Paren) bool {
	return opener.IndentDelta != lineIndentDelta
}

// correctIndent implements §4.5's Paren-mode indent correction: clamp
// the current column into [parent.Col+1, parent.MaxChildIndent].
func (s *state) correctIndent() {
	origIndent := s.col
	newIndent := origIndent
	minIndent := 0
	maxIndent := s.maxIndent

	if opener := peek(s.parenStack, 0); opener != nil {
		minIndent = opener.Col + 1
		maxIndent = opener.MaxChildIndent
		if shouldAddOpenerIndent(s.indentDelta, opener) {
			newIndent += opener.IndentDelta
		}
	}

	newIndent = clampInt(newIndent, minIndent, maxIndent)

	if newIndent != origIndent {
		s.addIndent(newIndent - origIndent)
	}
}

// onIndent fixes the line's indent point and runs the mode-specific
// reconciliation rule (spec.md §4.5).
func (s *state) onIndent() error {
	s.indentCol = s.col
	s.trackingIndent = false

	if s.quoteDanger {
		if err := s.error(QuoteDanger); err != nil {
			return err
		}
	}

	switch s.mode {
	case ModeIndent:
		s.correctParenTrail(s.col)
		if opener := peek(s.parenStack, 0); opener != nil && shouldAddOpenerIndent(s.indentDelta, opener) {
			s.addIndent(opener.IndentDelta)
		}
	case ModeParen:
		s.correctIndent()
	}

	return nil
}

// getParentOpenerIndex implements §4.5's parent-selection rule: walk the
// stack from the top, choosing the first opener that is a parent of
// indentCol. See spec.md §9 "Open question" — the "both nonzero,
// previously outside, now inside" branch deliberately allows
// fragmentation, matching the original's documented (if TODO-flagged)
// behavior.
func (s *state) getParentOpenerIndex(indentCol Column) int {
	for i := 0; i < len(s.parenStack); i++ {
		opener := peek(s.parenStack, i)
		openerIndex := len(s.parenStack) - i - 1

		currOutside := opener.Col < indentCol
		prevIndentCol := indentCol - s.indentDelta
		prevOutside := opener.Col-opener.IndentDelta < prevIndentCol

		isParent := false

		switch {
		case prevOutside && currOutside:
			isParent = true
		case !prevOutside && !currOutside:
			isParent = false
		case prevOutside && !currOutside:
			// POSSIBLE FRAGMENTATION: `(foo\n bar)` becoming `(foo)\nbar`.
			if s.indentDelta == 0 {
				isParent = true // 1. prevent fragmentation
			} else if opener.IndentDelta == 0 {
				isParent = false // 2. allow fragmentation
			} else {
				// both nonzero: allow fragmentation by default (see doc comment)
				isParent = false
			}
		case !prevOutside && currOutside:
			// POSSIBLE ADOPTION: `(foo)\n  bar` becoming `(foo\n  bar)`.
			nextOpener := peek(s.parenStack, i+1)
			switch {
			case nextOpener != nil && nextOpener.IndentDelta <= opener.IndentDelta:
				// disallow adoption only if nextOpener's delta would actually
				// keep indentCol out of opener's threshold.
				isParent = indentCol+nextOpener.IndentDelta > opener.Col
			case nextOpener != nil && nextOpener.IndentDelta > opener.IndentDelta:
				isParent = true
			case s.indentDelta > opener.IndentDelta:
				isParent = true
			}

			if isParent {
				// Clear IndentDelta: it is reserved for previous child lines only.
				s.parenStack[openerIndex].IndentDelta = 0
			}
		}

		if isParent {
			return i
		}
	}

	return len(s.parenStack)
}

func (s *state) checkLeadingCloseParen() error {
	if _, ok := s.errorPosCache[LeadingCloseParen]; ok && s.parenTrail.line == s.line {
		return s.error(LeadingCloseParen)
	}
	return nil
}

// onLeadingCloseParen handles a line whose first non-whitespace
// grapheme is a close-bracket (spec.md §4.5).
func (s *state) onLeadingCloseParen() error {
	switch s.mode {
	case ModeIndent:
		if !s.forceBalance {
			if s.smart {
				return restartError{}
			}
			if _, ok := s.errorPosCache[LeadingCloseParen]; !ok {
				s.cacheErrorPos(LeadingCloseParen)
			}
		}
		s.skipChar = true
	case ModeParen:
		if !isValidCloseParen(s.parenStack, s.ch) {
			if s.smart {
				s.skipChar = true
			} else {
				return s.error(UnmatchedCloseParen)
			}
		} else if isCursorLeftOf(s.cursorCol, s.cursorLine, s.col, s.line) {
			s.resetParenTrail(s.line, s.col)
			return s.onIndent()
		} else {
			s.appendParenTrail()
			s.skipChar = true
		}
	}
	return nil
}

// onCommentLine locates the parent opener appropriate to the current
// indent and shifts a comment-leading line to track its host form
// (spec.md §4.5).
func (s *state) onCommentLine() {
	trailLen := len(s.parenTrail.openers)

	if s.mode == ModeParen {
		for j := 0; j < trailLen; j++ {
			if opener := peek(s.parenTrail.openers, j); opener != nil {
				s.parenStack = append(s.parenStack, opener)
			}
		}
	}

	i := s.getParentOpenerIndex(s.col)
	indentToAdd := 0
	if opener := peek(s.parenStack, i); opener != nil && shouldAddOpenerIndent(s.indentDelta, opener) {
		indentToAdd = opener.IndentDelta
	}
	if indentToAdd != 0 {
		s.addIndent(indentToAdd)
	}

	if s.mode == ModeParen {
		s.parenStack = s.parenStack[:len(s.parenStack)-trailLen]
	}
}

func (s *state) checkIndent() error {
	if len(s.ch) > 0 && isCloseParen(s.ch[0]) {
		return s.onLeadingCloseParen()
	}
	if s.ch == s.commentChar {
		s.onCommentLine()
		s.trackingIndent = false
		return nil
	}
	if s.ch != "\n" && s.ch != " " && s.ch != "\t" {
		return s.onIndent()
	}
	return nil
}
