package parinfer

// peek returns the i-th element from the top of stack (0 = top), or nil
// if the stack is too shallow.
func peek(stack []*Paren, i int) *Paren {
	if i >= len(stack) {
		return nil
	}
	return stack[len(stack)-1-i]
}

func isValidCloseParen(stack []*Paren, ch string) bool {
	if len(stack) == 0 || len(ch) == 0 {
		return false
	}
	top := peek(stack, 0)
	return matchParen(ch[0]) == top.Ch
}

func (s *state) isWhitespace() bool {
	return !s.isEscaped() && (s.ch == " " || s.ch == "  ")
}

func (s *state) isClosable() bool {
	ch := s.ch
	closer := len(ch) > 0 && isCloseParen(ch[0]) && !s.isEscaped()
	return s.isInCode() && !s.isWhitespace() && ch != "" && !closer
}

// checkCursorHolding implements §4.3 "Cursor holding": for the opener on
// top of stack, the hold range is [prevOpener.Col+1, opener.Col] on the
// same line. If the cursor used to sit there but no longer does, a
// restart into Paren mode is requested.
func (s *state) checkCursorHolding() (bool, error) {
	opener := peek(s.parenStack, 0)
	holdMin := 0
	if prev := peek(s.parenStack, 1); prev != nil {
		holdMin = prev.Col + 1
	}
	holdMax := opener.Col

	holding := s.cursorLine == opener.Line &&
		s.cursorCol != noColumn &&
		holdMin <= s.cursorCol && s.cursorCol <= holdMax

	shouldCheckPrev := len(s.changes) == 0 && s.prevCursorLine != noLine
	if shouldCheckPrev {
		prevHolding := s.prevCursorLine == opener.Line &&
			s.prevCursorCol != noColumn &&
			holdMin <= s.prevCursorCol && s.prevCursorCol <= holdMax
		if prevHolding && !holding {
			return false, restartError{}
		}
	}

	return holding, nil
}

func (s *state) trackArgTabStop(st argTabStopState) {
	switch st {
	case argSearchingSpace:
		if s.isInCode() && s.isWhitespace() {
			s.trackingArgTabStop = argSearchingArg
		}
	case argSearchingArg:
		if !s.isWhitespace() {
			opener := s.parenStack[len(s.parenStack)-1]
			col := s.col
			opener.ArgCol = &col
			s.trackingArgTabStop = argNotSearching
		}
	}
}

// ---- literal character events (spec.md §4.2/§4.3) ----

func (s *state) inCodeOnOpenParen() {
	opener := &Paren{
		InputLine: s.inputLine,
		InputCol:  s.inputCol,

		Line: s.line,
		Col:  s.col,
		Ch:   s.ch[0],

		IndentDelta: s.indentDelta,
	}

	if s.returnParens {
		if parent := peek(s.parenStack, 0); parent != nil {
			parent.Children = append(parent.Children, opener)
		} else {
			s.parens = append(s.parens, opener)
		}
	}
	s.parenStack = append(s.parenStack, opener)
	s.trackingArgTabStop = argSearchingSpace
}

func (s *state) inCodeOnMatchedCloseParen() error {
	top := peek(s.parenStack, 0)
	opener := top.clone()
	if s.returnParens {
		setCloser(opener, s.line, s.col, s.ch[0])
	}

	s.parenTrail.endCol = s.col + 1
	s.parenTrail.openers = append(s.parenTrail.openers, opener)

	if s.mode == ModeIndent && s.smart {
		holding, err := s.checkCursorHolding()
		if err != nil {
			return err
		}
		if holding {
			origStart := s.parenTrail.startCol
			origEnd := s.parenTrail.endCol
			origOpeners := s.parenTrail.openers
			col, line := s.col, s.line
			s.resetParenTrail(line, col+1)
			s.parenTrail.clamped = parenTrailClamped{
				startCol: origStart,
				endCol:   origEnd,
				openers:  origOpeners,
			}
		}
	}
	s.parenStack = s.parenStack[:len(s.parenStack)-1]
	s.trackingArgTabStop = argNotSearching
	return nil
}

func (s *state) inCodeOnUnmatchedCloseParen() error {
	switch s.mode {
	case ModeParen:
		inLeadingTrail := s.parenTrail.line == s.line && s.parenTrail.startCol == s.indentCol
		canRemove := s.smart && inLeadingTrail
		if !canRemove {
			if err := s.error(UnmatchedCloseParen); err != nil {
				return err
			}
		}
	case ModeIndent:
		if _, ok := s.errorPosCache[UnmatchedCloseParen]; !ok {
			s.cacheErrorPos(UnmatchedCloseParen)
			if top := peek(s.parenStack, 0); top != nil {
				s.cacheErrorPos(UnmatchedOpenParen)
				e := s.errorPosCache[UnmatchedOpenParen]
				e.InputLine = top.InputLine
				e.InputCol = top.InputCol
				s.errorPosCache[UnmatchedOpenParen] = e
			}
		}
	}
	s.ch = ""
	return nil
}

func (s *state) inCodeOnCloseParen() error {
	if isValidCloseParen(s.parenStack, s.ch) {
		return s.inCodeOnMatchedCloseParen()
	}
	return s.inCodeOnUnmatchedCloseParen()
}

func setCloser(opener *Paren, line LineNumber, col Column, ch byte) {
	opener.Closer = &Closer{Line: line, Col: col, Ch: ch}
}
