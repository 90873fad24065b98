package parinfer

import (
	"github.com/parinfer-go/parinfer/internal/column"
)

func (s *state) processChar(ch string) error {
	origCh := ch
	s.ch = ch
	s.skipChar = false

	s.handleChangeDelta()

	if s.trackingIndent {
		if err := s.checkIndent(); err != nil {
			return err
		}
	}

	if s.skipChar {
		s.ch = ""
	} else if err := s.onChar(); err != nil {
		return err
	}

	s.commitChar(origCh)
	return nil
}

func (s *state) processLine(lineNo LineNumber) error {
	s.initLine()
	s.lines = append(s.lines, s.inputLines[lineNo])

	s.setTabStops()

	for _, cl := range column.Split(s.inputLines[lineNo]) {
		s.inputCol = cl.Col
		if err := s.processChar(cl.Text); err != nil {
			return err
		}
	}
	if err := s.processChar(newline); err != nil {
		return err
	}

	if !s.forceBalance {
		if err := s.checkUnmatchedOutsideParenTrail(); err != nil {
			return err
		}
		if err := s.checkLeadingCloseParen(); err != nil {
			return err
		}
	}

	if s.line == s.parenTrail.line {
		s.finishNewParenTrail()
	}

	return nil
}

func (s *state) finalizeResult() error {
	if s.quoteDanger {
		if err := s.error(QuoteDanger); err != nil {
			return err
		}
	}
	if s.isInStringish() {
		if err := s.error(UnclosedQuote); err != nil {
			return err
		}
	}
	if len(s.parenStack) != 0 && s.mode == ModeParen {
		if err := s.error(UnclosedParen); err != nil {
			return err
		}
	}
	if s.mode == ModeIndent {
		s.initLine()
		if err := s.onIndent(); err != nil {
			return err
		}
	}
	s.success = true
	return nil
}

func processText(text string, inputLines []string, opts Options, mode Mode, smart bool, options ...Option) Answer {
	s := newState(text, inputLines, opts, mode, smart)
	for _, o := range options {
		o(s)
	}
	s.origText = text

	var processErr error
	for i := range inputLines {
		s.inputLine = i
		processErr = s.processLine(i)
		if processErr != nil {
			break
		}
	}

	if processErr == nil {
		processErr = s.finalizeResult()
	}

	switch e := processErr.(type) {
	case nil:
		return publicResult(s)
	case restartError:
		_ = e
		s.logger.WithFields(map[string]interface{}{
			"mode": string(mode),
		}).Debug("parinfer: smart-mode restart, downgrading to paren mode")
		return processText(text, inputLines, opts, ModeParen, smart, options...)
	default:
		if pe, ok := processErr.(*Error); ok {
			s.err = pe
			s.success = false
			s.logger.WithFields(map[string]interface{}{
				"error": pe.Name,
				"line":  pe.Line,
				"col":   pe.Col,
			}).Debug("parinfer: returning error")
		}
		return publicResult(s)
	}
}

func publicResult(s *state) Answer {
	ending := lineEnding(s.origText)

	if s.success {
		return Answer{
			Text:        joinLines(s.lines, ending),
			CursorCol:   colOrNil(s.cursorCol),
			CursorLine:  lineOrNil(s.cursorLine),
			Success:     true,
			TabStops:    s.tabStops,
			ParenTrails: s.parenTrails,
			Parens:      s.parens,
		}
	}

	ans := Answer{
		Success:     false,
		TabStops:    s.tabStops,
		ParenTrails: s.parenTrails,
		Parens:      s.parens,
	}
	if pe, ok := s.err.(*Error); ok {
		ans.Error = pe
	}
	if s.partialResult {
		ans.Text = joinLines(s.lines, ending)
		ans.CursorCol = colOrNil(s.cursorCol)
		ans.CursorLine = lineOrNil(s.cursorLine)
	} else {
		ans.Text = s.origText
		ans.CursorCol = colOrNil(s.origCursorCol)
		ans.CursorLine = lineOrNil(s.origCursorLine)
	}
	return ans
}

func joinLines(lines []string, sep string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += sep
		}
		out += l
	}
	return out
}

// IndentMode adjusts parenthesization to match indentation.
func IndentMode(text string, opts Options, options ...Option) Answer {
	lines := splitLines(text)
	return processText(text, lines, opts, ModeIndent, false, options...)
}

// ParenMode adjusts indentation to match parenthesization.
func ParenMode(text string, opts Options, options ...Option) Answer {
	lines := splitLines(text)
	return processText(text, lines, opts, ModeParen, false, options...)
}

// SmartMode reconciles both, honoring cursor position, downgrading to
// Paren mode via the internal restart signal when the user's cursor
// implies a structural intent Indent mode cannot express. Disabled
// (falls back to plain Indent semantics) when a selection is active.
func SmartMode(text string, opts Options, options ...Option) Answer {
	lines := splitLines(text)
	smart := opts.SelectionStartLine == nil
	return processText(text, lines, opts, ModeIndent, smart, options...)
}
