package parinfer

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/parinfer-go/parinfer/internal/column"
)

// nullLogger is the default diagnostic sink: library callers get total
// silence unless they opt in with WithLogger, matching the teacher
// convention of threading a logrus.FieldLogger through rather than
// reaching for the global logger inside engine code.
var nullLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

// state is the single mutable processing record threaded through one
// process call (spec.md §2: "One mutable processing state threads
// through the pass; its fields are the only durable memory.").
type state struct {
	mode  Mode
	smart bool

	logger logrus.FieldLogger

	origText       string
	origCursorCol  Column
	origCursorLine LineNumber

	inputLines []string
	inputLine  LineNumber
	inputCol   Column

	line      LineNumber
	ch        string
	col       Column
	indentCol Column

	returnParens bool

	cursorCol  Column
	cursorLine LineNumber

	prevCursorCol  Column
	prevCursorLine LineNumber

	selectionStartLine LineNumber

	context   lexContext
	commentCol Column
	escape    escapeState

	lispVlineSymbols   bool
	lispReaderSyntax   bool
	lispBlockComments  bool
	guileBlockComments bool
	schemeSexpComments bool
	janetLongStrings   bool

	quoteDanger   bool
	trackingIndent bool
	skipChar      bool
	success       bool
	partialResult bool
	forceBalance  bool

	commentChar string

	maxIndent   *int
	indentDelta int

	trackingArgTabStop argTabStopState

	err           error
	errorPosCache map[ErrorName]Error

	lines []string

	parenStack []*Paren

	tabStops []TabStop

	parenTrail  internalParenTrail
	parenTrails []ParenTrail

	parens []*Paren

	changes map[changeKey]transformedChange
}

func newState(text string, inputLines []string, opts Options, mode Mode, smart bool) *state {
	logger := logrus.FieldLogger(nullLogger)

	s := &state{
		mode:  mode,
		smart: smart,

		logger: logger,

		origText:       text,
		origCursorCol:  colFromPtr(opts.CursorCol),
		origCursorLine: lineFromPtr(opts.CursorLine),

		inputLines: inputLines,
		inputLine:  0,
		inputCol:   0,

		line:      noLine,
		col:       0,
		indentCol: noColumn,

		returnParens: opts.ReturnParens,

		cursorCol:  colFromPtr(opts.CursorCol),
		cursorLine: lineFromPtr(opts.CursorLine),

		prevCursorCol:  colFromPtr(opts.PrevCursorCol),
		prevCursorLine: lineFromPtr(opts.PrevCursorLine),

		selectionStartLine: lineFromPtr(opts.SelectionStartLine),

		context:    lexContext{kind: ctxCode},
		commentCol: noColumn,
		escape:     escNormal,

		lispVlineSymbols:   opts.LispVlineSymbols,
		lispBlockComments:  opts.LispBlockComments,
		guileBlockComments: opts.GuileBlockComments,
		schemeSexpComments: opts.SchemeSexpComments,
		janetLongStrings:   opts.JanetLongStrings,

		partialResult: opts.PartialResult,

		commentChar: opts.commentChar(),

		indentDelta: 0,

		errorPosCache: map[ErrorName]Error{},

		parenTrail: newInternalParenTrail(),

		changes: transformChanges(opts.Changes),
	}
	s.lispReaderSyntax = s.lispBlockComments || s.guileBlockComments || s.schemeSexpComments

	if opts.SelectionStartLine != nil {
		s.smart = false
	}

	return s
}

// WithLogger is a functional option consumers rarely need: it lets a
// caller observe restart-to-Paren downgrades and returned errors without
// changing Process's signature.
type Option func(*state)

func WithLogger(l logrus.FieldLogger) Option {
	return func(s *state) { s.logger = l }
}

func (s *state) isInCode() bool      { return s.context.isInCode() }
func (s *state) isInComment() bool   { return s.context.isInComment() }
func (s *state) isInStringish() bool { return s.context.isInStringish() }
func (s *state) isEscaping() bool    { return s.escape == escEscaping }
func (s *state) isEscaped() bool     { return s.escape == escEscaped }

// ---- line operations (spec.md §4.1 contracts, §4.4 commit) ----

func (s *state) isCursorAffected(start, end Column) bool {
	if s.cursorCol == noColumn {
		return false
	}
	if s.cursorCol == start && s.cursorCol == end {
		return s.cursorCol == 0
	}
	return s.cursorCol >= end
}

func (s *state) shiftCursorOnEdit(line LineNumber, start, end Column, replace string) {
	oldLen := end - start
	newLen := column.StringWidth(replace)
	dx := newLen - oldLen
	if s.cursorCol != noColumn && s.cursorLine != noLine && dx != 0 &&
		s.cursorLine == line && s.isCursorAffected(start, end) {
		s.cursorCol += dx
	}
}

func (s *state) replaceWithinLine(line LineNumber, start, end Column, replace string) {
	s.lines[line] = column.ReplaceRange(s.lines[line], start, end, replace)
	s.shiftCursorOnEdit(line, start, end, replace)
}

func (s *state) insertWithinLine(line LineNumber, at Column, insert string) {
	s.replaceWithinLine(line, at, at, insert)
}

func (s *state) initLine() {
	s.col = 0
	s.line++

	s.indentCol = noColumn
	s.commentCol = noColumn
	s.indentDelta = 0

	delete(s.errorPosCache, UnmatchedCloseParen)
	delete(s.errorPosCache, UnmatchedOpenParen)
	delete(s.errorPosCache, LeadingCloseParen)

	s.trackingArgTabStop = argNotSearching
	s.trackingIndent = !s.isInStringish()
}

func (s *state) commitChar(origCh string) {
	chWidth := column.Width(s.ch)
	if origCh != s.ch {
		origWidth := column.Width(origCh)
		s.replaceWithinLine(s.line, s.col, s.col+origWidth, s.ch)
		s.indentDelta -= origWidth - chWidth
	}
	s.col += chWidth
}
