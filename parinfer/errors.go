package parinfer

import "fmt"

// ErrorName enumerates the recoverable error kinds the engine can
// return. The Smart-mode restart signal is a separate internal
// control-flow token (restartError) and is never exposed through ErrorName.
type ErrorName string

const (
	QuoteDanger         ErrorName = "quote-danger"
	EolBackslash        ErrorName = "eol-backslash"
	UnclosedQuote       ErrorName = "unclosed-quote"
	UnclosedParen       ErrorName = "unclosed-paren"
	UnmatchedCloseParen ErrorName = "unmatched-close-paren"
	UnmatchedOpenParen  ErrorName = "unmatched-open-paren"
	LeadingCloseParen   ErrorName = "leading-close-paren"
)

var errorMessages = map[ErrorName]string{
	QuoteDanger:         "quotes must be balanced inside comment blocks",
	EolBackslash:        "line cannot end in a hanging backslash",
	UnclosedQuote:       "string is missing a closing quote",
	UnclosedParen:       "unclosed open-paren",
	UnmatchedCloseParen: "unmatched close-paren",
	UnmatchedOpenParen:  "unmatched open-paren",
	LeadingCloseParen:   "line cannot lead with a close-paren",
}

// Error is the position-carrying error the engine returns to callers.
// Name identifies the kind. Line/Col locate the error in input
// coordinates, or in output coordinates when PartialResult was
// requested; when the offending character's position was cached as it
// was first seen, that cached position is reported, so later edits on the
// same line don't shift it. InputLine/InputCol are the input coordinates
// at which the error was raised.
type Error struct {
	Name      ErrorName
	Message   string
	Line      LineNumber
	Col       Column
	InputLine LineNumber
	InputCol  Column
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line+1, e.Col+1, e.Message)
}

func errorMessage(name ErrorName) string {
	if m, ok := errorMessages[name]; ok {
		return m
	}
	return string(name)
}

func (s *state) cacheErrorPos(name ErrorName) {
	s.errorPosCache[name] = Error{
		Name:      name,
		Line:      s.line,
		Col:       s.col,
		InputLine: s.inputLine,
		InputCol:  s.inputCol,
	}
}

// error builds and returns the positioned Error for name. The reported
// position favors the error_pos_cache entry recorded when the offending
// character was first seen, so later edits on the same line don't shift
// it — unless PartialResult was requested, in which case output
// coordinates are used instead (spec.md §7).
func (s *state) error(name ErrorName) error {
	cache, hasCache := s.errorPosCache[name]

	var line, col int
	switch {
	case s.partialResult && hasCache:
		line, col = cache.Line, cache.Col
	case !s.partialResult && hasCache:
		line, col = cache.InputLine, cache.InputCol
	case s.partialResult:
		line, col = s.line, s.col
	default:
		line, col = s.inputLine, s.inputCol
	}

	e := &Error{
		Name:      name,
		Line:      line,
		Col:       col,
		Message:   errorMessage(name),
		InputLine: s.inputLine,
		InputCol:  s.inputCol,
	}

	if name == UnclosedParen {
		if opener := peek(s.parenStack, 0); opener != nil {
			if s.partialResult {
				e.Line, e.Col = opener.Line, opener.Col
			} else {
				e.Line, e.Col = opener.InputLine, opener.InputCol
			}
		}
	}

	return e
}

// restartError is an internal control-flow token: Smart mode raises it
// to signal that the driver must discard the in-progress state and
// reprocess the whole input in Paren mode. It is never returned to a
// caller — see processText.
type restartError struct{}

func (restartError) Error() string { return "restart requested (internal, not a user error)" }
