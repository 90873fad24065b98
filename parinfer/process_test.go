package parinfer_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/parinfer-go/parinfer/parinfer"
)

func TestWithLoggerObservesErrors(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	ans := parinfer.ParenMode(`(foo "bar)`, parinfer.Options{}, parinfer.WithLogger(log))
	assert.False(t, ans.Success)
	assert.NotEmpty(t, hook.Entries)
}

func TestIndentModeClosesUnclosedParen(t *testing.T) {
	ans := parinfer.IndentMode("(foo bar", parinfer.Options{})
	assert.True(t, ans.Success)
	assert.Equal(t, "(foo bar)", ans.Text)
}

func TestIndentModeClosesNestedAtEOF(t *testing.T) {
	ans := parinfer.IndentMode("(foo\n  (bar", parinfer.Options{})
	assert.True(t, ans.Success)
	assert.Equal(t, "(foo\n  (bar))", ans.Text)
}

func TestIndentModeNoOpOnBalancedInput(t *testing.T) {
	ans := parinfer.IndentMode("(foo (bar))", parinfer.Options{})
	assert.True(t, ans.Success)
	assert.Equal(t, "(foo (bar))", ans.Text)
}

func TestParenModeNoOpOnAlreadyCorrectIndentation(t *testing.T) {
	ans := parinfer.ParenMode("(foo\n  (bar))", parinfer.Options{})
	assert.True(t, ans.Success)
	assert.Equal(t, "(foo\n  (bar))", ans.Text)
}

func TestParenModeCorrectsIndentation(t *testing.T) {
	ans := parinfer.ParenMode("(foo\n(bar))", parinfer.Options{})
	assert.True(t, ans.Success)
	assert.Equal(t, "(foo\n (bar))", ans.Text)
}

func TestSmartModeMatchesIndentModeWithoutCursor(t *testing.T) {
	ans := parinfer.SmartMode("(foo\n  (bar", parinfer.Options{})
	assert.True(t, ans.Success)
	assert.Equal(t, "(foo\n  (bar))", ans.Text)
	assert.Nil(t, ans.CursorCol)
	assert.Nil(t, ans.CursorLine)
}

func TestUnclosedQuoteError(t *testing.T) {
	ans := parinfer.ParenMode(`(foo "bar)`, parinfer.Options{})
	assert.False(t, ans.Success)
	if assert.NotNil(t, ans.Error) {
		assert.Equal(t, parinfer.UnclosedQuote, ans.Error.Name)
	}
	assert.Equal(t, `(foo "bar)`, ans.Text)
}

func TestProcessDispatchesByMode(t *testing.T) {
	req := parinfer.Request{
		Mode: parinfer.ModeIndent,
		Text: "(foo bar",
	}
	ans := parinfer.Process(req)
	assert.True(t, ans.Success)
	assert.Equal(t, "(foo bar)", ans.Text)
}

func TestCommentedParenIsIgnored(t *testing.T) {
	ans := parinfer.IndentMode("(foo ;(bar\n baz)", parinfer.Options{})
	assert.True(t, ans.Success)
	assert.Equal(t, "(foo ;(bar\n baz)", ans.Text)
}

func TestStringContentsIgnoreParens(t *testing.T) {
	ans := parinfer.IndentMode(`(foo "(bar)" baz)`, parinfer.Options{})
	assert.True(t, ans.Success)
	assert.Equal(t, `(foo "(bar)" baz)`, ans.Text)
}

func TestProcessUnknownMode(t *testing.T) {
	ans := parinfer.Process(parinfer.Request{Mode: "bogus", Text: "(foo)"})
	assert.False(t, ans.Success)
	if assert.NotNil(t, ans.Error) {
		assert.Equal(t, "bad value specified for mode", ans.Error.Message)
	}
}

func TestParenModeUnmatchedCloseParenPosition(t *testing.T) {
	ans := parinfer.ParenMode("(foo))", parinfer.Options{})
	assert.False(t, ans.Success)
	if assert.NotNil(t, ans.Error) {
		assert.Equal(t, parinfer.UnmatchedCloseParen, ans.Error.Name)
		assert.Equal(t, 0, ans.Error.Line)
		assert.Equal(t, 5, ans.Error.Col)
	}
}

func TestIndentModeNormalizesTabToTwoSpaces(t *testing.T) {
	ans := parinfer.IndentMode("(foo\tbar)", parinfer.Options{})
	assert.True(t, ans.Success)
	assert.Equal(t, "(foo  bar)", ans.Text)
}

func TestIndentModeIgnoresNestedLispBlockComment(t *testing.T) {
	text := `#| a #| b |# c |# (d)`
	ans := parinfer.IndentMode(text, parinfer.Options{LispBlockComments: true})
	assert.True(t, ans.Success)
	assert.Equal(t, text, ans.Text)
}

func TestParenModeWideCharIndentUsesDisplayColumnNotByteOffset(t *testing.T) {
	// "  ｗｏ (x" has the opener "(" at display column 7 (two full-width
	// characters occupy columns 2-5), even though its byte offset is 9.
	// correctIndent must clamp the next line's indent against the
	// opener's display column, not its byte offset.
	ans := parinfer.ParenMode("  ｗｏ (x\n   y)", parinfer.Options{})
	assert.True(t, ans.Success)
	assert.Equal(t, "  ｗｏ (x\n        y)", ans.Text)
}

func TestSmartModeCursorHoldThenRestartToParenMode(t *testing.T) {
	text := "(a (b c))"
	line := 0

	// Cursor sits at the inner opener's own column (3), which is within
	// checkCursorHolding's [prevOpener.Col+1, opener.Col] range for the
	// close-paren it matches — holding stays true across the call, so
	// nothing is restarted and the already-balanced line round-trips.
	holdCol := 3
	holding := parinfer.SmartMode(text, parinfer.Options{
		CursorLine:     &line,
		CursorCol:      &holdCol,
		PrevCursorLine: &line,
		PrevCursorCol:  &holdCol,
	})
	assert.True(t, holding.Success)
	assert.Nil(t, holding.Error)
	assert.Equal(t, text, holding.Text)

	// The cursor then moves out of the hold range; checkCursorHolding
	// sees prevHolding && !holding and signals a restart, which
	// processText catches and silently retries in Paren mode instead of
	// surfacing it as an error.
	movedCol := 6
	restarted := parinfer.SmartMode(text, parinfer.Options{
		CursorLine:     &line,
		CursorCol:      &movedCol,
		PrevCursorLine: &line,
		PrevCursorCol:  &holdCol,
	})
	assert.True(t, restarted.Success)
	assert.Nil(t, restarted.Error)
	assert.Equal(t, text, restarted.Text)
}
