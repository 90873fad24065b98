package parinfer

// contextKind is the lexical state (spec.md §4.2). Block-comment and
// long-string variants carry extra nesting/run-length counters, modeled
// here as plain int fields on lexContext rather than as separate Go
// types, since Go has no tagged-union sum type to mirror the Rust enum
// directly.
type contextKind int

const (
	ctxCode contextKind = iota
	ctxComment
	ctxString
	ctxReaderPrefix
	ctxBlockCommentPre
	ctxBlockComment
	ctxBlockCommentPost
	ctxGuileBlockComment
	ctxGuileBlockCommentPost
	ctxLongStringPre
	ctxLongString
)

type lexContext struct {
	kind  contextKind
	delim string // ctxString: the opening delimiter ('"' or '|')
	depth int    // ctx{BlockCommentPre,BlockComment,BlockCommentPost}: nesting depth
	// ctxLongStringPre/ctxLongString: open/close backtick run lengths
	openLen  int
	closeLen int
}

func (c lexContext) isInCode() bool {
	return c.kind == ctxCode || c.kind == ctxReaderPrefix
}

func (c lexContext) isInComment() bool {
	return c.kind == ctxComment
}

func (c lexContext) isInStringish() bool {
	switch c.kind {
	case ctxString, ctxBlockCommentPre, ctxBlockComment, ctxBlockCommentPost,
		ctxGuileBlockComment, ctxGuileBlockCommentPost, ctxLongStringPre, ctxLongString:
		return true
	default:
		return false
	}
}

type escapeState int

const (
	escNormal escapeState = iota
	escEscaping
	escEscaped
)

type argTabStopState int

const (
	argNotSearching argTabStopState = iota
	argSearchingSpace
	argSearchingArg
)
