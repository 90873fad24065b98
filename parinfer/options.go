package parinfer

// Mode selects which reconciliation policy governs a call.
type Mode string

const (
	ModeIndent Mode = "indent"
	ModeParen  Mode = "paren"
	ModeSmart  Mode = "smart"
)

// Options carries the optional per-call inputs described in spec.md §6.
// It is both JSON- and YAML-taggable: callers may load dialect defaults
// from a project config file (see cmd/parinfer) and override individual
// fields per request.
type Options struct {
	CursorCol  *int `json:"cursorX,omitempty" yaml:"cursorX,omitempty"`
	CursorLine *int `json:"cursorLine,omitempty" yaml:"cursorLine,omitempty"`

	PrevCursorCol  *int `json:"prevCursorX,omitempty" yaml:"prevCursorX,omitempty"`
	PrevCursorLine *int `json:"prevCursorLine,omitempty" yaml:"prevCursorLine,omitempty"`

	SelectionStartLine *int `json:"selectionStartLine,omitempty" yaml:"selectionStartLine,omitempty"`

	// PrevText, if set, causes the engine to invoke the diff collaborator
	// (parinfer/diff) to derive Changes; Changes, if also set explicitly,
	// takes precedence.
	PrevText *string  `json:"prevText,omitempty" yaml:"-"`
	Changes  []Change `json:"changes,omitempty" yaml:"-"`

	CommentChar string `json:"commentChar,omitempty" yaml:"commentChar,omitempty"`

	LispVlineSymbols   bool `json:"lispVlineSymbols,omitempty" yaml:"lispVlineSymbols,omitempty"`
	LispBlockComments  bool `json:"lispBlockComments,omitempty" yaml:"lispBlockComments,omitempty"`
	GuileBlockComments bool `json:"guileBlockComments,omitempty" yaml:"guileBlockComments,omitempty"`
	SchemeSexpComments bool `json:"schemeSexpComments,omitempty" yaml:"schemeSexpComments,omitempty"`
	JanetLongStrings   bool `json:"janetLongStrings,omitempty" yaml:"janetLongStrings,omitempty"`

	// ReturnParens requests the full Paren/Closer tree in Answer.Parens.
	// It is not part of the original wire options, but keeping it gated
	// behind a flag avoids building the tree (and its allocations) on
	// every call when a caller only wants the text and cursor back.
	ReturnParens bool `json:"returnParens,omitempty" yaml:"returnParens,omitempty"`

	// PartialResult requests that, on failure, the answer carry the
	// partially-edited buffer and live cursor rather than the original
	// input.
	PartialResult bool `json:"partialResult,omitempty" yaml:"partialResult,omitempty"`
}

func (o Options) commentChar() string {
	if o.CommentChar == "" {
		return ";"
	}
	return o.CommentChar
}

// Request is the external request envelope (spec.md §6). JSON
// marshalling of Request/Answer is treated as an external collaborator
// by spec.md; the tags here exist so the ambient CLI (cmd/parinfer) has
// something standard to encode/decode without hand-rolled field mapping.
type Request struct {
	Mode    Mode    `json:"mode"`
	Text    string  `json:"text"`
	Options Options `json:"options"`
}

// Answer is the external response envelope (spec.md §6).
type Answer struct {
	Text       string `json:"text"`
	CursorCol  *int   `json:"cursorX,omitempty"`
	CursorLine *int   `json:"cursorLine,omitempty"`
	Success    bool   `json:"success"`
	Error      *Error `json:"error,omitempty"`

	TabStops   []TabStop    `json:"tabStops"`
	ParenTrails []ParenTrail `json:"parenTrails"`
	Parens     []*Paren     `json:"parens,omitempty"`
}

// Process dispatches a Request to the named mode, computing Changes from
// Options.PrevText via the diff collaborator if the caller didn't supply
// them directly. Unknown modes report a single-error Answer rather than
// panicking, matching the teacher convention of returning errors instead
// of crashing on malformed input from a caller.
func Process(req Request, options ...Option) Answer {
	opts := req.Options
	if opts.PrevText != nil && opts.Changes == nil {
		opts.Changes = computeChanges(*opts.PrevText, req.Text)
	}

	switch req.Mode {
	case ModeParen:
		return ParenMode(req.Text, opts, options...)
	case ModeIndent:
		return IndentMode(req.Text, opts, options...)
	case ModeSmart:
		return SmartMode(req.Text, opts, options...)
	default:
		return Answer{
			Success: false,
			Error: &Error{
				Message: "bad value specified for mode",
			},
		}
	}
}

// computeChanges is overridden at init by the diff package's registration
// to avoid an import cycle (parinfer/diff imports parinfer's Change
// type); see RegisterDiff, called from parinfer/diff's init.
var computeChanges = func(prevText, text string) []Change { return nil }

// RegisterDiff installs the external diff collaborator used by Process
// when Options.PrevText is set without explicit Changes. parinfer/diff
// calls this from its init().
func RegisterDiff(fn func(prevText, text string) []Change) {
	computeChanges = fn
}
