package cmd

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/alecthomas/repr"
	"github.com/gofrs/uuid"
	"github.com/spf13/cobra"

	"github.com/parinfer-go/parinfer/internal/column"
	"github.com/parinfer-go/parinfer/parinfer"
)

var (
	cursorLine         int
	cursorCol          int
	hasCursor          bool
	prevCursorLine     int
	prevCursorCol      int
	hasPrevCursor      bool
	selectionStartLine int
	hasSelection       bool
	returnParens       bool
	partialResult      bool
	prevTextFile       string
)

func addCursorFlags(c *cobra.Command) {
	c.Flags().IntVar(&cursorLine, "cursor-line", 0, "0-based cursor line")
	c.Flags().IntVar(&cursorCol, "cursor-col", 0, "0-based cursor display column")
	c.Flags().BoolVar(&hasCursor, "has-cursor", false, "treat --cursor-line/--cursor-col as set")
	c.Flags().IntVar(&prevCursorLine, "prev-cursor-line", 0, "0-based previous cursor line")
	c.Flags().IntVar(&prevCursorCol, "prev-cursor-col", 0, "0-based previous cursor display column")
	c.Flags().BoolVar(&hasPrevCursor, "has-prev-cursor", false, "treat --prev-cursor-line/--prev-cursor-col as set")
	c.Flags().IntVar(&selectionStartLine, "selection-start-line", 0, "0-based selection start line")
	c.Flags().BoolVar(&hasSelection, "has-selection", false, "treat --selection-start-line as set")
	c.Flags().BoolVar(&returnParens, "return-parens", false, "include the full paren tree in the answer")
	c.Flags().BoolVar(&partialResult, "partial-result", false, "on failure, return the partially-edited buffer")
	c.Flags().StringVar(&prevTextFile, "prev-text-file", "", "path to the previous buffer contents, diffed against stdin to derive edits")
}

func buildOptions() (parinfer.Options, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return parinfer.Options{}, fmt.Errorf("loading %s: %w", configFile, err)
	}

	opts := parinfer.Options{
		ReturnParens:  returnParens,
		PartialResult: partialResult,
	}
	if hasCursor {
		opts.CursorLine = &cursorLine
		opts.CursorCol = &cursorCol
	}
	if hasPrevCursor {
		opts.PrevCursorLine = &prevCursorLine
		opts.PrevCursorCol = &prevCursorCol
	}
	if hasSelection {
		opts.SelectionStartLine = &selectionStartLine
	}
	if prevTextFile != "" {
		data, err := os.ReadFile(prevTextFile)
		if err != nil {
			return parinfer.Options{}, fmt.Errorf("reading %s: %w", prevTextFile, err)
		}
		prev := string(data)
		opts.PrevText = &prev
	}

	return cfg.applyTo(opts), nil
}

func runMode(mode parinfer.Mode) error {
	reqID, err := uuid.NewV4()
	if err != nil {
		return err
	}
	log := logger.WithField("request_id", reqID.String()).WithField("mode", mode)

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	log.Debug("processing")

	answer := parinfer.Process(parinfer.Request{
		Mode:    mode,
		Text:    string(text),
		Options: opts,
	}, parinfer.WithLogger(log))

	if debug {
		fmt.Fprintln(os.Stderr, repr.String(answer, repr.Indent(" ")))
		debugNonASCII(os.Stderr, string(text))
	}

	if !answer.Success {
		log.WithField("error", answer.Error).Warn("parinfer error")
		fmt.Fprint(os.Stdout, answer.Text)
		if answer.Error != nil {
			return answer.Error
		}
		return fmt.Errorf("parinfer: processing failed")
	}

	fmt.Fprint(os.Stdout, answer.Text)
	return nil
}

// debugNonASCII annotates non-ASCII grapheme clusters in text with their
// Unicode code point names, one line per cluster, to stderr.
func debugNonASCII(w io.Writer, text string) {
	for _, cl := range column.Split(text) {
		r, _ := utf8.DecodeRuneInString(cl.Text)
		if r < utf8.RuneSelf {
			continue
		}
		fmt.Fprintf(w, "col %d: %q (%s)\n", cl.Col, cl.Text, column.Describe(cl.Text))
	}
}
