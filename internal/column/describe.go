package column

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// Describe renders a grapheme cluster as its Unicode code point names,
// for --debug diagnostics on non-ASCII input: a multi-rune cluster (an
// emoji with a modifier, a combining accent) lists one entry per rune.
// ASCII runes are shown as themselves rather than by name.
func Describe(cluster string) string {
	if cluster == "" {
		return ""
	}
	var names []string
	for _, r := range cluster {
		if r < utf8.RuneSelf {
			names = append(names, string(r))
			continue
		}
		names = append(names, runenames.Name(r))
	}
	return strings.Join(names, " + ")
}
