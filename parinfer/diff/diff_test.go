package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parinfer-go/parinfer/parinfer/diff"
)

func TestChangesNoOp(t *testing.T) {
	changes := diff.Changes("(foo bar)", "(foo bar)")
	assert.Nil(t, changes)
}

func TestChangesSingleLineInsert(t *testing.T) {
	changes := diff.Changes("(foo bar)", "(foo baz bar)")
	if assert.Len(t, changes, 1) {
		c := changes[0]
		assert.Equal(t, 0, c.Line)
		assert.Equal(t, "", c.OldText)
		assert.Equal(t, "z ba", c.NewText)
		assert.Equal(t, 7, c.Col)
	}
}

func TestChangesMultiLineReplace(t *testing.T) {
	prev := "(foo\n bar\n baz)"
	next := "(foo\n qux\n baz)"
	changes := diff.Changes(prev, next)
	if assert.Len(t, changes, 1) {
		c := changes[0]
		assert.Equal(t, 1, c.Line)
		assert.Equal(t, "bar", c.OldText)
		assert.Equal(t, "qux", c.NewText)
	}
}

func TestChangesDeletion(t *testing.T) {
	changes := diff.Changes("(foo bar baz)", "(foo baz)")
	if assert.Len(t, changes, 1) {
		c := changes[0]
		assert.Equal(t, "r ba", c.OldText)
		assert.Equal(t, "", c.NewText)
	}
}
