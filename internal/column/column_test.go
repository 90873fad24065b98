package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByteIndex(t *testing.T) {
	assert.Equal(t, 1, ByteIndex("abc", 1))
	assert.Equal(t, 3, ByteIndex("abc", 3))
	assert.Equal(t, 4, ByteIndex("åbc", 3))
	assert.Equal(t, 2, ByteIndex("åbc", 1))
	assert.Equal(t, 6, ByteIndex("ｗｏ", 4))
	assert.Equal(t, 3, ByteIndex("ｗｏ", 2))
	assert.Equal(t, 0, ByteIndex("ｗｏ", 0))
}

func TestReplaceRange(t *testing.T) {
	assert.Equal(t, "a", ReplaceRange("aaa", 0, 2, ""))
	assert.Equal(t, "baa", ReplaceRange("aaa", 0, 1, "b"))
	assert.Equal(t, "ba", ReplaceRange("aaa", 0, 2, "b"))
	assert.Equal(t, "é", ReplaceRange("ééé", 0, 2, ""))
	assert.Equal(t, "béé", ReplaceRange("ééé", 0, 1, "b"))
	assert.Equal(t, "ébé", ReplaceRange("ééé", 1, 2, "b"))
	assert.Equal(t, "bé", ReplaceRange("ééé", 0, 2, "b"))
	assert.Equal(t, "éééb", ReplaceRange("ééé", 3, 3, "b"))
}

func TestRepeat(t *testing.T) {
	assert.Equal(t, "aa", Repeat("a", 2))
	assert.Equal(t, "aaaaaa", Repeat("aa", 3))
	assert.Equal(t, "", Repeat("aa", 0))
	assert.Equal(t, "", Repeat("", 5))
}

func TestSplitWidth(t *testing.T) {
	clusters := Split("  ｗｏ (x")
	assert.Equal(t, 0, clusters[0].Col)
	assert.Equal(t, 1, clusters[1].Col)
	// "ｗ" and "ｏ" are each 2 cells wide
	assert.Equal(t, 2, clusters[2].Col)
	assert.Equal(t, 4, clusters[3].Col)
}
