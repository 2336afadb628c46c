package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphemeCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "ascii", in: "Property", want: 8},
		{name: "empty", in: "", want: 0},
		{name: "family_emoji", in: "👨‍👩‍👧‍👦", want: 1},
		{name: "flag", in: "🇯🇵", want: 1},
		{name: "combining_mark", in: "é", want: 1},
		{name: "mixed", in: "a👍🏽b", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GraphemeCount(tt.in), "grapheme count should match")
		})
	}
}

func TestCharacterCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "ascii", in: "hello", want: 5},
		{name: "multibyte", in: "héllo", want: 5},
		{name: "astral", in: "😀", want: 1},
		{name: "family_emoji_counts_code_points", in: "👨‍👩‍👧", want: 5},
		{name: "lone_high_surrogate", in: "a\xed\xa0\x80b", want: 3},
		{name: "lone_low_surrogate", in: "\xed\xb0\x80", want: 1},
		{name: "encoded_pair", in: "\xed\xa0\xbd\xed\xb8\x80", want: 1},
		{name: "two_high_surrogates", in: "\xed\xa0\x80\xed\xa0\x80", want: 2},
		{name: "invalid_byte", in: "\xff", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CharacterCount(tt.in), "character count should match")
		})
	}
}

func TestCharacterCountLimitBoundary(t *testing.T) {
	s := strings.Repeat("界", 200_001)
	assert.Equal(t, 200_001, CharacterCount(s), "each CJK rune should count once")
}

func TestTryParseJSON(t *testing.T) {
	v, ok := TryParseJSON(`{"a":1}`)
	assert.True(t, ok, "valid json should parse")
	assert.True(t, IsRecord(v), "object should be a record")

	v, ok = TryParseJSON(`[1,2]`)
	assert.True(t, ok, "array should parse")
	assert.False(t, IsRecord(v), "array should not be a record")

	_, ok = TryParseJSON(`{nope`)
	assert.False(t, ok, "invalid json should not parse")
}
