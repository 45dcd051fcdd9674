package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr-ai/lldef/errors"
)

func TestParseRanges(t *testing.T) {
	for _, test := range []struct {
		name     string
		content  string
		expected []CharRange
	}{
		{"letters and digits", "a-z2-4", []CharRange{{'a', 'z' + 1, false}, {'2', '5', false}}},
		{"uppercase", "A-Z", []CharRange{{'a', 'z' + 1, true}}},
		{"single char", "c-c", []CharRange{{'c', 'd', false}}},
		{"interspersed whitespace", " a - c \n 0-9", []CharRange{{'a', 'd', false}, {'0', '9' + 1, false}}},
		{"empty", "", []CharRange{}},
		{"blank", "  \t", []CharRange{}},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			ranges, err := ParseRanges(test.content)
			require.NoError(t, err)
			assert.Equal(t, test.expected, ranges)
		})
	}
}

func TestParseRangesErrors(t *testing.T) {
	for _, test := range []struct {
		name    string
		content string
		kind    errors.Kind
	}{
		{"bad bound", "a-z@-d1-3", errors.InvalidRangePattern},
		{"short", "a-", errors.InvalidRangePattern},
		{"no dash", "axz", errors.InvalidRangePattern},
		{"letter and digit", "a-9", errors.InvalidRangePattern},
		{"reversed", "z-a", errors.InvalidRange},
		{"reversed digits", "9-0", errors.InvalidRange},
		{"mixed case", "A-z", errors.InvalidCharRange},
		{"mixed case reversed", "a-Z", errors.InvalidCharRange},
		{"reversed uppercase", "Z-A", errors.InvalidRange},
	} {
		test := test
		t.Run(test.name, func(t *testing.T) {
			ranges, err := ParseRanges(test.content)
			assert.Nil(t, ranges)
			assert.Equal(t, test.kind, errors.KindOf(err))
		})
	}
}

func TestCharRange(t *testing.T) {
	upper := CharRange{'a', 'z' + 1, true}
	assert.True(t, upper.Contains('B'))
	assert.False(t, upper.Contains('b'))
	assert.Equal(t, "A-Z", upper.String())

	lower := CharRange{'a', 'z' + 1, false}
	assert.True(t, lower.Contains('z'))
	assert.False(t, lower.Contains('{'))
	assert.False(t, lower.Contains('Z'))
	assert.Equal(t, "a-z", lower.String())

	digits := CharRange{'2', '5', false}
	assert.True(t, digits.Contains('4'))
	assert.False(t, digits.Contains('5'))
	assert.Equal(t, "2-4", digits.String())
}
