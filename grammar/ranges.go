package grammar

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arr-ai/lldef/errors"
)

// CharRange is a contiguous run of characters. Letter bounds are stored in
// lowercase, with Uppercase set for an uppercase range. Upper is exclusive.
type CharRange struct {
	Lower, Upper byte
	Uppercase    bool
}

func (r CharRange) Contains(c byte) bool {
	if r.Uppercase {
		if c < 'A' || c > 'Z' {
			return false
		}
		c += 'a' - 'A'
	}
	return r.Lower <= c && c < r.Upper
}

func (r CharRange) String() string {
	lo, hi := r.Lower, r.Upper-1
	if r.Uppercase {
		lo -= 'a' - 'A'
		hi -= 'a' - 'A'
	}
	return fmt.Sprintf("%c-%c", lo, hi)
}

// ParseRanges reads the content of a range block, a sequence of x-y pairs
// with optional whitespace in between. On error no range is returned.
func ParseRanges(content string) ([]CharRange, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, content)

	if len(stripped)%3 != 0 {
		return nil, errors.New(errors.InvalidRangePattern)
	}

	ranges := make([]CharRange, 0, len(stripped)/3)
	for i := 0; i < len(stripped); i += 3 {
		r, err := parseRange(stripped[i], stripped[i+1], stripped[i+2])
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func parseRange(x, dash, y byte) (CharRange, error) {
	if dash != '-' {
		return CharRange{}, errors.New(errors.InvalidRangePattern)
	}
	switch {
	case isLetter(x) && isLetter(y):
		// mixed case bounds are kept as written and fall outside a-z
		upper := isUpper(x) && isUpper(y)
		if upper {
			x, y = toLower(x), toLower(y)
		}
		return makeRange(x, y, 'a', 'z', upper)
	case isDigit(x) && isDigit(y):
		return makeRange(x, y, '0', '9', false)
	}
	return CharRange{}, errors.New(errors.InvalidRangePattern)
}

func makeRange(x, y, lo, hi byte, upper bool) (CharRange, error) {
	if x < lo || x > hi || y < lo || y > hi {
		return CharRange{}, errors.New(errors.InvalidCharRange)
	}
	if x > y {
		return CharRange{}, errors.New(errors.InvalidRange)
	}
	return CharRange{Lower: x, Upper: y + 1, Uppercase: upper}, nil
}

func isLetter(c byte) bool { return isUpper(c) || ('a' <= c && c <= 'z') }
func isUpper(c byte) bool  { return 'A' <= c && c <= 'Z' }
func isDigit(c byte) bool  { return '0' <= c && c <= '9' }

func toLower(c byte) byte {
	if isUpper(c) {
		return c + 'a' - 'A'
	}
	return c
}
