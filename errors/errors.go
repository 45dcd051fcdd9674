// Package errors defines the error values reported while reading a grammar
// description: a fixed set of kinds, each optionally tagged with the source
// item that caused it.
package errors

import (
	goerrors "errors"
	"fmt"
)

// Inconceivable is panicked from switch arms that cannot be reached.
var Inconceivable = goerrors.New("inconceivable")

type Kind int

const (
	NoError Kind = iota

	InvalidCharRange
	InvalidRange
	InvalidRangePattern

	TokenInvalid
	TokenMissingValue
	TokenMissingEnd
	TokenInvalidValue
	TokenUnknownValueType
	TokenSelfRef
	TokenExists

	RuleInvalid
	RuleEmpty
	RuleMissingValue
	RuleMissingEnd
	RuleExists

	UnknownToken
	UnknownRule
	UnknownItem

	ProductionRuleEmpty
	ProductionItemUnknownType
	StringBlockMissingEnd
	StringBlockEmpty
)

var messages = map[Kind]string{
	NoError: "No error",

	InvalidCharRange:    "Invalid char range",
	InvalidRange:        "Invalid range",
	InvalidRangePattern: "Invalid range pattern",

	TokenInvalid:          "Invalid token",
	TokenMissingValue:     "Missing value for token",
	TokenMissingEnd:       "Missing end marker for token",
	TokenInvalidValue:     "Invalid value for token",
	TokenUnknownValueType: "Unknown value type for token",
	TokenSelfRef:          "Self referencing is forbidden for token",
	TokenExists:           "Token already declared",

	RuleInvalid:      "Invalid rule",
	RuleEmpty:        "Empty rule",
	RuleMissingValue: "Missing value for rule",
	RuleMissingEnd:   "Missing end marker for rule",
	RuleExists:       "Rule already declared",

	UnknownToken: "Unknown token symbol",
	UnknownRule:  "Unknown rule symbol",
	UnknownItem:  "Unknown item",

	ProductionRuleEmpty:       "Empty production rule",
	ProductionItemUnknownType: "Unknown production rule item type",
	StringBlockMissingEnd:     "Missing end of string block",
	StringBlockEmpty:          "Empty string block",
}

func (k Kind) String() string {
	if msg, has := messages[k]; has {
		return msg
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Located is anything that can point at a place in the grammar source.
type Located interface {
	String() string
	Position() (line, column int)
}

// Error is a grammar error. Item is empty when no source item is attached.
type Error struct {
	Kind   Kind
	Item   string
	Line   int
	Column int
}

// New returns an Error without a source position.
func New(kind Kind) Error {
	return Error{Kind: kind}
}

// At returns an Error positioned on item.
func At(kind Kind, item Located) Error {
	line, col := item.Position()
	return Error{
		Kind:   kind,
		Item:   item.String(),
		Line:   line,
		Column: col,
	}
}

func (e Error) HasPosition() bool {
	return e.Item != "" || e.Line != 0
}

func (e Error) Error() string {
	if !e.HasPosition() {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s %s (%d:%d)", e.Kind, e.Item, e.Line, e.Column)
}

// Is matches another Error of the same kind, whatever its position.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the Kind carried by err, or NoError.
func KindOf(err error) Kind {
	var e Error
	if goerrors.As(err, &e) {
		return e.Kind
	}
	return NoError
}
