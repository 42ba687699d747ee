package crypto

import (
	"errors"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+[]{}|;:,.<>?"
)

var ErrUnknownClass = errors.New("unknown character class")

// Class identifies one of the four toggleable character classes.
type Class int

const (
	Upper Class = iota
	Lower
	Number
	Symbol
)

// classOrder is the order in which enabled ranges are concatenated into a pool.
var classOrder = []Class{Upper, Lower, Number, Symbol}

func (c Class) String() string {
	switch c {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	case Number:
		return "number"
	case Symbol:
		return "symbol"
	}
	return "unknown"
}

// Chars returns the character range contributed by the class.
func (c Class) Chars() string {
	switch c {
	case Upper:
		return uppercaseChars
	case Lower:
		return lowercaseChars
	case Number:
		return numberChars
	case Symbol:
		return symbolChars
	}
	return ""
}

// ParseClass maps a user-facing class name to a Class.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "upper", "uppercase":
		return Upper, nil
	case "lower", "lowercase":
		return Lower, nil
	case "number", "numbers", "digit", "digits":
		return Number, nil
	case "symbol", "symbols":
		return Symbol, nil
	}
	return 0, ErrUnknownClass
}

// Classes holds the enabled flag for each character class.
type Classes struct {
	Upper   bool
	Lower   bool
	Numbers bool
	Symbols bool
}

// Enabled reports whether class c is switched on.
func (cs Classes) Enabled(c Class) bool {
	switch c {
	case Upper:
		return cs.Upper
	case Lower:
		return cs.Lower
	case Number:
		return cs.Numbers
	case Symbol:
		return cs.Symbols
	}
	return false
}

// Toggle flips the flag for class c. Unknown classes are ignored.
func (cs *Classes) Toggle(c Class) {
	switch c {
	case Upper:
		cs.Upper = !cs.Upper
	case Lower:
		cs.Lower = !cs.Lower
	case Number:
		cs.Numbers = !cs.Numbers
	case Symbol:
		cs.Symbols = !cs.Symbols
	}
}

// Any reports whether at least one class is enabled.
func (cs Classes) Any() bool {
	return cs.Upper || cs.Lower || cs.Numbers || cs.Symbols
}

// BuildPool concatenates the ranges of every enabled class in the fixed order
// upper, lower, numbers, symbols. With nothing enabled the pool is empty.
func BuildPool(cs Classes) string {
	var b strings.Builder
	for _, c := range classOrder {
		if cs.Enabled(c) {
			b.WriteString(c.Chars())
		}
	}
	return b.String()
}
