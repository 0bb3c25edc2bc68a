// Package charset defines the character classes recognized by the
// generation and strength engines: lowercase, uppercase, digit, and
// symbol. Each class owns a fixed pool of distinct characters; the pools
// are disjoint and together form the 94-character default alphabet.
package charset

import (
	"fmt"
	"strings"
)

// Class identifies one of the four recognized character classes. The
// zero-based constant order (lowercase, uppercase, digit, symbol) is the
// canonical class order used wherever class iteration must be
// deterministic.
type Class int

const (
	Lower Class = iota
	Upper
	Digit
	Symbol
)

const (
	lowerPool = "abcdefghijklmnopqrstuvwxyz"
	upperPool = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitPool = "0123456789"
	// The 32 ASCII punctuation characters.
	symbolPool = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// names maps each class to its flag/config spelling.
var names = map[Class]string{
	Lower:  "lower",
	Upper:  "upper",
	Digit:  "digit",
	Symbol: "symbol",
}

// aliases accepts the longer spellings used in prose and older configs.
var aliases = map[string]Class{
	"lower":     Lower,
	"lowercase": Lower,
	"upper":     Upper,
	"uppercase": Upper,
	"digit":     Digit,
	"digits":    Digit,
	"number":    Digit,
	"symbol":    Symbol,
	"symbols":   Symbol,
}

// All returns the full catalog in canonical order. The returned slice is
// a fresh copy; callers may reorder it freely.
func All() []Class {
	return []Class{Lower, Upper, Digit, Symbol}
}

// Pool returns the character pool owned by c, or "" for an unknown class.
func (c Class) Pool() string {
	switch c {
	case Lower:
		return lowerPool
	case Upper:
		return upperPool
	case Digit:
		return digitPool
	case Symbol:
		return symbolPool
	default:
		return ""
	}
}

// String returns the short name of c ("lower", "upper", "digit",
// "symbol"), or "unknown" for values outside the catalog.
func (c Class) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return "unknown"
}

// Contains reports whether r belongs to c's pool.
func (c Class) Contains(r rune) bool {
	return strings.ContainsRune(c.Pool(), r)
}

// Parse resolves a class name to a Class. It accepts the short names
// returned by String plus common aliases ("lowercase", "digits", ...),
// case-insensitively.
func Parse(name string) (Class, error) {
	c, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("charset: unknown class %q (known: lower, upper, digit, symbol)", name)
	}
	return c, nil
}

// ParseList resolves a list of class names via Parse and normalizes the
// result. An empty input yields an empty, non-nil slice.
func ParseList(names []string) ([]Class, error) {
	classes := make([]Class, 0, len(names))
	for _, name := range names {
		c, err := Parse(name)
		if err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return Normalize(classes), nil
}

// Normalize returns the given classes deduplicated and sorted into
// canonical order. Values outside the catalog are dropped. The input is
// never modified.
func Normalize(classes []Class) []Class {
	var seen [Symbol + 1]bool
	for _, c := range classes {
		if c >= Lower && c <= Symbol {
			seen[c] = true
		}
	}
	out := make([]Class, 0, len(seen))
	for _, c := range All() {
		if seen[c] {
			out = append(out, c)
		}
	}
	return out
}

// Union returns the combined pool of the given classes in canonical
// class order, with duplicates removed. Union of the full catalog is the
// 94-character default alphabet.
func Union(classes []Class) string {
	var sb strings.Builder
	for _, c := range Normalize(classes) {
		sb.WriteString(c.Pool())
	}
	return sb.String()
}

// AllChars returns the 94-character default alphabet, the union of every
// class pool in canonical order.
func AllChars() string {
	return Union(All())
}
