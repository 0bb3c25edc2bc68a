// Package password generates random passwords from selected character
// classes. Every requested class is represented in the output when the
// length allows, and the final ordering is always re-shuffled so the
// guaranteed characters do not cluster at the front.
//
// Generated passwords are returned to the caller and nowhere else: the
// package keeps no history and writes nothing to logs.
package password

import (
	"errors"
	"fmt"

	"github.com/keycoach/keycoach/pkg/charset"
	"github.com/keycoach/keycoach/pkg/secrand"
	"github.com/keycoach/keycoach/pkg/shuffle"
)

// MaxLength caps generated passwords. Requests beyond it are rejected
// rather than truncated.
const MaxLength = 32

// ErrInvalidRequest reports a request that cannot be satisfied, such as a
// length outside [1, MaxLength] or an empty class selection.
var ErrInvalidRequest = errors.New("password: invalid request")

// Generate draws a password of exactly length runes from the union of the
// requested classes. Classes are deduplicated first; each one contributes
// at least one character, except that when length is smaller than the
// number of classes only the first length classes in catalog order are
// guaranteed. The positions of the guaranteed characters are randomized
// by a final shuffle.
func Generate(src secrand.Source, length int, classes []charset.Class) (string, error) {
	if length < 1 || length > MaxLength {
		return "", fmt.Errorf("%w: length %d outside [1, %d]", ErrInvalidRequest, length, MaxLength)
	}
	normalized := charset.Normalize(classes)
	if len(normalized) == 0 {
		return "", fmt.Errorf("%w: no character classes selected", ErrInvalidRequest)
	}

	guaranteed := normalized
	if len(guaranteed) > length {
		guaranteed = guaranteed[:length]
	}

	out := make([]rune, 0, length)
	for _, c := range guaranteed {
		r, err := draw(src, []rune(c.Pool()))
		if err != nil {
			return "", fmt.Errorf("password: draw %s character: %w", c, err)
		}
		out = append(out, r)
	}

	union := []rune(charset.Union(normalized))
	for len(out) < length {
		r, err := draw(src, union)
		if err != nil {
			return "", fmt.Errorf("password: draw filler character: %w", err)
		}
		out = append(out, r)
	}

	mixed, err := shuffle.Shuffle(src, out)
	if err != nil {
		return "", fmt.Errorf("password: mix characters: %w", err)
	}
	return string(mixed), nil
}

// FromSeed builds a password of exactly length runes around characters the
// caller wants kept, padding with draws from the full catalog and then
// shuffling so the seed characters end up scattered rather than prefixed.
// The seed may be empty; it must not exceed length.
func FromSeed(src secrand.Source, length int, seed string) (string, error) {
	if length < 1 || length > MaxLength {
		return "", fmt.Errorf("%w: length %d outside [1, %d]", ErrInvalidRequest, length, MaxLength)
	}
	kept := []rune(seed)
	if len(kept) > length {
		return "", fmt.Errorf("%w: seed has %d characters, exceeds length %d", ErrInvalidRequest, len(kept), length)
	}

	out := make([]rune, 0, length)
	out = append(out, kept...)
	catalog := []rune(charset.AllChars())
	for len(out) < length {
		r, err := draw(src, catalog)
		if err != nil {
			return "", fmt.Errorf("password: draw padding character: %w", err)
		}
		out = append(out, r)
	}

	mixed, err := shuffle.Shuffle(src, out)
	if err != nil {
		return "", fmt.Errorf("password: mix characters: %w", err)
	}
	return string(mixed), nil
}

func draw(src secrand.Source, pool []rune) (rune, error) {
	i, err := src.IntN(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}
