// Package shuffle implements unbiased permutation of generic sequences,
// including a remap variant that tracks one distinguished element through
// the shuffle by its original position. Position tracking matters when
// values repeat: locating the element by equality after the shuffle can
// land on the wrong duplicate, while the position tag cannot.
package shuffle

import (
	"errors"
	"fmt"

	"github.com/keycoach/keycoach/pkg/secrand"
)

// ErrIndexOutOfRange reports a distinguished index that does not address
// any element of the input sequence.
var ErrIndexOutOfRange = errors.New("shuffle: index out of range")

// Shuffle returns a new slice holding an unbiased (Fisher-Yates) random
// permutation of items. The input slice is never modified. Slices of
// length 0 or 1 come back as plain copies without consuming randomness.
func Shuffle[T any](src secrand.Source, items []T) ([]T, error) {
	out := make([]T, len(items))
	copy(out, items)
	for i := len(out) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return nil, fmt.Errorf("shuffle: draw swap index: %w", err)
		}
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// tagged pairs an element with the position it occupied before the
// shuffle.
type tagged[T any] struct {
	pos int
	val T
}

// Remap returns a random permutation of items together with the new
// position of the element that was at index correct in the input. The
// element is followed by its original position, not by value, so
// duplicate values are remapped faithfully. Returns ErrIndexOutOfRange
// when correct does not index into items (including the empty sequence).
func Remap[T any](src secrand.Source, items []T, correct int) ([]T, int, error) {
	if correct < 0 || correct >= len(items) {
		return nil, 0, fmt.Errorf("%w: correct index %d with %d items", ErrIndexOutOfRange, correct, len(items))
	}

	pairs := make([]tagged[T], len(items))
	for i, v := range items {
		pairs[i] = tagged[T]{pos: i, val: v}
	}

	mixed, err := Shuffle(src, pairs)
	if err != nil {
		return nil, 0, err
	}

	out := make([]T, len(mixed))
	newCorrect := 0
	for i, p := range mixed {
		out[i] = p.val
		if p.pos == correct {
			newCorrect = i
		}
	}
	return out, newCorrect, nil
}
