// Package secrand abstracts the random source behind password generation
// and shuffling. Generators take a Source parameter instead of reaching
// for a process-global RNG, so tests can substitute a deterministic
// seeded source and production callers can pass the crypto-backed one.
package secrand

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand"
)

// ErrUnavailable reports that the secure random source failed to produce
// bytes. Callers must treat it as fatal for the current operation; there
// is deliberately no fallback to a non-cryptographic source.
var ErrUnavailable = errors.New("secrand: secure random source unavailable")

// Source yields uniformly distributed integers. Implementations must not
// bias any value in [0, n).
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be > 0.
	IntN(n int) (int, error)
}

// Crypto returns the cryptographically secure Source backed by
// crypto/rand. It is safe for concurrent use and for any number of draws.
func Crypto() Source {
	return cryptoSource{}
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("secrand: IntN upper bound must be positive, got %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return int(v.Int64()), nil
}

// Seeded returns a deterministic Source for tests and reproducible
// demos. It must never be used to generate real secrets, and it is not
// safe for concurrent use.
func Seeded(seed int64) Source {
	return &seededSource{r: mrand.New(mrand.NewSource(seed))}
}

type seededSource struct {
	r *mrand.Rand
}

func (s *seededSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("secrand: IntN upper bound must be positive, got %d", n)
	}
	return s.r.Intn(n), nil
}
