// Package strength estimates how hard a candidate password is to guess
// and maps the estimate onto a small scale of display labels.
//
// The estimate is deliberately simple: detect which character classes the
// candidate draws from, sum their pool sizes, and charge log2(pool) bits
// per character. That models an attacker brute-forcing uniform draws over
// the detected alphabet. It overstates the strength of diverse-looking
// but structured strings ("Password1!") and understates strings that are
// random over a larger alphabet than they happen to show; callers should
// present the number as an estimate, not a guarantee.
package strength

import (
	"math"
	"unicode/utf8"

	"github.com/keycoach/keycoach/pkg/charset"
)

// Report carries one strength evaluation. Nothing about the candidate
// itself is kept: reports are computed fresh per call and never cached.
type Report struct {
	// Bits is the estimated entropy, length * log2(PoolSize), or 0 when
	// no recognized class is present.
	Bits float64 `json:"bits" yaml:"bits"`
	// PoolSize is the combined size of the pools of every class detected
	// in the candidate; 0 for an empty string or one built entirely from
	// characters outside the catalog.
	PoolSize int `json:"pool_size" yaml:"pool_size"`
}

// Estimate evaluates a candidate string. Classes count as present when at
// least one of the candidate's runes falls in their pool. Runes outside
// every pool still count toward length but contribute no pool, so "café"
// rates exactly like a four-character lowercase string.
func Estimate(candidate string) Report {
	all := charset.All()
	present := make([]bool, len(all))
	for _, r := range candidate {
		for i, c := range all {
			if !present[i] && c.Contains(r) {
				present[i] = true
			}
		}
	}

	pool := 0
	for i, c := range all {
		if present[i] {
			pool += len(c.Pool())
		}
	}
	if pool == 0 {
		return Report{}
	}

	n := utf8.RuneCountInString(candidate)
	return Report{
		Bits:     float64(n) * math.Log2(float64(pool)),
		PoolSize: pool,
	}
}
