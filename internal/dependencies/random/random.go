package random

import (
	"crypto/rand"
	"math/big"
)

// Random is the source of randomness for root word picks and game IDs.
// Tests swap in mocks.MockRandom.
type Random interface {
	// Intn returns a random int in [0, n); 0 when n <= 0
	Intn(n int) int

	// String returns length characters drawn from alphabet
	String(length int, alphabet string) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a uniformly distributed int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand does not fail on supported platforms
		return 0
	}
	return int(v.Int64())
}

// String returns a random string over alphabet
func (r *CryptoRandom) String(length int, alphabet string) string {
	if length <= 0 || alphabet == "" {
		return ""
	}
	letters := []rune(alphabet)
	out := make([]rune, length)
	for i := range out {
		out[i] = letters[r.Intn(len(letters))]
	}
	return string(out)
}
