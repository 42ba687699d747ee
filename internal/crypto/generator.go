package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand/v2"
	"strings"
)

var (
	ErrEmptyPool     = errors.New("character pool is empty: select at least one character type")
	ErrInvalidLength = errors.New("password length must not be negative")
	ErrUnknownSource = errors.New("unknown random source")
)

// Source draws a uniform integer in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

// CryptoSource draws from crypto/rand. Safe for concurrent use.
type CryptoSource struct{}

func (CryptoSource) IntN(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}

// MathSource draws from math/rand/v2. The zero value uses the global
// generator and is safe for concurrent use; a seeded one is not.
type MathSource struct {
	r *mrand.Rand
}

// NewSeededSource returns a deterministic MathSource.
func NewSeededSource(seed uint64) *MathSource {
	return &MathSource{r: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *MathSource) IntN(n int) (int, error) {
	if s == nil || s.r == nil {
		return mrand.IntN(n), nil
	}
	return s.r.IntN(n), nil
}

// SourceByName resolves the RANDOM_SOURCE / --source setting.
func SourceByName(name string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "crypto":
		return CryptoSource{}, nil
	case "math":
		return &MathSource{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// Generate draws length characters from pool, each independently and with
// replacement. An empty pool is rejected before the length is looked at.
func Generate(pool string, length int, src Source) (string, error) {
	if len(pool) == 0 {
		return "", ErrEmptyPool
	}
	if length < 0 {
		return "", ErrInvalidLength
	}
	if src == nil {
		src = CryptoSource{}
	}

	result := make([]byte, length)
	for i := range result {
		idx, err := src.IntN(len(pool))
		if err != nil {
			return "", fmt.Errorf("drawing character %d: %w", i, err)
		}
		result[i] = pool[idx]
	}

	return string(result), nil
}
