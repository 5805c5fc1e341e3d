package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto wraps the crypto/rand library
type Crypto struct{}

// Intn returns a random number from 0 < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Seed returns a positive random 63-bit seed suitable for seeding a shuffle
func (c Crypto) Seed() int64 {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(1)<<62))
	if err != nil {
		panic(err)
	}

	return b.Int64() + 1
}
