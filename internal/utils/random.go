package utils

import (
	"crypto/rand" // Crypto-quality randomness
	"math/big"    // Big integers for rand.Int
)

// RandomNum generates a random integer between 0 and n-1
func RandomNum(n int) int {
	bn := big.NewInt(int64(n))
	r, err := rand.Int(rand.Reader, bn)
	if err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return int(r.Int64())
}

// RandomSample picks k distinct elements from items, without replacement.
// Asking for more elements than exist yields all of them, shuffled. The
// input slice is not modified.
func RandomSample(items []string, k int) []string {
	pool := make([]string, len(items)) // Work on a copy
	copy(pool, items)
	if k > len(pool) {
		k = len(pool) // Cannot sample more than the pool holds
	}
	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		idx := RandomNum(len(pool))            // Pick a remaining element
		out = append(out, pool[idx])           // Keep it
		pool = append(pool[:idx], pool[idx+1:]...) // Remove it from the pool
	}
	return out
}
