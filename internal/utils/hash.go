package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher provides keyed HMAC-SHA256 hashing of request and response bodies.
// Hash instances are reused through a per-Hasher pool so that two Hashers
// with different keys never share state.
type Hasher struct {
	pool sync.Pool
}

// NewHasher creates a [Hasher] keyed with hashKey.
//
// Example usage:
//
//	h := utils.NewHasher("my-secret-key")
//	sig := h.SumHex(body)
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum computes an HMAC-SHA256 signature over data using a pooled hash.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// SumHex is [Hasher.Sum] hex-encoded, the format of the HashSHA256 header.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// Verify reports whether signatureHex is the valid signature of data. The
// comparison is constant time.
func (h *Hasher) Verify(data []byte, signatureHex string) bool {
	signature, err := hex.DecodeString(signatureHex)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Sum(data), signature)
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike [Hasher], this function creates a new HMAC instance on each call.
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}
