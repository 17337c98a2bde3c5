package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string using
// the provided hash key and returns the result as a hex-encoded string.
// Used to sign upload batches so the server can verify transport integrity.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashBytes([]byte(data), hashKey))
}

// HashBytes computes an HMAC-SHA256 signature over the given byte slice and
// returns it hex-encoded.
func HashBytes(data []byte, hashKey string) string {
	return hex.EncodeToString(hashBytes(data, hashKey))
}

func hashBytes(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
