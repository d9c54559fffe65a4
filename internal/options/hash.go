package options

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
)

// HashBytes returns the lowercase hexadecimal SHA-256 digest of data.
// The external builder uses it to stamp Builder.SHAHash so workers can
// verify they were constructed from the same configuration input.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashFile returns the lowercase hexadecimal SHA-256 digest of the
// entire contents of path. The bytes are hashed opaquely; this layer
// never interprets configuration file syntax.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return HashBytes(data), nil
}
