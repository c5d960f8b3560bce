// Package hasher computes the SHA3-512 digests used to identify plugin
// release artifacts.
package hasher

import (
	"encoding/hex"
	"os"

	"golang.org/x/crypto/sha3"

	"github.com/wippyai/wasmstamp/errors"
)

// Sum returns the SHA3-512 digest of data as a lowercase hex string.
func Sum(data []byte) string {
	digest := sha3.Sum512(data)
	return hex.EncodeToString(digest[:])
}

// SumFile returns the SHA3-512 digest of the file at path.
func SumFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.IO(errors.PhaseLoad, "read file to hash", err)
	}
	return Sum(data), nil
}
