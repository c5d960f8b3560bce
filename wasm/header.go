package wasm

import (
	"errors"

	"github.com/wippyai/wasmstamp/wasm/internal/binary"
)

// Header validation errors.
var (
	ErrInvalidMagic = errors.New("invalid wasm magic number")
	ErrTruncated    = errors.New("module shorter than wasm header")
)

// ValidateHeader checks that data begins with a complete WebAssembly
// header: the 4-byte magic followed by a 4-byte version field. The
// version is not interpreted, only required to be present.
func ValidateHeader(data []byte) error {
	if len(data) < HeaderSize {
		if len(data) >= 4 {
			r := binary.NewReader(data)
			if magic, err := r.ReadU32LE(); err == nil && magic != Magic {
				return ErrInvalidMagic
			}
		}
		return ErrTruncated
	}
	r := binary.NewReader(data)
	magic, err := r.ReadU32LE()
	if err != nil {
		return ErrTruncated
	}
	if magic != Magic {
		return ErrInvalidMagic
	}
	return nil
}
