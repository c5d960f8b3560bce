package wasm

import (
	"errors"
	"io"
)

// LEB128 encoding/decoding utilities for WebAssembly binary format.
// Only the unsigned flavor is implemented: every quantity this package
// encodes is a length, and lengths are unsigned by construction.

// ErrOverflow is returned when a LEB128 value exceeds the maximum bit width.
var ErrOverflow = errors.New("leb128: overflow")

// AppendUint32 appends the canonical LEB128 encoding of v to dst.
// The encoding is minimal: zero encodes to a single 0x00 byte and no
// value carries a trailing zero continuation group.
func AppendUint32(dst []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if v == 0 {
			return dst
		}
	}
}

// AppendUint64 appends the canonical LEB128 encoding of v to dst.
// At most 10 bytes are emitted for any 64-bit value.
func AppendUint64(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if v == 0 {
			return dst
		}
	}
}

// EncodeUint32 returns the canonical LEB128 encoding of v.
func EncodeUint32(v uint32) []byte {
	return AppendUint32(make([]byte, 0, 5), v)
}

// EncodeUint64 returns the canonical LEB128 encoding of v.
func EncodeUint64(v uint64) []byte {
	return AppendUint64(make([]byte, 0, 10), v)
}

// ReadUint32 reads an unsigned LEB128 value of at most 32 bits.
func ReadUint32(r io.ByteReader) (uint32, error) {
	var result uint32
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 35 {
			return 0, ErrOverflow
		}
	}
}

// ReadUint64 reads an unsigned LEB128 value of at most 64 bits.
func ReadUint64(r io.ByteReader) (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= 70 {
			return 0, ErrOverflow
		}
	}
}
