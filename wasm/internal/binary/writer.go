package binary

import (
	"bytes"
	"encoding/binary"
)

// Writer provides buffered writing utilities for WASM binary encoding.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// Raw writes a byte slice verbatim.
func (w *Writer) Raw(data []byte) {
	w.buf.Write(data)
}

// Uvarint writes an unsigned LEB128 encoded uint32.
func (w *Writer) Uvarint(v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// Name writes a UTF-8 encoded name (length-prefixed).
func (w *Writer) Name(s string) {
	w.Uvarint(uint32(len(s)))
	w.buf.WriteString(s)
}

// U32LE writes a little-endian uint32 (fixed 4 bytes).
func (w *Writer) U32LE(v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.buf.Write(buf[:])
}
