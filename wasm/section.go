package wasm

import (
	"fmt"

	"github.com/wippyai/wasmstamp/wasm/internal/binary"
)

// CustomSection holds a named custom section's payload. The payload is
// opaque: callers decide what the bytes mean.
type CustomSection struct {
	Name string
	Data []byte
}

// Encode produces the complete binary record for the section:
// the custom-section ID byte, the LEB128 content length, the
// length-prefixed UTF-8 name, and the payload. The content length
// always equals the exact byte count of everything after it.
func (s CustomSection) Encode() []byte {
	content := binary.NewWriter()
	content.Name(s.Name)
	content.Raw(s.Data)

	w := binary.NewWriter()
	w.Byte(SectionCustom)
	w.Uvarint(uint32(content.Len()))
	w.Raw(content.Bytes())
	return w.Bytes()
}

// Size returns the encoded record length in bytes without encoding.
func (s CustomSection) Size() int {
	content := uint32(len(EncodeUint32(uint32(len(s.Name)))) + len(s.Name) + len(s.Data))
	return 1 + len(EncodeUint32(content)) + int(content)
}

// DecodeCustomSection parses one custom-section record from the start
// of b. It returns the section and the number of bytes the record
// occupies. The record's content length must account for every byte up
// to the section's end; trailing bytes in b are left untouched.
func DecodeCustomSection(b []byte) (CustomSection, int, error) {
	r := binary.NewReader(b)
	id, err := r.ReadByte()
	if err != nil {
		return CustomSection{}, 0, fmt.Errorf("section id: %w", err)
	}
	if id != SectionCustom {
		return CustomSection{}, 0, fmt.Errorf("section id %d is not a custom section", id)
	}
	size, err := r.ReadUvarint()
	if err != nil {
		return CustomSection{}, 0, fmt.Errorf("section size: %w", err)
	}
	content, err := r.ReadBytes(int(size))
	if err != nil {
		return CustomSection{}, 0, fmt.Errorf("section content: %w", err)
	}

	cr := binary.NewReader(content)
	name, err := cr.ReadName()
	if err != nil {
		return CustomSection{}, 0, fmt.Errorf("section name: %w", err)
	}
	return CustomSection{Name: name, Data: cr.ReadRemaining()}, r.Position(), nil
}
