package wasm_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/wippyai/wasmstamp/wasm"
)

func TestLEB128Unsigned(t *testing.T) {
	tests := []struct {
		encoded []byte
		value   uint32
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x01}, 1},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x01}, 128},
		{[]byte{0xff, 0x01}, 255},
		{[]byte{0x80, 0x02}, 256},
		{[]byte{0xff, 0x7f}, 16383},
		{[]byte{0x80, 0x80, 0x01}, 16384},
		{[]byte{0xe5, 0x8e, 0x26}, 624485},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0x0f}, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			// Test encoding
			got := wasm.AppendUint32(nil, tt.value)
			if !bytes.Equal(got, tt.encoded) {
				t.Errorf("encode %d: got %v, want %v", tt.value, got, tt.encoded)
			}

			// Test decoding
			r := bytes.NewReader(tt.encoded)
			back, err := wasm.ReadUint32(r)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if back != tt.value {
				t.Errorf("decode: got %d, want %d", back, tt.value)
			}
		})
	}
}

func TestLEB128Unsigned64(t *testing.T) {
	tests := []struct {
		encoded []byte
		value   uint64
	}{
		{[]byte{0x00}, 0},
		{[]byte{0x7f}, 127},
		{[]byte{0x80, 0x80, 0x80, 0x80, 0x10}, 1 << 32},
		{[]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01}, 0xFFFFFFFFFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			got := wasm.AppendUint64(nil, tt.value)
			if !bytes.Equal(got, tt.encoded) {
				t.Errorf("encode %d: got %v, want %v", tt.value, got, tt.encoded)
			}

			back, err := wasm.ReadUint64(bytes.NewReader(tt.encoded))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if back != tt.value {
				t.Errorf("decode: got %d, want %d", back, tt.value)
			}
		})
	}
}

// Canonical form: the continuation bit is clear only on the final byte,
// and the final byte of a multi-byte encoding is never a zero group.
func TestLEB128Minimal(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 16383, 16384, 624485, 0xFFFFFFFF, 1 << 32, 1 << 63}

	for _, v := range values {
		enc := wasm.EncodeUint64(v)
		if len(enc) == 0 {
			t.Fatalf("value %d: empty encoding", v)
		}
		last := enc[len(enc)-1]
		if last&0x80 != 0 {
			t.Errorf("value %d: continuation bit set on final byte", v)
		}
		if len(enc) > 1 && last == 0 {
			t.Errorf("value %d: trailing zero group, encoding not minimal", v)
		}
		for i := 0; i < len(enc)-1; i++ {
			if enc[i]&0x80 == 0 {
				t.Errorf("value %d: continuation bit clear at byte %d of %d", v, i, len(enc))
			}
		}
	}
}

func TestLEB128ZeroIsOneByte(t *testing.T) {
	if got := wasm.EncodeUint32(0); !bytes.Equal(got, []byte{0x00}) {
		t.Fatalf("encode 0: got %v, want [0x00]", got)
	}
}

func TestLEB128ReadOverflow(t *testing.T) {
	// Six continuation groups exceed 32 bits.
	data := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	if _, err := wasm.ReadUint32(bytes.NewReader(data)); !errors.Is(err, wasm.ErrOverflow) {
		t.Fatalf("got %v, want ErrOverflow", err)
	}

	// Eleven groups exceed 64 bits.
	data = bytes.Repeat([]byte{0x80}, 10)
	data = append(data, 0x01)
	if _, err := wasm.ReadUint64(bytes.NewReader(data)); !errors.Is(err, wasm.ErrOverflow) {
		t.Fatalf("got %v, want ErrOverflow", err)
	}
}

func TestLEB128ReadTruncated(t *testing.T) {
	if _, err := wasm.ReadUint32(bytes.NewReader([]byte{0x80})); !errors.Is(err, io.EOF) {
		t.Fatalf("got %v, want io.EOF", err)
	}
}

func TestLEB128EncodeHelpers(t *testing.T) {
	if !bytes.Equal(wasm.EncodeUint32(624485), wasm.AppendUint32(nil, 624485)) {
		t.Error("EncodeUint32 disagrees with AppendUint32")
	}
	if !bytes.Equal(wasm.EncodeUint64(1<<40), wasm.AppendUint64(nil, 1<<40)) {
		t.Error("EncodeUint64 disagrees with AppendUint64")
	}

	// Append extends dst rather than replacing it.
	dst := []byte{0xAA}
	dst = wasm.AppendUint32(dst, 1)
	if !bytes.Equal(dst, []byte{0xAA, 0x01}) {
		t.Errorf("append: got %v", dst)
	}
}
