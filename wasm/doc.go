// Package wasm implements the subset of the WebAssembly binary format
// needed to stamp named custom sections into core modules.
//
// A module is treated as an opaque byte sequence behind its fixed
// 8-byte header (4-byte magic, 4-byte version). The package never
// parses the section list of an existing module; it validates the
// header, builds one custom-section record, and splices it in directly
// after the header.
//
// # Splicing
//
// Insert a payload as the first custom section of a module:
//
//	data, _ := os.ReadFile("plugin.wasm")
//	out, err := wasm.InsertCustomSection(data, "manifest", payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The original bytes are never mutated; every byte after the header is
// preserved verbatim in the output. Duplicate section names are legal
// in the format and are not rejected here.
//
// # LEB128 Encoding
//
// Length prefixes use unsigned LEB128 in canonical minimal form:
//
//	b := wasm.AppendUint32(nil, 624485) // 0xe5 0x8e 0x26
//	n, err := wasm.ReadUint32(bytes.NewReader(b))
package wasm
