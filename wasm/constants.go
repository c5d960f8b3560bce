package wasm

// WebAssembly binary format magic number and version.
const (
	// Magic is the WebAssembly binary magic number ("\0asm" in little-endian).
	Magic uint32 = 0x6D736100

	// Version is the binary format version emitted by current toolchains.
	// Splicing copies a module's version field verbatim and never checks
	// it against this value.
	Version uint32 = 0x01

	// HeaderSize is the fixed size of the magic plus version fields.
	HeaderSize = 8
)

// Section IDs define the binary identifiers for each module section.
// Non-custom sections must appear in increasing order by ID; custom
// sections can appear anywhere, including directly after the header.
const (
	SectionCustom    byte = 0  // Custom section (named, opaque payload)
	SectionType      byte = 1  // Type section (function signatures)
	SectionImport    byte = 2  // Import section
	SectionFunction  byte = 3  // Function section (type indices)
	SectionTable     byte = 4  // Table section
	SectionMemory    byte = 5  // Memory section
	SectionGlobal    byte = 6  // Global section
	SectionExport    byte = 7  // Export section
	SectionStart     byte = 8  // Start section
	SectionElement   byte = 9  // Element section
	SectionCode      byte = 10 // Code section (function bodies)
	SectionData      byte = 11 // Data section
	SectionDataCount byte = 12 // Data count section (bulk memory)
	SectionTag       byte = 13 // Tag section (exception handling)
)
