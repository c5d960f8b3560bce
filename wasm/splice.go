package wasm

// InsertCustomSection returns a new module with name/payload embedded
// as a custom section directly after the 8-byte header. Every byte of
// the original module is preserved verbatim: the header is copied
// first, then the new record, then the rest of the module starting at
// offset 8. The input slice is never mutated.
//
// The format permits duplicate custom-section names, and so does this
// function; repeated invocations stack sections in reverse insertion
// order.
func InsertCustomSection(module []byte, name string, payload []byte) ([]byte, error) {
	if err := ValidateHeader(module); err != nil {
		return nil, err
	}

	section := CustomSection{Name: name, Data: payload}
	out := make([]byte, 0, len(module)+section.Size())
	out = append(out, module[:HeaderSize]...)
	out = append(out, section.Encode()...)
	out = append(out, module[HeaderSize:]...)
	return out, nil
}
