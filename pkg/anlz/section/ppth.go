package section

import "unicode/utf16"

// BuildPPTH encodes the track's audio file path as UTF-16-BE (spec section
// 4.6). The payload leads with a u32-BE byte length of the encoded path,
// the "header carries path byte length" the spec calls out.
func BuildPPTH(path string) []byte {
	units := utf16.Encode([]rune(path))
	encoded := make([]byte, len(units)*2)
	for i, u := range units {
		encoded[i*2] = byte(u >> 8)
		encoded[i*2+1] = byte(u)
	}

	b := &bigBuilder{}
	b.u32(uint32(len(encoded)))
	b.raw(encoded)
	return wrap("PPTH", b.buf)
}
