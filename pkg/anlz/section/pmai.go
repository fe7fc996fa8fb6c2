package section

import "encoding/binary"

// BuildPMAI wraps the concatenated bytes of every other section into the
// PMAI container preamble. Its own len_tag equals the whole file's length
// (spec section 4.6), so it is written last once every other section is
// known.
func BuildPMAI(sections [][]byte) []byte {
	var total int
	for _, s := range sections {
		total += len(s)
	}
	out := make([]byte, headerLen, headerLen+total)
	copy(out[0:4], "PMAI")
	binary.BigEndian.PutUint32(out[4:8], headerLen)
	binary.BigEndian.PutUint32(out[8:12], uint32(headerLen+total))
	for _, s := range sections {
		out = append(out, s...)
	}
	return out
}
