// Package section implements the nine ANLZ tagged section writers (spec
// section 4.6): PMAI, PPTH, PQTZ, PWAV, PWV3, PWV4, PWV5, PCOB, PCO2. Every
// section shares the same 12-byte big-endian header: a 4-ASCII-character
// tag, len_header (here always 12, the header's own width), and len_tag
// (the section's total byte length including that header).
package section

import (
	"encoding/binary"
	"fmt"

	"github.com/cdjkit/rbxdb/pkg/rbxerr"
)

const headerLen = 12

// wrap prefixes payload with the standard tag/len_header/len_tag header.
func wrap(tag string, payload []byte) []byte {
	out := make([]byte, headerLen+len(payload))
	copy(out[0:4], tag)
	binary.BigEndian.PutUint32(out[4:8], headerLen)
	binary.BigEndian.PutUint32(out[8:12], uint32(headerLen+len(payload)))
	copy(out[headerLen:], payload)
	return out
}

// bigBuilder accumulates a section payload big-endian, left to right, like
// pkg/dsql/rows' little-endian builder. It only appends; nothing in a
// section payload is back-patched.
type bigBuilder struct {
	buf []byte
}

func (b *bigBuilder) u8(v uint8) { b.buf = append(b.buf, v) }

func (b *bigBuilder) u16(v uint16) {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *bigBuilder) u32(v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}

func (b *bigBuilder) raw(data []byte) { b.buf = append(b.buf, data...) }

// errSizeMismatch wraps rbxerr.ErrAnalysisSizeMismatch with the section tag
// and the offending length, matching the fmt.Errorf("...: %w", err) style
// the rest of this module uses instead of a third-party errors package.
func errSizeMismatch(tag string, got, want int) error {
	return fmt.Errorf("%s: expected %d samples, got %d: %w", tag, want, got, rbxerr.ErrAnalysisSizeMismatch)
}
