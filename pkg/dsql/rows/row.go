// Package rows implements the ~10 row body encoders of spec section 4.3.
// Each encoder returns a Row: a fully-built body with zeroed placeholders
// for the fields that can only be resolved once a page has decided where
// the row lives (its heap offset, and therefore every ofs_string[i] and
// index_shift). pkg/dsql/table performs that second pass once
// page.Page.TryAppendRow has placed the row.
package rows

import (
	"encoding/binary"

	"github.com/cdjkit/rbxdb/pkg/dsql/encoding"
)

// StringPatch marks one ofs_string[i] field inside a Row's Body that must
// be rewritten to (row_heap_offset + StringAt) once the row has a heap
// offset (spec section 4.3's "string fixups").
type StringPatch struct {
	// FieldOffset is the byte offset within Body of the u16-LE ofs_string
	// field to patch.
	FieldOffset int
	// StringAt is the byte offset within Body where the string's own
	// encoded bytes begin.
	StringAt int
}

// Row is the output of one row encoder.
type Row struct {
	Body []byte

	// IndexShiftOffset is the byte offset within Body of the u16-LE
	// index_shift field, or -1 if this row kind has none. Spec section 4.3
	// permits setting it equal to the row's own in-page heap offset.
	IndexShiftOffset int

	StringPatches []StringPatch
}

// builder accumulates a row body left to right, the same left-to-right,
// patch-the-length-at-the-end style as the teacher's DirectoryRecord.Marshal.
type builder struct {
	buf []byte
}

func (b *builder) u8(v uint8)  { b.buf = append(b.buf, v) }
func (b *builder) u16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}
func (b *builder) u32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
}
func (b *builder) zeros(n int) {
	b.buf = append(b.buf, make([]byte, n)...)
}
func (b *builder) offset() int { return len(b.buf) }

// appendString encodes s and appends it to the body, returning the byte
// offset the encoded string starts at.
func (b *builder) appendString(s string) (int, error) {
	enc, err := encoding.EncodeString(s)
	if err != nil {
		return 0, err
	}
	at := len(b.buf)
	b.buf = append(b.buf, enc...)
	return at, nil
}

// reserveStringSlot appends a zeroed u16 placeholder for an ofs_string
// field and returns its byte offset.
func (b *builder) reserveStringSlot() int {
	at := len(b.buf)
	b.u16(0)
	return at
}
