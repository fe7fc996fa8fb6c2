package pdb

import (
	"encoding/binary"

	"github.com/cdjkit/rbxdb/pkg/dsql/page"
	"github.com/cdjkit/rbxdb/pkg/dsql/table"
)

// tablePointerSize is the width of one of the 20 table-pointer slots in the
// file header: (first_page, empty_candidate, last_page, table_type), each a
// u32 (spec section 4.5).
const tablePointerSize = 16

// buildHeader renders page 0 (spec section 4.5). The fixed fields at 0x10
// and 0x14 ("unknown=5", "sequence=1") and the table-pointer slots both
// claim the same byte range; table pointers are written last so they win,
// matching observed working exports.
func buildHeader(descriptors []table.Descriptor, totalPages uint32) [page.Size]byte {
	var out [page.Size]byte

	binary.LittleEndian.PutUint32(out[0x00:], 0)
	binary.LittleEndian.PutUint32(out[0x04:], page.Size)
	binary.LittleEndian.PutUint32(out[0x08:], table.NumTableTypes)
	binary.LittleEndian.PutUint32(out[0x0C:], totalPages)
	binary.LittleEndian.PutUint32(out[0x10:], 5)
	binary.LittleEndian.PutUint32(out[0x14:], 1)
	binary.LittleEndian.PutUint32(out[0x18:], 0)

	for i, d := range descriptors {
		off := 0x10 + i*tablePointerSize
		binary.LittleEndian.PutUint32(out[off+0x00:], d.FirstPageID)
		binary.LittleEndian.PutUint32(out[off+0x04:], d.EmptyCandidate)
		binary.LittleEndian.PutUint32(out[off+0x08:], d.LastPageID)
		binary.LittleEndian.PutUint32(out[off+0x0C:], uint32(d.Type))
	}

	return out
}
