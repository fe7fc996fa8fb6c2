// Package page implements the 4096-byte DeviceSQL page (spec section 4.2):
// a heap that grows forward from offset 0x28 and a row-group index that
// grows backward from the end of the page.
package page

import (
	"encoding/binary"
	"fmt"

	"github.com/cdjkit/rbxdb/pkg/rbxerr"
)

const (
	Size         = 4096
	HeapStart    = 0x28
	rowGroupSize = 36
	rowsPerGroup = 16

	// Flags observed in working exports (spec section 4.2/4.4).
	FlagsData           = 0x24
	FlagsGenreOrHistory = 0x34
	FlagsIndex          = 0x64
	FlagsEmpty          = 0x00
)

// Page accumulates row bodies into a single 4096-byte heap-and-index block.
// It mirrors the teacher's DirectoryRecord.Marshal: write sequentially,
// reserve room for fields you don't know yet, patch them once you do.
type Page struct {
	index    uint32 // this page's own sequential index, spec invariant 5
	typeCode uint32
	flags    byte

	heap    []byte // bytes appended from HeapStart forward
	offsets []uint16
}

// New starts an empty page. pageIndex is the page's own sequential position
// in the file (not the table type, per spec invariant 5); typeCode is the
// table type this page belongs to.
func New(pageIndex uint32, typeCode uint32, flags byte) *Page {
	return &Page{index: pageIndex, typeCode: typeCode, flags: flags}
}

// projectedRowGroupBytes returns how many trailer bytes n rows reserve
// (36 per started group of 16), per spec section 4.2. TryAppendRow passes
// the existing row count plus the row being added.
func projectedRowGroupBytes(n int) int {
	groups := (n + rowsPerGroup - 1) / rowsPerGroup
	return groups * rowGroupSize
}

// TryAppendRow places row into the heap if it fits, returning the heap
// offset it was written at. It returns ok=false, leaving the page
// untouched, if the row doesn't fit in the remaining budget.
func (p *Page) TryAppendRow(row []byte) (offset uint16, ok bool, err error) {
	maxRowGroupBudget := Size - HeapStart - rowGroupSize
	if len(row) > maxRowGroupBudget {
		return 0, false, fmt.Errorf("%w: row is %d bytes, page budget is %d", rbxerr.ErrRowTooLarge, len(row), maxRowGroupBudget)
	}

	reserved := projectedRowGroupBytes(len(p.offsets) + 1)
	used := HeapStart + len(p.heap)
	remaining := Size - used - reserved
	if remaining < len(row) {
		return 0, false, nil
	}

	off := len(p.heap)
	if off > 0xFFFF {
		return 0, false, fmt.Errorf("%w: heap offset %d overflows uint16", rbxerr.ErrRowTooLarge, off)
	}
	p.heap = append(p.heap, row...)
	p.offsets = append(p.offsets, uint16(off))
	return uint16(off), true, nil
}

// NumRows reports how many rows have been appended so far.
func (p *Page) NumRows() int {
	return len(p.offsets)
}

// HeapOffset returns the absolute in-page byte offset (HeapStart + heap
// offset) of the row appended at position rowIndex (0-based, in append
// order).
func (p *Page) HeapOffset(rowIndex int) uint16 {
	return uint16(HeapStart) + p.offsets[rowIndex]
}

// PatchHeapBytes overwrites bytes already committed to the heap, used to
// back-patch ofs_string fields once a row's final position is known.
func (p *Page) PatchHeapBytes(heapOffset int, data []byte) {
	copy(p.heap[heapOffset:], data)
}

// Finalize renders the page to its on-disk 4096-byte form. nextPageID is the
// next page in this table's chain, 0 if this is the last page.
//
// A placeholder page (flags FlagsEmpty) is rendered as 4096 zero bytes
// including its own header, per spec section 4.4 point 4.
func (p *Page) Finalize(nextPageID uint32) [Size]byte {
	var out [Size]byte
	if p.flags == FlagsEmpty {
		return out
	}

	binary.LittleEndian.PutUint32(out[0x00:], 0)
	binary.LittleEndian.PutUint32(out[0x04:], p.index)
	binary.LittleEndian.PutUint32(out[0x08:], nextPageID)
	out[0x0C] = p.flags

	numRows := len(p.offsets)
	usedSize := uint32(len(p.heap))
	// Per spec invariant 2, free_size is simply the heap's complement:
	// used_size + free_size + 0x28 == 4096. The row-group trailer (which
	// physically eats into this "free" span) is not subtracted here; the
	// reservation only matters to TryAppendRow's capacity check.
	freeSize := uint32(Size - HeapStart - len(p.heap))
	binary.LittleEndian.PutUint32(out[0x10:], usedSize)
	binary.LittleEndian.PutUint32(out[0x14:], freeSize)

	if numRows <= 255 {
		out[0x18] = byte(numRows) // num_rows_small
		out[0x19] = 0             // num_rows_large
	} else {
		out[0x18] = 0
		binary.LittleEndian.PutUint16(out[0x19:], uint16(numRows))
	}

	copy(out[HeapStart:], p.heap)
	writeRowGroups(out[:], p.offsets)

	return out
}

// totalRowGroupBytes is the trailer size actually occupied by n committed
// rows (as opposed to projectedRowGroupBytes, which reserves room for one
// more row that hasn't been appended yet).
func totalRowGroupBytes(n int) int {
	if n == 0 {
		return rowGroupSize
	}
	groups := (n + rowsPerGroup - 1) / rowsPerGroup
	return groups * rowGroupSize
}

// writeRowGroups lays the row-group trailers out backwards from the end of
// the page (spec invariants 2 and 3): group 0 covers rows [0,16), and
// within a group, row_offset[15-i] holds the offset for presence bit i.
func writeRowGroups(out []byte, offsets []uint16) {
	numGroups := totalRowGroupBytes(len(offsets)) / rowGroupSize
	for g := 0; g < numGroups; g++ {
		groupStart := Size - (g+1)*rowGroupSize
		var present uint16
		for i := 0; i < rowsPerGroup; i++ {
			rowIndex := g*rowsPerGroup + i
			slot := groupStart + (rowsPerGroup-1-i)*2
			if rowIndex < len(offsets) {
				binary.LittleEndian.PutUint16(out[slot:], offsets[rowIndex])
				present |= 1 << uint(i)
			} else {
				binary.LittleEndian.PutUint16(out[slot:], 0)
			}
		}
		binary.LittleEndian.PutUint16(out[groupStart+32:], present)
		binary.LittleEndian.PutUint16(out[groupStart+34:], 0)
	}
}
