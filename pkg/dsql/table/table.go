// Package table implements the spec section 4.4 table builder: it packs a
// sequence of already-encoded rows.Row values into page.Page pages, chains
// the pages, and (when the table is non-empty) emits a trailing index page
// listing (first_row_id_on_page, page_id) pairs.
package table

import (
	"fmt"

	"github.com/cdjkit/rbxdb/pkg/dsql/page"
	"github.com/cdjkit/rbxdb/pkg/dsql/rows"
	"github.com/cdjkit/rbxdb/pkg/rbxerr"
)

// Type is one of the 20 DeviceSQL table type codes (spec section 4.4).
type Type uint32

const (
	Tracks           Type = 0
	Genres           Type = 1
	Artists          Type = 2
	Albums           Type = 3
	Labels           Type = 4
	Keys             Type = 5
	Colors           Type = 6
	PlaylistTree     Type = 7
	PlaylistEntries  Type = 8
	Unknown9         Type = 9
	Unknown10        Type = 10
	HistoryPlaylists Type = 11
	HistoryEntries   Type = 12
	Artwork          Type = 13
	Unknown14        Type = 14
	Unknown15        Type = 15
	Columns          Type = 16
	UK17             Type = 17
	Unknown18        Type = 18
	Unknown19        Type = 19

	// NumTableTypes is the fixed number of table-pointer slots in the PDB
	// file header (spec section 4.5).
	NumTableTypes = 20
)

// flagsFor returns the data-page flags byte for a table type (spec section
// 4.4: 0x24 for most tables, 0x34 for genres and the history tables).
func flagsFor(t Type) byte {
	switch t {
	case Genres, HistoryPlaylists, HistoryEntries:
		return page.FlagsGenreOrHistory
	default:
		return page.FlagsData
	}
}

// PendingRow is one row awaiting placement, carrying the first id it makes
// visible on its page (used by the index page's (first_row_id, page_id)
// pairs). For row kinds with no natural single id (playlist entries, REX
// rows) callers may pass the row's ordinal position instead.
type PendingRow struct {
	FirstID uint32
	Row     rows.Row
}

// Descriptor is a built table's contribution to the PDB file header (spec
// section 4.1's table descriptor, section 4.5's table-pointer slot).
type Descriptor struct {
	Type           Type
	FirstPageID    uint32
	LastPageID     uint32
	EmptyCandidate uint32
	IndexPageID    uint32
}

// Built is a finished table: its descriptor and the finalized page bytes in
// file order (including the trailing index page when present), each keyed
// by its own sequential page index for the caller to place in the file.
type Built struct {
	Descriptor Descriptor
	Pages      map[uint32][page.Size]byte
	// PageOrder lists the page indices in the order the table's chain
	// (and its index page last) was written.
	PageOrder []uint32
}

// Build packs rows into pages of type t, starting at nextPageIndex (the
// caller's running page-id allocator), and returns the finished table along
// with the next unused page index.
//
// An empty rows slice still emits one placeholder page (spec section 4.4
// point 4): FirstPageID == LastPageID == that page, IndexPageID == 0.
func Build(t Type, pending []PendingRow, nextPageIndex uint32) (Built, uint32, error) {
	if len(pending) == 0 {
		idx := nextPageIndex
		p := page.New(idx, uint32(t), page.FlagsEmpty)
		built := Built{
			Descriptor: Descriptor{
				Type:           t,
				FirstPageID:    idx,
				LastPageID:     idx,
				EmptyCandidate: idx + 1,
				IndexPageID:    0,
			},
			Pages:     map[uint32][page.Size]byte{idx: p.Finalize(0)},
			PageOrder: []uint32{idx},
		}
		return built, idx + 1, nil
	}

	built := Built{Pages: map[uint32][page.Size]byte{}}
	flags := flagsFor(t)

	var indexEntries []indexEntry
	var pages []*page.Page
	var pageIndices []uint32

	cur := page.New(nextPageIndex, uint32(t), flags)
	curIdx := nextPageIndex
	nextPageIndex++
	pages = append(pages, cur)
	pageIndices = append(pageIndices, curIdx)
	curFirstID := pending[0].FirstID
	indexEntries = append(indexEntries, indexEntry{firstRowID: curFirstID, pageID: curIdx})

	seen := map[uint32]bool{}

	for _, pr := range pending {
		if pr.FirstID != 0 {
			if seen[pr.FirstID] {
				return Built{}, 0, fmt.Errorf("%w: table type %d, id %d", rbxerr.ErrIDConflict, t, pr.FirstID)
			}
			seen[pr.FirstID] = true
		}

		off, ok, err := cur.TryAppendRow(pr.Row.Body)
		if err != nil {
			return Built{}, 0, err
		}
		if !ok {
			cur = page.New(nextPageIndex, uint32(t), flags)
			curIdx = nextPageIndex
			nextPageIndex++
			pages = append(pages, cur)
			pageIndices = append(pageIndices, curIdx)
			indexEntries = append(indexEntries, indexEntry{firstRowID: pr.FirstID, pageID: curIdx})

			off, ok, err = cur.TryAppendRow(pr.Row.Body)
			if err != nil {
				return Built{}, 0, err
			}
			if !ok {
				return Built{}, 0, fmt.Errorf("%w: row does not fit an empty page", rbxerr.ErrRowTooLarge)
			}
		}
		patchRow(cur, off, pr.Row)
	}

	for i, p := range pages {
		var nextID uint32
		if i+1 < len(pages) {
			nextID = pageIndices[i+1]
		}
		built.Pages[pageIndices[i]] = p.Finalize(nextID)
		built.PageOrder = append(built.PageOrder, pageIndices[i])
	}

	indexPageIdx := nextPageIndex
	nextPageIndex++
	indexPage, err := buildIndexPage(t, indexPageIdx, indexEntries)
	if err != nil {
		return Built{}, 0, err
	}
	built.Pages[indexPageIdx] = indexPage.Finalize(0)
	built.PageOrder = append(built.PageOrder, indexPageIdx)

	firstPage := pageIndices[0]
	lastPage := pageIndices[len(pageIndices)-1]
	built.Descriptor = Descriptor{
		Type:           t,
		FirstPageID:    firstPage,
		LastPageID:     lastPage,
		EmptyCandidate: lastPage + 1,
		IndexPageID:    indexPageIdx,
	}

	return built, nextPageIndex, nil
}

// patchRow back-fills a row's index_shift and ofs_string fields now that it
// has a final heap offset (spec section 4.3's "string fixups").
func patchRow(p *page.Page, heapOffset uint16, row rows.Row) {
	if row.IndexShiftOffset >= 0 {
		p.PatchHeapBytes(int(heapOffset)+row.IndexShiftOffset, le16(heapOffset))
	}
	for _, sp := range row.StringPatches {
		absolute := heapOffset + uint16(sp.StringAt)
		p.PatchHeapBytes(int(heapOffset)+sp.FieldOffset, le16(absolute))
	}
}

func le16(v uint16) []byte {
	return []byte{byte(v), byte(v >> 8)}
}

type indexEntry struct {
	firstRowID uint32
	pageID     uint32
}

// buildIndexPage renders the (first_row_id_on_page, page_id) pairs listing
// the data pages of one table (spec section 4.4 point 3).
func buildIndexPage(t Type, pageIdx uint32, entries []indexEntry) (*page.Page, error) {
	p := page.New(pageIdx, uint32(t), page.FlagsIndex)
	for _, e := range entries {
		row := make([]byte, 8)
		row[0] = byte(e.firstRowID)
		row[1] = byte(e.firstRowID >> 8)
		row[2] = byte(e.firstRowID >> 16)
		row[3] = byte(e.firstRowID >> 24)
		row[4] = byte(e.pageID)
		row[5] = byte(e.pageID >> 8)
		row[6] = byte(e.pageID >> 16)
		row[7] = byte(e.pageID >> 24)
		_, ok, err := p.TryAppendRow(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: table type %d index page overflowed a single page", rbxerr.ErrRowTooLarge, t)
		}
	}
	return p, nil
}
