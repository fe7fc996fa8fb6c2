package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdjkit/rbxdb/pkg/dsql/page"
	"github.com/cdjkit/rbxdb/pkg/dsql/rows"
)

func TestBuild_EmptyTableEmitsPlaceholder(t *testing.T) {
	built, next, err := Build(Genres, nil, 5)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), built.Descriptor.FirstPageID)
	assert.Equal(t, uint32(5), built.Descriptor.LastPageID)
	assert.Equal(t, uint32(6), built.Descriptor.EmptyCandidate)
	assert.Equal(t, uint32(0), built.Descriptor.IndexPageID)
	assert.Equal(t, uint32(6), next)

	body := built.Pages[5]
	for _, b := range body {
		assert.Equal(t, byte(0), b)
	}
}

func TestBuild_SingleRowGetsIndexPage(t *testing.T) {
	row, err := rows.EncodeKey(1, "Cmaj")
	require.NoError(t, err)
	built, next, err := Build(Keys, []PendingRow{{FirstID: 1, Row: row}}, 1)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), built.Descriptor.FirstPageID)
	assert.Equal(t, uint32(1), built.Descriptor.LastPageID)
	assert.Equal(t, uint32(2), built.Descriptor.IndexPageID)
	assert.Equal(t, uint32(3), next)
	assert.Equal(t, []uint32{1, 2}, built.PageOrder)
}

func TestBuild_DuplicateIDConflict(t *testing.T) {
	a, err := rows.EncodeGenre(1, "House")
	require.NoError(t, err)
	b, err := rows.EncodeGenre(1, "Techno")
	require.NoError(t, err)

	_, _, err = Build(Genres, []PendingRow{{FirstID: 1, Row: a}, {FirstID: 1, Row: b}}, 1)
	assert.Error(t, err)
}

func TestBuild_SpansMultiplePages(t *testing.T) {
	var pending []PendingRow
	for i := uint32(1); i <= 400; i++ {
		row, err := rows.EncodeKey(i, "Cmaj")
		require.NoError(t, err)
		pending = append(pending, PendingRow{FirstID: i, Row: row})
	}
	built, _, err := Build(Keys, pending, 1)
	require.NoError(t, err)

	// 400 small rows should not fit on a single page, so the table chains
	// at least two data pages plus one index page.
	assert.Greater(t, len(built.PageOrder), 2)
	assert.Equal(t, built.Descriptor.IndexPageID, built.PageOrder[len(built.PageOrder)-1])
}

func TestBuild_RowTooLargeIsRejected(t *testing.T) {
	huge := rows.Row{Body: make([]byte, page.Size), IndexShiftOffset: -1}
	_, _, err := Build(Artwork, []PendingRow{{FirstID: 1, Row: huge}}, 1)
	assert.Error(t, err)
}

func TestBuild_GenresUsesHistoryFlag(t *testing.T) {
	row, err := rows.EncodeGenre(1, "House")
	require.NoError(t, err)
	built, _, err := Build(Genres, []PendingRow{{FirstID: 1, Row: row}}, 1)
	require.NoError(t, err)
	dataPage := built.Pages[built.Descriptor.FirstPageID]
	assert.Equal(t, byte(page.FlagsGenreOrHistory), dataPage[0x0C])
}
