package rows

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdjkit/rbxdb/pkg/dsql/encoding"
)

func TestEncodeTrack_StringSlotCount(t *testing.T) {
	row, err := EncodeTrack(TrackFields{ID: 1, Title: "Title", FilePath: "/music/track.mp3"})
	require.NoError(t, err)
	assert.Len(t, row.StringPatches, 21)
	assert.GreaterOrEqual(t, row.IndexShiftOffset, 0)
}

func TestEncodeTrack_StringPatchesPointPastHeader(t *testing.T) {
	row, err := EncodeTrack(TrackFields{ID: 7, Title: "A", FilePath: "/x/y.mp3"})
	require.NoError(t, err)
	for _, p := range row.StringPatches {
		require.GreaterOrEqual(t, p.StringAt, p.FieldOffset)
		require.Less(t, p.FieldOffset+2, len(row.Body))
	}
}

func TestEncodeTrack_FilenameIsBase(t *testing.T) {
	row, err := EncodeTrack(TrackFields{ID: 1, FilePath: "/music/sub/dir/song.mp3"})
	require.NoError(t, err)
	last := row.StringPatches[len(row.StringPatches)-1]
	filenamePatch := row.StringPatches[len(row.StringPatches)-2]
	assert.Less(t, filenamePatch.StringAt, last.StringAt)

	filename, _, err := encoding.DecodeString(row.Body[filenamePatch.StringAt:])
	require.NoError(t, err)
	assert.Equal(t, "song.mp3", filename)
}

func TestEncodeArtist_NearSubtype(t *testing.T) {
	row, err := EncodeArtist(3, "DJ Example")
	require.NoError(t, err)
	assert.Equal(t, uint16(artistSubtypeNear), binary.LittleEndian.Uint16(row.Body[0:2]))
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(row.Body[4:8]))
	assert.Equal(t, byte(artistHeaderLen), row.Body[9])
	assert.Nil(t, row.StringPatches)
}

func TestEncodeAlbum(t *testing.T) {
	row, err := EncodeAlbum(10, 3, "Example Album")
	require.NoError(t, err)
	assert.Equal(t, uint16(albumMagic), binary.LittleEndian.Uint16(row.Body[0:2]))
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(row.Body[8:12]))
	assert.Equal(t, uint32(10), binary.LittleEndian.Uint32(row.Body[12:16]))
}

func TestEncodeGenreAndLabel(t *testing.T) {
	g, err := EncodeGenre(1, "House")
	require.NoError(t, err)
	l, err := EncodeLabel(2, "Label Co")
	require.NoError(t, err)
	assert.Equal(t, -1, g.IndexShiftOffset)
	assert.Equal(t, -1, l.IndexShiftOffset)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(g.Body[0:4]))
	assert.Equal(t, uint32(2), binary.LittleEndian.Uint32(l.Body[0:4]))
}

func TestEncodeKey_DuplicatesID(t *testing.T) {
	row, err := EncodeKey(5, "Cmaj")
	require.NoError(t, err)
	assert.Equal(t, uint32(5), binary.LittleEndian.Uint32(row.Body[0:4]))
	assert.Equal(t, uint32(5), binary.LittleEndian.Uint32(row.Body[4:8]))
}

func TestEncodeColor(t *testing.T) {
	row, err := EncodeColor(1, "Pink")
	require.NoError(t, err)
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(row.Body[5:7]))
}

func TestEncodePlaylistTree_FolderFlag(t *testing.T) {
	folder, err := EncodePlaylistTree(0, 1, 1, true, "My Folder")
	require.NoError(t, err)
	leaf, err := EncodePlaylistTree(1, 1, 2, false, "My Playlist")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), binary.LittleEndian.Uint32(folder.Body[16:20]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(leaf.Body[16:20]))
}

func TestEncodePlaylistEntry(t *testing.T) {
	row, err := EncodePlaylistEntry(0, 42, 7)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(row.Body[0:4]))
	assert.Equal(t, uint32(42), binary.LittleEndian.Uint32(row.Body[4:8]))
	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(row.Body[8:12]))
}

func TestEncodeArtwork(t *testing.T) {
	row, err := EncodeArtwork(9, "/artwork/9.jpg")
	require.NoError(t, err)
	assert.Equal(t, uint32(9), binary.LittleEndian.Uint32(row.Body[0:4]))
	assert.Equal(t, -1, row.IndexShiftOffset)
}

func TestEncodeColumnsRow_EightBytes(t *testing.T) {
	row, err := EncodeColumnsRow(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Len(t, row.Body, 8)
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(row.Body[0:2]))
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(row.Body[6:8]))
}

func TestNameAllocator_DedupesAndOrders(t *testing.T) {
	a := NewNameAllocator(1)
	assert.Equal(t, uint32(0), a.IDFor(""))
	id1 := a.IDFor("House")
	id2 := a.IDFor("Techno")
	id1Again := a.IDFor("House")
	assert.Equal(t, id1, id1Again)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, []string{"House", "Techno"}, a.Order)
}
