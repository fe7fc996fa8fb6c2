package pdb

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdjkit/rbxdb/pkg/dsql/page"
	"github.com/cdjkit/rbxdb/pkg/dsql/table"
	"github.com/cdjkit/rbxdb/pkg/model"
)

func TestBuild_EmptyLibrary(t *testing.T) {
	out, err := Build(nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, len(out)%page.Size)
	assert.Equal(t, 21*page.Size, len(out))
	assert.Equal(t, uint32(page.Size), binary.LittleEndian.Uint32(out[0x04:]))
	assert.Equal(t, uint32(table.NumTableTypes), binary.LittleEndian.Uint32(out[0x08:]))
}

func TestBuild_SingleTrack(t *testing.T) {
	tracks := []model.Track{{
		ID:       1,
		Title:    "Test",
		Artist:   "Dj",
		FilePath: "/Contents/test.mp3",
		BPM:      12000,
	}}
	out, err := Build(tracks, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, len(out)%page.Size)
	assert.Greater(t, len(out), 21*page.Size)
}

func TestBuild_DuplicateTrackIDFails(t *testing.T) {
	tracks := []model.Track{
		{ID: 1, Title: "A", FilePath: "/a.mp3"},
		{ID: 1, Title: "B", FilePath: "/b.mp3"},
	}
	_, err := Build(tracks, nil)
	assert.Error(t, err)
}

func TestBuild_PlaylistCycleFails(t *testing.T) {
	playlists := []model.Playlist{
		{ID: 1, ParentID: 2, Name: "A"},
		{ID: 2, ParentID: 1, Name: "B"},
	}
	_, err := Build(nil, playlists)
	assert.Error(t, err)
}

func TestBuild_PlaylistDanglingParentFails(t *testing.T) {
	playlists := []model.Playlist{
		{ID: 1, ParentID: 99, Name: "A"},
	}
	_, err := Build(nil, playlists)
	assert.Error(t, err)
}

func TestBuild_TwoPlaylists(t *testing.T) {
	playlists := []model.Playlist{
		{ID: 1, ParentID: 0, Name: "Sets", IsFolder: true},
		{ID: 2, ParentID: 1, Name: "Warmup", TrackIDs: []uint32{10, 11, 12}},
	}
	out, err := Build(nil, playlists)
	require.NoError(t, err)
	assert.Equal(t, 0, len(out)%page.Size)
}

func TestValidate_AllowsWellFormedInput(t *testing.T) {
	tracks := []model.Track{{ID: 1, Title: "A", FilePath: "/a.mp3"}}
	playlists := []model.Playlist{{ID: 1, Name: "Root"}}
	assert.NoError(t, Validate(tracks, playlists))
}
