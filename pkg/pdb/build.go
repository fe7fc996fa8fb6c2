// Package pdb assembles the export.pdb file: it drives every pkg/dsql/table
// builder over a set of tracks and playlists, resolves the cross-table id
// references (spec section 9's "small allocator struct"), and writes the
// page-0 file header (spec section 4.5).
package pdb

import (
	"fmt"

	"github.com/cdjkit/rbxdb/pkg/dsql/page"
	"github.com/cdjkit/rbxdb/pkg/dsql/rows"
	"github.com/cdjkit/rbxdb/pkg/dsql/table"
	"github.com/cdjkit/rbxdb/pkg/model"
	"github.com/cdjkit/rbxdb/pkg/rbxerr"
)

// Build encodes the full export.pdb byte stream for a library of tracks and
// a playlist tree (spec section 4.5). Tracks and playlists are taken in the
// order given; row ids within each generated table follow that order plus
// first-seen order for the derived name tables (artists, albums, ...).
func Build(tracks []model.Track, playlists []model.Playlist) ([]byte, error) {
	if err := Validate(tracks, playlists); err != nil {
		return nil, err
	}

	artists := rows.NewNameAllocator(1)
	albums := rows.NewNameAllocator(1)
	genres := rows.NewNameAllocator(1)
	labels := rows.NewNameAllocator(1)
	artwork := rows.NewNameAllocator(1)
	albumArtist := map[uint32]uint32{} // album id -> artist id of first track referencing it

	keyID := func(name string) uint32 {
		for i, k := range model.StandardKeys {
			if k == name {
				return uint32(i + 1)
			}
		}
		return 0
	}

	var trackPending []table.PendingRow
	for _, tr := range tracks {
		artistID := artists.IDFor(tr.Artist)
		albumID := albums.IDFor(tr.Album)
		if albumID != 0 {
			if _, ok := albumArtist[albumID]; !ok {
				albumArtist[albumID] = artistID
			}
		}

		fields := rows.TrackFields{
			ID:               tr.ID,
			SampleRate:       tr.SampleRate,
			ComposerID:       artists.IDFor(tr.Composer),
			FileSize:         tr.FileSize,
			ArtworkID:        artwork.IDFor(tr.ArtworkPath),
			KeyID:            keyID(tr.Key),
			OriginalArtistID: artists.IDFor(tr.OriginalArtist),
			LabelID:          labels.IDFor(tr.Label),
			RemixerID:        artists.IDFor(tr.Remixer),
			Bitrate:          tr.Bitrate,
			TrackNumber:      tr.TrackNumber,
			TempoX100:        tr.BPM,
			GenreID:          genres.IDFor(tr.Genre),
			AlbumID:          albumID,
			ArtistID:         artistID,
			DiscNumber:       tr.DiscNumber,
			PlayCount:        tr.PlayCount,
			Year:             tr.Year,
			SampleDepth:      tr.SampleDepth,
			DurationSeconds:  tr.Duration,
			ColorID:          tr.ColorSlot,
			Rating:           tr.Rating,
			ISRC:             tr.ISRC,
			DateAdded:        tr.DateAdded,
			ReleaseDate:      tr.ReleaseDate,
			MixName:          tr.MixName,
			AnalyzePath:      tr.AnalyzePath,
			AnalyzeDate:      tr.AnalyzeDate,
			Comment:          tr.Comment,
			Title:            tr.Title,
			FilePath:         tr.FilePath,
		}
		row, err := rows.EncodeTrack(fields)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", tr.ID, err)
		}
		trackPending = append(trackPending, table.PendingRow{FirstID: tr.ID, Row: row})
	}

	artistPending, err := namedPending(artists.Order, 1, func(id uint32, name string) (rows.Row, error) {
		return rows.EncodeArtist(id, name)
	})
	if err != nil {
		return nil, err
	}
	albumPending, err := namedPending(albums.Order, 1, func(id uint32, name string) (rows.Row, error) {
		return rows.EncodeAlbum(id, albumArtist[id], name)
	})
	if err != nil {
		return nil, err
	}
	genrePending, err := namedPending(genres.Order, 1, func(id uint32, name string) (rows.Row, error) {
		return rows.EncodeGenre(id, name)
	})
	if err != nil {
		return nil, err
	}
	labelPending, err := namedPending(labels.Order, 1, func(id uint32, name string) (rows.Row, error) {
		return rows.EncodeLabel(id, name)
	})
	if err != nil {
		return nil, err
	}
	artworkPending, err := namedPending(artwork.Order, 1, func(id uint32, name string) (rows.Row, error) {
		return rows.EncodeArtwork(id, name)
	})
	if err != nil {
		return nil, err
	}

	var keyPending []table.PendingRow
	for i, name := range model.StandardKeys {
		id := uint32(i + 1)
		row, err := rows.EncodeKey(id, name)
		if err != nil {
			return nil, err
		}
		keyPending = append(keyPending, table.PendingRow{FirstID: id, Row: row})
	}

	var colorPending []table.PendingRow
	for _, c := range model.StandardColors {
		row, err := rows.EncodeColor(c.ID, c.Name)
		if err != nil {
			return nil, err
		}
		colorPending = append(colorPending, table.PendingRow{FirstID: uint32(c.ID), Row: row})
	}

	var treePending []table.PendingRow
	var entryPending []table.PendingRow
	for _, pl := range playlists {
		row, err := rows.EncodePlaylistTree(pl.ParentID, pl.Sort, pl.ID, pl.IsFolder, pl.Name)
		if err != nil {
			return nil, err
		}
		treePending = append(treePending, table.PendingRow{FirstID: pl.ID, Row: row})

		for i, trackID := range pl.TrackIDs {
			entryRow, err := rows.EncodePlaylistEntry(uint32(i), trackID, pl.ID)
			if err != nil {
				return nil, err
			}
			entryPending = append(entryPending, table.PendingRow{Row: entryRow})
		}
	}

	type job struct {
		typ     table.Type
		pending []table.PendingRow
	}
	jobs := []job{
		{table.Tracks, trackPending},
		{table.Genres, genrePending},
		{table.Artists, artistPending},
		{table.Albums, albumPending},
		{table.Labels, labelPending},
		{table.Keys, keyPending},
		{table.Colors, colorPending},
		{table.PlaylistTree, treePending},
		{table.PlaylistEntries, entryPending},
		{table.Unknown9, nil},
		{table.Unknown10, nil},
		{table.HistoryPlaylists, nil},
		{table.HistoryEntries, nil},
		{table.Artwork, artworkPending},
		{table.Unknown14, nil},
		{table.Unknown15, nil},
		{table.Columns, nil},
		{table.UK17, nil},
		{table.Unknown18, nil},
		{table.Unknown19, nil},
	}

	pages := map[uint32][page.Size]byte{}
	descriptors := make([]table.Descriptor, 0, table.NumTableTypes)
	nextPage := uint32(1)
	var maxPage uint32
	for _, j := range jobs {
		built, next, err := table.Build(j.typ, j.pending, nextPage)
		if err != nil {
			return nil, err
		}
		for idx, body := range built.Pages {
			pages[idx] = body
			if idx > maxPage {
				maxPage = idx
			}
		}
		descriptors = append(descriptors, built.Descriptor)
		nextPage = next
	}

	totalPages := maxPage + 1
	header := buildHeader(descriptors, totalPages)

	out := make([]byte, 0, int(totalPages)*page.Size)
	out = append(out, header[:]...)
	for i := uint32(1); i < totalPages; i++ {
		body, ok := pages[i]
		if !ok {
			return nil, fmt.Errorf("internal error: page %d was never written", i)
		}
		out = append(out, body[:]...)
	}
	return out, nil
}

// namedPending turns an allocator's first-seen name order into pending rows
// via encode, assigning sequential ids starting at startID (matching the
// ids NameAllocator itself already handed out).
func namedPending(names []string, startID uint32, encode func(id uint32, name string) (rows.Row, error)) ([]table.PendingRow, error) {
	var out []table.PendingRow
	for i, name := range names {
		id := startID + uint32(i)
		row, err := encode(id, name)
		if err != nil {
			return nil, err
		}
		out = append(out, table.PendingRow{FirstID: id, Row: row})
	}
	return out, nil
}

// Validate runs the build-time checks spec section 7 requires before any
// bytes are encoded: duplicate track/playlist ids and cyclic or dangling
// playlist parent chains.
func Validate(tracks []model.Track, playlists []model.Playlist) error {
	seenTracks := map[uint32]bool{}
	for _, tr := range tracks {
		if seenTracks[tr.ID] {
			return fmt.Errorf("%w: track id %d", rbxerr.ErrIDConflict, tr.ID)
		}
		seenTracks[tr.ID] = true
	}

	byID := map[uint32]model.Playlist{}
	seenPlaylists := map[uint32]bool{}
	for _, pl := range playlists {
		if seenPlaylists[pl.ID] {
			return fmt.Errorf("%w: playlist id %d", rbxerr.ErrIDConflict, pl.ID)
		}
		seenPlaylists[pl.ID] = true
		byID[pl.ID] = pl
	}

	for _, pl := range playlists {
		visited := map[uint32]bool{}
		cur := pl
		for cur.ParentID != 0 {
			if visited[cur.ParentID] {
				return fmt.Errorf("%w: playlist %d", rbxerr.ErrPlaylistCycle, pl.ID)
			}
			visited[cur.ParentID] = true
			parent, ok := byID[cur.ParentID]
			if !ok {
				return fmt.Errorf("%w: playlist %d has dangling parent %d", rbxerr.ErrPlaylistCycle, pl.ID, cur.ParentID)
			}
			cur = parent
		}
	}
	return nil
}
