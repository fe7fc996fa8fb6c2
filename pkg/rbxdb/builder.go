// Package rbxdb is the top-level orchestrator: given a library of tracks,
// a playlist tree, and per-track analysis payloads, it drives pkg/pdb,
// pkg/anlz and pkg/aux to produce every byte buffer a caller needs to stage
// a rekordbox-format USB export (spec sections 4-6).
package rbxdb

import (
	"fmt"

	"github.com/cdjkit/rbxdb/pkg/anlz"
	"github.com/cdjkit/rbxdb/pkg/aux"
	"github.com/cdjkit/rbxdb/pkg/model"
	"github.com/cdjkit/rbxdb/pkg/pdb"
)

// Builder holds the options a Build call runs with. The core itself is
// stateless between calls: a Builder may be reused or discarded freely
// (spec section 5, "no global state").
type Builder struct {
	options Options
}

// New constructs a Builder with the given options applied over the
// defaults (a discard logger, no progress callback, an empty profile name).
func New(opts ...Option) *Builder {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &Builder{options: options}
}

// Result is every byte buffer one Build call produces. Nothing in it is
// written to disk: the core performs no I/O of its own (spec section 5);
// callers own placing these buffers at the paths spec section 6 names.
type Result struct {
	PDB []byte

	// ANLZ is keyed by track id; ShardDir(id) gives the directory each
	// entry's files belong under.
	ANLZ map[uint32]anlz.Files

	DevSetting [aux.DevSettingSize]byte
	Profile    [aux.ProfileSize]byte
}

// Validate checks for duplicate track/playlist ids and cyclic or dangling
// playlist parent chains, without encoding anything, and returns the first
// failure found. Analysis sizes and palette indices are not checked here;
// Build reports those while rendering the ANLZ files.
func (b *Builder) Validate(tracks []model.Track, playlists []model.Playlist) error {
	return pdb.Validate(tracks, playlists)
}

// Build renders the full export: export.pdb, one ANLZ file set per track
// with an entry in analyses, and the two auxiliary files. analyses may omit
// tracks that have not been analyzed yet; Build skips ANLZ generation for
// those ids.
func (b *Builder) Build(tracks []model.Track, playlists []model.Playlist, analyses map[uint32]model.Analysis) (*Result, error) {
	log := b.options.Logger.WithName("rbxdb")

	if err := b.Validate(tracks, playlists); err != nil {
		log.Error(err, "validation failed")
		return nil, fmt.Errorf("validate: %w", err)
	}

	log.Info("building export.pdb", "tracks", len(tracks), "playlists", len(playlists))
	b.options.report("pdb", 0, 1)
	pdbBytes, err := pdb.Build(tracks, playlists)
	if err != nil {
		return nil, fmt.Errorf("build pdb: %w", err)
	}
	b.options.report("pdb", 1, 1)

	anlzFiles := make(map[uint32]anlz.Files, len(analyses))
	for i, tr := range tracks {
		a, ok := analyses[tr.ID]
		if !ok {
			continue
		}
		files, err := anlz.Build(tr.FilePath, a)
		if err != nil {
			return nil, fmt.Errorf("build anlz for track %d: %w", tr.ID, err)
		}
		anlzFiles[tr.ID] = files
		b.options.report("anlz", i+1, len(tracks))
		log.Debug("built anlz", "track_id", tr.ID, "shard", anlz.ShardDir(tr.ID))
	}

	profile, err := aux.Profile(b.options.DJProfileName)
	if err != nil {
		return nil, fmt.Errorf("build djprofile.nxs: %w", err)
	}

	log.Info("build complete", "pdb_bytes", len(pdbBytes), "anlz_tracks", len(anlzFiles))

	return &Result{
		PDB:        pdbBytes,
		ANLZ:       anlzFiles,
		DevSetting: aux.DevSetting(),
		Profile:    profile,
	}, nil
}
