// Package anlz assembles the three ANLZ files rekordbox-format hardware
// reads per track (spec sections 4.6-4.7): ANLZ0000.DAT, .EXT and .2EX.
// Building is per-track and has no shared state, so callers may parallelize
// across tracks (spec section 5).
package anlz

import (
	"fmt"

	"github.com/cdjkit/rbxdb/pkg/anlz/section"
	"github.com/cdjkit/rbxdb/pkg/model"
)

// Files holds the three byte buffers a single track's analysis produces.
type Files struct {
	DAT   []byte
	EXT   []byte
	TwoEX []byte
}

// Build renders DAT, EXT and 2EX for one track's analysis (spec section
// 4.7). filePath is the audio file path PPTH records.
func Build(filePath string, a model.Analysis) (Files, error) {
	ppth := section.BuildPPTH(filePath)
	pqtz := section.BuildPQTZ(a.Beats)
	pwav := section.BuildPWAV(a.Preview)
	pwv5 := section.BuildPWV5(a.Detail)

	dat := section.BuildPMAI([][]byte{ppth, pqtz, pwav, pwv5})

	pwv3, err := section.BuildPWV3(a.ThreeBand)
	if err != nil {
		return Files{}, fmt.Errorf("building EXT: %w", err)
	}
	pwv4 := section.BuildPWV4(a.ColorPreview)
	pcob := section.BuildPCOB(a.Cues)
	pco2, err := section.BuildPCO2(a.Cues)
	if err != nil {
		return Files{}, fmt.Errorf("building EXT: %w", err)
	}

	ext := section.BuildPMAI([][]byte{ppth, pqtz, pwav, pwv5, pwv3, pwv4, pcob, pco2})

	// 2EX is byte-identical to EXT; it exists only so CDJ-3000 units, which
	// look for the .2EX extension, find the same data (spec section 4.7).
	twoEX := make([]byte, len(ext))
	copy(twoEX, ext)

	return Files{DAT: dat, EXT: ext, TwoEX: twoEX}, nil
}

// ShardDir returns the "P{nnn}/{8-hex-digits}" directory a track's ANLZ
// files live under (spec section 6): the shard groups up to 999 tracks, and
// the leaf directory is the zero-padded lowercase hex track id.
func ShardDir(trackID uint32) string {
	shard := (trackID - 1) / 999
	return fmt.Sprintf("P%03d/%08x", shard, trackID)
}
