// Package model holds the plain, read-only input entities that the rest of
// rbxdb consumes (spec section 3, "Data Model"). Nothing in this package
// touches bytes; it is the boundary between whatever staged the audio files
// and playlists and the binary writers in pkg/dsql, pkg/pdb and pkg/anlz.
package model

// Track is the metadata for a single audio file that will become a row in
// the tracks table plus a set of ANLZ files.
type Track struct {
	// ID is assigned by the caller and must be unique within one build.
	ID uint32
	// FilePath is the path rekordbox-format hardware will read the audio
	// from, e.g. "/Contents/Warmup/01 Song.mp3".
	FilePath string

	Title          string
	Artist         string
	Album          string
	Genre          string
	Label          string
	Key            string
	Remixer        string
	Composer       string
	OriginalArtist string

	// ColorSlot is 0 (no color) through 8, matching the eight standard
	// rekordbox track colors.
	ColorSlot uint8

	// BPM is stored as hundredths, e.g. 12000 for 120.00 BPM, matching
	// the on-disk tempo field.
	BPM uint32

	SampleRate  uint32
	SampleDepth uint16
	Duration    uint16 // seconds
	Bitrate     uint32
	FileSize    uint32
	PlayCount   uint16
	Rating      uint8
	Year        uint16
	DiscNumber  uint16
	TrackNumber uint32

	// ArtworkPath is optional; an empty string means no artwork row is
	// emitted for this track.
	ArtworkPath string

	Comment      string
	ISRC         string
	DateAdded    string
	ReleaseDate  string
	MixName      string
	AnalyzePath  string
	AnalyzeDate  string
}
