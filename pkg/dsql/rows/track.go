package rows

import "path"

const trackMagic = 0x0024

// TrackFields is everything a track_row needs, with every id already
// resolved by a NameAllocator (or 0 for "none").
type TrackFields struct {
	ID               uint32
	SampleRate       uint32
	ComposerID       uint32
	FileSize         uint32
	ArtworkID        uint32
	KeyID            uint32
	OriginalArtistID uint32
	LabelID          uint32
	RemixerID        uint32
	Bitrate          uint32
	TrackNumber      uint32
	TempoX100        uint32
	GenreID          uint32
	AlbumID          uint32
	ArtistID         uint32
	DiscNumber       uint16
	PlayCount        uint16
	Year             uint16
	SampleDepth      uint16
	DurationSeconds  uint16
	ColorID          uint8
	Rating           uint8

	ISRC        string
	DateAdded   string
	ReleaseDate string
	MixName     string
	AnalyzePath string
	AnalyzeDate string
	Comment     string
	Title       string
	FilePath    string
}

// EncodeTrack builds a track_row per spec section 4.3. The format names 21
// ofs_string slots but only names 15 distinct strings; this module fills
// the six unnamed slots (unknown5-unknown10) with empty strings, documented
// as an Open Question resolution in DESIGN.md.
func EncodeTrack(f TrackFields) (Row, error) {
	b := &builder{}

	b.u16(trackMagic)
	indexShiftOffset := b.offset()
	b.u16(0) // index_shift, patched once placed in a page
	b.u32(0x00100000)
	b.u32(f.SampleRate)
	b.u32(f.ComposerID)
	b.u32(f.FileSize)
	b.u32(0) // unknown
	b.u16(0) // unknown
	b.u16(0) // unknown
	b.u32(f.ArtworkID)
	b.u32(f.KeyID)
	b.u32(f.OriginalArtistID)
	b.u32(f.LabelID)
	b.u32(f.RemixerID)
	b.u32(f.Bitrate)
	b.u32(f.TrackNumber)
	b.u32(f.TempoX100)
	b.u32(f.GenreID)
	b.u32(f.AlbumID)
	b.u32(f.ArtistID)
	b.u32(f.ID)
	b.u16(f.DiscNumber)
	b.u16(f.PlayCount)
	b.u16(f.Year)
	b.u16(f.SampleDepth)
	b.u16(f.DurationSeconds)
	b.u16(41) // constant
	b.u8(f.ColorID)
	b.u8(f.Rating)
	b.u16(1) // constant
	b.u16(3) // constant

	strs := []string{
		f.ISRC, "" /* texter */, "" /* unknown1 */, "" /* unknown2 */,
		f.DateAdded, f.ReleaseDate, f.MixName, "" /* unknown3 */,
		f.AnalyzePath, f.AnalyzeDate, f.Comment, f.Title,
		"" /* unknown4 */, "" /* unknown5 */, "" /* unknown6 */,
		"" /* unknown7 */, "" /* unknown8 */, "" /* unknown9 */,
		"" /* unknown10 */, path.Base(f.FilePath), f.FilePath,
	}
	if len(strs) != 21 {
		panic("track_row must declare exactly 21 string slots")
	}

	slots := make([]int, len(strs))
	for i := range strs {
		slots[i] = b.reserveStringSlot()
	}

	var patches []StringPatch
	for i, s := range strs {
		at, err := b.appendString(s)
		if err != nil {
			return Row{}, err
		}
		patches = append(patches, StringPatch{FieldOffset: slots[i], StringAt: at})
	}

	return Row{Body: b.buf, IndexShiftOffset: indexShiftOffset, StringPatches: patches}, nil
}
