package rows

// Artist/album name rows carry a "near" and "far" subtype distinguished by
// the width of their ofs_name field (spec section 4.3). This module only
// ever emits the near subtype: its ofs_name value is a fixed, position-
// independent constant (the header is a fixed number of bytes regardless of
// where the row lands in a page), so there is no case where a name needs
// the wider far layout. See DESIGN.md for the full Open Question note.
const (
	artistSubtypeNear = 0x60
	artistHeaderLen   = 10
	albumMagic        = 0x0080
	albumHeaderLen    = 22
)

// EncodeArtist builds an artist_row.
func EncodeArtist(id uint32, name string) (Row, error) {
	b := &builder{}
	b.u16(artistSubtypeNear)
	indexShiftOffset := b.offset()
	b.u16(0)
	b.u32(id)
	b.u8(0x03) // marker
	b.u8(artistHeaderLen)

	// ofs_name is a fixed header-length constant, not a heap offset, so the
	// string's own start position needs no further patch.
	if _, err := b.appendString(name); err != nil {
		return Row{}, err
	}
	return Row{Body: b.buf, IndexShiftOffset: indexShiftOffset}, nil
}

// EncodeAlbum builds an album_row.
func EncodeAlbum(id, artistID uint32, name string) (Row, error) {
	b := &builder{}
	b.u16(albumMagic)
	indexShiftOffset := b.offset()
	b.u16(0)
	b.u32(0) // unknown
	b.u32(artistID)
	b.u32(id)
	b.u32(0) // unknown
	b.u8(0x03)
	b.u8(albumHeaderLen)

	if _, err := b.appendString(name); err != nil {
		return Row{}, err
	}
	return Row{Body: b.buf, IndexShiftOffset: indexShiftOffset}, nil
}
