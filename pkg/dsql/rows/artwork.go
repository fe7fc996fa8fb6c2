package rows

// EncodeArtwork builds an artwork_row: a plain id followed by the artwork
// path string (spec section 4.3).
func EncodeArtwork(id uint32, path string) (Row, error) {
	b := &builder{}
	b.u32(id)
	if _, err := b.appendString(path); err != nil {
		return Row{}, err
	}
	return Row{Body: b.buf, IndexShiftOffset: -1}, nil
}
