package rows

// EncodePlaylistTree builds a playlist_tree_row (spec section 4.3).
func EncodePlaylistTree(parentID, sortOrder, id uint32, isFolder bool, name string) (Row, error) {
	b := &builder{}
	b.u32(parentID)
	b.u32(0) // unknown
	b.u32(sortOrder)
	b.u32(id)
	if isFolder {
		b.u32(1)
	} else {
		b.u32(0)
	}
	if _, err := b.appendString(name); err != nil {
		return Row{}, err
	}
	return Row{Body: b.buf, IndexShiftOffset: -1}, nil
}

// EncodePlaylistEntry builds a playlist_entry_row: three plain uint32s,
// no strings, no index_shift.
func EncodePlaylistEntry(entryIndex, trackID, playlistID uint32) (Row, error) {
	b := &builder{}
	b.u32(entryIndex)
	b.u32(trackID)
	b.u32(playlistID)
	return Row{Body: b.buf, IndexShiftOffset: -1}, nil
}
