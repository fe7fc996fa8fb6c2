package rows

// EncodeGenre and EncodeLabel share the same id+name layout (spec section
// 4.3). Genre rows ride pages flagged page.FlagsGenreOrHistory.
func EncodeGenre(id uint32, name string) (Row, error) {
	return encodeIDName(id, name)
}

func EncodeLabel(id uint32, name string) (Row, error) {
	return encodeIDName(id, name)
}

func encodeIDName(id uint32, name string) (Row, error) {
	b := &builder{}
	b.u32(id)
	if _, err := b.appendString(name); err != nil {
		return Row{}, err
	}
	return Row{Body: b.buf, IndexShiftOffset: -1}, nil
}
