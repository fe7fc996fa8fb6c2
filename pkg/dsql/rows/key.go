package rows

// EncodeKey builds a key_row. id2 always equals id per spec section 4.3.
func EncodeKey(id uint32, name string) (Row, error) {
	b := &builder{}
	b.u32(id)
	b.u32(id) // id2
	if _, err := b.appendString(name); err != nil {
		return Row{}, err
	}
	return Row{Body: b.buf, IndexShiftOffset: -1}, nil
}
