package rows

// EncodeColor builds a color_row: 5 reserved zero bytes, a u16 id, a zero
// byte, then the name (spec section 4.3).
func EncodeColor(id uint16, name string) (Row, error) {
	b := &builder{}
	b.zeros(5)
	b.u16(id)
	b.u8(0)
	if _, err := b.appendString(name); err != nil {
		return Row{}, err
	}
	return Row{Body: b.buf, IndexShiftOffset: -1}, nil
}
