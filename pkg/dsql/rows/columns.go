package rows

// EncodeColumnsRow builds one row of the columns (type 16) or uk17 (type 17)
// table using the compact "REX" layout: four uint16 fields, 8 bytes total.
// Spec section 4.4's Open Question (b) notes the Kaitai spec claims 4xu32
// (16 bytes) while working exports use this 8-byte form; this module emits
// the 8-byte form, matching observed hardware-accepted exports.
func EncodeColumnsRow(a, b, c, d uint16) (Row, error) {
	bld := &builder{}
	bld.u16(a)
	bld.u16(b)
	bld.u16(c)
	bld.u16(d)
	return Row{Body: bld.buf, IndexShiftOffset: -1}, nil
}
