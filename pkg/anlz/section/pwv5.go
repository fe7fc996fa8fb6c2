package section

import "github.com/cdjkit/rbxdb/pkg/model"

// BuildPWV5 packs the detail color waveform, 2 bytes big-endian per sample
// with bit layout RRRGGGBB BHHHHH00 (spec section 4.6): R/G/B are 3-bit
// components, height is 5 bits, and the low two bits of the second byte are
// always zero. Unlike PWAV/PWV4, the spec gives no fixed sample count for
// this section; its payload length only has to stay even (spec section 8
// invariant 6), which two-bytes-per-sample already guarantees.
func BuildPWV5(samples []model.DetailSample) []byte {
	b := &bigBuilder{}
	for _, s := range samples {
		r := s.R & 0x7
		g := s.G & 0x7
		blue := s.B & 0x7
		height := s.Height & 0x1F

		byte0 := r<<5 | g<<2 | (blue >> 1)
		byte1 := (blue&0x1)<<7 | height<<2
		b.u8(byte0)
		b.u8(byte1)
	}
	return wrap("PWV5", b.buf)
}
