package section

import (
	"fmt"

	"github.com/cdjkit/rbxdb/pkg/model"
	"github.com/cdjkit/rbxdb/pkg/rbxerr"
)

// paletteSize is the fixed hot-cue color palette width (spec section 4.6/4.7).
const paletteSize = len(model.HotCuePalette)

// BuildPCO2 encodes the extended, colored cue list: 4 reserved status
// bytes, a u16-BE count, then per-cue (type, reserved, slot, color_index,
// position_ms, loop_end_ms, 16B reserved) entries (spec section 4.6).
func BuildPCO2(cues []model.CuePoint) ([]byte, error) {
	b := &bigBuilder{}
	b.raw([]byte{0, 0, 0, 0})
	b.u16(uint16(len(cues)))
	for _, c := range cues {
		if int(c.ColorSlot) >= paletteSize {
			return nil, fmt.Errorf("%w: color index %d", rbxerr.ErrPaletteIndexOutOfRange, c.ColorSlot)
		}
		b.u8(uint8(c.Type))
		b.u8(0) // reserved
		b.u8(uint8(c.Slot))
		b.u8(c.ColorSlot)
		b.u32(c.PositionMS)
		b.u32(c.LoopEndMS)
		b.raw(make([]byte, 16))
	}
	return wrap("PCO2", b.buf), nil
}
