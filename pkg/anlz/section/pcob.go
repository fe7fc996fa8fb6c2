package section

import "github.com/cdjkit/rbxdb/pkg/model"

// BuildPCOB encodes the legacy (non-colored) cue list: a u32-BE count
// followed by fixed-size (type, status, position_ms, loop_end_ms) entries
// (spec section 4.6).
func BuildPCOB(cues []model.CuePoint) []byte {
	b := &bigBuilder{}
	b.u32(uint32(len(cues)))
	for _, c := range cues {
		b.u32(uint32(c.Type))
		if c.IsLoop {
			b.u32(1)
		} else {
			b.u32(0)
		}
		b.u32(c.PositionMS)
		b.u32(c.LoopEndMS)
	}
	return wrap("PCOB", b.buf)
}
