package section

import "github.com/cdjkit/rbxdb/pkg/model"

// BuildPQTZ encodes the beat grid: a u32-BE count followed by per-beat
// (beat_in_bar, tempo x100, time_ms) records (spec section 4.6).
func BuildPQTZ(beats []model.Beat) []byte {
	b := &bigBuilder{}
	b.u32(uint32(len(beats)))
	for _, beat := range beats {
		b.u16(uint16(beat.BeatInBar))
		b.u16(beat.TempoX100)
		b.u32(beat.TimeMS)
	}
	return wrap("PQTZ", b.buf)
}
