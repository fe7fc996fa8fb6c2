package model

// Beat is one entry of a PQTZ beat grid.
type Beat struct {
	BeatInBar int    // 1-4
	TempoX100 uint16 // BPM * 100
	TimeMS    uint32
}

// PreviewSample is one of the 400 PWAV preview-waveform samples.
type PreviewSample struct {
	Height    uint8 // 5 bits, 0-31
	Whiteness uint8 // 3 bits, 0-7
}

// DetailSample is one PWV5 detail color-waveform sample.
type DetailSample struct {
	R, G, B uint8 // 3 bits each, 0-7
	Height  uint8 // 5 bits, 0-31
}

// ThreeBandSample is one PWV3 sample: a single byte, caller-defined packing
// of the low/mid/high band energies.
type ThreeBandSample = byte

// ColorPreviewColumn is one of the 1200 PWV4 color-preview columns.
type ColorPreviewColumn struct {
	Height     uint8
	Luminance  uint8
	R, G, B    uint8
	SecondaryB uint8
}

// CueType distinguishes hot cues from memory cues in PCOB/PCO2.
type CueType uint8

const (
	CueTypeMemory CueType = 0
	CueTypeHot    CueType = 1
)

// CuePoint is one hot or memory cue.
type CuePoint struct {
	PositionMS uint32
	LoopEndMS  uint32 // 0 if not a loop
	IsLoop     bool
	Type       CueType
	// Slot is the hot-cue letter as a 0-based index (A=0, B=1, ...). Slot
	// is meaningless for memory cues.
	Slot int8
	// ColorSlot indexes the 63-entry hot-cue palette (spec section 4.7).
	ColorSlot uint8
}

// Analysis is the full per-track analysis payload (spec section 3,
// "Analysis payload") that pkg/anlz turns into ANLZ0000.DAT/.EXT/.2EX.
type Analysis struct {
	Beats        []Beat
	Preview      [400]PreviewSample
	Detail       []DetailSample
	ThreeBand    []ThreeBandSample
	ColorPreview [1200]ColorPreviewColumn
	Cues         []CuePoint
}
