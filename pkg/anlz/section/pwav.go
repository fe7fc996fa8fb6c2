package section

import "github.com/cdjkit/rbxdb/pkg/model"

// previewSampleCount is the fixed PWAV/PWV3 sample count spec section 4.6
// and invariant 6 require.
const previewSampleCount = 400

// BuildPWAV packs the 400-sample preview waveform, one byte per sample:
// 5-bit height in the low bits, 3-bit whiteness in the high bits.
func BuildPWAV(samples [400]model.PreviewSample) []byte {
	payload := make([]byte, previewSampleCount)
	for i, s := range samples {
		payload[i] = (s.Height & 0x1F) | (s.Whiteness&0x07)<<5
	}
	return wrap("PWAV", payload)
}
