package section

import "github.com/cdjkit/rbxdb/pkg/model"

// BuildPWV3 packs the three-band waveform, one byte per sample. Spec
// section 4.6 leaves the band packing to the caller; this module passes the
// bytes through unchanged. The sample count must match PWAV's 400, since
// both describe the same timeline at the same resolution (spec section 7's
// AnalysisSizeMismatch).
func BuildPWV3(samples []model.ThreeBandSample) ([]byte, error) {
	if len(samples) != previewSampleCount {
		return nil, errSizeMismatch("PWV3", len(samples), previewSampleCount)
	}
	return wrap("PWV3", samples), nil
}
