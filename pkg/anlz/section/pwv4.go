package section

import "github.com/cdjkit/rbxdb/pkg/model"

// colorPreviewColumnCount is the fixed PWV4 column count spec section 4.6
// and invariant 6 require.
const colorPreviewColumnCount = 1200

// BuildPWV4 packs the 1200-column color preview, 6 bytes per column
// (height, luminance, R, G, B, secondary-blue).
func BuildPWV4(columns [1200]model.ColorPreviewColumn) []byte {
	payload := make([]byte, 0, colorPreviewColumnCount*6)
	for _, c := range columns {
		payload = append(payload, c.Height, c.Luminance, c.R, c.G, c.B, c.SecondaryB)
	}
	return wrap("PWV4", payload)
}
