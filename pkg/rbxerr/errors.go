// Package rbxerr carries the failure taxonomy a PDB/ANLZ build can hit. Every
// sentinel is meant to be used with errors.Is against the wrapped error a
// builder returns, the same way the rest of this module wraps errors with
// fmt.Errorf("...: %w", err) rather than reaching for a third-party errors
// package.
package rbxerr

import "errors"

// Sentinel errors from spec section 7 ("Error Handling Design"). All of them
// are fatal: a build either fully succeeds or returns one of these wrapped
// with enough context to locate the offending row/string/id.
var (
	// ErrRowTooLarge: a single row body plus its strings exceeds the page
	// budget (4096 - 0x28 - 36, the room left after the header and one
	// row group).
	ErrRowTooLarge = errors.New("row too large for a page")

	// ErrStringTooLong: a long-ASCII or UTF-16 string's byte length
	// overflows the 16-bit length field.
	ErrStringTooLong = errors.New("string encodes longer than a uint16 byte length")

	// ErrIDConflict: two rows destined for the same table share an id.
	ErrIDConflict = errors.New("duplicate id within table")

	// ErrPlaylistCycle: a playlist's parent chain cycles back on itself,
	// or points at a parent id that doesn't exist.
	ErrPlaylistCycle = errors.New("playlist parent chain is cyclic or dangling")

	// ErrAnalysisSizeMismatch: the PWV3 three-band waveform isn't exactly
	// 400 samples. PWAV (400 samples) and PWV4 (1200 columns) take
	// fixed-size arrays, so their counts are enforced by type instead.
	ErrAnalysisSizeMismatch = errors.New("analysis payload has the wrong sample count")

	// ErrPaletteIndexOutOfRange: a hot-cue color index is >= 63.
	ErrPaletteIndexOutOfRange = errors.New("hot-cue color index out of range")
)
