// Package encoding implements the DeviceSQL string codec (spec section
// 4.1): the three wire formats rekordbox hardware accepts for a text field,
// and the single rule that picks among them.
package encoding

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"github.com/cdjkit/rbxdb/pkg/rbxerr"
)

// Kind names the on-disk variant a string was (or will be) encoded as.
type Kind int

const (
	KindShortASCII Kind = iota
	KindLongASCII
	KindUTF16LE
)

const (
	headerLongASCII = 0x40
	headerUTF16LE   = 0x90
)

// isASCIIPrintable reports whether every rune in s is in the DeviceSQL
// short/long-ASCII range 0x20-0x7E.
func isASCIIPrintable(s string) bool {
	for _, r := range s {
		if r < 0x20 || r > 0x7E {
			return false
		}
	}
	return true
}

// EncodeString picks a wire variant for s per spec section 4.1 and returns
// its encoded bytes. Empty strings are valid and encode as short-ASCII with
// encoded_len = 1.
func EncodeString(s string) ([]byte, error) {
	if isASCIIPrintable(s) {
		encodedLen := len(s) + 1
		if encodedLen < 0x80 { // fits a 7-bit encoded_len
			return encodeShortASCII(s, encodedLen), nil
		}
		return encodeLongASCII(s)
	}
	return encodeUTF16LE(s)
}

func encodeShortASCII(s string, encodedLen int) []byte {
	buf := make([]byte, 1+len(s))
	buf[0] = byte((encodedLen << 1) | 1)
	copy(buf[1:], s)
	return buf
}

func encodeLongASCII(s string) ([]byte, error) {
	if len(s) > 0xFFFF {
		return nil, fmt.Errorf("%w: long-ascii string of %d bytes", rbxerr.ErrStringTooLong, len(s))
	}
	buf := make([]byte, 4+len(s))
	buf[0] = headerLongASCII
	binary.LittleEndian.PutUint16(buf[1:3], uint16(len(s)))
	buf[3] = 0x00
	copy(buf[4:], s)
	return buf, nil
}

func encodeUTF16LE(s string) ([]byte, error) {
	units := utf16.Encode([]rune(s))
	byteLen := 2*len(units) + 4
	if byteLen > 0xFFFF {
		return nil, fmt.Errorf("%w: utf16 string of %d bytes", rbxerr.ErrStringTooLong, byteLen)
	}
	buf := make([]byte, 4+2*len(units))
	buf[0] = headerUTF16LE
	binary.LittleEndian.PutUint16(buf[1:3], uint16(byteLen))
	buf[3] = 0x00
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[4+2*i:], u)
	}
	return buf, nil
}

// DecodeString reads one DeviceSQL string starting at the front of data and
// returns the decoded text plus the number of bytes it consumed. It exists
// to let tests verify that EncodeString's output round-trips byte-for-byte;
// rbxdb never reads a PDB or ANLZ file it didn't just write.
func DecodeString(data []byte) (string, int, error) {
	if len(data) == 0 {
		return "", 0, fmt.Errorf("empty buffer")
	}
	header := data[0]
	if header&0x01 == 1 {
		encodedLen := int(header >> 1)
		n := encodedLen - 1
		if 1+n > len(data) {
			return "", 0, fmt.Errorf("short-ascii string truncated")
		}
		return string(data[1 : 1+n]), 1 + n, nil
	}
	switch header {
	case headerLongASCII:
		if len(data) < 4 {
			return "", 0, fmt.Errorf("long-ascii header truncated")
		}
		n := int(binary.LittleEndian.Uint16(data[1:3]))
		if 4+n > len(data) {
			return "", 0, fmt.Errorf("long-ascii string truncated")
		}
		return string(data[4 : 4+n]), 4 + n, nil
	case headerUTF16LE:
		if len(data) < 4 {
			return "", 0, fmt.Errorf("utf16 header truncated")
		}
		byteLen := int(binary.LittleEndian.Uint16(data[1:3]))
		n := byteLen - 4
		if n < 0 || 4+n > len(data) {
			return "", 0, fmt.Errorf("utf16 string truncated")
		}
		units := make([]uint16, n/2)
		for i := range units {
			units[i] = binary.LittleEndian.Uint16(data[4+2*i:])
		}
		return string(utf16.Decode(units)), 4 + n, nil
	default:
		return "", 0, fmt.Errorf("unrecognized DeviceSQL string header 0x%02X", header)
	}
}
