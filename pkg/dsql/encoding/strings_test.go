package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeString_ShortASCII(t *testing.T) {
	buf, err := EncodeString("Test")
	require.NoError(t, err)
	require.Equal(t, byte((5<<1)|1), buf[0])
	require.Equal(t, "Test", string(buf[1:]))

	decoded, n, err := DecodeString(buf)
	require.NoError(t, err)
	require.Equal(t, "Test", decoded)
	require.Equal(t, len(buf), n)
}

func TestEncodeString_Empty(t *testing.T) {
	buf, err := EncodeString("")
	require.NoError(t, err)
	require.Equal(t, []byte{0x03}, buf) // encoded_len=1 -> (1<<1)|1 = 0x03

	decoded, n, err := DecodeString(buf)
	require.NoError(t, err)
	require.Equal(t, "", decoded)
	require.Equal(t, 1, n)
}

func TestEncodeString_LongASCII(t *testing.T) {
	s := strings.Repeat("A", 100) // encoded_len would be 101, which still fits 7 bits (<128)
	buf, err := EncodeString(s)
	require.NoError(t, err)
	require.Equal(t, byte((101<<1)|1), buf[0])

	// Force the long-ASCII path: encoded_len >= 128 means len(s) >= 127.
	long := strings.Repeat("B", 200)
	buf, err = EncodeString(long)
	require.NoError(t, err)
	require.Equal(t, byte(0x40), buf[0])
	decoded, n, err := DecodeString(buf)
	require.NoError(t, err)
	require.Equal(t, long, decoded)
	require.Equal(t, len(buf), n)
}

func TestEncodeString_UTF16(t *testing.T) {
	s := "Café ☕"
	buf, err := EncodeString(s)
	require.NoError(t, err)
	require.Equal(t, byte(0x90), buf[0])

	decoded, n, err := DecodeString(buf)
	require.NoError(t, err)
	require.Equal(t, s, decoded)
	require.Equal(t, len(buf), n)
}

func TestEncodeString_UTF16Length(t *testing.T) {
	// "Café ☕" is 6 runes -> 6 UTF-16 code units (no surrogate pairs needed)
	// payload bytes = 2*6 = 12, declared length = payload + 4 = 16.
	s := "Café ☕"
	buf, err := EncodeString(s)
	require.NoError(t, err)
	byteLen := int(buf[1]) | int(buf[2])<<8
	require.Equal(t, 16, byteLen)
}
