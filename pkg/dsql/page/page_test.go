package page

import (
	"encoding/binary"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinalize_SizeAndHeader(t *testing.T) {
	p := New(1, 6, FlagsData)
	off, ok, err := p.TryAppendRow([]byte{1, 2, 3, 4})
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint16(0), off)

	out := p.Finalize(2)
	require.Len(t, out, Size)
	require.Equal(t, uint32(1), binary.LittleEndian.Uint32(out[0x04:]))
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(out[0x08:]))

	used := binary.LittleEndian.Uint32(out[0x10:])
	free := binary.LittleEndian.Uint32(out[0x14:])
	require.EqualValues(t, 4, used)
	require.EqualValues(t, Size-HeapStart-used, free)
	require.EqualValues(t, used+free+HeapStart, Size)
}

func TestFinalize_RowGroupReverseOrder(t *testing.T) {
	p := New(0, 6, FlagsData)
	var offsets []uint16
	for i := 0; i < 3; i++ {
		off, ok, err := p.TryAppendRow([]byte{byte(i)})
		require.NoError(t, err)
		require.True(t, ok)
		offsets = append(offsets, off)
	}

	out := p.Finalize(0)
	groupStart := Size - rowGroupSize
	for i, want := range offsets {
		slot := groupStart + (rowsPerGroup-1-i)*2
		got := binary.LittleEndian.Uint16(out[slot:])
		require.Equal(t, want, got, "row_offset[%d]", rowsPerGroup-1-i)
	}
	present := binary.LittleEndian.Uint16(out[groupStart+32:])
	require.Equal(t, uint16(0b111), present)
}

func TestNumRowsMatchesPresencePopcount(t *testing.T) {
	p := New(0, 6, FlagsData)
	for i := 0; i < 20; i++ {
		_, ok, err := p.TryAppendRow([]byte{byte(i), byte(i >> 8)})
		require.NoError(t, err)
		require.True(t, ok)
	}
	out := p.Finalize(0)

	total := 0
	numGroups := totalRowGroupBytes(p.NumRows()) / rowGroupSize
	for g := 0; g < numGroups; g++ {
		groupStart := Size - (g+1)*rowGroupSize
		present := binary.LittleEndian.Uint16(out[groupStart+32:])
		total += bits.OnesCount16(present)
	}
	require.Equal(t, p.NumRows(), total)
}

func TestTryAppendRow_FullPageReturnsFalse(t *testing.T) {
	p := New(0, 6, FlagsData)
	big := make([]byte, 400)
	count := 0
	for {
		_, ok, err := p.TryAppendRow(big)
		require.NoError(t, err)
		if !ok {
			break
		}
		count++
		if count > 100 {
			t.Fatal("page never reported full")
		}
	}
	require.Greater(t, count, 0)
}

func TestTryAppendRow_RowTooLarge(t *testing.T) {
	p := New(0, 6, FlagsData)
	huge := make([]byte, Size)
	_, _, err := p.TryAppendRow(huge)
	require.Error(t, err)
}

func TestFinalize_EmptyPageAllZero(t *testing.T) {
	p := New(3, 9, FlagsEmpty)
	out := p.Finalize(7)
	for i, b := range out {
		if b != 0 {
			t.Fatalf("expected zero byte at offset 0x%X, got 0x%02X", i, b)
		}
	}
}
