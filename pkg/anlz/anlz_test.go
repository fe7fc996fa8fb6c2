package anlz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdjkit/rbxdb/pkg/model"
)

func validAnalysis() model.Analysis {
	return model.Analysis{ThreeBand: make([]model.ThreeBandSample, 400)}
}

func TestBuild_DATStartsWithPMAI(t *testing.T) {
	files, err := Build("/Contents/test.mp3", validAnalysis())
	require.NoError(t, err)
	assert.Equal(t, "PMAI", string(files.DAT[0:4]))
	assert.Equal(t, "PMAI", string(files.EXT[0:4]))
	assert.Equal(t, files.EXT, files.TwoEX)
}

func TestBuild_EXTLongerThanDAT(t *testing.T) {
	files, err := Build("/a.mp3", validAnalysis())
	require.NoError(t, err)
	assert.Greater(t, len(files.EXT), len(files.DAT))
}

func TestBuild_PaletteOutOfRangePropagates(t *testing.T) {
	a := validAnalysis()
	a.Cues = []model.CuePoint{{ColorSlot: 255}}
	_, err := Build("/a.mp3", a)
	assert.Error(t, err)
}

func TestShardDir(t *testing.T) {
	assert.Equal(t, "P000/00000001", ShardDir(1))
	assert.Equal(t, "P001/000003e8", ShardDir(1000))
}
