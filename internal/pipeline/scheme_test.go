package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/swatchkit/internal/colormath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(" " + string(k) + " ")
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind("Triadic")
	require.NoError(t, err)
	assert.Equal(t, KindTriadic, got)

	_, err = ParseKind("tetradic")
	require.Error(t, err)
}

func TestBuild(t *testing.T) {
	seed := colormath.RGB{R: 100, G: 150, B: 200}

	tests := []struct {
		kind Kind
		size int
	}{
		{kind: KindMonochrome, size: 41},
		{kind: KindComplementary, size: 2},
		{kind: KindAnalogous, size: 3},
		{kind: KindTriadic, size: 3},
		{kind: KindRainbow, size: 7},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			p, err := Build(DefaultRequest(tt.kind, seed))
			require.NoError(t, err)
			assert.Len(t, p.Colors, tt.size)
			assert.Equal(t, string(tt.kind), p.Name)
			if tt.kind != KindRainbow && tt.kind != KindAnalogous {
				assert.Equal(t, seed, p.Colors[0])
			}
		})
	}
}

func TestBuild_Complementary(t *testing.T) {
	p, err := Build(DefaultRequest(KindComplementary, colormath.RGB{R: 255, G: 192, B: 203}))
	require.NoError(t, err)
	assert.Equal(t, colormath.RGB{G: 63, B: 52}, p.Colors[1])
}

func TestBuild_Errors(t *testing.T) {
	req := DefaultRequest(KindMonochrome, colormath.RGB{})
	req.Tints = -1
	_, err := Build(req)
	require.ErrorIs(t, err, colormath.ErrInvalidCount)

	req = DefaultRequest(KindAnalogous, colormath.RGB{})
	req.Count = -3
	_, err = Build(req)
	require.ErrorIs(t, err, colormath.ErrInvalidCount)

	_, err = Build(Request{Kind: "square"})
	require.Error(t, err)
}

func TestPalette_Tasks(t *testing.T) {
	p, err := Build(DefaultRequest(KindRainbow, colormath.RGB{}))
	require.NoError(t, err)

	tasks := p.Tasks("out")
	require.Len(t, tasks, 7)
	assert.Equal(t, filepath.Join("out", "rainbow", "red_image.png"), tasks[0].Path)
	assert.Equal(t, filepath.Join("out", "rainbow", "violet_image.png"), tasks[6].Path)
	assert.Equal(t, 7, tasks[6].Position)

	req := DefaultRequest(KindMonochrome, colormath.RGB{R: 255})
	req.Name = "reds"
	p, err = Build(req)
	require.NoError(t, err)
	tasks = p.Tasks("out")
	assert.Equal(t, filepath.Join("out", "reds", "1.png"), tasks[0].Path)
	assert.Equal(t, filepath.Join("out", "reds", "41.png"), tasks[40].Path)
	assert.Equal(t, "reds", tasks[40].Palette)
	assert.Equal(t, p.Colors[40], tasks[40].Color)
}
