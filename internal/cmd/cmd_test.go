package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MeKo-Tech/swatchkit/internal/archive"
	"github.com/MeKo-Tech/swatchkit/internal/colormath"
	"github.com/MeKo-Tech/swatchkit/internal/swatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		rgb     string
		want    colormath.RGB
		wantErr bool
	}{
		{name: "hex", hex: "FFA500", want: colormath.RGB{R: 255, G: 165}},
		{name: "hex with hash", hex: "#4B0082", want: colormath.RGB{R: 75, B: 130}},
		{name: "rgb", rgb: "0, 0, 255", want: colormath.RGB{B: 255}},
		{name: "both", hex: "FFFFFF", rgb: "1,2,3", wantErr: true},
		{name: "neither", wantErr: true},
		{name: "bad hex", hex: "FFA50", wantErr: true},
		{name: "bad rgb", rgb: "300,0,0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveColor(tt.hex, tt.rgb)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteInspection(t *testing.T) {
	var buf bytes.Buffer
	writeInspection(&buf, colormath.RGB{R: 255, G: 192, B: 203})
	out := buf.String()

	for _, want := range []string{
		"hex:           FFC0CB",
		"rgb:           255,192,203",
		"temperature:   warm",
		"complementary: 003F34",
	} {
		assert.True(t, strings.Contains(out, want), "missing %q in:\n%s", want, out)
	}
}

func TestWriteRainbow(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "rainbow")
	paths, err := writeRainbow(context.Background(), dir, 8, swatch.CompressionDefault)
	require.NoError(t, err)
	require.Len(t, paths, 7)
	for i, n := range colormath.Rainbow() {
		assert.Equal(t, filepath.Join(dir, n.Name+"_image.png"), paths[i])
	}
	for _, p := range paths {
		_, err := os.Stat(p)
		require.NoError(t, err)
	}
}

func TestWriteRainbow_Compression(t *testing.T) {
	tmp := t.TempDir()
	none, err := writeRainbow(context.Background(), filepath.Join(tmp, "none"), 64, swatch.CompressionNone)
	require.NoError(t, err)
	best, err := writeRainbow(context.Background(), filepath.Join(tmp, "best"), 64, swatch.CompressionBest)
	require.NoError(t, err)

	for i := range none {
		a, err := os.Stat(none[i])
		require.NoError(t, err)
		b, err := os.Stat(best[i])
		require.NoError(t, err)
		assert.Greater(t, a.Size(), b.Size(), "%s vs %s", none[i], best[i])
	}
}

func TestExtractArchive(t *testing.T) {
	initLogging()

	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "p.swatches")
	w, err := archive.New(dbPath, archive.Metadata{Name: "p"})
	require.NoError(t, err)
	require.NoError(t, w.WriteSwatch("mono", 1, colormath.RGB{R: 1}, []byte("one")))
	require.NoError(t, w.WriteSwatch("mono", 2, colormath.RGB{R: 2}, []byte("two")))
	require.NoError(t, w.WriteSwatch("tri", 1, colormath.RGB{R: 3}, []byte("three")))
	require.NoError(t, w.Close())

	out := filepath.Join(tmp, "out")
	paths, err := extractArchive(dbPath, out, "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(out, "mono", "1.png"),
		filepath.Join(out, "mono", "2.png"),
		filepath.Join(out, "tri", "1.png"),
	}, paths)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	paths, err = extractArchive(dbPath, filepath.Join(tmp, "only"), "tri")
	require.NoError(t, err)
	assert.Len(t, paths, 1)

	_, err = extractArchive(dbPath, out, "missing")
	require.Error(t, err)
}
