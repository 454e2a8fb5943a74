package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MeKo-Tech/swatchkit/internal/colormath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_New(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.swatches")

	w, err := New(dbPath, Metadata{Name: "Test", Kind: "monochrome", Seed: "6496C8", Version: "1.0"})
	require.NoError(t, err)
	defer w.Close()

	_, err = os.Stat(dbPath)
	require.NoError(t, err, "database file was not created")

	var count int
	require.NoError(t, w.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='swatches'").Scan(&count))
	assert.Equal(t, 1, count)

	require.NoError(t, w.db.QueryRow("SELECT COUNT(*) FROM metadata").Scan(&count))
	assert.Equal(t, 4, count)
	assert.Equal(t, dbPath, w.Path())
}

func TestWriter_BatchFlush(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.swatches")

	w, err := New(dbPath, Metadata{Name: "Test"})
	require.NoError(t, err)

	data := []byte("fake png data")
	for i := 0; i < DefaultBatchSize+50; i++ {
		require.NoError(t, w.WriteSwatch("big", i, colormath.RGB{R: uint8(i)}, data))
	}

	// The first full batch is already on disk.
	var count int
	require.NoError(t, w.db.QueryRow("SELECT COUNT(*) FROM swatches").Scan(&count))
	assert.Equal(t, DefaultBatchSize, count)

	require.NoError(t, w.Close())

	r, err := OpenReader(dbPath)
	require.NoError(t, err)
	defer r.Close()

	entries, err := r.List("big")
	require.NoError(t, err)
	assert.Len(t, entries, DefaultBatchSize+50)
}

func TestRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "rt.swatches")

	meta := Metadata{Name: "Round trip", Description: "test", Kind: "triadic", Seed: "6496C8", Version: "1"}
	w, err := New(dbPath, meta)
	require.NoError(t, err)

	palette := []colormath.RGB{{R: 100, G: 150, B: 200}, {R: 200, G: 100, B: 150}, {R: 150, G: 200, B: 100}}
	for i, c := range palette {
		require.NoError(t, w.WriteSwatch("triadic", i+1, c, []byte(fmt.Sprintf("png-%d", i+1))))
	}
	require.NoError(t, w.WriteSwatch("other", 1, colormath.RGB{}, []byte("x")))
	// Replacing a position keeps the newest image.
	require.NoError(t, w.WriteSwatch("triadic", 3, palette[2], []byte("png-3b")))
	require.NoError(t, w.Close())

	r, err := OpenReader(dbPath)
	require.NoError(t, err)
	defer r.Close()

	got, err := r.Metadata()
	require.NoError(t, err)
	assert.Equal(t, meta, got)

	names, err := r.Palettes()
	require.NoError(t, err)
	assert.Equal(t, []string{"other", "triadic"}, names)

	entries, err := r.List("triadic")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Position)
		assert.Equal(t, palette[i].Hex(), e.Hex)
	}

	data, err := r.ReadSwatch("triadic", 1)
	require.NoError(t, err)
	assert.Equal(t, "png-1", string(data))

	data, err = r.ReadSwatch("triadic", 3)
	require.NoError(t, err)
	assert.Equal(t, "png-3b", string(data))

	_, err = r.ReadSwatch("triadic", 9)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestOpenReader_Missing(t *testing.T) {
	_, err := OpenReader(filepath.Join(t.TempDir(), "missing.swatches"))
	require.Error(t, err)
}

func TestOpenReader_NotAnArchive(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "empty.db")
	w, err := New(dbPath, Metadata{})
	require.NoError(t, err)
	_, err = w.db.Exec("DROP TABLE swatches")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = OpenReader(dbPath)
	require.Error(t, err)
}

func TestMetadata_ToMap(t *testing.T) {
	m := Metadata{Name: "n", Seed: "FF0000"}.ToMap()
	assert.Equal(t, map[string]string{"name": "n", "seed": "FF0000"}, m)
}
