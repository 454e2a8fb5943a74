package archive

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotFound is returned when a requested swatch is not in the archive.
var ErrNotFound = errors.New("swatch not found")

// Reader reads swatches from an archive database.
type Reader struct {
	db   *sql.DB
	path string
}

// OpenReader opens an existing archive for reading.
func OpenReader(path string) (*Reader, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='swatches'").Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to verify schema: %w", err)
	}
	if count == 0 {
		db.Close()
		return nil, fmt.Errorf("database does not contain swatches table")
	}

	return &Reader{db: db, path: path}, nil
}

// ReadSwatch returns the decompressed PNG stored at palette/position.
func (r *Reader) ReadSwatch(palette string, position int) ([]byte, error) {
	var compressed []byte
	err := r.db.QueryRow(
		"SELECT image FROM swatches WHERE palette=? AND position=?",
		palette, position,
	).Scan(&compressed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s/%d: %w", palette, position, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query swatch: %w", err)
	}

	data, err := gzipDecompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress swatch: %w", err)
	}
	return data, nil
}

// List returns the entries of palette in position order.
func (r *Reader) List(palette string) ([]Entry, error) {
	rows, err := r.db.Query("SELECT palette, position, hex FROM swatches WHERE palette=? ORDER BY position", palette)
	if err != nil {
		return nil, fmt.Errorf("failed to list swatches: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Palette, &e.Position, &e.Hex); err != nil {
			return nil, fmt.Errorf("failed to scan swatch row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating swatches: %w", err)
	}
	return entries, nil
}

// Palettes returns the distinct palette names in the archive, sorted.
func (r *Reader) Palettes() ([]string, error) {
	rows, err := r.db.Query("SELECT DISTINCT palette FROM swatches ORDER BY palette")
	if err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan palette row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating palettes: %w", err)
	}
	return names, nil
}

// Metadata reads the archive metadata.
func (r *Reader) Metadata() (Metadata, error) {
	rows, err := r.db.Query("SELECT name, value FROM metadata")
	if err != nil {
		return Metadata{}, fmt.Errorf("failed to query metadata: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			return Metadata{}, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		values[name] = value
	}
	if err := rows.Err(); err != nil {
		return Metadata{}, fmt.Errorf("error iterating metadata: %w", err)
	}
	return metadataFromMap(values), nil
}

// Close closes the database connection.
func (r *Reader) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func gzipDecompress(data []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer gr.Close()
	return io.ReadAll(gr)
}
