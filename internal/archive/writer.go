package archive

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"fmt"
	"sync"

	"github.com/MeKo-Tech/swatchkit/internal/colormath"
	_ "modernc.org/sqlite" // SQLite driver
)

// DefaultBatchSize is the number of swatches buffered before a flush.
const DefaultBatchSize = 100

type pending struct {
	Data  []byte // PNG data, gzip-compressed on flush
	Entry Entry
}

// Writer writes swatches to an archive database.
type Writer struct {
	db        *sql.DB
	path      string
	batch     []pending
	batchSize int
	mu        sync.Mutex
}

// New creates or opens the archive at path and replaces its metadata.
func New(path string, metadata Metadata) (*Writer, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	if err := insertMetadata(db, metadata); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to insert metadata: %w", err)
	}

	return &Writer{
		db:        db,
		path:      path,
		batch:     make([]pending, 0, DefaultBatchSize),
		batchSize: DefaultBatchSize,
	}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS metadata (
			name TEXT NOT NULL,
			value TEXT
		);

		CREATE TABLE IF NOT EXISTS swatches (
			palette TEXT NOT NULL,
			position INTEGER NOT NULL,
			hex TEXT NOT NULL,
			image BLOB NOT NULL
		);

		CREATE UNIQUE INDEX IF NOT EXISTS swatch_index ON swatches (palette, position);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

func insertMetadata(db *sql.DB, meta Metadata) error {
	if _, err := db.Exec("DELETE FROM metadata"); err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}

	stmt, err := db.Prepare("INSERT INTO metadata (name, value) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare metadata insert: %w", err)
	}
	defer stmt.Close()

	for key, value := range meta.ToMap() {
		if _, err := stmt.Exec(key, value); err != nil {
			return fmt.Errorf("failed to insert metadata %q: %w", key, err)
		}
	}
	return nil
}

// WriteSwatch buffers one swatch and flushes once the batch is full.
// Writing the same palette and position twice keeps the last image.
func (w *Writer) WriteSwatch(palette string, position int, c colormath.RGB, pngData []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.batch = append(w.batch, pending{
		Entry: Entry{Palette: palette, Position: position, Hex: c.Hex()},
		Data:  pngData,
	})
	if len(w.batch) >= w.batchSize {
		return w.flushLocked()
	}
	return nil
}

// Flush writes any buffered swatches to the database.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.flushLocked()
}

// flushLocked must be called with w.mu held.
func (w *Writer) flushLocked() error {
	if len(w.batch) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO swatches (palette, position, hex, image) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range w.batch {
		compressed, err := gzipCompress(p.Data)
		if err != nil {
			return fmt.Errorf("failed to compress swatch %s/%d: %w", p.Entry.Palette, p.Entry.Position, err)
		}
		if _, err := stmt.Exec(p.Entry.Palette, p.Entry.Position, p.Entry.Hex, compressed); err != nil {
			return fmt.Errorf("failed to insert swatch %s/%d: %w", p.Entry.Palette, p.Entry.Position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	w.batch = w.batch[:0]
	return nil
}

// Path returns the database file path.
func (w *Writer) Path() string {
	return w.path
}

// Close flushes remaining swatches and closes the database.
func (w *Writer) Close() error {
	if err := w.Flush(); err != nil {
		w.db.Close()
		return err
	}
	if err := w.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func gzipCompress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		gw.Close()
		return nil, err
	}
	if err := gw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
