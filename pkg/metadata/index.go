// Package metadata maintains the embed index: a per-vault cache of every
// embedded link in every document, backing the rename synchronizer's
// metadata lookups.
package metadata

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/phatli/obsidian-custom-attachment-location/pkg/vault"
)

// Index is a sqlite-backed embed cache.
type Index struct {
	db *sql.DB
}

// NewIndex opens (creating if necessary) the index at dbPath.
func NewIndex(dbPath string) (*Index, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	idx := &Index{db: db}
	if err := idx.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize index: %w", err)
	}
	return idx, nil
}

// init creates the database schema
func (idx *Index) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		path TEXT PRIMARY KEY,
		mtime INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS embeds (
		doc_path TEXT NOT NULL,
		position INTEGER NOT NULL,
		link TEXT NOT NULL,
		PRIMARY KEY (doc_path, position)
	);

	CREATE INDEX IF NOT EXISTS idx_embeds_doc ON embeds(doc_path);
	`
	_, err := idx.db.Exec(schema)
	return err
}

// IndexDocument replaces the recorded embeds for a document.
func (idx *Index) IndexDocument(docPath string, mtime int64, embeds []vault.Embed) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("INSERT OR REPLACE INTO documents (path, mtime) VALUES (?, ?)", docPath, mtime); err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM embeds WHERE doc_path = ?", docPath); err != nil {
		return fmt.Errorf("clear embeds: %w", err)
	}
	for i, e := range embeds {
		if _, err := tx.Exec("INSERT INTO embeds (doc_path, position, link) VALUES (?, ?, ?)", docPath, i, e.Link); err != nil {
			return fmt.Errorf("insert embed: %w", err)
		}
	}
	return tx.Commit()
}

// GetEmbeds returns the recorded embeds for a document in document order,
// or (nil, nil) when the document is not indexed.
func (idx *Index) GetEmbeds(ctx context.Context, documentPath string) ([]vault.Embed, error) {
	var mtime int64
	err := idx.db.QueryRowContext(ctx, "SELECT mtime FROM documents WHERE path = ?", documentPath).Scan(&mtime)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query document: %w", err)
	}

	rows, err := idx.db.QueryContext(ctx, "SELECT link FROM embeds WHERE doc_path = ? ORDER BY position", documentPath)
	if err != nil {
		return nil, fmt.Errorf("query embeds: %w", err)
	}
	defer rows.Close()

	embeds := []vault.Embed{}
	for rows.Next() {
		var link string
		if err := rows.Scan(&link); err != nil {
			return nil, fmt.Errorf("scan embed: %w", err)
		}
		embeds = append(embeds, vault.Embed{Link: link})
	}
	return embeds, rows.Err()
}

// ModTime returns the recorded mtime for a document, with ok=false when
// the document is not indexed.
func (idx *Index) ModTime(docPath string) (int64, bool, error) {
	var mtime int64
	err := idx.db.QueryRow("SELECT mtime FROM documents WHERE path = ?", docPath).Scan(&mtime)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return mtime, true, nil
}

// RenameDocument re-keys a document's entries after the file moved.
func (idx *Index) RenameDocument(oldPath, newPath string) error {
	tx, err := idx.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE documents SET path = ? WHERE path = ?", newPath, oldPath); err != nil {
		return fmt.Errorf("rename document: %w", err)
	}
	if _, err := tx.Exec("UPDATE embeds SET doc_path = ? WHERE doc_path = ?", newPath, oldPath); err != nil {
		return fmt.Errorf("rename embeds: %w", err)
	}
	return tx.Commit()
}

// Forget drops a document and its embeds from the index.
func (idx *Index) Forget(docPath string) error {
	if _, err := idx.db.Exec("DELETE FROM documents WHERE path = ?", docPath); err != nil {
		return err
	}
	_, err := idx.db.Exec("DELETE FROM embeds WHERE doc_path = ?", docPath)
	return err
}

// Documents lists every indexed document path.
func (idx *Index) Documents() ([]string, error) {
	rows, err := idx.db.Query("SELECT path FROM documents ORDER BY path")
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// Close closes the index
func (idx *Index) Close() error {
	return idx.db.Close()
}
