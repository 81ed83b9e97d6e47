// Package collections reads collection and item records out of a snapshot
// of the Edge Collections SQLite database.
//
// The schema is undocumented and varies between browser versions, so
// extraction is best-effort: expected tables and columns are tried first,
// and a mismatch degrades to a diagnostic dump of whatever schema the file
// actually carries instead of aborting.
package collections

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	// sqlite3 driver, used through sql.Open.
	_ "github.com/mattn/go-sqlite3"

	"collex/internal/config"
	"collex/internal/logger"
	"collex/internal/models"
)

// ErrDatabaseNotFound indicates the source database path does not exist.
var ErrDatabaseNotFound = errors.New("collections database not found")

// Candidate columns per logical attribute, tried in order. Older builds use
// collection_id/title, newer ones id/name.
var (
	idCandidates   = []string{"collection_id", "id"}
	nameCandidates = []string{"title", "name"}
)

const itemsQuery = `
	SELECT items.title, items.source, items.date_created
	FROM collections_items_relationship
	JOIN items ON (collections_items_relationship.item_id = items.id)
	WHERE collections_items_relationship.parent_id = ?
	AND items.type = 'website'`

// SchemaError reports that the expected tables or columns were absent from
// the database.
type SchemaError struct {
	Cause error
}

func (e *SchemaError) Error() string {
	return "unexpected database schema: " + e.Cause.Error()
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Reader extracts collections from a snapshot of the source database.
type Reader struct {
	labels config.LabelsConfig
	log    *logger.Logger
}

// NewReader creates a reader using the given placeholder labels.
func NewReader(labels config.LabelsConfig, log *logger.Logger) *Reader {
	return &Reader{
		labels: labels,
		log:    log,
	}
}

// OpenSnapshot opens a read-only handle on a database snapshot. The caller
// is responsible for closing the handle.
func OpenSnapshot(path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, path)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open collections database: %w", err)
	}

	return db, nil
}

// Read opens the database snapshot at path and extracts every collection
// together with its website items. A schema mismatch is not an error: the
// discovered schema is dumped for diagnostics and whatever was extracted
// before the mismatch is returned.
func (r *Reader) Read(path string) (*models.Library, error) {
	db, err := OpenSnapshot(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	tables, err := Tables(db)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate tables: %w", err)
	}

	r.log.Debug("available tables", "tables", strings.Join(tables, ", "))

	lib, err := r.extract(db)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			r.log.Warn("expected schema not found, dumping discovered schema",
				"error", schemaErr.Cause.Error())
			DumpSchema(db, r.log)

			return lib, nil
		}

		return nil, err
	}

	return lib, nil
}

// extract runs the expected-schema extraction. On a schema mismatch it
// returns the partially built library alongside a *SchemaError so the
// caller can degrade instead of discarding everything read so far.
func (r *Reader) extract(db *sql.DB) (*models.Library, error) {
	lib := &models.Library{}

	collections, err := r.loadCollections(db)
	if err != nil {
		return lib, &SchemaError{Cause: err}
	}

	for i, c := range collections {
		items, err := r.itemsFor(db, c.ID)
		if err != nil {
			// Keep the remaining collections as empty folders.
			lib.Collections = append(lib.Collections, collections[i:]...)

			return lib, &SchemaError{Cause: err}
		}

		c.Items = items
		lib.Collections = append(lib.Collections, c)
	}

	return lib, nil
}

// loadCollections reads every row of the collections table, resolving the
// identifier and display name from their candidate columns.
func (r *Reader) loadCollections(db *sql.DB) ([]models.Collection, error) {
	rows, err := db.Query("SELECT * FROM collections")
	if err != nil {
		return nil, fmt.Errorf("failed to query collections table: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read collections columns: %w", err)
	}

	r.log.Debug("collections columns", "columns", strings.Join(cols, ", "))

	var collections []models.Collection

	for rows.Next() {
		row, err := scanRowMap(rows, cols)
		if err != nil {
			return nil, fmt.Errorf("failed to scan collection row: %w", err)
		}

		id := resolveField(row, idCandidates, "")
		if id == "" {
			r.log.Warn("skipping collection row without a recognizable identifier")

			continue
		}

		name := resolveField(row, nameCandidates, r.labels.UnnamedCollection)

		collections = append(collections, models.Collection{ID: id, Name: name})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate collections: %w", err)
	}

	return collections, nil
}

// itemsFor resolves a collection's website items through the relationship
// table. Items whose source payload cannot be decoded, or that carry no
// URL, are skipped; one bad record never aborts the export.
func (r *Reader) itemsFor(db *sql.DB, collectionID string) ([]models.Item, error) {
	rows, err := db.Query(itemsQuery, collectionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for collection %s: %w", collectionID, err)
	}
	defer rows.Close()

	var items []models.Item

	for rows.Next() {
		var (
			title       sql.NullString
			source      []byte
			dateCreated sql.NullString
		)

		if err := rows.Scan(&title, &source, &dateCreated); err != nil {
			return nil, fmt.Errorf("failed to scan item row: %w", err)
		}

		url, err := extractURL(source)
		if err != nil {
			r.log.Warn("skipping item with undecodable source payload",
				"collection", collectionID, "title", title.String, "error", err.Error())

			continue
		}

		if url == "" {
			r.log.Debug("skipping item without a URL",
				"collection", collectionID, "title", title.String)

			continue
		}

		itemTitle := title.String
		if itemTitle == "" {
			itemTitle = r.labels.UntitledItem
		}

		items = append(items, models.Item{
			Title:     itemTitle,
			URL:       url,
			DateAdded: dateCreated.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items for collection %s: %w", collectionID, err)
	}

	return items, nil
}

// resolveField returns the first non-empty value among the candidate
// columns, or fallback when every candidate is absent or empty.
func resolveField(row map[string]string, candidates []string, fallback string) string {
	for _, candidate := range candidates {
		if v := row[candidate]; v != "" {
			return v
		}
	}

	return fallback
}
