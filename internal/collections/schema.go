package collections

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"collex/internal/logger"
)

// Tables returns the names of all tables in the database.
func Tables(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='table' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}

		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tables: %w", err)
	}

	return tables, nil
}

// Columns returns the column names of a table, in declaration order.
func Columns(db *sql.DB, table string) ([]string, error) {
	rows, err := db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, fmt.Errorf("failed to inspect table %s: %w", table, err)
	}
	defer rows.Close()

	var columns []string

	for rows.Next() {
		var (
			cid       int
			name      string
			ctype     string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)

		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("failed to scan column info for %s: %w", table, err)
		}

		columns = append(columns, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate columns for %s: %w", table, err)
	}

	return columns, nil
}

// DumpSchema logs every table with its columns and up to three sample rows.
// Per-table failures are logged and skipped so one unreadable table does not
// hide the rest.
func DumpSchema(db *sql.DB, log *logger.Logger) {
	tables, err := Tables(db)
	if err != nil {
		log.Error("failed to list tables", "error", err.Error())

		return
	}

	for _, table := range tables {
		columns, err := Columns(db, table)
		if err != nil {
			log.Warn("failed to inspect table", "table", table, "error", err.Error())

			continue
		}

		log.Info("discovered table", "table", table, "columns", strings.Join(columns, ", "))

		samples, err := sampleRows(db, table, 3)
		if err != nil {
			log.Warn("failed to sample table", "table", table, "error", err.Error())

			continue
		}

		for i, sample := range samples {
			log.Info("sample row", "table", table, "row", i, "data", sample)
		}
	}
}

// sampleRows reads up to limit rows from a table and renders each as a
// column=value string.
func sampleRows(db *sql.DB, table string, limit int) ([]string, error) {
	rows, err := db.Query(fmt.Sprintf("SELECT * FROM %q LIMIT %d", table, limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var samples []string

	for rows.Next() {
		row, err := scanRowMap(rows, cols)
		if err != nil {
			return nil, err
		}

		parts := make([]string, 0, len(cols))
		for _, col := range cols {
			parts = append(parts, col+"="+row[col])
		}

		samples = append(samples, strings.Join(parts, " "))
	}

	return samples, rows.Err()
}

// scanRowMap scans the current row into a map keyed by column name, with
// every value normalized to a string. NULL becomes the empty string, which
// resolveField treats the same as an absent column.
func scanRowMap(rows *sql.Rows, cols []string) (map[string]string, error) {
	raw := make([]any, len(cols))
	ptrs := make([]any, len(cols))

	for i := range raw {
		ptrs[i] = &raw[i]
	}

	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}

	row := make(map[string]string, len(cols))
	for i, col := range cols {
		row[col] = stringifyValue(raw[i])
	}

	return row, nil
}

func stringifyValue(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case []byte:
		return string(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	case time.Time:
		return value.Format(time.RFC3339)
	default:
		return fmt.Sprint(value)
	}
}
