package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	appErrors "ariacombo/internal/errors"
)

// SQLite reads options from a table with the columns
// id, label, value and description (all TEXT, nullable except label).
// Rows come back in rowid order.
type SQLite struct {
	Path  string
	Table string
}

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// buildReadOnlyDSN creates a read-only DSN for the given path.
func buildReadOnlyDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}

// Load implements Source.
func (s SQLite) Load(ctx context.Context) ([]Item, error) {
	table := strings.TrimSpace(s.Table)
	if table == "" {
		table = "options"
	}
	if !tableName.MatchString(table) {
		return nil, appErrors.New(appErrors.CodeConfigurationError, fmt.Sprintf("invalid table name %q", table), nil)
	}
	if _, err := os.Stat(s.Path); errors.Is(err, fs.ErrNotExist) {
		return nil, appErrors.New(appErrors.CodeSourceNotFound, fmt.Sprintf("option database %s not found", s.Path), err)
	}

	db, err := sql.Open("sqlite", buildReadOnlyDSN(s.Path))
	if err != nil {
		return nil, fmt.Errorf("open option db: %w", err)
	}
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)

	//nolint:gosec // G201: table name is validated against tableName above
	query := fmt.Sprintf(`SELECT id, label, value, description FROM %s ORDER BY rowid`, table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeQueryFailed, fmt.Sprintf("query %s: %v", table, err), err)
	}
	defer func() { _ = rows.Close() }()

	var items []Item
	for rows.Next() {
		var (
			id, value, description sql.NullString
			label                  string
		)
		if err := rows.Scan(&id, &label, &value, &description); err != nil {
			return nil, appErrors.New(appErrors.CodeQueryFailed, fmt.Sprintf("scan %s: %v", table, err), err)
		}
		it := Item{ID: id.String, Label: label, Description: description.String}
		if value.Valid {
			it.Value = value.String
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeQueryFailed, fmt.Sprintf("read %s: %v", table, err), err)
	}
	return items, validate(items)
}
