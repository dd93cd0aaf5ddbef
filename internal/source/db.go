package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/declscan/internal/model"
)

// ErrNotFound is returned when an input file does not exist.
var ErrNotFound = errors.New("input not found")

// DeclDB reads analyzed entities from a SQLite database.
// The database is never written.
type DeclDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// path is the path to the SQLite database file.
	path string
}

// OpenDeclDB opens the database at path in read-only mode.
func OpenDeclDB(path string) (*DeclDB, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to check database path: %w", err)
	}

	// mode=ro keeps the driver from creating or modifying the file.
	dsn := "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &DeclDB{db: db, path: path}, nil
}

// Close closes the database connection.
func (d *DeclDB) Close() error {
	return d.db.Close()
}

// Entities returns every row of the decls table in rowid order.
func (d *DeclDB) Entities(ctx context.Context) ([]*model.Entity, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT filename, funcname, name, kind, data, known, unsupported
		FROM decls
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query decls in %s: %w", d.path, err)
	}
	defer rows.Close()

	var entities []*model.Entity
	for rows.Next() {
		var (
			filename, funcname, name, kind sql.NullString
			data, unsupported              sql.NullString
			known                          sql.NullBool
		)
		if err := rows.Scan(&filename, &funcname, &name, &kind, &data, &known, &unsupported); err != nil {
			return nil, fmt.Errorf("failed to scan decl: %w", err)
		}
		k, err := model.ParseKind(kind.String)
		if err != nil {
			return nil, fmt.Errorf("decl %q in %s: %w", name.String, d.path, err)
		}
		e := &model.Entity{
			Kind:        k,
			Name:        name.String,
			Filename:    filename.String,
			IsKnown:     known.Bool,
			Data:        data.String,
			Unsupported: unsupported.String,
		}
		if funcname.String != "" {
			e.Parent = model.ParentLabel(funcname.String)
		}
		entities = append(entities, e)
	}
	return entities, rows.Err()
}
