// Package filegdb reads mobile/file geodatabases stored as SQLite containers.
// It is the fallback backend: everything is derived from raw SQL over the
// GDB_Items system table, classifying each serialized XML definition by its
// root tag. Feature-dataset membership is not recoverable from this API, so
// spatial layers list flat with an empty dataset name.
package filegdb

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/geodata-tools/registrant/internal/catalog"
	"github.com/geodata-tools/registrant/pkg/registrant"
)

// workspaceFactory is fixed for this backend: SQLite containers are always
// file-variant geodatabases.
const workspaceFactory = "FileGDBWorkspaceFactory"

// Backend implements registrant.Backend over a read-only SQLite handle.
type Backend struct {
	db     *sql.DB
	path   string
	logger registrant.Logger
}

// Open opens the SQLite container at path read-only and verifies it carries a
// geodatabase system catalog. An SQLite file without GDB_Items fails with
// ErrNotAGeodatabase; an unreadable file fails with the driver's native error.
func Open(ctx context.Context, path string, logger registrant.Logger) (*Backend, error) {
	// Escape the path segment-wise so '?' or '#' in a filename cannot be
	// mistaken for the DSN's own query string.
	dsn := fmt.Sprintf("file:%s?mode=ro", (&url.URL{Path: path}).EscapedPath())
	handle, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	var count int
	err = handle.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'GDB_Items'`,
	).Scan(&count)
	if err != nil {
		handle.Close()
		return nil, fmt.Errorf("probe %s: %w", path, err)
	}
	if count == 0 {
		handle.Close()
		return nil, fmt.Errorf("%s has no GDB_Items system table: %w", path, registrant.ErrNotAGeodatabase)
	}

	if logger == nil {
		logger = nullLogger{}
	}
	return &Backend{db: handle, path: path, logger: logger}, nil
}

// Kind implements registrant.Backend.
func (b *Backend) Kind() registrant.BackendKind { return registrant.KindFileGDB }

// WorkspaceFactory implements registrant.Backend.
func (b *Backend) WorkspaceFactory() string { return workspaceFactory }

// Close releases the SQLite handle.
func (b *Backend) Close() error { return b.db.Close() }

// ReleaseVersion scans the catalog for the DEWorkspace definition and returns
// its version triplet.
func (b *Backend) ReleaseVersion(ctx context.Context) (string, error) {
	rows, err := b.definitionRows(ctx)
	if err != nil {
		return "", err
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return "", err
		}
		if catalog.Classify(item.definition) != catalog.KindWorkspace {
			continue
		}
		return catalog.ParseWorkspace(item.definition)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%s has no workspace definition: %w", b.path, registrant.ErrNotAGeodatabase)
}

// ListDomains scans every catalog definition and keeps the rows whose root
// tag classifies as a coded-value or range domain. Other object definitions
// in the same table are ignored.
func (b *Backend) ListDomains(ctx context.Context) ([]registrant.DomainInfo, error) {
	rows, err := b.definitionRows(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var domains []registrant.DomainInfo
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		if !catalog.Classify(item.definition).IsDomain() {
			continue
		}
		info, err := catalog.ParseDomain(item.definition)
		if err != nil {
			return nil, err
		}
		info.ItemID = item.id
		domains = append(domains, *info)
	}
	return domains, rows.Err()
}

// ListTables returns every non-spatial table. A table whose definition or
// row count cannot be read is logged and skipped.
func (b *Backend) ListTables(ctx context.Context) ([]registrant.TableInfo, error) {
	items, err := b.collectItems(ctx, catalog.KindTable)
	if err != nil {
		return nil, err
	}

	var tables []registrant.TableInfo
	for _, item := range items {
		info, err := catalog.ParseTable(item.definition)
		if err != nil {
			b.logger.Error("could not read table %s: %v", item.name, err)
			continue
		}
		count, err := b.rowCount(ctx, info.Name)
		if err != nil {
			b.logger.Error("could not read table %s: %v", info.Name, err)
			continue
		}
		info.ItemID = item.id
		info.RowCount = count
		tables = append(tables, *info)
	}
	return tables, nil
}

// ListFeatureClasses returns every spatial dataset, flat: this API exposes no
// feature-dataset containers, so FeatureDataset is always empty.
func (b *Backend) ListFeatureClasses(ctx context.Context) ([]registrant.FeatureClassInfo, error) {
	items, err := b.collectItems(ctx, catalog.KindFeatureClass)
	if err != nil {
		return nil, err
	}

	var fcs []registrant.FeatureClassInfo
	for _, item := range items {
		info, err := catalog.ParseFeatureClass(item.definition)
		if err != nil {
			b.logger.Error("could not read feature class %s: %v", item.name, err)
			continue
		}
		count, err := b.rowCount(ctx, info.Name)
		if err != nil {
			b.logger.Error("could not read feature class %s: %v", info.Name, err)
			continue
		}
		info.ItemID = item.id
		info.RowCount = count
		fcs = append(fcs, *info)
	}
	return fcs, nil
}

type item struct {
	id         uuid.UUID
	name       string
	definition string
}

func (b *Backend) definitionRows(ctx context.Context) (*sql.Rows, error) {
	return b.db.QueryContext(ctx,
		`SELECT UUID, Name, Definition FROM GDB_Items
		 WHERE Definition IS NOT NULL ORDER BY Name`)
}

func scanItem(rows *sql.Rows) (item, error) {
	var rawID, name, definition sql.NullString
	if err := rows.Scan(&rawID, &name, &definition); err != nil {
		return item{}, err
	}
	// Item UUIDs are stored brace-wrapped ({xxxx-...}); tolerate rows that
	// carry none.
	id, _ := uuid.Parse(strings.Trim(rawID.String, "{}"))
	return item{id: id, name: name.String, definition: definition.String}, nil
}

func (b *Backend) collectItems(ctx context.Context, kind catalog.ItemKind) ([]item, error) {
	rows, err := b.definitionRows(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		if catalog.Classify(it.definition) != kind {
			continue
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// rowCount issues a live count against the data table itself, not the
// catalog, so the number reflects current contents.
func (b *Backend) rowCount(ctx context.Context, table string) (int64, error) {
	var count int64
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, quoteIdent(table))
	if err := b.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// quoteIdent quotes an SQLite identifier; names come from the system catalog
// but are quoted anyway since they are interpolated into SQL.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

type nullLogger struct{}

func (nullLogger) Verbose(format string, args ...interface{}) {}
func (nullLogger) Info(format string, args ...interface{})    {}
func (nullLogger) Error(format string, args ...interface{})   {}
