// Package enterprise reads enterprise geodatabases hosted on PostgreSQL.
// It is the primary backend: item kinds come typed from the structured system
// catalog (gdb_items joined with gdb_itemtypes) instead of root-tag
// classification, and feature-dataset membership is resolved from catalog
// item paths.
package enterprise

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/geodata-tools/registrant/internal/catalog"
	"github.com/geodata-tools/registrant/internal/db"
	"github.com/geodata-tools/registrant/pkg/registrant"
)

const workspaceFactory = "SdeWorkspaceFactory"

// Item type names registered in gdb_itemtypes.
const (
	itemTypeWorkspace    = "Workspace"
	itemTypeTable        = "Table"
	itemTypeFeatureClass = "Feature Class"
)

// Backend implements registrant.Backend over a pgx connection pool.
type Backend struct {
	pool   *pgxpool.Pool
	closer func()
	logger registrant.Logger
}

// Open connects with the configured auth method and verifies the database
// carries a geodatabase system catalog. A reachable PostgreSQL database
// without gdb_items fails with ErrNotAGeodatabase; connection failures
// propagate from the connector.
func Open(ctx context.Context, config *db.ConnectionConfig, logger registrant.Logger) (*Backend, error) {
	connector, err := db.NewConnector(config)
	if err != nil {
		return nil, err
	}

	pool, err := connector.Connect(ctx)
	if err != nil {
		return nil, err
	}

	var hasCatalog bool
	err = pool.QueryRow(ctx, `SELECT to_regclass('gdb_items') IS NOT NULL`).Scan(&hasCatalog)
	if err != nil {
		pool.Close()
		connector.Release()
		return nil, fmt.Errorf("probe system catalog: %w", err)
	}
	if !hasCatalog {
		pool.Close()
		connector.Release()
		return nil, fmt.Errorf("database %s has no gdb_items system table: %w",
			config.Database, registrant.ErrNotAGeodatabase)
	}

	if logger == nil {
		logger = nullLogger{}
	}
	return &Backend{
		pool:   pool,
		closer: connector.Release,
		logger: logger,
	}, nil
}

// Kind implements registrant.Backend.
func (b *Backend) Kind() registrant.BackendKind { return registrant.KindEnterprise }

// WorkspaceFactory implements registrant.Backend.
func (b *Backend) WorkspaceFactory() string { return workspaceFactory }

// Close releases the pool and any connector-held resources.
func (b *Backend) Close() error {
	b.pool.Close()
	if b.closer != nil {
		b.closer()
	}
	return nil
}

// ReleaseVersion reads the workspace item through the typed catalog join.
func (b *Backend) ReleaseVersion(ctx context.Context) (string, error) {
	var definition string
	err := b.pool.QueryRow(ctx,
		`SELECT i.definition
		   FROM gdb_items i
		   JOIN gdb_itemtypes t ON i.type = t.uuid
		  WHERE t.name = $1`, itemTypeWorkspace,
	).Scan(&definition)
	if err != nil {
		return "", fmt.Errorf("read workspace item: %w", err)
	}
	return catalog.ParseWorkspace(definition)
}

// ListDomains lists domain items through the typed catalog join (the
// structured analog of a native domain-listing call) and parses each
// definition for details.
func (b *Backend) ListDomains(ctx context.Context) ([]registrant.DomainInfo, error) {
	rows, err := b.pool.Query(ctx,
		`SELECT i.uuid, i.name, i.definition
		   FROM gdb_items i
		   JOIN gdb_itemtypes t ON i.type = t.uuid
		  WHERE t.name IN ('Coded Value Domain', 'Range Domain')
		  ORDER BY i.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []catalogItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return buildDomains(items)
}

func buildDomains(items []catalogItem) ([]registrant.DomainInfo, error) {
	var domains []registrant.DomainInfo
	for _, it := range items {
		info, err := catalog.ParseDomain(it.definition)
		if err != nil {
			return nil, err
		}
		info.ItemID = it.id
		domains = append(domains, *info)
	}
	return domains, nil
}

// ListTables lists table items and computes a live row count per table.
// Unreadable tables are logged and skipped.
func (b *Backend) ListTables(ctx context.Context) ([]registrant.TableInfo, error) {
	items, err := b.queryItems(ctx, itemTypeTable)
	if err != nil {
		return nil, err
	}

	return buildTables(items, b.counter(ctx), b.logger), nil
}

func buildTables(items []catalogItem, count countFunc, logger registrant.Logger) []registrant.TableInfo {
	var tables []registrant.TableInfo
	for _, it := range items {
		info, err := catalog.ParseTable(it.definition)
		if err != nil {
			logger.Error("could not read table %s: %v", it.name, err)
			continue
		}
		rows, err := count(it.physicalName)
		if err != nil {
			logger.Error("could not read table %s: %v", it.name, err)
			continue
		}
		info.ItemID = it.id
		info.RowCount = rows
		tables = append(tables, *info)
	}
	return tables
}

// ListFeatureClasses lists feature-class items, nested ones first. Dataset
// membership comes from the catalog item path; feature classes inside a
// feature dataset are ordered by (dataset, name) and precede root-level ones.
func (b *Backend) ListFeatureClasses(ctx context.Context) ([]registrant.FeatureClassInfo, error) {
	items, err := b.queryItems(ctx, itemTypeFeatureClass)
	if err != nil {
		return nil, err
	}

	return buildFeatureClasses(items, b.counter(ctx), b.logger), nil
}

func buildFeatureClasses(items []catalogItem, count countFunc, logger registrant.Logger) []registrant.FeatureClassInfo {
	var nested, root []registrant.FeatureClassInfo
	for _, it := range items {
		info, err := catalog.ParseFeatureClass(it.definition)
		if err != nil {
			logger.Error("could not read feature class %s: %v", it.name, err)
			continue
		}
		rows, err := count(it.physicalName)
		if err != nil {
			logger.Error("could not read feature class %s: %v", it.name, err)
			continue
		}
		info.ItemID = it.id
		info.RowCount = rows
		info.FeatureDataset = DatasetFromPath(it.path)
		if info.FeatureDataset != "" {
			nested = append(nested, *info)
		} else {
			root = append(root, *info)
		}
	}

	sort.SliceStable(nested, func(i, j int) bool {
		if nested[i].FeatureDataset != nested[j].FeatureDataset {
			return nested[i].FeatureDataset < nested[j].FeatureDataset
		}
		return nested[i].Name < nested[j].Name
	})
	sort.SliceStable(root, func(i, j int) bool { return root[i].Name < root[j].Name })

	return append(nested, root...)
}

// DatasetFromPath extracts the feature-dataset name from a catalog item path.
// Paths use backslash separators: `\Dataset\FeatureClass` for nested items,
// `\FeatureClass` for root-level ones.
func DatasetFromPath(path string) string {
	segments := strings.Split(strings.Trim(path, `\`), `\`)
	if len(segments) >= 2 {
		return segments[0]
	}
	return ""
}

// countFunc reports the live row count of a physical table.
type countFunc func(physicalName string) (int64, error)

func (b *Backend) counter(ctx context.Context) countFunc {
	return func(physicalName string) (int64, error) {
		return b.rowCount(ctx, physicalName)
	}
}

type catalogItem struct {
	id           uuid.UUID
	name         string
	physicalName string
	path         string
	definition   string
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (catalogItem, error) {
	var rawID, name, definition string
	if err := row.Scan(&rawID, &name, &definition); err != nil {
		return catalogItem{}, err
	}
	id, _ := uuid.Parse(strings.Trim(rawID, "{}"))
	return catalogItem{id: id, name: name, definition: definition}, nil
}

func (b *Backend) queryItems(ctx context.Context, itemType string) ([]catalogItem, error) {
	rows, err := b.pool.Query(ctx,
		`SELECT i.uuid, i.name, i.physicalname, i.path, i.definition
		   FROM gdb_items i
		   JOIN gdb_itemtypes t ON i.type = t.uuid
		  WHERE t.name = $1
		  ORDER BY i.name`, itemType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []catalogItem
	for rows.Next() {
		var rawID, name, physical, path, definition string
		if err := rows.Scan(&rawID, &name, &physical, &path, &definition); err != nil {
			return nil, err
		}
		id, _ := uuid.Parse(strings.Trim(rawID, "{}"))
		items = append(items, catalogItem{
			id:           id,
			name:         name,
			physicalName: physical,
			path:         path,
			definition:   definition,
		})
	}
	return items, rows.Err()
}

// rowCount counts records in the physical table. Physical names are
// owner-qualified ("owner.table"); each part is quoted before interpolation.
func (b *Backend) rowCount(ctx context.Context, physicalName string) (int64, error) {
	var count int64
	query := fmt.Sprintf(`SELECT count(*) FROM %s`, QuoteQualified(physicalName))
	if err := b.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// QuoteQualified quotes each dot-separated part of a possibly owner-qualified
// relation name.
func QuoteQualified(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		parts[i] = `"` + strings.ReplaceAll(part, `"`, `""`) + `"`
	}
	return strings.Join(parts, ".")
}

type nullLogger struct{}

func (nullLogger) Verbose(format string, args ...interface{}) {}
func (nullLogger) Info(format string, args ...interface{})    {}
func (nullLogger) Error(format string, args ...interface{})   {}
