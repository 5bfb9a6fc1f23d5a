package registrant

import (
	"context"

	"github.com/google/uuid"
)

// BackendKind identifies which backend implementation serves a Geodatabase.
type BackendKind string

const (
	// KindEnterprise reads an enterprise geodatabase on PostgreSQL through
	// the structured system catalog (gdb_items + gdb_itemtypes).
	KindEnterprise BackendKind = "enterprise"

	// KindFileGDB reads a mobile/file geodatabase in SQLite container format
	// through raw SQL over the GDB_Items system table.
	KindFileGDB BackendKind = "filegdb"
)

// Backend is the introspection contract both geodatabase backends implement.
// A Geodatabase holds exactly one Backend, selected at construction. All
// methods are synchronous and read-only; implementations are not required to
// be safe for concurrent use.
type Backend interface {
	// Kind reports which implementation this is.
	Kind() BackendKind

	// ReleaseVersion returns the geodatabase schema version triplet in
	// "major,minor,bugfix" form, read from the workspace definition in the
	// system catalog.
	ReleaseVersion(ctx context.Context) (string, error)

	// WorkspaceFactory returns the workspace factory identifier used to
	// classify the storage variant (personal / file / enterprise).
	WorkspaceFactory() string

	// ListDomains returns every attribute domain defined in the geodatabase.
	ListDomains(ctx context.Context) ([]DomainInfo, error)

	// ListTables returns every non-spatial table. Unreadable tables are
	// logged and skipped, not returned as errors.
	ListTables(ctx context.Context) ([]TableInfo, error)

	// ListFeatureClasses returns every spatial dataset. Feature classes
	// nested in feature datasets come first, tagged with the dataset name;
	// root-level feature classes follow with an empty dataset name. Backends
	// that cannot resolve dataset membership return a flat listing.
	ListFeatureClasses(ctx context.Context) ([]FeatureClassInfo, error)

	// Close releases the underlying data-source handle.
	Close() error
}

// DomainType classifies an attribute domain.
type DomainType string

const (
	DomainCodedValue DomainType = "CodedValue"
	DomainRange      DomainType = "Range"
)

// CodedValue is one code/name entry of a coded-value domain. Order follows
// the source definition.
type CodedValue struct {
	Code string
	Name string
}

// DomainInfo describes an attribute domain in backend-native terms. Enum
// fields (FieldType, MergePolicy, SplitPolicy) carry raw esri identifiers;
// display mapping happens during projection. Min/Max are nil when the source
// definition omits them.
type DomainInfo struct {
	ItemID      uuid.UUID
	Name        string
	Description string
	Owner       string
	Type        DomainType
	FieldType   string
	MergePolicy string
	SplitPolicy string
	Min         *float64
	Max         *float64
	CodedValues []CodedValue
}

// FieldInfo describes one column of a table or feature class.
type FieldInfo struct {
	Name string
	Type string
}

// TableInfo describes a non-spatial table.
type TableInfo struct {
	ItemID   uuid.UUID
	Name     string
	Fields   []FieldInfo
	RowCount int64
}

// FeatureClassInfo describes a spatial dataset. FeatureDataset is the name of
// the containing feature dataset, or "" for root-level feature classes and on
// backends where membership is unavailable.
type FeatureClassInfo struct {
	TableInfo
	GeometryType   string
	ShapeField     string
	WKID           int
	FeatureDataset string
}
