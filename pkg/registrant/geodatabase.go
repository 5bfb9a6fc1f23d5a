package registrant

import (
	"context"
	"fmt"
	"strings"
)

// Geodatabase is the accessor over one opened geodatabase. Release and
// workspace type are resolved eagerly at construction and immutable
// afterwards; the listing methods re-query the backend on every call, with
// no caching and no identity beyond name.
type Geodatabase struct {
	backend Backend
	logger  Logger

	target        string
	release       string
	workspaceType string
}

// Option configures a Geodatabase during construction.
type Option func(*Geodatabase)

// WithLogger sets the logger used for skipped-item notices. Defaults to a
// no-op logger.
func WithLogger(logger Logger) Option {
	return func(g *Geodatabase) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithTarget records the original target (path or connection descriptor) so
// it can appear in the pretty props. Defaults to empty.
func WithTarget(target string) Option {
	return func(g *Geodatabase) {
		g.target = target
	}
}

// NewGeodatabase constructs an accessor over the given backend, probing it
// immediately for release version and workspace type. A target that is not a
// valid geodatabase surfaces here as the backend's native error.
func NewGeodatabase(ctx context.Context, backend Backend, opts ...Option) (*Geodatabase, error) {
	g := &Geodatabase{
		backend: backend,
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		opt(g)
	}

	triplet, err := backend.ReleaseVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve release version: %w", err)
	}
	g.release = ReleaseLabel(triplet)
	if g.release == "" && triplet != "" {
		g.logger.Verbose("unrecognized release version %q (known: %s)",
			triplet, strings.Join(KnownReleases(), "; "))
	}
	g.workspaceType = WorkspaceTypeLabel(backend.WorkspaceFactory())

	return g, nil
}

// Target returns the original target string, as given at construction.
func (g *Geodatabase) Target() string { return g.target }

// Release returns the resolved release label, or "" for unknown versions.
func (g *Geodatabase) Release() string { return g.release }

// WorkspaceType returns the resolved storage variant label.
func (g *Geodatabase) WorkspaceType() string { return g.workspaceType }

// Backend returns the active backend kind.
func (g *Geodatabase) Backend() BackendKind { return g.backend.Kind() }

// GetPrettyProps projects the accessor's own attributes through the fixed
// geodatabase label table. Pure; no I/O.
func (g *Geodatabase) GetPrettyProps() Props {
	return Props{
		{Key: "Path", Value: g.target},
		{Key: "Release", Value: g.release},
		{Key: "Workspace type", Value: g.workspaceType},
	}
}

// GetDomains returns every attribute domain as ordered props.
func (g *Geodatabase) GetDomains(ctx context.Context) ([]Props, error) {
	domains, err := g.backend.ListDomains(ctx)
	if err != nil {
		return nil, fmt.Errorf("list domains: %w", err)
	}

	g.logger.Verbose("listed %d domains via %s backend", len(domains), g.backend.Kind())
	projected := make([]Props, 0, len(domains))
	for _, d := range domains {
		projected = append(projected, ProjectDomain(d))
	}
	return projected, nil
}

// GetTables returns every non-spatial table as ordered props, including the
// computed row count. Unreadable tables have already been logged and skipped
// by the backend.
func (g *Geodatabase) GetTables(ctx context.Context) ([]Props, error) {
	tables, err := g.backend.ListTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	g.logger.Verbose("listed %d tables via %s backend", len(tables), g.backend.Kind())
	projected := make([]Props, 0, len(tables))
	for _, t := range tables {
		projected = append(projected, ProjectTable(t))
	}
	return projected, nil
}

// GetFeatureClasses returns every spatial dataset as ordered props. Feature
// classes nested in feature datasets precede root-level ones; the "Feature
// dataset" key is present in every entry.
func (g *Geodatabase) GetFeatureClasses(ctx context.Context) ([]Props, error) {
	fcs, err := g.backend.ListFeatureClasses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feature classes: %w", err)
	}

	g.logger.Verbose("listed %d feature classes via %s backend", len(fcs), g.backend.Kind())
	projected := make([]Props, 0, len(fcs))
	for _, fc := range fcs {
		projected = append(projected, ProjectFeatureClass(fc))
	}
	return projected, nil
}

// Close releases the backend's data-source handle.
func (g *Geodatabase) Close() error {
	return g.backend.Close()
}

type nopLogger struct{}

func (nopLogger) Verbose(format string, args ...interface{}) {}
func (nopLogger) Info(format string, args ...interface{})    {}
func (nopLogger) Error(format string, args ...interface{})   {}
