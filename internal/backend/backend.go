// Package backend selects and opens geodatabase backends. The two
// implementations live in subpackages; selection happens exactly once, when
// the accessor is constructed.
package backend

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/geodata-tools/registrant/internal/backend/enterprise"
	"github.com/geodata-tools/registrant/internal/backend/filegdb"
	"github.com/geodata-tools/registrant/internal/db"
	"github.com/geodata-tools/registrant/pkg/registrant"
)

// Detect classifies a target string: PostgreSQL connection descriptors map to
// the enterprise backend, existing filesystem paths to the filegdb backend.
func Detect(target string) (registrant.BackendKind, error) {
	if target == "" {
		return "", fmt.Errorf("empty target: %w", registrant.ErrInvalidConfig)
	}

	if strings.HasPrefix(target, "postgresql://") || strings.HasPrefix(target, "postgres://") {
		return registrant.KindEnterprise, nil
	}
	if strings.Contains(target, "=") && strings.Contains(target, ";") {
		return registrant.KindEnterprise, nil
	}

	if _, err := os.Stat(target); err != nil {
		return "", fmt.Errorf("target %q is neither a connection string nor a readable path: %w", target, err)
	}
	return registrant.KindFileGDB, nil
}

// Open detects the backend kind for target and opens it. Connection
// descriptors go through the connection-string parser and connector factory;
// filesystem paths open as SQLite containers.
func Open(ctx context.Context, target string, logger registrant.Logger) (registrant.Backend, error) {
	kind, err := Detect(target)
	if err != nil {
		return nil, err
	}

	switch kind {
	case registrant.KindEnterprise:
		config, err := db.ParseConnectionString(target)
		if err != nil {
			return nil, fmt.Errorf("parse connection string: %w", err)
		}
		return enterprise.Open(ctx, config, logger)
	default:
		return filegdb.Open(ctx, target, logger)
	}
}
