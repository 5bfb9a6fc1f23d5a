package db

import (
	"context"
	"time"
)

// TokenProvider abstracts cloud token acquisition for database authentication.
// AWS IAM and Azure Entra ID both fit this shape; the token becomes the
// PostgreSQL password for the lifetime of the pool.
type TokenProvider interface {
	// GetToken acquires a token for database authentication and reports its
	// expiry time.
	GetToken(ctx context.Context) (token string, expiresOn time.Time, err error)

	// String returns a human-readable description for logging. Must not
	// include secrets.
	String() string
}

// AzurePostgreSQLScope is the OAuth scope Azure AD uses to issue tokens for
// Azure Database for PostgreSQL access.
const AzurePostgreSQLScope = "https://ossrdbms-aad.database.windows.net/.default"
