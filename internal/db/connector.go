package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/geodata-tools/registrant/pkg/registrant"
)

// Connection pool configuration constants
const (
	// DefaultMaxConns limits concurrent connections; metadata inspection is
	// read-only and mostly sequential, so a small pool suffices.
	DefaultMaxConns = 4

	// DefaultMinConns maintains at least one connection in the pool.
	DefaultMinConns = 1

	// DefaultMaxConnIdleTime keeps connections alive across the per-item row
	// count queries to avoid reconnection overhead.
	DefaultMaxConnIdleTime = 5 * time.Minute
)

// Connector establishes an authenticated connection pool. Implementations
// that hold resources beyond the pool (dialers, credential caches) release
// them in Release; the others treat it as a no-op.
type Connector interface {
	Connect(ctx context.Context) (*pgxpool.Pool, error)
	Release()
}

// NewConnector selects the Connector implementation for the configured
// authentication method.
func NewConnector(config *ConnectionConfig) (Connector, error) {
	switch config.AuthMethod {
	case AuthMethodStandard:
		return NewStandardConnector(config), nil
	case AuthMethodAWSIAM:
		return newAWSConnector(config)
	case AuthMethodAzureEntraID:
		return newAzureConnector(config)
	case AuthMethodGoogleIAM:
		return newGoogleConnector(config)
	default:
		return nil, fmt.Errorf("unsupported auth method %v: %w", config.AuthMethod, registrant.ErrUnsupportedAuthMethod)
	}
}

func configurePool(poolConfig *pgxpool.Config) {
	poolConfig.MaxConns = DefaultMaxConns
	poolConfig.MinConns = DefaultMinConns
	poolConfig.MaxConnIdleTime = DefaultMaxConnIdleTime
}

// StandardConnector implements Connector for username/password authentication.
type StandardConnector struct {
	config *ConnectionConfig
}

// NewStandardConnector creates a StandardConnector with the given configuration.
func NewStandardConnector(config *ConnectionConfig) *StandardConnector {
	return &StandardConnector{config: config}
}

// Connect establishes a connection pool and verifies it with a ping.
func (c *StandardConnector) Connect(ctx context.Context) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(BuildConnectionString(c.config))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	configurePool(poolConfig)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, wrapConnectionError(err, c.config.Host, c.config.Port, c.config.Database)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, wrapConnectionError(err, c.config.Host, c.config.Port, c.config.Database)
	}
	return pool, nil
}

// Release implements Connector; standard auth holds nothing beyond the pool.
func (c *StandardConnector) Release() {}

// wrapConnectionError wraps raw pgx connection errors with actionable
// guidance and tags them with ErrConnectionFailed for exit-code mapping.
func wrapConnectionError(err error, host string, port int, database string) error {
	errStr := strings.ToLower(err.Error())
	addr := fmt.Sprintf("%s:%d", host, port)

	switch {
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "actively refused"):
		return fmt.Errorf(`connection refused to %s

Possible causes:
  - PostgreSQL is not running (check: pg_isready -h %s -p %d)
  - Wrong host or port
  - Firewall blocking the connection

Original error: %w
%w`, addr, host, port, err, registrant.ErrConnectionFailed)

	case strings.Contains(errStr, "no such host") || strings.Contains(errStr, "no host"):
		return fmt.Errorf(`cannot resolve host "%s"

Possible causes:
  - Hostname is misspelled
  - DNS is not configured or reachable
  - Network connection issue

Original error: %w
%w`, host, err, registrant.ErrConnectionFailed)

	case strings.Contains(errStr, "password authentication failed"):
		return fmt.Errorf(`password authentication failed for database "%s"

Possible causes:
  - Wrong password (check $PGPASSWORD or ~/.pgpass)
  - Wrong username
  - User does not have access to the database

Original error: %w
%w`, database, err, registrant.ErrConnectionFailed)

	case strings.Contains(errStr, "does not exist"):
		return fmt.Errorf(`database "%s" does not exist

Check the database name in the connection string; geodatabase metadata can
only be read from an existing, enabled database.

Original error: %w
%w`, database, err, registrant.ErrConnectionFailed)

	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "timed out"):
		return fmt.Errorf(`connection timed out to %s

Possible causes:
  - Server is overloaded or unresponsive
  - Network latency or packet loss
  - Firewall silently dropping packets
  - Wrong host/port (server not listening)

Original error: %w
%w`, addr, err, registrant.ErrConnectionFailed)

	case strings.Contains(errStr, "ssl") || strings.Contains(errStr, "tls"):
		return fmt.Errorf(`SSL/TLS connection error

Possible causes:
  - Server requires SSL but sslmode is wrong
  - Certificate verification failed (try sslmode=require)
  - Client certificates missing

Original error: %w
%w`, err, registrant.ErrConnectionFailed)

	default:
		return fmt.Errorf("failed to connect to database: %w: %w", err, registrant.ErrConnectionFailed)
	}
}

// newAWSConnector creates a token-based connector with the AWS IAM token provider.
func newAWSConnector(config *ConnectionConfig) (Connector, error) {
	endpoint := fmt.Sprintf("%s:%d", config.Host, config.Port)

	tokenProvider, err := NewAWSIAMTokenProvider(endpoint, config.AWSRegion, config.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS IAM token provider: %w", err)
	}
	return NewTokenBasedConnector(config, tokenProvider, "AWS IAM"), nil
}

// newAzureConnector creates a token-based connector with the Azure Entra ID
// token provider. Explicit Service Principal credentials take precedence;
// otherwise the DefaultAzureCredential chain is used.
func newAzureConnector(config *ConnectionConfig) (Connector, error) {
	var tokenProvider TokenProvider
	var err error

	if config.AzureTenantID != "" && config.AzureClientID != "" && config.AzureClientSecret != "" {
		tokenProvider, err = NewAzureServicePrincipalProvider(
			config.AzureTenantID,
			config.AzureClientID,
			config.AzureClientSecret,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure Service Principal provider: %w", err)
		}
	} else {
		tokenProvider, err = NewAzureDefaultCredentialProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to create Azure Default Credential provider: %w", err)
		}
	}

	return NewTokenBasedConnector(config, tokenProvider, "Azure"), nil
}

// newGoogleConnector creates a GoogleCloudSQLConnector for Cloud SQL IAM auth.
func newGoogleConnector(config *ConnectionConfig) (Connector, error) {
	if config.GoogleInstance == "" {
		return nil, fmt.Errorf("Google Cloud SQL IAM auth requires an instance connection name (project:region:instance): %w", registrant.ErrInvalidConfig)
	}
	if config.Username == "" {
		return nil, fmt.Errorf("Google Cloud SQL IAM auth requires a username: %w", registrant.ErrInvalidConfig)
	}
	return NewGoogleCloudSQLConnector(config, config.GoogleInstance), nil
}
