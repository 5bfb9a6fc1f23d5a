// Package config loads optional workspace configuration from registrant.yaml.
// The file supplies a default inspection target so repeated runs in the same
// directory do not need the target argument; nothing here is required at
// runtime, and all values can be overridden on the command line.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConnectionConfig mirrors the connection block of registrant.yaml. Passwords
// are deliberately not representable; they come from $PGPASSWORD or an
// interactive prompt.
type ConnectionConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	Username       string `yaml:"username"`
	Database       string `yaml:"database"`
	SSLMode        string `yaml:"sslmode,omitempty"`
	AuthMethod     string `yaml:"auth_method,omitempty"`
	AzureTenantID  string `yaml:"azure_tenant_id,omitempty"`
	AzureClientID  string `yaml:"azure_client_id,omitempty"`
	AWSRegion      string `yaml:"aws_region,omitempty"`
	GoogleInstance string `yaml:"google_instance,omitempty"`
}

// ReportConfig holds defaults for the report command.
type ReportConfig struct {
	// Output is the default report file path, used when --output is not
	// given. Empty means stdout.
	Output string `yaml:"output,omitempty"`
}

// WorkspaceConfig is the full registrant.yaml document.
type WorkspaceConfig struct {
	// Target is a geodatabase path or connection string used when the
	// command line provides none. A connection block, if present, wins
	// over Target.
	Target     string           `yaml:"target,omitempty"`
	Connection ConnectionConfig `yaml:"connection,omitempty"`
	Report     ReportConfig     `yaml:"report,omitempty"`
	Verbose    bool             `yaml:"verbose,omitempty"`
}

const ConfigFileName = "registrant.yaml"

// Load reads registrant.yaml from dir.
func Load(dir string) (*WorkspaceConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg WorkspaceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveTarget returns the inspection target the config provides: the
// connection block rendered as a URI when host and database are set,
// otherwise the plain target string. Empty when the config supplies neither.
func (c *WorkspaceConfig) ResolveTarget() string {
	if c.Connection.Host != "" && c.Connection.Database != "" {
		return c.Connection.connectionString()
	}
	return c.Target
}

func (c *ConnectionConfig) connectionString() string {
	port := c.Port
	if port == 0 {
		port = 5432
	}

	u := &url.URL{
		Scheme: "postgresql",
		Host:   fmt.Sprintf("%s:%d", c.Host, port),
		Path:   "/" + c.Database,
	}
	if c.Username != "" {
		u.User = url.User(c.Username)
	}

	query := url.Values{}
	if c.SSLMode != "" {
		query.Set("sslmode", c.SSLMode)
	}
	if c.AuthMethod != "" {
		query.Set("auth", c.AuthMethod)
	}
	if c.AWSRegion != "" {
		query.Set("aws_region", c.AWSRegion)
	}
	if c.AzureTenantID != "" {
		query.Set("azure_tenant_id", c.AzureTenantID)
	}
	if c.AzureClientID != "" {
		query.Set("azure_client_id", c.AzureClientID)
	}
	if c.GoogleInstance != "" {
		query.Set("google_instance", c.GoogleInstance)
	}
	u.RawQuery = query.Encode()

	return u.String()
}
