// Package db establishes authenticated PostgreSQL connection pools for the
// enterprise backend. Connection descriptors are parsed into a ConnectionConfig
// and a Connector is selected from the configured authentication method:
// standard password auth, AWS RDS IAM, Azure Entra ID, or Google Cloud SQL IAM.
package db

import "time"

// AuthMethod selects how database credentials are obtained.
type AuthMethod int

const (
	// AuthMethodStandard uses username/password authentication.
	AuthMethodStandard AuthMethod = iota

	// AuthMethodAWSIAM uses AWS RDS IAM authentication tokens.
	AuthMethodAWSIAM

	// AuthMethodAzureEntraID uses Azure Entra ID OAuth tokens.
	AuthMethodAzureEntraID

	// AuthMethodGoogleIAM uses the Cloud SQL Go Connector with IAM authentication.
	AuthMethodGoogleIAM
)

func (m AuthMethod) String() string {
	switch m {
	case AuthMethodStandard:
		return "standard"
	case AuthMethodAWSIAM:
		return "aws-iam"
	case AuthMethodAzureEntraID:
		return "azure-entra-id"
	case AuthMethodGoogleIAM:
		return "google-iam"
	default:
		return "unknown"
	}
}

// ConnectionConfig holds everything needed to reach a PostgreSQL-hosted
// geodatabase. It is produced by ParseConnectionString and consumed by the
// connector factory; nothing reads ambient state after parsing.
type ConnectionConfig struct {
	Host           string
	Port           int
	Database       string
	Username       string
	Password       string
	SSLMode        string
	AppName        string
	ConnectTimeout time.Duration

	AuthMethod AuthMethod

	// AWSRegion is required for AuthMethodAWSIAM.
	AWSRegion string

	// Azure Service Principal credentials. When any is empty the default
	// credential chain is used instead.
	AzureTenantID     string
	AzureClientID     string
	AzureClientSecret string

	// GoogleInstance is the Cloud SQL instance connection name
	// (project:region:instance), required for AuthMethodGoogleIAM.
	GoogleInstance string

	// AdditionalParams carries unrecognized connection parameters through to
	// the driver untouched.
	AdditionalParams map[string]string
}
