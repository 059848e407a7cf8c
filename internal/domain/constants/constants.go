// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider selectors used in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Deployment environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
