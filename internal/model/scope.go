package model

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// ContextKeyRequestID is the gin context key the request ID middleware
// stores the generated ID under.
const ContextKeyRequestID = "request_id"

// Scope carries the request-scoped caller identity.
type Scope struct {
	// AadhaarNo identifies the farmer making the request.
	AadhaarNo string
	RequestID string
}
