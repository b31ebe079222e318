package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrNoCachedToken    = fmt.Errorf("no cached token available")
	ErrStateMismatch    = fmt.Errorf("OAuth state mismatch")
	ErrTimeout          = fmt.Errorf("operation timed out")

	// Tool dispatch errors
	ErrUnknownTool = fmt.Errorf("unknown tool")
)
