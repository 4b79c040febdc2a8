package glide

import (
	"errors"
	"fmt"
)

// Sentinel errors for the programmatic navigation API. Input handling never
// returns errors; it degrades to doing nothing.
var (
	// ErrDetached indicates a call on a controller that is not attached.
	ErrDetached = errors.New("controller is not attached")

	// ErrAnchorNotFound indicates an anchor id with no matching element.
	ErrAnchorNotFound = errors.New("anchor not found")

	// ErrHistoryEmpty indicates Back was called with no recorded jump.
	ErrHistoryEmpty = errors.New("no anchor history")
)

// ConfigError reports an invalid tunable.
type ConfigError struct {
	Field string // TOML key of the offending field
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("glide: config %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// InfrastructureError represents a host-level failure (window creation,
// input device access) that the controller itself cannot recover from.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "open_device", "create_window")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("glide: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("glide: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
