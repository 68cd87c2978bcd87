package types

import (
	"errors"
	"fmt"
)

// IntegrityError reports a broken engine invariant: an unknown player or
// role, misaligned roster arrays, or an operation run in the wrong phase.
// A game that hits one cannot continue.
type IntegrityError struct {
	Msg string
}

func (e *IntegrityError) Error() string {
	return "integrity violation: " + e.Msg
}

// NewIntegrityError formats an IntegrityError.
func NewIntegrityError(format string, args ...interface{}) error {
	return &IntegrityError{Msg: fmt.Sprintf(format, args...)}
}

// IsIntegrityError reports whether err wraps an IntegrityError.
func IsIntegrityError(err error) bool {
	var target *IntegrityError
	return errors.As(err, &target)
}

// ConfigurationError reports settings outside what the game supports.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Msg
}

// NewConfigurationError formats a ConfigurationError.
func NewConfigurationError(format string, args ...interface{}) error {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}
