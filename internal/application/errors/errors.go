// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
)

// ConfigurationError indicates a config file, environment or flag problem.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// SessionError indicates an interactive session could not continue.
type SessionError struct {
	Cause     error
	SessionID string
	Message   string
}

func (e *SessionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("session %s: %s: %v", e.SessionID, e.Message, e.Cause)
	}
	return fmt.Sprintf("session %s: %s", e.SessionID, e.Message)
}

func (e *SessionError) Unwrap() error {
	return e.Cause
}

// NewSessionError creates a new session error.
func NewSessionError(sessionID, message string, cause error) *SessionError {
	return &SessionError{
		SessionID: sessionID,
		Message:   message,
		Cause:     cause,
	}
}
