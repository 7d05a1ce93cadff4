package loader

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by the concrete error types through errors.Is.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("parameters file not found")
	ErrDecode        = errors.New("invalid JSON in parameters file")
)

// ConfigurationError is returned when no path was given and the parameters
// environment variable is unset.
type ConfigurationError struct {
	EnvVar string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s environment variable not set", e.EnvVar)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// NotFoundError is returned when the resolved path does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("parameters file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DecodeError is returned when the file content is not valid JSON.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid JSON in parameters file %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
