package models

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates an invalid or ambiguous metric group.
var ErrMalformedInput = errors.New("malformed input")

// ErrConfiguration indicates an invalid build option.
var ErrConfiguration = errors.New("invalid configuration")

// MalformedInputError represents a metric group that cannot be assembled.
type MalformedInputError struct {
	Title  string
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed metric group %q: %s", e.Title, e.Reason)
}

func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}

// NewMalformedInputError creates a new MalformedInputError.
func NewMalformedInputError(title, reason string) *MalformedInputError {
	return &MalformedInputError{
		Title:  title,
		Reason: reason,
	}
}

// IOError represents a failure reading or writing a report file.
type IOError struct {
	Path string
	Op   string // "read", "write", "stat", "create", "rename"
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError.
func NewIOError(op, path string, err error) *IOError {
	return &IOError{
		Path: path,
		Op:   op,
		Err:  err,
	}
}

// ConfigurationError represents an unrecognized option value.
type ConfigurationError struct {
	Option string
	Value  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid value %q for option %s", e.Value, e.Option)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(option, value string) *ConfigurationError {
	return &ConfigurationError{
		Option: option,
		Value:  value,
	}
}
