package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "output.format")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the list of valid log formats
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// ValidOutputFormats returns the list of valid result formats
func ValidOutputFormats() []string {
	return []string{"text", "yaml", "json"}
}

// ValidColorModes returns the list of valid color modes
func ValidColorModes() []string {
	return []string{"auto", "always", "never"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateLog()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateWatch()...)

	return errors
}

// oneOf appends a ValidationError when value is not in allowed (case-insensitive).
func oneOf(errs []ValidationError, field, value string, allowed []string) []ValidationError {
	if slices.Contains(allowed, strings.ToLower(value)) {
		return errs
	}
	return append(errs, ValidationError{
		Field:   field,
		Value:   value,
		Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
	})
}

// validateLog validates the LogConfig
func (c *Config) validateLog() []ValidationError {
	var errors []ValidationError
	errors = oneOf(errors, "log.level", c.Log.Level, ValidLogLevels())
	errors = oneOf(errors, "log.format", c.Log.Format, ValidLogFormats())
	return errors
}

// validateOutput validates the OutputConfig
func (c *Config) validateOutput() []ValidationError {
	var errors []ValidationError
	errors = oneOf(errors, "output.format", c.Output.Format, ValidOutputFormats())
	errors = oneOf(errors, "output.color", c.Output.Color, ValidColorModes())
	return errors
}

// validateWatch validates the WatchConfig
func (c *Config) validateWatch() []ValidationError {
	var errors []ValidationError

	if c.Watch.Debounce < 0 {
		errors = append(errors, ValidationError{
			Field:   "watch.debounce",
			Value:   c.Watch.Debounce,
			Message: "must be non-negative",
		})
	}

	return errors
}
