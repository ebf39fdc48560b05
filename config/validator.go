package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError is one invalid setting.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects every invalid setting of a Config.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "\n  %d. %s", i+1, err.Error())
	}

	return sb.String()
}

// ValidLogLevels lists the accepted log.level values.
func ValidLogLevels() []string { return []string{"trace", "debug", "info", "warn", "error"} }

// ValidLogFormats lists the accepted log.format values.
func ValidLogFormats() []string { return []string{"console", "json"} }

// ValidOutputFormats lists the accepted output.format values.
func ValidOutputFormats() []string { return []string{"edges", "dot", "json"} }

// Validate returns every invalid setting.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError

	if c.Run.MaxRounds == 0 {
		errs = append(errs, ValidationError{"run.max_rounds", c.Run.MaxRounds, "must be positive"})
	}
	if c.Run.Workers < 0 {
		errs = append(errs, ValidationError{"run.workers", c.Run.Workers, "must not be negative"})
	}
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Log.Level)) {
		errs = append(errs, ValidationError{"log.level", c.Log.Level,
			"must be one of " + strings.Join(ValidLogLevels(), ", ")})
	}
	if !slices.Contains(ValidLogFormats(), c.Log.Format) {
		errs = append(errs, ValidationError{"log.format", c.Log.Format,
			"must be one of " + strings.Join(ValidLogFormats(), ", ")})
	}
	if !slices.Contains(ValidOutputFormats(), c.Output.Format) {
		errs = append(errs, ValidationError{"output.format", c.Output.Format,
			"must be one of " + strings.Join(ValidOutputFormats(), ", ")})
	}

	return errs
}
