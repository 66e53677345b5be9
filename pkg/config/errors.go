package config

import (
	"fmt"
	"strings"
)

// InvalidEnumValueError indicates that an enumerated field holds a value
// outside its documented literal set.
type InvalidEnumValueError struct {
	Field   string
	Got     string
	Allowed []string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %q (allowed: %s)", e.Field, e.Got, strings.Join(e.Allowed, ", "))
}

// MissingRequiredFieldError indicates that a field required by an
// enabled section is absent.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
