package httperr

import (
	"errors"
	"sort"
	"strings"
)

// Errors maps an attribute name to its failure messages.
// Non-attribute failures go under "base".
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Any() bool {
	return len(e) > 0
}

type ValidationError struct {
	Fields Errors
}

func (e ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		for _, msg := range e.Fields[k] {
			parts = append(parts, k+" "+msg)
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Invalid wraps fields into a ValidationError, or returns nil when empty.
func Invalid(fields Errors) error {
	if !fields.Any() {
		return nil
	}
	return ValidationError{Fields: fields}
}

// Field builds a single-attribute ValidationError.
func Field(field, message string) error {
	return ValidationError{Fields: Errors{field: {message}}}
}

func AsValidation(err error) (Errors, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve.Fields, true
	}
	return nil, false
}
