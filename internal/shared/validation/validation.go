package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errors collects field-level validation failures.
// It mirrors the 422 error object the public API returns: one entry per
// field, each with one or more messages, and no write is applied while any
// entry is present.
type Errors struct {
	Fields map[string][]string `json:"-"`
}

func New() *Errors {
	return &Errors{Fields: make(map[string][]string)}
}

func (e *Errors) Add(field string, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *Errors) Addf(field string, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

func (e *Errors) Has() bool {
	return e != nil && len(e.Fields) > 0
}

// Err returns the collector as an error when any field failed, nil otherwise.
func (e *Errors) Err() error {
	if !e.Has() {
		return nil
	}
	return e
}

func (e *Errors) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e.Fields[field], "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// AsErrors unwraps a field-level validation error from err, if it is one.
func AsErrors(err error) (*Errors, bool) {
	var verr *Errors
	if errors.As(err, &verr) && verr.Has() {
		return verr, true
	}
	return nil, false
}
