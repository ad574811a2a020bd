package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Errors is the report a failed Build returns. Violations are indexed by
// wire field name, with a separate bucket for cross-field checks, so
// callers can assert "field X has violation Y" without parsing messages.
// A report is read-only once returned; per-field violation order is not
// part of the contract (use Includes, not positional comparison).
type Errors struct {
	object string
	fields map[string][]Kind
	across []Kind
}

// NewErrors creates an empty report for the named object type. Builders
// fill it during Build and return it only when it is non-empty.
func NewErrors(object string) *Errors {
	return &Errors{
		object: object,
		fields: make(map[string][]Kind),
	}
}

// AddField records the violations of one field under its wire name.
// An empty slice is ignored.
func (e *Errors) AddField(name string, kinds []Kind) {
	if len(kinds) == 0 {
		return
	}
	e.fields[name] = append(e.fields[name], kinds...)
}

// AddAcross records cross-field violations.
func (e *Errors) AddAcross(kinds []Kind) {
	e.across = append(e.across, kinds...)
}

// Empty reports whether the report carries no violation at all.
func (e *Errors) Empty() bool {
	return len(e.fields) == 0 && len(e.across) == 0
}

// Object returns the name of the entity type the report belongs to.
func (e *Errors) Object() string {
	return e.object
}

// Field returns the violations recorded for one field. The slice is nil
// when the field is clean.
func (e *Errors) Field(name string) []Kind {
	return e.fields[name]
}

// AcrossFields returns the violations spanning more than one field.
func (e *Errors) AcrossFields() []Kind {
	return e.across
}

func (e *Errors) Error() string {
	parts := make([]string, 0, len(e.fields)+1)
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, joinKinds(e.fields[name])))
	}
	if len(e.across) > 0 {
		parts = append(parts, joinKinds(e.across))
	}
	return fmt.Sprintf("%s validation failed: %s", e.object, strings.Join(parts, "; "))
}

func joinKinds(kinds []Kind) string {
	msgs := make([]string, len(kinds))
	for i, kind := range kinds {
		msgs[i] = kind.Error()
	}
	return strings.Join(msgs, ", ")
}

// Includes reports whether kinds contains the exact kind, parameters
// included.
func Includes(kinds []Kind, kind Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
