package domain

import (
	"regexp"
	"strings"
	"unique"
)

// instanceSuffix matches one or more trailing "-<digits>" groups, e.g. "-1" or "-1-2".
var instanceSuffix = regexp.MustCompile(`(-[0-9]+)+$`)

// Role is a value object that wraps a unique.Handle[string] naming a service.
// Role names repeat across every adjacency set, so they are interned.
type Role struct {
	h unique.Handle[string]
}

// NewRole creates a Role from a name without normalizing it.
func NewRole(name string) Role {
	return Role{h: unique.Make(name)}
}

// RoleOf normalizes name and interns the result.
func RoleOf(name string) Role {
	return NewRole(Normalize(name))
}

// String returns the underlying role name.
func (r Role) String() string {
	var zero unique.Handle[string]
	if r.h == zero {
		return ""
	}
	return r.h.Value()
}

// IsZero reports whether the role was never assigned.
func (r Role) IsZero() bool {
	var zero unique.Handle[string]
	return r.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	r.h = unique.Make(string(text))
	return nil
}

// Normalize collapses instance-numbered replicas ("checkout-1", "checkout-2")
// into one logical role ("checkout") by stripping the trailing "-<digits>" suffix.
// Repeated suffixes are stripped together so that Normalize is idempotent.
func Normalize(name string) string {
	return instanceSuffix.ReplaceAllString(name, "")
}

// DefaultExcludeMarkers are the substrings that identify database services.
var DefaultExcludeMarkers = []string{"mysql", "redis"}

// Exclusion matches role names that must never appear as graph endpoints.
type Exclusion struct {
	markers []string
}

// NewExclusion creates an Exclusion over the given markers.
// Empty markers are ignored.
func NewExclusion(markers ...string) Exclusion {
	kept := make([]string, 0, len(markers))
	for _, m := range markers {
		if m = strings.TrimSpace(m); m != "" {
			kept = append(kept, m)
		}
	}
	return Exclusion{markers: kept}
}

// Matches reports whether name contains any of the markers.
func (e Exclusion) Matches(name string) bool {
	for _, m := range e.markers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// Markers returns a copy of the configured markers.
func (e Exclusion) Markers() []string {
	return append([]string(nil), e.markers...)
}
