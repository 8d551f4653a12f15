package user

import "fmt"

// Role is the canonical role shape. Backends and fixtures sometimes describe
// roles as bare numeric IDs with a parallel name list; everything is
// normalized into this shape at the service boundary and the dual
// representation never leaks past it.
type Role struct {
	ID          uint
	Name        string
	Permissions []string
}

// NewRole creates a role with its permission codes.
func NewRole(name string, permissions []string) (*Role, error) {
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}
	return &Role{
		Name:        name,
		Permissions: permissions,
	}, nil
}

// HasPermission reports whether the role grants the given permission code.
func (r *Role) HasPermission(code string) bool {
	for _, p := range r.Permissions {
		if p == code {
			return true
		}
	}
	return false
}

// NormalizeRoles resolves a mixed role representation (IDs plus a parallel
// name list) against the known role set, returning canonical roles in input
// order. Unknown IDs resolve to a role carrying only the parallel name when
// one is available.
func NormalizeRoles(ids []uint, names []string, known []Role) []Role {
	byID := make(map[uint]Role, len(known))
	for _, r := range known {
		byID[r.ID] = r
	}

	normalized := make([]Role, 0, len(ids))
	for i, id := range ids {
		if r, ok := byID[id]; ok {
			normalized = append(normalized, r)
			continue
		}
		name := ""
		if i < len(names) {
			name = names[i]
		}
		normalized = append(normalized, Role{ID: id, Name: name})
	}
	return normalized
}
