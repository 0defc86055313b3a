package model

import "strings"

// Default scope values used when tenant/user are unspecified.
const (
	DefaultTenant = "default"
	DefaultUser   = "local"
)

// Scope is the (tenant, user) pair partitioning the persisted layout
// collection and workspace document. One scope owns exactly one slot of each.
type Scope struct {
	Tenant string
	User   string
}

// DefaultScope returns the (default, local) scope.
func DefaultScope() Scope {
	return Scope{Tenant: DefaultTenant, User: DefaultUser}
}

// Complete fills empty fields with their defaults.
func (s Scope) Complete() Scope {
	if s.Tenant == "" {
		s.Tenant = DefaultTenant
	}
	if s.User == "" {
		s.User = DefaultUser
	}
	return s
}

// Validate rejects scope fields that would break slot keys, which are
// slash-joined.
func (s Scope) Validate() error {
	if strings.Contains(s.Tenant, "/") || strings.Contains(s.User, "/") {
		return ErrWorkspaceInvalid
	}
	return nil
}
