package authorization

// PermissionEnforcer answers whether a role is granted a permission code.
type PermissionEnforcer interface {
	Enforce(role string, permission string) (bool, error)
	AddPolicy(role string, permission string) error
	RemovePolicy(role string, permission string) error
	PermissionsForRole(role string) ([]string, error)
}
