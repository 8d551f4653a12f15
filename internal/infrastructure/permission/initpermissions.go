package permission

import (
	"fmt"

	"github.com/venda-inc/venda/internal/shared/constants"
)

// defaultPolicies maps role names to the permission codes granted out of the box.
var defaultPolicies = map[string][]string{
	constants.RoleAdmin: {
		constants.PermClientsRead, constants.PermClientsCreate, constants.PermClientsUpdate, constants.PermClientsDelete,
		constants.PermSuppliersRead, constants.PermSuppliersWrite,
		constants.PermProductsRead, constants.PermProductsCreate, constants.PermProductsUpdate, constants.PermProductsDelete,
		constants.PermSalesRead, constants.PermSalesCreate, constants.PermSalesUpdate, constants.PermSalesDelete,
		constants.PermUsersManage,
		constants.PermReportsRead,
	},
	constants.RoleSeller: {
		constants.PermClientsRead, constants.PermClientsCreate, constants.PermClientsUpdate,
		constants.PermProductsRead,
		constants.PermSalesRead, constants.PermSalesCreate,
	},
}

// InitDefaultPolicies installs the built-in role policies when they are missing.
// Existing policies are never removed, so operator customizations survive restarts.
func (e *Enforcer) InitDefaultPolicies() error {
	for role, permissions := range defaultPolicies {
		for _, perm := range permissions {
			allowed, err := e.Enforce(role, perm)
			if err != nil {
				return fmt.Errorf("failed to check policy %s/%s: %w", role, perm, err)
			}
			if allowed {
				continue
			}
			if err := e.AddPolicy(role, perm); err != nil {
				return fmt.Errorf("failed to install policy %s/%s: %w", role, perm, err)
			}
		}
	}
	e.logger.Infow("default role policies installed", "roles", len(defaultPolicies))
	return nil
}
