// Package policy is the single place role permissions are decided. Handlers
// and middleware consult Can instead of comparing role strings inline.
package policy

import (
	"agrimarket-backend/domain"
)

type Action string

const (
	ActionCreateProduct          Action = "product:create"
	ActionReplaceProduct         Action = "product:replace"
	ActionPatchProduct           Action = "product:patch"
	ActionDeleteProduct          Action = "product:delete"
	ActionUpdateOrderStatus      Action = "order:update-status"
	ActionAdminUpdateOrderStatus Action = "order:admin-update-status"
	ActionViewAllOrders          Action = "order:view-all"
)

var table = map[string]map[Action]bool{
	domain.RoleAdmin: {
		ActionCreateProduct:          true,
		ActionReplaceProduct:         true,
		ActionPatchProduct:           true,
		ActionDeleteProduct:          true,
		ActionUpdateOrderStatus:      true,
		ActionAdminUpdateOrderStatus: true,
		ActionViewAllOrders:          true,
	},
	domain.RoleFarmer: {
		ActionCreateProduct:     true,
		ActionPatchProduct:      true,
		ActionUpdateOrderStatus: true,
	},
	domain.RoleUser: {},
}

func Can(role string, action Action) bool {
	actions, ok := table[role]
	if !ok {
		return false
	}
	return actions[action]
}
