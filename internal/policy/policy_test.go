package policy

import (
	"testing"

	"agrimarket-backend/domain"

	"github.com/stretchr/testify/assert"
)

func TestAdminCanEverything(t *testing.T) {
	for _, action := range []Action{
		ActionCreateProduct,
		ActionReplaceProduct,
		ActionPatchProduct,
		ActionDeleteProduct,
		ActionUpdateOrderStatus,
		ActionAdminUpdateOrderStatus,
		ActionViewAllOrders,
	} {
		assert.True(t, Can(domain.RoleAdmin, action), "admin should be allowed %s", action)
	}
}

func TestFarmerPermissions(t *testing.T) {
	assert.True(t, Can(domain.RoleFarmer, ActionCreateProduct))
	assert.True(t, Can(domain.RoleFarmer, ActionPatchProduct))
	assert.True(t, Can(domain.RoleFarmer, ActionUpdateOrderStatus))

	assert.False(t, Can(domain.RoleFarmer, ActionDeleteProduct))
	assert.False(t, Can(domain.RoleFarmer, ActionReplaceProduct))
	assert.False(t, Can(domain.RoleFarmer, ActionAdminUpdateOrderStatus))
	assert.False(t, Can(domain.RoleFarmer, ActionViewAllOrders))
}

func TestCustomerHasNoPrivilegedActions(t *testing.T) {
	assert.False(t, Can(domain.RoleUser, ActionCreateProduct))
	assert.False(t, Can(domain.RoleUser, ActionUpdateOrderStatus))
	assert.False(t, Can(domain.RoleUser, ActionViewAllOrders))
}

func TestUnknownRoleDenied(t *testing.T) {
	assert.False(t, Can("superuser", ActionDeleteProduct))
	assert.False(t, Can("", ActionCreateProduct))
}
