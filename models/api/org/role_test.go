package orgapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
	"recruitment-backend/models"
)

func TestAssignRoleRequest_Validate(t *testing.T) {
	limitOf := func(v float64) *float64 { return &v }

	t.Run("recruiter needs no metadata", func(t *testing.T) {
		req := AssignRoleRequest{UserID: "u1", RoleType: models.RoleTypeRecruiter}
		require.NoError(t, req.Validate())
	})
	t.Run("missing user", func(t *testing.T) {
		req := AssignRoleRequest{RoleType: models.RoleTypeRecruiter}
		require.Error(t, req.Validate())
	})
	t.Run("unknown role type", func(t *testing.T) {
		req := AssignRoleRequest{UserID: "u1", RoleType: "owner"}
		require.Error(t, req.Validate())
	})
	t.Run("manager requires manager type", func(t *testing.T) {
		req := AssignRoleRequest{UserID: "u1", RoleType: models.RoleTypeManager}
		require.Error(t, req.Validate())
		req.ManagerType = models.LineManager
		require.NoError(t, req.Validate())
	})
	t.Run("budget holder requires budget type", func(t *testing.T) {
		req := AssignRoleRequest{UserID: "u1", RoleType: models.RoleTypeBudgetHolder}
		require.Error(t, req.Validate())
		req.BudgetType = models.BudgetHiring
		require.NoError(t, req.Validate())
	})
	t.Run("negative budget limit", func(t *testing.T) {
		req := AssignRoleRequest{
			UserID:      "u1",
			RoleType:    models.RoleTypeBudgetHolder,
			BudgetType:  models.BudgetOperational,
			BudgetLimit: limitOf(-1),
		}
		require.Error(t, req.Validate())
	})
	t.Run("budget sponsor requires sponsor level", func(t *testing.T) {
		req := AssignRoleRequest{UserID: "u1", RoleType: models.RoleTypeBudgetSponsor}
		require.Error(t, req.Validate())
		req.SponsorLevel = models.SponsorLevel2
		require.NoError(t, req.Validate())
	})
}
