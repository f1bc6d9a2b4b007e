package orghandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recruitment-backend/models"
)

func TestUnitUpdateOnRemoval(t *testing.T) {
	t.Run("non primary removal leaves unit untouched", func(t *testing.T) {
		require.Nil(t, unitUpdateOnRemoval(models.RoleTypeRecruiter, false))
		require.Nil(t, unitUpdateOnRemoval(models.RoleTypeBudgetSponsor, false))
	})
	t.Run("primary recruiter removal clears the recruiter slot", func(t *testing.T) {
		upd := unitUpdateOnRemoval(models.RoleTypeRecruiter, true)
		require.Len(t, upd, 1)
		require.Contains(t, upd, "primary_recruiter_id")
		require.Nil(t, upd["primary_recruiter_id"])
	})
	t.Run("primary manager removal clears the manager slot", func(t *testing.T) {
		upd := unitUpdateOnRemoval(models.RoleTypeManager, true)
		require.Len(t, upd, 1)
		require.Contains(t, upd, "primary_manager_id")
	})
	t.Run("primary budget holder removal clears the holder slot", func(t *testing.T) {
		upd := unitUpdateOnRemoval(models.RoleTypeBudgetHolder, true)
		require.Len(t, upd, 1)
		require.Contains(t, upd, "primary_budget_holder_id")
	})
	t.Run("primary budget sponsor removal clears the sponsor slot", func(t *testing.T) {
		upd := unitUpdateOnRemoval(models.RoleTypeBudgetSponsor, true)
		require.Len(t, upd, 1)
		require.Contains(t, upd, "primary_budget_sponsor_id")
	})
}
