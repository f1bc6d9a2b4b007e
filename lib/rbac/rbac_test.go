package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"
	"recruitment-backend/models"
)

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseSwaggerPattern("/api/v1/mpr/{id}/approve [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/mpr/123-321/approve"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/mpr/approve"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseSwaggerPattern("/api/v1/org/unit/{id}/roles/{roleType}/{assignmentId} [delete]")
		require.Nil(t, err)
		require.Equal(t, DELETE, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/org/unit/123-321/roles/recruiter/qwe-ewr123-wr-12"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/org/unit/123-321/roles/recruiter"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`role rule check`, func(t *testing.T) {
		i := &impl{
			rules:       map[HTTPMethod]*PathRule{},
			permissions: map[models.UserRole]map[models.Module][]models.Permission{},
		}
		err := i.RegisterRule(models.MPRModule, models.ApprovePermission, AdminHrRoleSet, "/api/v1/mpr/{id}/approve [put]", nil)
		require.Nil(t, err)

		handler, found := i.GetRuleFunc("PUT", "/api/v1/mpr/abc-123/approve")
		require.True(t, found)
		require.True(t, handler("user-1", models.HRRole, "/api/v1/mpr/abc-123/approve"))
		require.False(t, handler("user-1", models.SpecialistRole, "/api/v1/mpr/abc-123/approve"))

		_, found = i.GetRuleFunc("GET", "/api/v1/mpr/abc-123/approve")
		require.False(t, found)
	})
}
