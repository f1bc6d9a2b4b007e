package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMPRStatusGuards(t *testing.T) {
	cases := []struct {
		status        MPRStatus
		allowSubmit   bool
		allowDecision bool
	}{
		{MPRStatusDraft, true, false},
		{MPRStatusPending, false, true},
		{MPRStatusApproved, false, false},
		{MPRStatusRejected, false, false},
		{MPRStatusOnHold, false, false},
		{MPRStatusClosed, false, false},
	}
	for _, c := range cases {
		t.Run(string(c.status), func(t *testing.T) {
			require.Equal(t, c.allowSubmit, c.status.AllowSubmit())
			require.Equal(t, c.allowDecision, c.status.AllowDecision())
		})
	}
	t.Run("unknown status allows nothing", func(t *testing.T) {
		require.False(t, MPRStatus("archived").AllowSubmit())
		require.False(t, MPRStatus("archived").AllowDecision())
	})
}
