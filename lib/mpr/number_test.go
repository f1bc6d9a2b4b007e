package mprhandler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_nextMPRNumber(t *testing.T) {
	t.Run("first number of the year", func(t *testing.T) {
		require.Equal(t, "2026-0001", nextMPRNumber("", 2026))
	})
	t.Run("increments the counter", func(t *testing.T) {
		require.Equal(t, "2026-0042", nextMPRNumber("2026-0041", 2026))
	})
	t.Run("counter restarts on a new year", func(t *testing.T) {
		require.Equal(t, "2027-0001", nextMPRNumber("2026-0318", 2027))
	})
	t.Run("grows past four digits", func(t *testing.T) {
		require.Equal(t, "2026-10000", nextMPRNumber("2026-9999", 2026))
	})
}
