package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleForUsername(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleForUsername("admin"))
	assert.Equal(t, RolePublic, RoleForUsername("Admin"))
	assert.Equal(t, RolePublic, RoleForUsername("resident"))
	assert.Equal(t, RolePublic, RoleForUsername("administrator"))
}

func TestRoleIsStaff(t *testing.T) {
	assert.False(t, RolePublic.IsStaff())
	assert.True(t, RoleWorker.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("worker")
	require.NoError(t, err)
	assert.Equal(t, RoleWorker, role)

	_, err = ParseRole("superuser")
	assert.Error(t, err)
}

func TestParseBinType(t *testing.T) {
	for _, valid := range []string{"paper", "plastic", "metal"} {
		parsed, err := ParseBinType(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, parsed.String())
	}

	_, err := ParseBinType("glass")
	assert.Error(t, err)
}

func TestParseComplaintPriority(t *testing.T) {
	parsed, err := ParseComplaintPriority("high")
	require.NoError(t, err)
	assert.Equal(t, ComplaintPriorityHigh, parsed)

	_, err = ParseComplaintPriority("urgent")
	assert.Error(t, err)
}

func TestParseScheduleStatus(t *testing.T) {
	parsed, err := ParseScheduleStatus("cancelled")
	require.NoError(t, err)
	assert.Equal(t, ScheduleStatusCancelled, parsed)

	_, err = ParseScheduleStatus("done")
	assert.Error(t, err)
}
