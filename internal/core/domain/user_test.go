package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleCanManage(t *testing.T) {
	tests := []struct {
		role       Role
		settlement Settlement
		want       bool
	}{
		{RoleAdmin, SettlementZapovednoe, true},
		{RoleAdmin, SettlementKolosok, true},
		{RoleChairmanZapovednoe, SettlementZapovednoe, true},
		{RoleChairmanZapovednoe, SettlementKolosok, false},
		{RoleChairmanKolosok, SettlementKolosok, true},
		{RoleChairmanKolosok, SettlementZapovednoe, false},
		{RoleResidentZapovednoe, SettlementZapovednoe, false},
		{RoleResidentKolosok, SettlementKolosok, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.CanManage(tt.settlement),
			"role %s, settlement %s", tt.role, tt.settlement)
	}
}

func TestParseRole(t *testing.T) {
	parsed, err := ParseRole("chairman_kolosok")
	require.NoError(t, err)
	assert.Equal(t, RoleChairmanKolosok, parsed)

	_, err = ParseRole("superuser")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestParseSettlement(t *testing.T) {
	for _, s := range AllSettlements {
		parsed, err := ParseSettlement(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseSettlement("Zapovednoe") // регистр имеет значение
	require.Error(t, err)
}
