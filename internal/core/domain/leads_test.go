package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLead(t *testing.T) {
	valid := Lead{
		Kind:       LeadContact,
		Settlement: SettlementZapovednoe,
		Name:       "Иван Петров",
		Phone:      "+7 900 123-45-67",
	}

	tests := []struct {
		name    string
		mutate  func(l *Lead)
		wantErr bool
	}{
		{
			name:   "Контактная форма без email проходит",
			mutate: func(l *Lead) {},
		},
		{
			name:   "Валидный email принимается",
			mutate: func(l *Lead) { l.Email = "ivan@example.com" },
		},
		{
			name:    "Пустое имя отклоняется",
			mutate:  func(l *Lead) { l.Name = "   " },
			wantErr: true,
		},
		{
			name:    "Пустой телефон отклоняется",
			mutate:  func(l *Lead) { l.Phone = "" },
			wantErr: true,
		},
		{
			name:    "Невалидный email отклоняется",
			mutate:  func(l *Lead) { l.Email = "not-an-email" },
			wantErr: true,
		},
		{
			name:    "Поддержка требует email",
			mutate:  func(l *Lead) { l.Kind = LeadSupport },
			wantErr: true,
		},
		{
			name: "Поддержка с email проходит",
			mutate: func(l *Lead) {
				l.Kind = LeadSupport
				l.Email = "ivan@example.com"
			},
		},
		{
			name:    "Неизвестный поселок отклоняется",
			mutate:  func(l *Lead) { l.Settlement = "atlantida" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := valid
			tt.mutate(&lead)

			err := ValidateLead(lead)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseLeadKind(t *testing.T) {
	for _, kind := range []LeadKind{LeadContact, LeadViewing, LeadSupport} {
		parsed, err := ParseLeadKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseLeadKind("complaint")
	require.Error(t, err)
}

func TestParseRequestStatus(t *testing.T) {
	for _, status := range []RequestStatus{RequestStatusNew, RequestStatusInProgress, RequestStatusClosed} {
		parsed, err := ParseRequestStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := ParseRequestStatus("done")
	require.Error(t, err)
}
