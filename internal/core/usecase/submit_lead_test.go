package usecase

import (
	"context"
	"errors"
	"testing"

	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeadStorage struct {
	inserted  []domain.Lead
	insertErr error
}

func (s *fakeLeadStorage) Insert(_ context.Context, lead *domain.Lead) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.inserted = append(s.inserted, *lead)
	return nil
}

func (s *fakeLeadStorage) List(_ context.Context, _ domain.Settlement, _ domain.LeadKind, _ domain.RequestStatus) ([]domain.Lead, error) {
	return s.inserted, nil
}

func (s *fakeLeadStorage) UpdateStatus(_ context.Context, _ domain.LeadKind, _ uuid.UUID, _ domain.RequestStatus) error {
	return nil
}

type fakeLeadEvents struct {
	published  int
	publishErr error
}

func (e *fakeLeadEvents) LeadCreated(_ context.Context, _ *domain.Lead) error {
	e.published++
	return e.publishErr
}

func TestSubmitLead(t *testing.T) {
	ctx := context.Background()

	validLead := domain.Lead{
		Kind:       domain.LeadViewing,
		Settlement: domain.SettlementKolosok,
		Name:       "Мария",
		Phone:      "+7 900 000-00-00",
		Message:    "Хочу посмотреть дом в субботу",
	}

	t.Run("Валидное обращение сохраняется со статусом new", func(t *testing.T) {
		storage := &fakeLeadStorage{}
		events := &fakeLeadEvents{}
		uc := NewSubmitLeadUseCase(storage, events)

		created, err := uc.Execute(ctx, validLead)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, domain.RequestStatusNew, created.Status)
		assert.False(t, created.CreatedAt.IsZero())

		require.Len(t, storage.inserted, 1)
		assert.Equal(t, 1, events.published)
	})

	t.Run("Невалидное обращение не доходит до хранилища", func(t *testing.T) {
		storage := &fakeLeadStorage{}
		events := &fakeLeadEvents{}
		uc := NewSubmitLeadUseCase(storage, events)

		bad := validLead
		bad.Email = "not-an-email"

		_, err := uc.Execute(ctx, bad)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
		assert.Empty(t, storage.inserted)
		assert.Zero(t, events.published)
	})

	t.Run("Сбой публикации уведомления не отменяет сохранение", func(t *testing.T) {
		storage := &fakeLeadStorage{}
		events := &fakeLeadEvents{publishErr: errors.New("broker unavailable")}
		uc := NewSubmitLeadUseCase(storage, events)

		created, err := uc.Execute(ctx, validLead)
		require.NoError(t, err)
		assert.NotNil(t, created)
		assert.Len(t, storage.inserted, 1)
	})

	t.Run("Работает без брокера уведомлений", func(t *testing.T) {
		storage := &fakeLeadStorage{}
		uc := NewSubmitLeadUseCase(storage, nil)

		_, err := uc.Execute(ctx, validLead)
		require.NoError(t, err)
		assert.Len(t, storage.inserted, 1)
	})

	t.Run("Ошибка хранилища возвращается как есть", func(t *testing.T) {
		storageErr := errors.New("connection reset")
		storage := &fakeLeadStorage{insertErr: storageErr}
		uc := NewSubmitLeadUseCase(storage, &fakeLeadEvents{})

		_, err := uc.Execute(ctx, validLead)
		assert.ErrorIs(t, err, storageErr)
	})
}
