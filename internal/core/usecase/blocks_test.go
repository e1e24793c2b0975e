package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/port/usecases_port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBlockRepo — in-memory реализация BlockRepositoryPort для тестов.
type fakeBlockRepo struct {
	blocks    map[uuid.UUID]domain.HomepageBlock
	swapCalls int
}

func newFakeBlockRepo(blocks ...domain.HomepageBlock) *fakeBlockRepo {
	repo := &fakeBlockRepo{blocks: make(map[uuid.UUID]domain.HomepageBlock)}
	for _, b := range blocks {
		repo.blocks[b.ID] = b
	}
	return repo
}

func (r *fakeBlockRepo) ListBySettlement(_ context.Context, settlement domain.Settlement) ([]domain.HomepageBlock, error) {
	var result []domain.HomepageBlock
	for _, b := range r.blocks {
		if b.Settlement == settlement {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].SortOrder != result[j].SortOrder {
			return result[i].SortOrder < result[j].SortOrder
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (r *fakeBlockRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.HomepageBlock, error) {
	b, ok := r.blocks[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBlockRepo) Create(_ context.Context, block *domain.HomepageBlock) error {
	r.blocks[block.ID] = *block
	return nil
}

func (r *fakeBlockRepo) UpdateContent(_ context.Context, id uuid.UUID, content domain.BlockContent) error {
	b, ok := r.blocks[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Content = content
	r.blocks[id] = b
	return nil
}

func (r *fakeBlockRepo) SetEnabled(_ context.Context, id uuid.UUID, enabled bool) error {
	b, ok := r.blocks[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.IsEnabled = enabled
	r.blocks[id] = b
	return nil
}

func (r *fakeBlockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.blocks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.blocks, id)
	return nil
}

func (r *fakeBlockRepo) SwapOrder(_ context.Context, first, second domain.HomepageBlock) error {
	a, okA := r.blocks[first.ID]
	b, okB := r.blocks[second.ID]
	if !okA || !okB {
		return domain.ErrNotFound
	}
	a.SortOrder, b.SortOrder = b.SortOrder, a.SortOrder
	r.blocks[first.ID] = a
	r.blocks[second.ID] = b
	r.swapCalls++
	return nil
}

func makeBlock(settlement domain.Settlement, blockType domain.BlockType, order int, enabled bool) domain.HomepageBlock {
	content, _ := domain.DefaultContent(blockType)
	return domain.HomepageBlock{
		ID:         uuid.New(),
		Settlement: settlement,
		BlockType:  blockType,
		SortOrder:  order,
		IsEnabled:  enabled,
		Content:    content,
	}
}

func TestCreateBlock(t *testing.T) {
	ctx := context.Background()

	t.Run("Первый блок поселка получает порядок 0", func(t *testing.T) {
		repo := newFakeBlockRepo()
		uc := NewCreateBlockUseCase(repo)

		block, err := uc.Execute(ctx, domain.SettlementZapovednoe, domain.BlockTypeHero)
		require.NoError(t, err)
		assert.Equal(t, 0, block.SortOrder)
		assert.True(t, block.IsEnabled)
		assert.NotEqual(t, uuid.Nil, block.ID)
	})

	t.Run("Новый блок встает в конец даже при разрывах нумерации", func(t *testing.T) {
		repo := newFakeBlockRepo(
			makeBlock(domain.SettlementZapovednoe, domain.BlockTypeHero, 0, true),
			makeBlock(domain.SettlementZapovednoe, domain.BlockTypeText, 5, false),
		)
		uc := NewCreateBlockUseCase(repo)

		block, err := uc.Execute(ctx, domain.SettlementZapovednoe, domain.BlockTypeCTA)
		require.NoError(t, err)
		assert.Equal(t, 6, block.SortOrder)
	})

	t.Run("Нумерация независима между поселками", func(t *testing.T) {
		repo := newFakeBlockRepo(
			makeBlock(domain.SettlementKolosok, domain.BlockTypeHero, 4, true),
		)
		uc := NewCreateBlockUseCase(repo)

		block, err := uc.Execute(ctx, domain.SettlementZapovednoe, domain.BlockTypeHero)
		require.NoError(t, err)
		assert.Equal(t, 0, block.SortOrder)
	})

	t.Run("Неизвестный тип блока отклоняется", func(t *testing.T) {
		repo := newFakeBlockRepo()
		uc := NewCreateBlockUseCase(repo)

		_, err := uc.Execute(ctx, domain.SettlementZapovednoe, domain.BlockType("carousel"))
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
		assert.Empty(t, repo.blocks)
	})
}

func TestMoveBlock(t *testing.T) {
	ctx := context.Background()
	settlement := domain.SettlementZapovednoe

	setup := func() (*fakeBlockRepo, []domain.HomepageBlock) {
		// Разрывы в нумерации: соседство определяется порядком, не значениями
		blocks := []domain.HomepageBlock{
			makeBlock(settlement, domain.BlockTypeHero, 0, true),
			makeBlock(settlement, domain.BlockTypeCatalog, 3, true),
			makeBlock(settlement, domain.BlockTypeCTA, 7, true),
		}
		return newFakeBlockRepo(blocks...), blocks
	}

	t.Run("Сдвиг вниз меняет блок местами с нижним соседом", func(t *testing.T) {
		repo, blocks := setup()
		uc := NewMoveBlockUseCase(repo)

		err := uc.Execute(ctx, settlement, 0, usecases_port.MoveDown)
		require.NoError(t, err)
		assert.Equal(t, 1, repo.swapCalls)

		// Блоки обменялись значениями sort_order
		assert.Equal(t, 3, repo.blocks[blocks[0].ID].SortOrder)
		assert.Equal(t, 0, repo.blocks[blocks[1].ID].SortOrder)
		// Третий блок не тронут
		assert.Equal(t, 7, repo.blocks[blocks[2].ID].SortOrder)
	})

	t.Run("Сдвиг вверх меняет блок местами с верхним соседом", func(t *testing.T) {
		repo, blocks := setup()
		uc := NewMoveBlockUseCase(repo)

		err := uc.Execute(ctx, settlement, 2, usecases_port.MoveUp)
		require.NoError(t, err)
		assert.Equal(t, 3, repo.blocks[blocks[2].ID].SortOrder)
		assert.Equal(t, 7, repo.blocks[blocks[1].ID].SortOrder)
	})

	t.Run("Первый вверх — no-op без ошибки", func(t *testing.T) {
		repo, _ := setup()
		uc := NewMoveBlockUseCase(repo)

		err := uc.Execute(ctx, settlement, 0, usecases_port.MoveUp)
		require.NoError(t, err)
		assert.Zero(t, repo.swapCalls)
	})

	t.Run("Последний вниз — no-op без ошибки", func(t *testing.T) {
		repo, _ := setup()
		uc := NewMoveBlockUseCase(repo)

		err := uc.Execute(ctx, settlement, 2, usecases_port.MoveDown)
		require.NoError(t, err)
		assert.Zero(t, repo.swapCalls)
	})

	t.Run("Индекс за пределами списка — ошибка валидации", func(t *testing.T) {
		repo, _ := setup()
		uc := NewMoveBlockUseCase(repo)

		for _, index := range []int{-1, 3, 100} {
			err := uc.Execute(ctx, settlement, index, usecases_port.MoveDown)
			require.Error(t, err, "index %d", index)
			assert.True(t, domain.IsValidationError(err))
		}
		assert.Zero(t, repo.swapCalls)
	})

	t.Run("Неизвестное направление — ошибка валидации", func(t *testing.T) {
		repo, _ := setup()
		uc := NewMoveBlockUseCase(repo)

		err := uc.Execute(ctx, settlement, 1, usecases_port.MoveDirection("sideways"))
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestUpdateBlockContent(t *testing.T) {
	ctx := context.Background()

	t.Run("Содержимое заменяется целиком", func(t *testing.T) {
		block := makeBlock(domain.SettlementKolosok, domain.BlockTypeText, 0, true)
		repo := newFakeBlockRepo(block)
		uc := NewUpdateBlockContentUseCase(repo)

		updated, err := uc.Execute(ctx, block.ID, json.RawMessage(`{"title":"О поселке","content":"Новый текст"}`))
		require.NoError(t, err)

		text, ok := updated.Content.(domain.TextContent)
		require.True(t, ok)
		assert.Equal(t, "О поселке", text.Title)

		stored := repo.blocks[block.ID].Content.(domain.TextContent)
		assert.Equal(t, "Новый текст", stored.Content)
	})

	t.Run("Несуществующий блок — ErrNotFound", func(t *testing.T) {
		repo := newFakeBlockRepo()
		uc := NewUpdateBlockContentUseCase(repo)

		_, err := uc.Execute(ctx, uuid.New(), json.RawMessage(`{"title":"x","content":"y"}`))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Содержимое не по схеме типа отклоняется", func(t *testing.T) {
		block := makeBlock(domain.SettlementKolosok, domain.BlockTypeHero, 0, true)
		repo := newFakeBlockRepo(block)
		uc := NewUpdateBlockContentUseCase(repo)

		// Для hero обязателен buttonText
		_, err := uc.Execute(ctx, block.ID, json.RawMessage(`{"title":"Т","subtitle":"П","buttonLink":"/"}`))
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))

		// Содержимое в хранилище не изменилось
		hero := repo.blocks[block.ID].Content.(domain.HeroContent)
		assert.Equal(t, "Подробнее", hero.ButtonText)
	})
}

func TestSetBlockEnabledAndDelete(t *testing.T) {
	ctx := context.Background()
	settlement := domain.SettlementZapovednoe

	blocks := []domain.HomepageBlock{
		makeBlock(settlement, domain.BlockTypeHero, 0, true),
		makeBlock(settlement, domain.BlockTypeText, 1, true),
		makeBlock(settlement, domain.BlockTypeCTA, 2, true),
	}
	repo := newFakeBlockRepo(blocks...)

	// Выключение убирает блок из публичного рендера, но не из админки
	require.NoError(t, NewSetBlockEnabledUseCase(repo).Execute(ctx, blocks[1].ID, false))

	all, err := NewListBlocksUseCase(repo).Execute(ctx, settlement)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Len(t, domain.EnabledOnly(all), 2)

	// Удаление не перенумеровывает оставшиеся блоки
	require.NoError(t, NewDeleteBlockUseCase(repo).Execute(ctx, blocks[1].ID))

	remaining, err := NewListBlocksUseCase(repo).Execute(ctx, settlement)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, 0, remaining[0].SortOrder)
	assert.Equal(t, 2, remaining[1].SortOrder)

	assert.ErrorIs(t, NewDeleteBlockUseCase(repo).Execute(ctx, blocks[1].ID), domain.ErrNotFound)
}
