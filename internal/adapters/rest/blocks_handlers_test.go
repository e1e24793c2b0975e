package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"settlements-service/internal/core/domain"
	"settlements-service/internal/core/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBlockRepo struct {
	blocks map[uuid.UUID]domain.HomepageBlock
}

func newMemoryBlockRepo() *memoryBlockRepo {
	return &memoryBlockRepo{blocks: make(map[uuid.UUID]domain.HomepageBlock)}
}

func (r *memoryBlockRepo) ListBySettlement(_ context.Context, settlement domain.Settlement) ([]domain.HomepageBlock, error) {
	var result []domain.HomepageBlock
	for _, b := range r.blocks {
		if b.Settlement == settlement {
			result = append(result, b)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SortOrder < result[j].SortOrder })
	return result, nil
}

func (r *memoryBlockRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.HomepageBlock, error) {
	b, ok := r.blocks[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *memoryBlockRepo) Create(_ context.Context, block *domain.HomepageBlock) error {
	r.blocks[block.ID] = *block
	return nil
}

func (r *memoryBlockRepo) UpdateContent(_ context.Context, id uuid.UUID, content domain.BlockContent) error {
	b, ok := r.blocks[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Content = content
	r.blocks[id] = b
	return nil
}

func (r *memoryBlockRepo) SetEnabled(_ context.Context, id uuid.UUID, enabled bool) error {
	b, ok := r.blocks[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.IsEnabled = enabled
	r.blocks[id] = b
	return nil
}

func (r *memoryBlockRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.blocks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.blocks, id)
	return nil
}

func (r *memoryBlockRepo) SwapOrder(_ context.Context, first, second domain.HomepageBlock) error {
	a := r.blocks[first.ID]
	b := r.blocks[second.ID]
	a.SortOrder, b.SortOrder = b.SortOrder, a.SortOrder
	r.blocks[first.ID] = a
	r.blocks[second.ID] = b
	return nil
}

func newBlocksRouter(repo *memoryBlockRepo) chi.Router {
	handler := NewBlocksHandler(
		usecase.NewListBlocksUseCase(repo),
		usecase.NewCreateBlockUseCase(repo),
		usecase.NewUpdateBlockContentUseCase(repo),
		usecase.NewSetBlockEnabledUseCase(repo),
		usecase.NewMoveBlockUseCase(repo),
		usecase.NewDeleteBlockUseCase(repo),
	)

	r := chi.NewRouter()
	r.Route("/{settlement}", func(r chi.Router) {
		r.Use(SettlementMiddleware)
		r.Get("/homepage", handler.GetHomepage)
		r.Get("/blocks", handler.ListBlocks)
		r.Post("/blocks", handler.CreateBlock)
		r.Post("/blocks/move", handler.MoveBlock)
		r.Put("/blocks/{blockID}/content", handler.UpdateBlockContent)
		r.Patch("/blocks/{blockID}/enabled", handler.SetBlockEnabled)
		r.Delete("/blocks/{blockID}", handler.DeleteBlock)
	})
	return r
}

func seedBlock(repo *memoryBlockRepo, settlement domain.Settlement, bt domain.BlockType, order int, enabled bool) domain.HomepageBlock {
	content, _ := domain.DefaultContent(bt)
	block := domain.HomepageBlock{
		ID:         uuid.New(),
		Settlement: settlement,
		BlockType:  bt,
		SortOrder:  order,
		IsEnabled:  enabled,
		Content:    content,
	}
	repo.blocks[block.ID] = block
	return block
}

// blockJSON — облегченная форма BlockResponse для разбора ответов в тестах:
// content остается сырым JSON, его форма зависит от типа блока.
type blockJSON struct {
	ID        uuid.UUID       `json:"id"`
	BlockType string          `json:"block_type"`
	SortOrder int             `json:"sort_order"`
	IsEnabled bool            `json:"is_enabled"`
	Content   json.RawMessage `json:"content"`
}

func TestGetHomepage(t *testing.T) {
	repo := newMemoryBlockRepo()
	seedBlock(repo, domain.SettlementZapovednoe, domain.BlockTypeHero, 0, true)
	seedBlock(repo, domain.SettlementZapovednoe, domain.BlockTypeBanner, 1, false)
	seedBlock(repo, domain.SettlementZapovednoe, domain.BlockTypeCTA, 2, true)
	seedBlock(repo, domain.SettlementKolosok, domain.BlockTypeHero, 0, true)

	r := newBlocksRouter(repo)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/zapovednoe/homepage", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []blockJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Выключенный баннер скрыт, чужой поселок не подмешан, порядок сохранен
	require.Len(t, resp, 2)
	assert.Equal(t, "hero", resp[0].BlockType)
	assert.Equal(t, "cta", resp[1].BlockType)

	// Админский список отдает все три блока
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/zapovednoe/blocks", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var adminResp []blockJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &adminResp))
	assert.Len(t, adminResp, 3)
}

func TestCreateBlockHandler(t *testing.T) {
	repo := newMemoryBlockRepo()
	seedBlock(repo, domain.SettlementZapovednoe, domain.BlockTypeHero, 0, true)
	r := newBlocksRouter(repo)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/zapovednoe/blocks",
		strings.NewReader(`{"block_type":"cta"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp blockJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cta", resp.BlockType)
	assert.Equal(t, 1, resp.SortOrder)
	assert.True(t, resp.IsEnabled)

	t.Run("Неизвестный тип — 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/zapovednoe/blocks",
			strings.NewReader(`{"block_type":"carousel"}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestMoveBlockHandler(t *testing.T) {
	repo := newMemoryBlockRepo()
	first := seedBlock(repo, domain.SettlementKolosok, domain.BlockTypeHero, 0, true)
	second := seedBlock(repo, domain.SettlementKolosok, domain.BlockTypeText, 1, true)
	r := newBlocksRouter(repo)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/kolosok/blocks/move",
		strings.NewReader(`{"index":0,"direction":"down"}`)))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, repo.blocks[first.ID].SortOrder)
	assert.Equal(t, 0, repo.blocks[second.ID].SortOrder)

	t.Run("Индекс за пределами — 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/kolosok/blocks/move",
			strings.NewReader(`{"index":5,"direction":"up"}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateBlockContentHandler(t *testing.T) {
	repo := newMemoryBlockRepo()
	block := seedBlock(repo, domain.SettlementZapovednoe, domain.BlockTypeText, 0, true)
	r := newBlocksRouter(repo)

	t.Run("Валидное содержимое заменяется", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut,
			"/zapovednoe/blocks/"+block.ID.String()+"/content",
			strings.NewReader(`{"title":"О поселке","content":"Обновленный текст"}`)))

		require.Equal(t, http.StatusOK, rec.Code)
		stored := repo.blocks[block.ID].Content.(domain.TextContent)
		assert.Equal(t, "Обновленный текст", stored.Content)
	})

	t.Run("Содержимое не по схеме — 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut,
			"/zapovednoe/blocks/"+block.ID.String()+"/content",
			strings.NewReader(`{"title":"Без тела"}`)))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Несуществующий блок — 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut,
			"/zapovednoe/blocks/"+uuid.NewString()+"/content",
			strings.NewReader(`{"title":"x","content":"y"}`)))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSetBlockEnabledHandler(t *testing.T) {
	repo := newMemoryBlockRepo()
	block := seedBlock(repo, domain.SettlementZapovednoe, domain.BlockTypeBanner, 0, true)
	r := newBlocksRouter(repo)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch,
		"/zapovednoe/blocks/"+block.ID.String()+"/enabled",
		strings.NewReader(`{"is_enabled":false}`)))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, repo.blocks[block.ID].IsEnabled)
}

func TestDeleteBlockHandler(t *testing.T) {
	repo := newMemoryBlockRepo()
	block := seedBlock(repo, domain.SettlementZapovednoe, domain.BlockTypeBanner, 0, true)
	r := newBlocksRouter(repo)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete,
		"/zapovednoe/blocks/"+block.ID.String(), nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, repo.blocks)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete,
		"/zapovednoe/blocks/"+block.ID.String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
