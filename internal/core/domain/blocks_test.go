package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlockType(t *testing.T) {
	for _, bt := range AllBlockTypes {
		parsed, err := ParseBlockType(string(bt))
		require.NoError(t, err)
		assert.Equal(t, bt, parsed)
	}

	_, err := ParseBlockType("carousel")
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestDefaultContent(t *testing.T) {
	// У каждого типа блока должна быть заготовка, и её вариант должен
	// соответствовать самому типу.
	for _, bt := range AllBlockTypes {
		content, err := DefaultContent(bt)
		require.NoError(t, err, "block type %s", bt)
		require.NotNil(t, content)
	}

	_, err := DefaultContent(BlockType("carousel"))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name      string
		blockType BlockType
		raw       string
		check     func(t *testing.T, content BlockContent)
		wantErr   bool
	}{
		{
			name:      "Hero декодируется в HeroContent",
			blockType: BlockTypeHero,
			raw:       `{"title":"Заповедное","subtitle":"Дома у озера","buttonText":"Смотреть","buttonLink":"/houses"}`,
			check: func(t *testing.T, content BlockContent) {
				hero, ok := content.(HeroContent)
				require.True(t, ok)
				assert.Equal(t, "Заповедное", hero.Title)
				assert.Equal(t, "/houses", hero.ButtonLink)
			},
		},
		{
			name:      "Catalog без showCount получает значение по умолчанию",
			blockType: BlockTypeCatalog,
			raw:       `{"title":"Каталог"}`,
			check: func(t *testing.T, content BlockContent) {
				catalog, ok := content.(CatalogContent)
				require.True(t, ok)
				assert.Equal(t, 6, catalog.ShowCount)
			},
		},
		{
			name:      "Catalog сохраняет явный showCount",
			blockType: BlockTypeCatalog,
			raw:       `{"title":"Каталог","showCount":3}`,
			check: func(t *testing.T, content BlockContent) {
				catalog, ok := content.(CatalogContent)
				require.True(t, ok)
				assert.Equal(t, 3, catalog.ShowCount)
			},
		},
		{
			name:      "Невалидный JSON",
			blockType: BlockTypeText,
			raw:       `{"title":`,
			wantErr:   true,
		},
		{
			name:      "Неизвестный тип блока",
			blockType: BlockType("carousel"),
			raw:       `{}`,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, err := DecodeContent(tt.blockType, json.RawMessage(tt.raw))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
				return
			}
			require.NoError(t, err)
			tt.check(t, content)
		})
	}
}

func TestEnabledOnly(t *testing.T) {
	blocks := []HomepageBlock{
		{BlockType: BlockTypeHero, SortOrder: 0, IsEnabled: true},
		{BlockType: BlockTypeCatalog, SortOrder: 1, IsEnabled: false},
		{BlockType: BlockTypeText, SortOrder: 2, IsEnabled: true},
		{BlockType: BlockTypeCTA, SortOrder: 7, IsEnabled: false},
	}

	visible := EnabledOnly(blocks)

	// Порядок сохраняется, выключенные пропадают
	require.Len(t, visible, 2)
	assert.Equal(t, BlockTypeHero, visible[0].BlockType)
	assert.Equal(t, BlockTypeText, visible[1].BlockType)

	// Исходный список не изменяется
	assert.Len(t, blocks, 4)

	assert.Empty(t, EnabledOnly(nil))
}
