package contracts

import (
	"encoding/json"
	"testing"

	"settlements-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContentPassesSchemas(t *testing.T) {
	// Заготовка нового блока обязана проходить схему своего типа,
	// иначе созданный блок нельзя будет сохранить после первого же редактирования.
	for _, bt := range domain.AllBlockTypes {
		t.Run(string(bt), func(t *testing.T) {
			content, err := domain.DefaultContent(bt)
			require.NoError(t, err)

			body, err := json.Marshal(content)
			require.NoError(t, err)

			assert.NoError(t, ValidateBlockContent(bt, body))
		})
	}
}

func TestValidateBlockContent(t *testing.T) {
	tests := []struct {
		name      string
		blockType domain.BlockType
		body      string
		wantErr   bool
	}{
		{
			name:      "Полный hero проходит",
			blockType: domain.BlockTypeHero,
			body:      `{"title":"Заповедное","subtitle":"Дома у озера","buttonText":"Смотреть","buttonLink":"/houses"}`,
		},
		{
			name:      "Hero без buttonText отклоняется",
			blockType: domain.BlockTypeHero,
			body:      `{"title":"Заповедное","subtitle":"Дома у озера","buttonLink":"/houses"}`,
			wantErr:   true,
		},
		{
			name:      "Hero с пустым title отклоняется",
			blockType: domain.BlockTypeHero,
			body:      `{"title":"","subtitle":"П","buttonText":"С","buttonLink":"/"}`,
			wantErr:   true,
		},
		{
			name:      "Неизвестное поле отклоняется",
			blockType: domain.BlockTypeText,
			body:      `{"title":"О нас","content":"Текст","videoUrl":"https://example.com"}`,
			wantErr:   true,
		},
		{
			name:      "Catalog с невалидным filterByStatus отклоняется",
			blockType: domain.BlockTypeCatalog,
			body:      `{"title":"Каталог","filterByStatus":"archived"}`,
			wantErr:   true,
		},
		{
			name:      "Catalog с showCount меньше 1 отклоняется",
			blockType: domain.BlockTypeCatalog,
			body:      `{"title":"Каталог","showCount":0}`,
			wantErr:   true,
		},
		{
			name:      "Невалидный JSON",
			blockType: domain.BlockTypeCTA,
			body:      `{"title":`,
			wantErr:   true,
		},
		{
			name:      "Неизвестный тип блока",
			blockType: domain.BlockType("carousel"),
			body:      `{}`,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBlockContent(tt.blockType, []byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidationError(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
