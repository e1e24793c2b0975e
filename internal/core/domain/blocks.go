package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BlockType определяет форму поля Content. Тип блока неизменяем после
// создания: смена представления — это удаление и создание заново.
type BlockType string

const (
	BlockTypeHero    BlockType = "hero"
	BlockTypeCatalog BlockType = "catalog"
	BlockTypeText    BlockType = "text"
	BlockTypeBanner  BlockType = "banner"
	BlockTypeCTA     BlockType = "cta"
)

// AllBlockTypes — реестр распознаваемых типов блоков.
var AllBlockTypes = []BlockType{BlockTypeHero, BlockTypeCatalog, BlockTypeText, BlockTypeBanner, BlockTypeCTA}

// ParseBlockType возвращает ValidationError для нераспознанного типа.
func ParseBlockType(s string) (BlockType, error) {
	for _, t := range AllBlockTypes {
		if BlockType(s) == t {
			return t, nil
		}
	}
	return "", NewValidationError("blockType", "unknown block type: "+s)
}

// BlockContent — размеченное объединение: по одному варианту на тип блока.
// Приватный метод-маркер не дает подсунуть произвольную структуру.
type BlockContent interface {
	blockType() BlockType
}

// HeroContent — главный экран страницы поселка.
type HeroContent struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	ButtonText      string `json:"buttonText"`
	ButtonLink      string `json:"buttonLink"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
}

// CatalogContent — витрина каталога на главной.
type CatalogContent struct {
	Title string `json:"title"`
	// ShowCount — сколько карточек показывать, по умолчанию 6.
	ShowCount int `json:"showCount,omitempty"`
	// FilterByStatus — статус объектов либо "all" (без фильтра).
	FilterByStatus string `json:"filterByStatus,omitempty"`
}

// TextContent — произвольный текстовый блок.
type TextContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// BannerContent — рекламный баннер с кнопкой.
type BannerContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	ButtonLink  string `json:"buttonLink"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// CTAContent — призыв к действию.
type CTAContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	ButtonLink  string `json:"buttonLink"`
}

func (HeroContent) blockType() BlockType    { return BlockTypeHero }
func (CatalogContent) blockType() BlockType { return BlockTypeCatalog }
func (TextContent) blockType() BlockType    { return BlockTypeText }
func (BannerContent) blockType() BlockType  { return BlockTypeBanner }
func (CTAContent) blockType() BlockType     { return BlockTypeCTA }

// DefaultContent возвращает содержимое-заготовку для нового блока.
func DefaultContent(t BlockType) (BlockContent, error) {
	switch t {
	case BlockTypeHero:
		return HeroContent{
			Title:      "Новый блок",
			Subtitle:   "Подзаголовок",
			ButtonText: "Подробнее",
			ButtonLink: "/",
		}, nil
	case BlockTypeCatalog:
		return CatalogContent{
			Title:          "Каталог домов",
			ShowCount:      6,
			FilterByStatus: "all",
		}, nil
	case BlockTypeText:
		return TextContent{Title: "Новый блок", Content: "Текст блока"}, nil
	case BlockTypeBanner:
		return BannerContent{
			Title:       "Новый баннер",
			Description: "Описание",
			ButtonText:  "Подробнее",
			ButtonLink:  "/",
		}, nil
	case BlockTypeCTA:
		return CTAContent{
			Title:       "Остались вопросы?",
			Description: "Оставьте заявку, и мы свяжемся с вами",
			ButtonText:  "Оставить заявку",
			ButtonLink:  "/contacts",
		}, nil
	}
	return nil, NewValidationError("blockType", "unknown block type: "+string(t))
}

// DecodeContent разбирает JSON-содержимое в вариант, соответствующий типу блока.
// Кросс-типовое приведение не поддерживается: тип берется только из самого блока.
func DecodeContent(t BlockType, raw []byte) (BlockContent, error) {
	switch t {
	case BlockTypeHero:
		var c HeroContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, NewValidationError("content", err.Error())
		}
		return c, nil
	case BlockTypeCatalog:
		var c CatalogContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, NewValidationError("content", err.Error())
		}
		if c.ShowCount == 0 {
			c.ShowCount = 6
		}
		return c, nil
	case BlockTypeText:
		var c TextContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, NewValidationError("content", err.Error())
		}
		return c, nil
	case BlockTypeBanner:
		var c BannerContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, NewValidationError("content", err.Error())
		}
		return c, nil
	case BlockTypeCTA:
		var c CTAContent
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, NewValidationError("content", err.Error())
		}
		return c, nil
	}
	return nil, NewValidationError("blockType", "unknown block type: "+string(t))
}

// HomepageBlock — один элемент упорядоченной последовательности блоков главной
// страницы поселка. SortOrder уникален в пределах поселка; разрывы в нумерации
// допустимы, важен только относительный порядок.
type HomepageBlock struct {
	ID         uuid.UUID
	Settlement Settlement
	BlockType  BlockType
	SortOrder  int
	IsEnabled  bool
	Content    BlockContent
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EnabledOnly — чистая функция над отсортированным списком: публичный рендер
// использует ровно тот же список, что и админка, но без выключенных блоков.
func EnabledOnly(blocks []HomepageBlock) []HomepageBlock {
	result := make([]HomepageBlock, 0, len(blocks))
	for _, b := range blocks {
		if b.IsEnabled {
			result = append(result, b)
		}
	}
	return result
}
