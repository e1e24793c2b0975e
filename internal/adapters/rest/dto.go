package rest

import (
	"time"

	"settlements-service/internal/core/domain"

	"github.com/google/uuid"
)

// BlockResponse - DTO блока главной страницы. Содержимое отдается как есть:
// его форма определяется типом блока.
type BlockResponse struct {
	ID         uuid.UUID           `json:"id"`
	Settlement string              `json:"settlement"`
	BlockType  string              `json:"block_type"`
	SortOrder  int                 `json:"sort_order"`
	IsEnabled  bool                `json:"is_enabled"`
	Content    domain.BlockContent `json:"content"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

func toBlockResponse(b domain.HomepageBlock) BlockResponse {
	return BlockResponse{
		ID:         b.ID,
		Settlement: string(b.Settlement),
		BlockType:  string(b.BlockType),
		SortOrder:  b.SortOrder,
		IsEnabled:  b.IsEnabled,
		Content:    b.Content,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func toBlockResponses(blocks []domain.HomepageBlock) []BlockResponse {
	result := make([]BlockResponse, len(blocks))
	for i, b := range blocks {
		result[i] = toBlockResponse(b)
	}
	return result
}

// CreateBlockRequest - тело POST /admin/blocks.
type CreateBlockRequest struct {
	BlockType string `json:"block_type"`
}

// MoveBlockRequest - тело POST /admin/blocks/move. Index — позиция блока
// в текущем отсортированном списке.
type MoveBlockRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction"`
}

// SetBlockEnabledRequest - тело PATCH /admin/blocks/{blockID}/enabled.
type SetBlockEnabledRequest struct {
	IsEnabled bool `json:"is_enabled"`
}

// HouseCardResponse - DTO карточки дома в каталоге.
type HouseCardResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	PriceRub int64     `json:"price_rub"`
	AreaM2   float64   `json:"area_m2"`
	Rooms    int       `json:"rooms"`
	Status   string    `json:"status"`
	Images   []string  `json:"images"`
}

func toHouseCardResponse(h domain.House) HouseCardResponse {
	return HouseCardResponse{
		ID:       h.ID,
		Title:    h.Title,
		PriceRub: h.PriceRub,
		AreaM2:   h.AreaM2,
		Rooms:    h.Rooms,
		Status:   string(h.Status),
		Images:   h.Images,
	}
}

// HouseDetailsResponse - DTO детальной страницы дома.
type HouseDetailsResponse struct {
	ID          uuid.UUID `json:"id"`
	Settlement  string    `json:"settlement"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PriceRub    int64     `json:"price_rub"`
	AreaM2      float64   `json:"area_m2"`
	PlotAreaM2  *float64  `json:"plot_area_m2"`
	Rooms       int       `json:"rooms"`
	Floors      int       `json:"floors"`
	Status      string    `json:"status"`
	Images      []string  `json:"images"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toHouseDetailsResponse(h domain.House) HouseDetailsResponse {
	return HouseDetailsResponse{
		ID:          h.ID,
		Settlement:  string(h.Settlement),
		Title:       h.Title,
		Description: h.Description,
		PriceRub:    h.PriceRub,
		AreaM2:      h.AreaM2,
		PlotAreaM2:  h.PlotAreaM2,
		Rooms:       h.Rooms,
		Floors:      h.Floors,
		Status:      string(h.Status),
		Images:      h.Images,
		Latitude:    h.Latitude,
		Longitude:   h.Longitude,
		IsPublished: h.IsPublished,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

// PlotResponse - DTO участка; для участков список и детали совпадают.
type PlotResponse struct {
	ID              uuid.UUID `json:"id"`
	Settlement      string    `json:"settlement"`
	Number          string    `json:"number"`
	AreaM2          float64   `json:"area_m2"`
	PriceRub        int64     `json:"price_rub"`
	Status          string    `json:"status"`
	CadastralNumber string    `json:"cadastral_number"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
}

func toPlotResponse(p domain.Plot) PlotResponse {
	return PlotResponse{
		ID:              p.ID,
		Settlement:      string(p.Settlement),
		Number:          p.Number,
		AreaM2:          p.AreaM2,
		PriceRub:        p.PriceRub,
		Status:          string(p.Status),
		CadastralNumber: p.CadastralNumber,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
	}
}

// MapPointResponse - DTO точки на карте поселка.
type MapPointResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Geohash   string    `json:"geohash"`
}

func toMapPointResponse(p domain.MapPoint) MapPointResponse {
	return MapPointResponse{
		ID:        p.ID,
		Kind:      p.Kind,
		Title:     p.Title,
		Status:    string(p.Status),
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Geohash:   p.Geohash,
	}
}

// SubmitLeadRequest - тело формы обращения.
type SubmitLeadRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
	HouseID string `json:"house_id"`
}

// LeadResponse - DTO обращения для админки.
type LeadResponse struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	Settlement string     `json:"settlement"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email"`
	Message    string     `json:"message"`
	HouseID    *uuid.UUID `json:"house_id,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

func toLeadResponse(l domain.Lead) LeadResponse {
	return LeadResponse{
		ID:         l.ID,
		Kind:       string(l.Kind),
		Settlement: string(l.Settlement),
		Name:       l.Name,
		Phone:      l.Phone,
		Email:      l.Email,
		Message:    l.Message,
		HouseID:    l.HouseID,
		Status:     string(l.Status),
		CreatedAt:  l.CreatedAt,
	}
}

// UpdateLeadStatusRequest - тело PATCH статуса обращения.
type UpdateLeadStatusRequest struct {
	Status string `json:"status"`
}

// NewsResponse - DTO новости.
type NewsResponse struct {
	ID          uuid.UUID `json:"id"`
	Settlement  string    `json:"settlement"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	ImageURL    string    `json:"image_url"`
	IsPublished bool      `json:"is_published"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toNewsResponse(n domain.News) NewsResponse {
	return NewsResponse{
		ID:          n.ID,
		Settlement:  string(n.Settlement),
		Title:       n.Title,
		Body:        n.Body,
		ImageURL:    n.ImageURL,
		IsPublished: n.IsPublished,
		PublishedAt: n.PublishedAt,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}

func toNewsResponses(items []domain.News) []NewsResponse {
	result := make([]NewsResponse, len(items))
	for i, n := range items {
		result[i] = toNewsResponse(n)
	}
	return result
}

// DocumentResponse - DTO документа.
type DocumentResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	FileURL   string    `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

// GalleryImageResponse - DTO фотографии галереи.
type GalleryImageResponse struct {
	ID        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption"`
	CreatedAt time.Time `json:"created_at"`
}

// SiteSettingsResponse - DTO контактных данных поселка.
type SiteSettingsResponse struct {
	Settlement      string   `json:"settlement"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Address         string   `json:"address"`
	Telegram        string   `json:"telegram"`
	Whatsapp        string   `json:"whatsapp"`
	OfficeLatitude  *float64 `json:"office_latitude"`
	OfficeLongitude *float64 `json:"office_longitude"`
}

func toSiteSettingsResponse(s domain.SiteSettings) SiteSettingsResponse {
	return SiteSettingsResponse{
		Settlement:      string(s.Settlement),
		Phone:           s.Phone,
		Email:           s.Email,
		Address:         s.Address,
		Telegram:        s.Telegram,
		Whatsapp:        s.Whatsapp,
		OfficeLatitude:  s.OfficeLatitude,
		OfficeLongitude: s.OfficeLongitude,
	}
}

// PageSettingsResponse - DTO SEO-настроек страницы.
type PageSettingsResponse struct {
	ID          uuid.UUID `json:"id"`
	Settlement  string    `json:"settlement"`
	Path        string    `json:"path"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

func toPageSettingsResponse(p domain.PageSettings) PageSettingsResponse {
	return PageSettingsResponse{
		ID:          p.ID,
		Settlement:  string(p.Settlement),
		Path:        p.Path,
		Title:       p.Title,
		Description: p.Description,
	}
}

// UserHouseCardResponse - DTO карточки дома в избранном/просмотренном.
type UserHouseCardResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	PriceRub int64     `json:"price_rub"`
	Status   string    `json:"status"`
	Image    string    `json:"image"`
	AddedAt  time.Time `json:"added_at"`
}

func toUserHouseCardResponses(cards []domain.HouseCard) []UserHouseCardResponse {
	result := make([]UserHouseCardResponse, len(cards))
	for i, c := range cards {
		result[i] = UserHouseCardResponse{
			ID:       c.ID,
			Title:    c.Title,
			PriceRub: c.PriceRub,
			Status:   string(c.Status),
			Image:    c.Image,
			AddedAt:  c.AddedAt,
		}
	}
	return result
}

// AddFavoriteRequest - тело POST /user/favorites.
type AddFavoriteRequest struct {
	HouseID string `json:"house_id"`
}

// ProfileResponse - DTO профиля пользователя.
type ProfileResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Phone    string    `json:"phone"`
}

// UpdateProfileRequest - тело PUT /user/profile.
type UpdateProfileRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// UserWithRolesResponse - строка списка пользователей в админке.
type UserWithRolesResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Roles    []string  `json:"roles"`
}

// RoleRequest - тело запросов выдачи/отзыва роли.
type RoleRequest struct {
	Role string `json:"role"`
}

// HouseRequest - тело создания/обновления дома в админке.
type HouseRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	PriceRub    int64    `json:"price_rub"`
	AreaM2      float64  `json:"area_m2"`
	PlotAreaM2  *float64 `json:"plot_area_m2"`
	Rooms       int      `json:"rooms"`
	Floors      int      `json:"floors"`
	Status      string   `json:"status"`
	Images      []string `json:"images"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	IsPublished bool     `json:"is_published"`
}

// PlotRequest - тело создания/обновления участка в админке.
type PlotRequest struct {
	Number          string   `json:"number"`
	AreaM2          float64  `json:"area_m2"`
	PriceRub        int64    `json:"price_rub"`
	Status          string   `json:"status"`
	CadastralNumber string   `json:"cadastral_number"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

// NewsRequest - тело создания/обновления новости.
type NewsRequest struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	ImageURL    string `json:"image_url"`
	IsPublished bool   `json:"is_published"`
}

// DocumentRequest - тело добавления документа.
type DocumentRequest struct {
	Title   string `json:"title"`
	FileURL string `json:"file_url"`
}

// GalleryImageRequest - тело добавления фотографии.
type GalleryImageRequest struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
}

// SiteSettingsRequest - тело обновления контактных данных.
type SiteSettingsRequest struct {
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Address         string   `json:"address"`
	Telegram        string   `json:"telegram"`
	Whatsapp        string   `json:"whatsapp"`
	OfficeLatitude  *float64 `json:"office_latitude"`
	OfficeLongitude *float64 `json:"office_longitude"`
}

// PageSettingsRequest - тело создания/обновления SEO-настроек страницы.
type PageSettingsRequest struct {
	Path        string `json:"path"`
	Title       string `json:"title"`
	Description string `json:"description"`
}
