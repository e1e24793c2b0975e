package domain

import (
	"time"

	"github.com/google/uuid"
)

// ObjectStatus — трехфазный статус дома или участка. От него зависит,
// какой call-to-action показывает витрина.
type ObjectStatus string

const (
	StatusAvailable ObjectStatus = "available"
	StatusReserved  ObjectStatus = "reserved"
	StatusSold      ObjectStatus = "sold"
)

// StatusFilterAll — значение-сентинел в фильтре каталога: фильтр по статусу
// не применяется и не должен попадать в запрос как условие равенства.
const StatusFilterAll = "all"

func ParseObjectStatus(s string) (ObjectStatus, error) {
	switch ObjectStatus(s) {
	case StatusAvailable, StatusReserved, StatusSold:
		return ObjectStatus(s), nil
	}
	return "", NewValidationError("status", "unknown status: "+s)
}

// House — дом в каталоге поселка.
type House struct {
	ID          uuid.UUID
	Settlement  Settlement
	Title       string
	Description string
	PriceRub    int64
	AreaM2      float64
	PlotAreaM2  *float64
	Rooms       int
	Floors      int
	Status      ObjectStatus
	Images      []string
	Latitude    *float64
	Longitude   *float64
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Plot — земельный участок.
type Plot struct {
	ID              uuid.UUID
	Settlement      Settlement
	Number          string
	AreaM2          float64
	PriceRub        int64
	Status          ObjectStatus
	CadastralNumber string
	Latitude        *float64
	Longitude       *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CatalogFilters — разреженный набор опциональных фильтров каталога.
// nil-поле означает "фильтр не задан" и не попадает в запрос вовсе.
type CatalogFilters struct {
	MinPrice *int64
	MaxPrice *int64
	MinArea  *float64
	MaxArea  *float64
	MinRooms *int
	// Status: конкретный статус, "all" или пустая строка (оба значат "без фильтра").
	Status string
}

// MapPoint — объект на карте поселка. Geohash вычисляется хранилищем
// из координат и пригоден для группировки близких точек.
type MapPoint struct {
	ID       uuid.UUID
	Kind     string // "house" или "plot"
	Title    string
	Status   ObjectStatus
	Latitude  float64
	Longitude float64
	Geohash   string
}
