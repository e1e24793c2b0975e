package postgres

import (
	"fmt"
	"strings"

	"settlements-service/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder(settlement domain.Settlement) *queryBuilder {
	qb := &queryBuilder{
		argId:      1,
		conditions: make([]string, 0),
		args:       make([]interface{}, 0),
	}
	qb.addCondition("%s = $%d", "settlement", settlement)
	return qb
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddFilter-методы принимают указатели; nil означает "граница не задана".
func (qb *queryBuilder) AddInt64Filter(fieldName string, min *int64, max *int64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntFilter(fieldName string, min *int, max *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

// build создает WHERE-часть запроса и аргументы
func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyHouseFilters разбирает фильтры каталога домов. Все фильтры опциональны
// и соединяются через AND; статус "all" (и пустая строка) в запрос не попадает.
func applyHouseFilters(settlement domain.Settlement, filters domain.CatalogFilters) (string, []interface{}) {
	qb := newQueryBuilder(settlement)

	// Витрина показывает только опубликованные дома
	qb.addCondition("%s = $%d", "is_published", true)

	qb.AddInt64Filter("price_rub", filters.MinPrice, filters.MaxPrice)
	qb.AddFloatFilter("area_m2", filters.MinArea, filters.MaxArea)
	qb.AddIntFilter("rooms", filters.MinRooms, nil)

	if filters.Status != "" && filters.Status != domain.StatusFilterAll {
		qb.addCondition("%s = $%d", "status", filters.Status)
	}

	return qb.build()
}

// applyPlotFilters — то же для участков; у участков нет комнат и публикации.
func applyPlotFilters(settlement domain.Settlement, filters domain.CatalogFilters) (string, []interface{}) {
	qb := newQueryBuilder(settlement)

	qb.AddInt64Filter("price_rub", filters.MinPrice, filters.MaxPrice)
	qb.AddFloatFilter("area_m2", filters.MinArea, filters.MaxArea)

	if filters.Status != "" && filters.Status != domain.StatusFilterAll {
		qb.addCondition("%s = $%d", "status", filters.Status)
	}

	return qb.build()
}
