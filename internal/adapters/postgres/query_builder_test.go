package postgres

import (
	"testing"

	"settlements-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestApplyHouseFilters(t *testing.T) {
	t.Run("Без фильтров остаются только поселок и публикация", func(t *testing.T) {
		where, args := applyHouseFilters(domain.SettlementZapovednoe, domain.CatalogFilters{})

		assert.Equal(t, "WHERE settlement = $1 AND is_published = $2", where)
		require.Len(t, args, 2)
		assert.Equal(t, domain.SettlementZapovednoe, args[0])
		assert.Equal(t, true, args[1])
	})

	t.Run("Статус all не попадает в запрос", func(t *testing.T) {
		whereAll, argsAll := applyHouseFilters(domain.SettlementZapovednoe, domain.CatalogFilters{Status: domain.StatusFilterAll})
		whereEmpty, argsEmpty := applyHouseFilters(domain.SettlementZapovednoe, domain.CatalogFilters{})

		assert.Equal(t, whereEmpty, whereAll)
		assert.Equal(t, argsEmpty, argsAll)
	})

	t.Run("Все фильтры соединяются через AND с последовательной нумерацией", func(t *testing.T) {
		filters := domain.CatalogFilters{
			MinPrice: int64Ptr(5_000_000),
			MaxPrice: int64Ptr(12_000_000),
			MinArea:  floatPtr(80),
			MaxArea:  floatPtr(150),
			MinRooms: intPtr(3),
			Status:   string(domain.StatusAvailable),
		}

		where, args := applyHouseFilters(domain.SettlementKolosok, filters)

		assert.Equal(t,
			"WHERE settlement = $1 AND is_published = $2 AND price_rub >= $3 AND price_rub <= $4"+
				" AND area_m2 >= $5 AND area_m2 <= $6 AND rooms >= $7 AND status = $8",
			where)
		require.Len(t, args, 8)
		assert.Equal(t, int64(5_000_000), args[2])
		assert.Equal(t, 3, args[6])
		assert.Equal(t, string(domain.StatusAvailable), args[7])
	})

	t.Run("Границы необязательны по отдельности", func(t *testing.T) {
		where, args := applyHouseFilters(domain.SettlementKolosok, domain.CatalogFilters{
			MaxPrice: int64Ptr(9_000_000),
		})

		assert.Equal(t, "WHERE settlement = $1 AND is_published = $2 AND price_rub <= $3", where)
		assert.Len(t, args, 3)
	})
}

func TestApplyPlotFilters(t *testing.T) {
	t.Run("У участков нет фильтра публикации", func(t *testing.T) {
		where, args := applyPlotFilters(domain.SettlementZapovednoe, domain.CatalogFilters{})

		assert.Equal(t, "WHERE settlement = $1", where)
		assert.Len(t, args, 1)
	})

	t.Run("Комнаты не применяются к участкам", func(t *testing.T) {
		where, _ := applyPlotFilters(domain.SettlementZapovednoe, domain.CatalogFilters{
			MinRooms: intPtr(2),
			Status:   string(domain.StatusSold),
		})

		assert.Equal(t, "WHERE settlement = $1 AND status = $2", where)
	})
}
