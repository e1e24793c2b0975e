package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeGeohash(t *testing.T) {
	// Опорное значение из описания алгоритма geohash
	assert.Equal(t, "u4pruydq", encodeGeohash(57.64911, 10.40744))

	// Детерминированность: карта не должна "дрожать" между запросами
	assert.Equal(t, encodeGeohash(55.75, 37.61), encodeGeohash(55.75, 37.61))

	assert.Len(t, encodeGeohash(55.7501, 37.6101), geohashPrecision)
}
