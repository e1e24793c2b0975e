package postgres

import (
	"github.com/mmcloughlin/geohash"
)

// geohashPrecision - 8 символов дают точность ~±19 м, достаточно для
// группировки соседних объектов на карте поселка.
const geohashPrecision = 8

func encodeGeohash(lat, lng float64) string {
	return geohash.EncodeWithPrecision(lat, lng, geohashPrecision)
}
