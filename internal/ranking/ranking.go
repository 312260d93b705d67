// Package ranking holds the pure computations behind directory search:
// great-circle distance, rating aggregation, and the post-fetch filters.
// Nothing here touches storage; missing inputs degrade to nil, never to errors.
package ranking

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// Haversine returns the great-circle distance in kilometres between two
// latitude/longitude points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Pow(math.Sin(dLng/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance computes the distance from the requester to an entity's stored
// coordinates. Returns nil when either side is missing a coordinate.
func Distance(reqLat, reqLng *float64, lat, lng *float64) *float64 {
	if reqLat == nil || reqLng == nil || lat == nil || lng == nil {
		return nil
	}
	d := Haversine(*reqLat, *reqLng, *lat, *lng)
	return &d
}

// Average returns the arithmetic mean of scores rounded to one decimal,
// or nil when there are no scores.
func Average(scores []int) *float64 {
	if len(scores) == 0 {
		return nil
	}
	total := 0
	for _, s := range scores {
		total += s
	}
	avg := math.Round(float64(total)/float64(len(scores))*10) / 10
	return &avg
}

// WithinRange reports whether an entry passes the radius filter. Entries with
// unknown distance always pass; the filter only excludes a known distance
// beyond the radius.
func WithinRange(distance *float64, rangeKm *float64) bool {
	if rangeKm == nil || distance == nil {
		return true
	}
	return *distance <= *rangeKm
}

// MeetsMinRating reports whether an entry passes the minimum-rating filter.
// An unrated entry counts as 0.
func MeetsMinRating(rating *float64, min *float64) bool {
	if min == nil {
		return true
	}
	r := 0.0
	if rating != nil {
		r = *rating
	}
	return r >= *min
}
