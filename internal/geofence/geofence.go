package geofence

import (
	"math"

	"geoattend/internal/domain"
)

const (
	earthRadiusM = 6371000.0

	// DefaultRequiredDistanceM applies when an office has no geofence
	// radius of its own.
	DefaultRequiredDistanceM = 1000.0

	// MaxAccuracyM is the largest device-reported accuracy radius we
	// accept without asking the user to confirm the fix.
	MaxAccuracyM = 1500.0
)

// HaversineMeters returns the great-circle distance in meters between two
// points given in decimal degrees. Inputs are not range-checked; NaN
// propagates.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Nearest pairs the closest office with its distance. Office is nil and
// DistanceM is +Inf when the office set is empty; callers must check
// before using the result.
type Nearest struct {
	Office    *domain.Office
	DistanceM float64
}

// NearestOffice scans the office set for the minimum haversine distance.
// Ties keep the first office encountered.
func NearestOffice(lat, lng float64, offices []domain.Office) Nearest {
	nearest := Nearest{DistanceM: math.Inf(1)}
	for i := range offices {
		d := HaversineMeters(lat, lng, offices[i].Lat, offices[i].Lng)
		if d < nearest.DistanceM {
			nearest.Office = &offices[i]
			nearest.DistanceM = d
		}
	}
	return nearest
}

// Decision is the single-shot result of a geofence evaluation. It is
// advisory: OverrideRequired tells the caller to ask for an explicit
// "mark anyway", LowConfidence to ask for a fix confirmation. Neither
// blocks on its own.
type Decision struct {
	DistanceM     float64
	Office        *domain.Office
	RequiredM     float64
	WithinRange   bool
	LowConfidence bool
}

// NoOffices reports the empty-set sentinel.
func (d Decision) NoOffices() bool { return d.Office == nil }

// OverrideRequired reports whether recording a mark needs the caller's
// explicit out-of-range acknowledgement.
func (d Decision) OverrideRequired() bool { return d.Office != nil && !d.WithinRange }

// Evaluate resolves the nearest office for the fix and compares the
// distance against that office's required distance (inclusive boundary).
// maxAccuracyM <= 0 selects MaxAccuracyM. Pure, no side effects; safe to
// call concurrently.
func Evaluate(coord domain.Coordinate, offices []domain.Office, maxAccuracyM float64) Decision {
	if maxAccuracyM <= 0 {
		maxAccuracyM = MaxAccuracyM
	}

	nearest := NearestOffice(coord.Lat, coord.Lng, offices)
	dec := Decision{
		DistanceM: nearest.DistanceM,
		Office:    nearest.Office,
	}

	if coord.AccuracyM != nil && *coord.AccuracyM > maxAccuracyM {
		dec.LowConfidence = true
	}

	if nearest.Office == nil {
		return dec
	}

	dec.RequiredM = DefaultRequiredDistanceM
	if r := nearest.Office.RequiredDistanceM; r != nil && *r > 0 {
		dec.RequiredM = *r
	}
	dec.WithinRange = nearest.DistanceM <= dec.RequiredM

	return dec
}
