package geo

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// WGS-84 ellipsoid.
const (
	equatorialRadiusKm = 6378.137
	flattening         = 1 / 298.257223563
)

var ErrInvalidCoordinate = errors.New("coordinates out of range")

// Distance returns the ellipsoidal distance between two points in kilometers,
// rounded to 3 decimal places with round-half-to-even semantics. Pure and
// symmetric in its arguments.
func Distance(a, b Point) (decimal.Decimal, error) {
	for _, p := range []Point{a, b} {
		// NaN compares false against everything, so check it explicitly.
		if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) ||
			math.Abs(p.Lat) > 90 || math.Abs(p.Lon) > 180 {
			return decimal.Zero, fmt.Errorf("%w: lat=%v lon=%v", ErrInvalidCoordinate, p.Lat, p.Lon)
		}
	}

	// Lambert's formula on reduced latitudes.
	beta1 := math.Atan((1 - flattening) * math.Tan(radians(a.Lat)))
	beta2 := math.Atan((1 - flattening) * math.Tan(radians(b.Lat)))

	sigma := centralAngle(beta1, beta2, radians(b.Lon-a.Lon))
	if sigma == 0 {
		return decimal.Zero.RoundBank(3), nil
	}

	p := (beta1 + beta2) / 2
	q := (beta2 - beta1) / 2

	x := (sigma - math.Sin(sigma)) * sq(math.Sin(p)*math.Cos(q)) / sq(math.Cos(sigma/2))
	y := (sigma + math.Sin(sigma)) * sq(math.Cos(p)*math.Sin(q)) / sq(math.Sin(sigma/2))

	km := equatorialRadiusKm * (sigma - flattening/2*(x+y))
	return decimal.NewFromFloat(km).RoundBank(3), nil
}

// centralAngle computes the spherical central angle between the reduced
// latitudes via the haversine form, which stays stable for close points.
func centralAngle(beta1, beta2, deltaLon float64) float64 {
	h := hav(beta2-beta1) + math.Cos(beta1)*math.Cos(beta2)*hav(deltaLon)
	return 2 * math.Asin(math.Min(1, math.Sqrt(h)))
}

func hav(theta float64) float64 {
	s := math.Sin(theta / 2)
	return s * s
}

func sq(v float64) float64 { return v * v }

func radians(deg float64) float64 { return deg * math.Pi / 180 }
