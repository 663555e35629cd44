package domain

import (
	"fmt"
	"math"
)

// Unit selects the unit returned by Coordinate.DistanceTo.
type Unit string

const (
	Meters     Unit = "meters"
	Kilometers Unit = "kilometers"
)

const (
	// Mean earth radius (WGS84).
	EarthRadiusMeters = 6_371_000

	precisionMeters     = 1
	precisionKilometers = 3
	precisionBearing    = 2
)

// Coordinate is a geographic point made of a latitude and a longitude.
// Both angles are held by value so no two coordinates share state.
type Coordinate struct {
	latitude  AngleValue
	longitude AngleValue
}

// NewCoordinate builds a coordinate from two decimal degrees. Either both
// angles are valid or an error is returned.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	latitude, err := NewAngleValue(lat, Latitude)
	if err != nil {
		return Coordinate{}, fmt.Errorf("new coordinate: %w", err)
	}

	longitude, err := NewAngleValue(lon, Longitude)
	if err != nil {
		return Coordinate{}, fmt.Errorf("new coordinate: %w", err)
	}

	return Coordinate{latitude: latitude, longitude: longitude}, nil
}

// FromPoint is NewCoordinate for an already parsed point.
func FromPoint(p Point) (Coordinate, error) {
	return NewCoordinate(p.Lat, p.Lon)
}

func (c Coordinate) Latitude() AngleValue  { return c.latitude }
func (c Coordinate) Longitude() AngleValue { return c.longitude }

func (c Coordinate) LatitudeDecimal() float64  { return c.latitude.Decimal() }
func (c Coordinate) LongitudeDecimal() float64 { return c.longitude.Decimal() }

func (c Coordinate) LatitudeDMS(format DMSFormat) (string, error) {
	return c.latitude.DMS(format)
}

func (c Coordinate) LongitudeDMS(format DMSFormat) (string, error) {
	return c.longitude.DMS(format)
}

func (c Coordinate) Point() Point {
	return Point{Lat: c.latitude.Decimal(), Lon: c.longitude.Decimal()}
}

func (c Coordinate) String() string {
	return c.latitude.String() + ", " + c.longitude.String()
}

// DistanceTo returns the great-circle distance to other using the haversine
// formula on a sphere. Meters are rounded to 1 decimal, kilometers to 3.
func (c Coordinate) DistanceTo(other Coordinate, unit Unit) (float64, error) {
	lat1 := radians(c.LatitudeDecimal())
	lat2 := radians(other.LatitudeDecimal())
	dLat := lat2 - lat1
	dLon := radians(other.LongitudeDecimal()) - radians(c.LongitudeDecimal())

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Pow(math.Sin(dLon/2), 2)*math.Cos(lat1)*math.Cos(lat2)

	// a can drift above 1 near antipodal points.
	distance := 2 * EarthRadiusMeters * math.Asin(math.Sqrt(math.Min(1, a)))

	switch unit {
	case Meters:
		return Round(distance, precisionMeters), nil
	case Kilometers:
		return Round(distance/1000, precisionKilometers), nil
	default:
		return 0, fmt.Errorf("distance: %w: %q", ErrUnsupportedUnit, string(unit))
	}
}

// BearingTo returns the heading in degrees from c toward other, normalized
// into (-180, 180] and rounded to 2 decimals. Identical coordinates yield 0.
func (c Coordinate) BearingTo(other Coordinate) float64 {
	if c.LatitudeDecimal() == other.LatitudeDecimal() &&
		c.LongitudeDecimal() == other.LongitudeDecimal() {
		return 0
	}

	dLat := other.LatitudeDecimal() - c.LatitudeDecimal()
	dLon := other.LongitudeDecimal() - c.LongitudeDecimal()

	bearing := -math.Atan2(dLat, dLon)*(180/math.Pi) + 90
	if bearing > 180 {
		bearing -= 360
	}

	return Round(bearing, precisionBearing)
}

// CompassDirection maps the bearing toward other onto the 8-point compass.
func (c Coordinate) CompassDirection(other Coordinate) (Compass, error) {
	return CompassFromBearing(c.BearingTo(other))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
