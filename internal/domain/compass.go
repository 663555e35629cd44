package domain

import "fmt"

// Compass is one of the 8 principal compass directions.
type Compass string

const (
	North     Compass = "N"
	NorthEast Compass = "NE"
	East      Compass = "E"
	SouthEast Compass = "SE"
	South     Compass = "S"
	SouthWest Compass = "SW"
	West      Compass = "W"
	NorthWest Compass = "NW"
)

// CompassFromBearing places a bearing in (-180, 180] into one of 8 sectors,
// each 45° wide and centered on its direction.
func CompassFromBearing(bearing float64) (Compass, error) {
	if bearing > 180 || bearing < -180 {
		return "", fmt.Errorf("compass: %w: %.2f", ErrUnexpectedBearing, bearing)
	}

	switch {
	case bearing >= -22.5 && bearing < 22.5:
		return North, nil
	case bearing >= 22.5 && bearing < 67.5:
		return NorthEast, nil
	case bearing >= 67.5 && bearing < 112.5:
		return East, nil
	case bearing >= 112.5 && bearing < 157.5:
		return SouthEast, nil
	case bearing >= 157.5 || bearing < -157.5:
		return South, nil
	case bearing >= -157.5 && bearing < -112.5:
		return SouthWest, nil
	case bearing >= -112.5 && bearing < -67.5:
		return West, nil
	case bearing >= -67.5 && bearing < -22.5:
		return NorthWest, nil
	}

	// NaN ends up here.
	return "", fmt.Errorf("compass: %w: %v", ErrUnexpectedBearing, bearing)
}
