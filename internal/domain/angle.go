package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Axis tells whether an angle is a latitude or a longitude.
type Axis int

const (
	Latitude Axis = iota
	Longitude
)

func (a Axis) String() string {
	switch a {
	case Latitude:
		return "latitude"
	case Longitude:
		return "longitude"
	default:
		return fmt.Sprintf("axis(%d)", int(a))
	}
}

// Directions returns the hemisphere letters valid for the axis,
// positive first.
func (a Axis) Directions() (positive, negative string) {
	if a == Longitude {
		return "E", "W"
	}
	return "N", "S"
}

// Accepts reports whether dir is a hemisphere letter of this axis.
func (a Axis) Accepts(dir string) bool {
	pos, neg := a.Directions()
	return dir == pos || dir == neg
}

// DMSFormat selects the layout used by AngleValue.DMS.
type DMSFormat int

const (
	// 51°3′1.44″N
	DMSDirectionSuffix DMSFormat = iota
	// N51°3′1.44″
	DMSDirectionPrefix
)

const (
	degreeMin = 0
	degreeMax = 180

	minutesMin = 0
	minutesMax = 59

	minutesPerDegree = 60
	secondsPerMinute = 60
	secondsPerDegree = 3600

	secondsPrecision = 6
)

// AngleValue is one latitude or longitude value. The DMS parts are derived
// once at construction; the value is immutable afterwards.
type AngleValue struct {
	decimal   float64
	axis      Axis
	degree    int
	minutes   int
	seconds   float64
	direction string
}

// NewAngleValue converts a decimal degree into its DMS parts.
func NewAngleValue(decimal float64, axis Axis) (AngleValue, error) {
	if axis != Latitude && axis != Longitude {
		return AngleValue{}, fmt.Errorf("new angle value: %w: %v", ErrUnsupportedAxis, axis)
	}
	if math.IsNaN(decimal) || math.IsInf(decimal, 0) {
		return AngleValue{}, fmt.Errorf("new angle value: %w: %v", ErrAngleOutOfRange, decimal)
	}

	pos, neg := axis.Directions()
	direction := pos
	if decimal < 0 {
		direction = neg
	}

	abs := math.Abs(decimal)
	degree := math.Floor(abs)
	secondsOverall := (abs - degree) * secondsPerDegree
	minutes := math.Floor(secondsOverall / secondsPerMinute)
	seconds := Round(secondsOverall-minutes*secondsPerMinute, secondsPrecision)

	// Rounding may push the seconds up to a full minute.
	if seconds >= secondsPerMinute {
		seconds = 0
		minutes++
	}
	if minutes >= minutesPerDegree {
		minutes = 0
		degree++
	}

	if degree < degreeMin || degree > degreeMax {
		return AngleValue{}, fmt.Errorf("new angle value: %w: degree %v", ErrAngleOutOfRange, degree)
	}
	if minutes < minutesMin || minutes > minutesMax {
		return AngleValue{}, fmt.Errorf("new angle value: %w: minutes %v", ErrAngleOutOfRange, minutes)
	}

	return AngleValue{
		decimal:   decimal,
		axis:      axis,
		degree:    int(degree),
		minutes:   int(minutes),
		seconds:   seconds,
		direction: direction,
	}, nil
}

func (v AngleValue) Decimal() float64  { return v.decimal }
func (v AngleValue) Axis() Axis        { return v.axis }
func (v AngleValue) Degree() int       { return v.degree }
func (v AngleValue) Minutes() int      { return v.minutes }
func (v AngleValue) Seconds() float64  { return v.seconds }
func (v AngleValue) Direction() string { return v.direction }

// DMS renders the angle in the requested layout.
func (v AngleValue) DMS(format DMSFormat) (string, error) {
	sec := strconv.FormatFloat(v.seconds, 'f', -1, 64)

	switch format {
	case DMSDirectionSuffix:
		return fmt.Sprintf("%d°%d′%s″%s", v.degree, v.minutes, sec, v.direction), nil
	case DMSDirectionPrefix:
		return fmt.Sprintf("%s%d°%d′%s″", v.direction, v.degree, v.minutes, sec), nil
	default:
		return "", fmt.Errorf("dms: %w: %d", ErrUnsupportedFormat, int(format))
	}
}

func (v AngleValue) String() string {
	s, _ := v.DMS(DMSDirectionSuffix)
	return s
}

// ParseDMSFormat maps "suffix" and "prefix" to their DMSFormat.
func ParseDMSFormat(s string) (DMSFormat, error) {
	switch s {
	case "suffix", "":
		return DMSDirectionSuffix, nil
	case "prefix":
		return DMSDirectionPrefix, nil
	default:
		return 0, fmt.Errorf("parse dms format: %w: %q", ErrUnsupportedFormat, s)
	}
}

// Round rounds v half away from zero to the given number of decimals.
func Round(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}
