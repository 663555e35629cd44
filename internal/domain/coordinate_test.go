package domain

import (
	"errors"
	"testing"
)

var (
	dresden  = Point{Lat: 51.0504, Lon: 13.7373}
	capeTown = Point{Lat: -33.940525, Lon: 18.414006}
	newYork  = Point{Lat: 40.690069, Lon: -74.045508}
	cordoba  = Point{Lat: -31.425299, Lon: -64.201743}
)

func mustCoordinate(t *testing.T, p Point) Coordinate {
	t.Helper()

	c, err := FromPoint(p)
	if err != nil {
		t.Fatalf("build coordinate %v: %v", p, err)
	}
	return c
}

func TestNewCoordinateAccessors(t *testing.T) {
	c := mustCoordinate(t, newYork)

	if c.LatitudeDecimal() != 40.690069 {
		t.Errorf("latitude = %v, want 40.690069", c.LatitudeDecimal())
	}
	if c.LongitudeDecimal() != -74.045508 {
		t.Errorf("longitude = %v, want -74.045508", c.LongitudeDecimal())
	}
	if c.Latitude().Axis() != Latitude || c.Longitude().Axis() != Longitude {
		t.Errorf("axes = %v/%v, want latitude/longitude", c.Latitude().Axis(), c.Longitude().Axis())
	}
	if c.Point() != newYork {
		t.Errorf("point = %v, want %v", c.Point(), newYork)
	}

	lat, err := c.LatitudeDMS(DMSDirectionSuffix)
	if err != nil || lat != "40°41′24.2484″N" {
		t.Errorf("latitude dms = %q, %v", lat, err)
	}
	lon, err := c.LongitudeDMS(DMSDirectionPrefix)
	if err != nil || lon != "W74°2′43.8288″" {
		t.Errorf("longitude dms = %q, %v", lon, err)
	}
	if c.String() != "40°41′24.2484″N, 74°2′43.8288″W" {
		t.Errorf("string = %q", c.String())
	}
}

func TestNewCoordinateIsAtomic(t *testing.T) {
	_, err := NewCoordinate(51.0504, 400)
	if !errors.Is(err, ErrAngleOutOfRange) {
		t.Fatalf("err = %v, want ErrAngleOutOfRange", err)
	}
}

func TestDistanceTo(t *testing.T) {
	tests := []struct {
		name   string
		target Point
		unit   Unit
		want   float64
	}{
		{"self meters", dresden, Meters, 0},
		{"self kilometers", dresden, Kilometers, 0},
		{"cape town meters", capeTown, Meters, 9461663.6},
		{"cape town kilometers", capeTown, Kilometers, 9461.664},
		{"new york meters", newYork, Meters, 6482638.0},
		{"new york kilometers", newYork, Kilometers, 6482.638},
		{"cordoba meters", cordoba, Meters, 11904668.4},
		{"cordoba kilometers", cordoba, Kilometers, 11904.668},
	}

	source := mustCoordinate(t, dresden)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := source.DistanceTo(mustCoordinate(t, tt.target), tt.unit)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistanceToUnsupportedUnit(t *testing.T) {
	c := mustCoordinate(t, dresden)

	if _, err := c.DistanceTo(c, Unit("miles")); !errors.Is(err, ErrUnsupportedUnit) {
		t.Fatalf("err = %v, want ErrUnsupportedUnit", err)
	}
}

func TestBearingTo(t *testing.T) {
	tests := []struct {
		from Point
		want float64
	}{
		{dresden, 0},
		{capeTown, -3.15},
		{newYork, 83.27},
		{cordoba, 43.38},
	}

	target := mustCoordinate(t, dresden)
	for _, tt := range tests {
		got := mustCoordinate(t, tt.from).BearingTo(target)
		if got != tt.want {
			t.Errorf("bearing %v -> dresden = %v, want %v", tt.from, got, tt.want)
		}
	}

	source := mustCoordinate(t, dresden)
	if got := source.BearingTo(mustCoordinate(t, capeTown)); got != 176.85 {
		t.Errorf("bearing dresden -> cape town = %v, want 176.85", got)
	}
	if got := source.BearingTo(mustCoordinate(t, newYork)); got != -96.73 {
		t.Errorf("bearing dresden -> new york = %v, want -96.73", got)
	}
	if got := source.BearingTo(mustCoordinate(t, cordoba)); got != -136.62 {
		t.Errorf("bearing dresden -> cordoba = %v, want -136.62", got)
	}
}

func TestBearingToStaysInRange(t *testing.T) {
	// Due west: atan2(0, -x) is π, so the raw bearing is -90.
	a := mustCoordinate(t, Point{Lat: 10, Lon: 20})
	b := mustCoordinate(t, Point{Lat: 10, Lon: 10})
	if got := a.BearingTo(b); got != -90 {
		t.Fatalf("bearing = %v, want -90", got)
	}

	// Due south: atan2(-x, 0) is -π/2, so the raw bearing is 180.
	c := mustCoordinate(t, Point{Lat: 0, Lon: 20})
	if got := a.BearingTo(c); got != 180 {
		t.Fatalf("bearing = %v, want 180", got)
	}

	// South-west: the raw bearing is 225 and wraps to -135.
	d := mustCoordinate(t, Point{Lat: 9, Lon: 19})
	if got := a.BearingTo(d); got != -135 {
		t.Fatalf("bearing = %v, want -135", got)
	}
}

func TestCompassDirection(t *testing.T) {
	tests := []struct {
		target Point
		want   Compass
	}{
		{dresden, North},
		{capeTown, South},
		{newYork, West},
		{cordoba, SouthWest},
	}

	source := mustCoordinate(t, dresden)
	for _, tt := range tests {
		got, err := source.CompassDirection(mustCoordinate(t, tt.target))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("direction to %v = %q, want %q", tt.target, got, tt.want)
		}
	}
}
