package domain

import "fmt"

// Point is a plain (latitude, longitude) pair in decimal degrees.
type Point struct {
	Lat float64 `json:"latitude" yaml:"latitude"`
	Lon float64 `json:"longitude" yaml:"longitude"`
}

func (p Point) String() string { return fmt.Sprintf("%g, %g", p.Lat, p.Lon) }
