package dto

// ParseRequest carries either one combined description in Coordinate or
// separate Latitude and Longitude texts.
type ParseRequest struct {
	Coordinate string `json:"coordinate"`
	Latitude   string `json:"latitude"`
	Longitude  string `json:"longitude"`
}

type CompareRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type AngleResponse struct {
	Decimal   float64 `json:"decimal"`
	DMS       string  `json:"dms"`
	Degree    int     `json:"degree"`
	Minutes   int     `json:"minutes"`
	Seconds   float64 `json:"seconds"`
	Direction string  `json:"direction"`
}

type CoordinateResponse struct {
	Latitude  AngleResponse `json:"latitude"`
	Longitude AngleResponse `json:"longitude"`
}

type CompareResponse struct {
	Source             CoordinateResponse `json:"source"`
	Target             CoordinateResponse `json:"target"`
	DistanceMeters     float64            `json:"distance_meters"`
	DistanceKilometers float64            `json:"distance_kilometers"`
	Bearing            float64            `json:"bearing"`
	Direction          string             `json:"direction"`
}
