package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"geocoord/internal/domain"
)

// Number of elements FindStringSubmatch returns for each pattern
// (full match plus groups).
const (
	groupsCoordinate = 5
	groupsDMS        = 6
	groupsDecimal    = 3
	groupsLink       = 2
	groupsTimezone   = 2

	pointValues = 2

	decimalPrecision = 6
)

var (
	// -33,940525, 18,414006 / 51.0504:13.7373
	decimalPairPattern = regexp.MustCompile(`^(-?[0-9]+)[.,]([0-9]+)[,:\s]+(-?[0-9]+)[.,]([0-9]+)$`)

	// 51.0504 / -0.5
	decimalPattern = regexp.MustCompile(`^(-?[0-9]+)[.]([0-9]+)$`)

	// 51°3′1.44″N
	dmsSuffixPattern = regexp.MustCompile(`^([0-9]+)°([0-9]+)′([0-9]+)(?:[.]([0-9]+))?″([NSEW])$`)

	// N51°3′1.44″
	dmsPrefixPattern = regexp.MustCompile(`^([NSEW])([0-9]+)°([0-9]+)′([0-9]+)(?:[.]([0-9]+))?″$`)

	separatorPattern = regexp.MustCompile(`[,:\s]+`)

	pointEnvelopePattern = regexp.MustCompile(`(?i)^POINT\s*\((.*)\)$`)
)

// stripPointEnvelope removes a surrounding POINT(...) if present.
func stripPointEnvelope(s string) string {
	if m := pointEnvelopePattern.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}

// splitValues splits s on runs of ',', ':' and whitespace. A leading or
// trailing separator yields an empty value.
func splitValues(s string) []string {
	if s == "" {
		return nil
	}
	return separatorPattern.Split(s, -1)
}

func expectGroups(matches []string, want int) error {
	if len(matches) != want {
		return fmt.Errorf("%w: got %d, want %d", domain.ErrMatchArity, len(matches), want)
	}
	return nil
}

// floatFromParts rebuilds a decimal from its integer and fraction digits.
// The fraction takes the sign of the integer part, including "-0".
func floatFromParts(intPart, fracPart string) (float64, error) {
	whole, err := strconv.ParseFloat(intPart, 64)
	if err != nil {
		return 0, fmt.Errorf("integer part %q: %w", intPart, err)
	}

	var frac float64
	if fracPart != "" {
		// Equal to int(fracPart) * 10^-len(fracPart), without overflowing
		// on long digit runs.
		frac, err = strconv.ParseFloat("0."+fracPart, 64)
		if err != nil {
			return 0, fmt.Errorf("fraction part %q: %w", fracPart, err)
		}
	}

	if whole < 0 || strings.HasPrefix(intPart, "-") {
		return whole - frac, nil
	}
	return whole + frac, nil
}

// pointFromGroups turns a 5 element coordinate match
// (full, lat-int, lat-frac, lon-int, lon-frac) into a point.
func pointFromGroups(m []string) (domain.Point, error) {
	if err := expectGroups(m, groupsCoordinate); err != nil {
		return domain.Point{}, err
	}

	lat, err := floatFromParts(m[1], m[2])
	if err != nil {
		return domain.Point{}, fmt.Errorf("latitude: %w", err)
	}
	lon, err := floatFromParts(m[3], m[4])
	if err != nil {
		return domain.Point{}, fmt.Errorf("longitude: %w", err)
	}

	return domain.Point{
		Lat: domain.Round(lat, decimalPrecision),
		Lon: domain.Round(lon, decimalPrecision),
	}, nil
}

// valueFromDMS converts a 6 element DMS match in suffix order
// (full, deg, min, sec-int, sec-frac, dir) into a signed decimal.
func valueFromDMS(m []string, axis domain.Axis) (float64, error) {
	if err := expectGroups(m, groupsDMS); err != nil {
		return 0, err
	}

	degrees, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("degrees %q: %w", m[1], err)
	}
	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, fmt.Errorf("minutes %q: %w", m[2], err)
	}
	seconds, err := floatFromParts(m[3], m[4])
	if err != nil {
		return 0, fmt.Errorf("seconds: %w", err)
	}

	direction := m[5]
	if !axis.Accepts(direction) {
		return 0, fmt.Errorf("%w: %q is not a %s direction", domain.ErrDirectionMismatch, direction, axis)
	}

	value := float64(degrees) + float64(minutes)/60 + seconds/3600

	if _, negative := axis.Directions(); direction == negative {
		value = -value
	}

	return value, nil
}

// prefixToSuffix moves the leading direction group of a DMS prefix match
// to the end so both layouts share valueFromDMS.
func prefixToSuffix(m []string) []string {
	if len(m) < 2 {
		return m
	}
	out := make([]string, 0, len(m))
	out = append(out, m[0])
	out = append(out, m[2:]...)
	out = append(out, m[1])
	return out
}

// valueFromToken classifies a single latitude or longitude token.
func valueFromToken(token string, axis domain.Axis) (float64, error) {
	if m := dmsSuffixPattern.FindStringSubmatch(token); m != nil {
		return valueFromDMS(m, axis)
	}

	if m := dmsPrefixPattern.FindStringSubmatch(token); m != nil {
		return valueFromDMS(prefixToSuffix(m), axis)
	}

	if m := decimalPattern.FindStringSubmatch(token); m != nil {
		if err := expectGroups(m, groupsDecimal); err != nil {
			return 0, err
		}
		return floatFromParts(m[1], m[2])
	}

	return 0, domain.ErrUnrecognizedFormat
}

// splitDecimal breaks v into integer and fraction digits; a missing
// fraction becomes "0".
func splitDecimal(v float64) (string, string) {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, ok := strings.Cut(s, ".")
	if !ok {
		fracPart = "0"
	}
	return intPart, fracPart
}

// formatDecimal renders v so that it reads back as a decimal token.
func formatDecimal(v float64) string {
	intPart, fracPart := splitDecimal(v)
	return intPart + "." + fracPart
}
