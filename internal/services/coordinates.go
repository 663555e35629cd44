package services

import (
	"context"
	"fmt"

	"geocoord/internal/domain"
)

// FromString builds a coordinate from one combined description such as
// "51.0504, 13.7373", "51°3′1.44″N 13°44′14.28″E" or a map link.
func FromString(ctx context.Context, parser *Parser, s string) (domain.Coordinate, error) {
	point, err := parser.Parse(ctx, s)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("coordinate from string: %w", err)
	}

	c, err := domain.FromPoint(point)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("coordinate from string %q: %w", s, err)
	}

	return c, nil
}

// FromPair builds a coordinate from separate latitude and longitude texts.
func FromPair(ctx context.Context, parser *Parser, lat, lon string) (domain.Coordinate, error) {
	return FromString(ctx, parser, lat+" "+lon)
}

// FromFloatAndString builds a coordinate from a decimal latitude and a
// textual longitude.
func FromFloatAndString(ctx context.Context, parser *Parser, lat float64, lon string) (domain.Coordinate, error) {
	return FromPair(ctx, parser, formatDecimal(lat), lon)
}

// FromStringAndFloat builds a coordinate from a textual latitude and a
// decimal longitude.
func FromStringAndFloat(ctx context.Context, parser *Parser, lat string, lon float64) (domain.Coordinate, error) {
	return FromPair(ctx, parser, lat, formatDecimal(lon))
}

// FromArgs accepts the positional arguments of a command line: one
// combined description or a latitude and a longitude.
func FromArgs(ctx context.Context, parser *Parser, args ...string) (domain.Coordinate, error) {
	switch len(args) {
	case 0:
		return domain.Coordinate{}, domain.ErrNoCoordinates
	case 1:
		return FromString(ctx, parser, args[0])
	case 2:
		return FromPair(ctx, parser, args[0], args[1])
	default:
		return domain.Coordinate{}, fmt.Errorf("%w: %d values", domain.ErrUnsupportedParameters, len(args))
	}
}
