package timezone

import (
	"context"
	"fmt"
)

// MockLocator answers from a fixed zone -> [lat, lon] table.
type MockLocator struct {
	Zones map[string][2]float64
}

func (l *MockLocator) Locate(ctx context.Context, zone string) (float64, float64, error) {
	loc, ok := l.Zones[zone]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}
	return loc[0], loc[1], nil
}
