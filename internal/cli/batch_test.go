package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"geocoord/internal/services"

	"github.com/gocarina/gocsv"
)

const batchInput = `source,target
"51.0504, 13.7373","-33.940525, 18.414006"
51.0504 13.7373,40.690069 -74.045508
not a place,51.0504 13.7373
"51°3′1.44″N, 13°44′14.28″E",-31.425299 -64.201743
`

func TestRunBatch(t *testing.T) {
	var out bytes.Buffer
	err := runBatch(context.Background(), services.NewParser(nil, nil), strings.NewReader(batchInput), &out, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var results []*batchResult
	if err := gocsv.Unmarshal(&out, &results); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(results))
	}

	want := []struct {
		km        float64
		bearing   float64
		direction string
	}{
		{9461.664, 176.85, "S"},
		{6482.638, -96.73, "W"},
		{},
		{11904.668, -136.62, "SW"},
	}

	for i, w := range want {
		r := results[i]
		if i == 2 {
			if r.Error == "" {
				t.Fatalf("row 2: expected error column")
			}
			if r.Source != "not a place" {
				t.Fatalf("row 2: source = %q", r.Source)
			}
			continue
		}
		if r.Error != "" {
			t.Fatalf("row %d: unexpected error %q", i, r.Error)
		}
		if r.DistanceKilometers != w.km || r.Bearing != w.bearing || r.Direction != w.direction {
			t.Errorf("row %d = (%v, %v, %q), want (%v, %v, %q)",
				i, r.DistanceKilometers, r.Bearing, r.Direction, w.km, w.bearing, w.direction)
		}
		if r.SourceLatitude != 51.0504 || r.SourceLongitude != 13.7373 {
			t.Errorf("row %d source = (%v, %v)", i, r.SourceLatitude, r.SourceLongitude)
		}
	}
}

func TestRunBatchRejectsMalformedCSV(t *testing.T) {
	var out bytes.Buffer
	err := runBatch(context.Background(), services.NewParser(nil, nil), strings.NewReader("source,target\n\"unterminated\n"), &out, 1)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
