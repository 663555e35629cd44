package services

import (
	"context"
	"errors"
	"testing"

	"geocoord/internal/domain"
)

func TestFromArgs(t *testing.T) {
	p := newTestParser()
	want := domain.Point{Lat: 51.0504, Lon: 13.7373}

	for _, args := range [][]string{
		{"51.0504, 13.7373"},
		{"51.0504", "13.7373"},
		{"51°3′1.44″N", "13°44′14.28″E"},
		{"N51°3′1.44″", "13.7373"},
	} {
		c, err := FromArgs(context.Background(), p, args...)
		if err != nil {
			t.Fatalf("FromArgs(%q): unexpected error: %v", args, err)
		}
		if c.Point() != want {
			t.Errorf("FromArgs(%q) = %v, want %v", args, c.Point(), want)
		}
	}
}

func TestFromArgsArity(t *testing.T) {
	p := newTestParser()

	if _, err := FromArgs(context.Background(), p); !errors.Is(err, domain.ErrNoCoordinates) {
		t.Fatalf("no args err = %v, want ErrNoCoordinates", err)
	}
	if _, err := FromArgs(context.Background(), p, "1.0", "2.0", "3.0"); !errors.Is(err, domain.ErrUnsupportedParameters) {
		t.Fatalf("three args err = %v, want ErrUnsupportedParameters", err)
	}
}

func TestFromFloatAndString(t *testing.T) {
	p := newTestParser()

	c, err := FromFloatAndString(context.Background(), p, -33.940525, "E18°24′50.4216″")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Point() != (domain.Point{Lat: -33.940525, Lon: 18.414006}) {
		t.Fatalf("point = %v", c.Point())
	}

	c, err = FromStringAndFloat(context.Background(), p, "40°41′24.2484″N", -74)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Point() != (domain.Point{Lat: 40.690069, Lon: -74}) {
		t.Fatalf("point = %v", c.Point())
	}
}

func TestFromStringRejectsOutOfRangeDegrees(t *testing.T) {
	_, err := FromString(context.Background(), newTestParser(), "200.5, 13.7373")
	if !errors.Is(err, domain.ErrAngleOutOfRange) {
		t.Fatalf("err = %v, want ErrAngleOutOfRange", err)
	}
}
