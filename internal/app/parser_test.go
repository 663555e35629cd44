package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"geocoord/internal/config"
	"geocoord/internal/domain"

	"github.com/alicebob/miniredis/v2"
)

func TestNewParserWiresTimezoneTables(t *testing.T) {
	dir := t.TempDir()
	tab := "DE,DK,NO,SE,SJ\t+5230+01322\tEurope/Berlin\tmost of Germany\n"
	if err := os.WriteFile(filepath.Join(dir, "zone1970.tab"), []byte(tab), 0o600); err != nil {
		t.Fatalf("write zone table: %v", err)
	}

	p, closeFn, err := NewParser(config.Settings{
		RedirectTimeout:  time.Second,
		RedirectRPS:      1,
		RedirectCacheTTL: time.Minute,
		ZoneinfoDir:      dir,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()

	got, err := p.Parse(context.Background(), "Europe/Berlin")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != (domain.Point{Lat: 52.5, Lon: 13.366667}) {
		t.Fatalf("point = %v", got)
	}
}

func TestNewParserRejectsZeroTimeout(t *testing.T) {
	if _, _, err := NewParser(config.Settings{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewParserWithRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)

	p, closeFn, err := NewParser(config.Settings{
		RedirectTimeout:  time.Second,
		RedirectCacheTTL: time.Minute,
		RedisURL:         "redis://" + mr.Addr() + "/0",
		ZoneinfoDir:      t.TempDir(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p == nil {
		t.Fatal("nil parser")
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNewParserRejectsBadRedisURL(t *testing.T) {
	_, _, err := NewParser(config.Settings{
		RedirectTimeout:  time.Second,
		RedirectCacheTTL: time.Minute,
		RedisURL:         "mysql://nope",
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
