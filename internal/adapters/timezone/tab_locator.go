package timezone

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
)

var ErrUnknownZone = errors.New("unknown timezone")

// Files tried in order; earlier files win for zones listed in both.
// zone.tab keeps the long-standing principal locations; zone1970.tab only
// fills in zones it lacks.
var tabFiles = []string{"zone.tab", "zone1970.tab"}

// ±DDMM±DDDMM or ±DDMMSS±DDDMMSS
var iso6709Pattern = regexp.MustCompile(`^([+-])(\d{2})(\d{2})(\d{2})?([+-])(\d{3})(\d{2})(\d{2})?$`)

type location struct {
	lat, lon float64
}

// TabLocator looks up the principal location of an IANA zone in the tzdata
// tab files found in dir. The files are read once, on first use.
type TabLocator struct {
	dir string

	once  sync.Once
	zones map[string]location
	err   error
}

func NewTabLocator(dir string) *TabLocator {
	return &TabLocator{dir: dir}
}

func (l *TabLocator) Locate(ctx context.Context, zone string) (float64, float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	l.once.Do(l.load)
	if l.err != nil {
		return 0, 0, l.err
	}

	loc, ok := l.zones[zone]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownZone, zone)
	}
	return loc.lat, loc.lon, nil
}

func (l *TabLocator) load() {
	l.zones = make(map[string]location)

	var read int
	for _, name := range tabFiles {
		path := filepath.Join(l.dir, name)

		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			l.err = fmt.Errorf("open %s: %w", path, err)
			return
		}

		zones, err := parseTab(f)
		f.Close()
		if err != nil {
			l.err = fmt.Errorf("parse %s: %w", path, err)
			return
		}

		for zone, loc := range zones {
			if _, seen := l.zones[zone]; !seen {
				l.zones[zone] = loc
			}
		}
		read++
	}

	if read == 0 {
		l.err = fmt.Errorf("no zone table in %s", l.dir)
		return
	}

	log.WithFields(log.Fields{"dir": l.dir, "zones": len(l.zones)}).Debug("zone tables loaded")
}

// parseTab reads a zone.tab style table: country codes, coordinates and
// zone name separated by tabs, '#' starting a comment line.
func parseTab(r io.Reader) (map[string]location, error) {
	zones := make(map[string]location)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want at least 3 fields, got %d", lineNo, len(fields))
		}

		lat, lon, err := parseISO6709(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		zones[fields[2]] = location{lat: lat, lon: lon}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}

func parseISO6709(s string) (float64, float64, error) {
	m := iso6709Pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("malformed coordinates %q", s)
	}

	lat := sexagesimal(m[1], m[2], m[3], m[4])
	lon := sexagesimal(m[5], m[6], m[7], m[8])
	return lat, lon, nil
}

func sexagesimal(sign, deg, mins, sec string) float64 {
	d, _ := strconv.Atoi(deg)
	m, _ := strconv.Atoi(mins)
	var s int
	if sec != "" {
		s, _ = strconv.Atoi(sec)
	}

	v := float64(d) + float64(m)/60 + float64(s)/3600
	if sign == "-" {
		return -v
	}
	return v
}
