package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"geocoord/internal/domain"
	"geocoord/internal/ports"

	log "github.com/sirupsen/logrus"
)

var (
	ErrNoRedirectResolver = errors.New("no redirect resolver configured")
	ErrNoTimezoneLocator  = errors.New("no timezone locator configured")
)

var (
	// https://maps.app.goo.gl/PHq5axBaDdgRWj4T6
	redirectLinkPattern = regexp.MustCompile(`(https://maps\.app\.goo\.gl/[a-zA-Z0-9]+)$`)

	// .../data=!3m1!4b1!4m6!3m5!1s0x47a6...!8m2!3d51.3123709!4d12.4132924!16s...
	spotLinkPattern = regexp.MustCompile(`!3d(-?[0-9]+)[.]([0-9]+).*?!4d(-?[0-9]+)[.]([0-9]+)`)

	locationHeaderPattern = regexp.MustCompile(`(?im)^location:[ \t]*(.+?)\r?$`)

	// Europe/Berlin, America/Argentina/Cordoba, Etc/GMT+5
	timezonePattern = regexp.MustCompile(`^([A-Za-z]+(?:_[A-Za-z]+)*(?:/[A-Za-z0-9_+\-]+)+)$`)
)

// Format names, in the order the parser tries them.
const (
	FormatRedirectLink = "google-redirect-link"
	FormatSpotLink     = "google-spot-link"
	FormatDecimalPair  = "decimal-pair"
	FormatTokenPair    = "token-pair"
	FormatTimezone     = "timezone"
)

// matchFunc reports matched=false when the input is not in its format.
// A non-nil error means the format matched but could not be decoded.
type matchFunc func(ctx context.Context, input string) (p domain.Point, matched bool, err error)

type matcher struct {
	name  string
	match matchFunc
}

// Parser turns free-form coordinate text into a decimal point. Formats are
// tried in a fixed order and the first one that matches wins.
//
// The parser is safe for concurrent use if its resolver and locator are.
type Parser struct {
	redirects ports.RedirectResolver
	timezones ports.TimezoneLocator
	matchers  []matcher
}

// NewParser wires the external capabilities. Either may be nil, in which
// case inputs needing it fail to parse.
func NewParser(redirects ports.RedirectResolver, timezones ports.TimezoneLocator) *Parser {
	p := &Parser{
		redirects: redirects,
		timezones: timezones,
	}

	p.matchers = []matcher{
		{FormatRedirectLink, p.matchRedirectLink},
		{FormatSpotLink, p.matchSpotLink},
		{FormatDecimalPair, p.matchDecimalPair},
		{FormatTokenPair, p.matchTokenPair},
		{FormatTimezone, p.matchTimezone},
	}

	return p
}

// Formats returns the format names in detection order.
func (p *Parser) Formats() []string {
	names := make([]string, 0, len(p.matchers))
	for _, m := range p.matchers {
		names = append(names, m.name)
	}
	return names
}

// Parse returns the [latitude, longitude] described by input. Every failure
// is a *domain.ParseError.
func (p *Parser) Parse(ctx context.Context, input string) (domain.Point, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return domain.Point{}, &domain.ParseError{
			Input: input,
			Err:   fmt.Errorf("%w: empty input", domain.ErrUnrecognizedFormat),
		}
	}

	for _, m := range p.matchers {
		point, matched, err := m.match(ctx, input)
		if err != nil {
			var pe *domain.ParseError
			if errors.As(err, &pe) {
				return domain.Point{}, err
			}
			return domain.Point{}, &domain.ParseError{Input: input, Err: fmt.Errorf("%s: %w", m.name, err)}
		}
		if !matched {
			continue
		}

		log.WithFields(log.Fields{
			"input":  input,
			"format": m.name,
			"lat":    point.Lat,
			"lon":    point.Lon,
		}).Debug("coordinate parsed")

		return point, nil
	}

	values := splitValues(stripPointEnvelope(input))
	return domain.Point{}, &domain.ParseError{
		Input: input,
		Err: fmt.Errorf(
			"%w: found %d values, want %d",
			domain.ErrUnrecognizedFormat, len(values), pointValues,
		),
	}
}

func (p *Parser) matchRedirectLink(ctx context.Context, input string) (domain.Point, bool, error) {
	m := redirectLinkPattern.FindStringSubmatch(input)
	if m == nil {
		return domain.Point{}, false, nil
	}
	if err := expectGroups(m, groupsLink); err != nil {
		return domain.Point{}, true, err
	}

	if p.redirects == nil {
		return domain.Point{}, true, ErrNoRedirectResolver
	}

	link := m[1]
	headers, err := p.redirects.ResolveRedirect(ctx, link)
	if err != nil {
		return domain.Point{}, true, fmt.Errorf("resolve %q: %w", link, err)
	}

	loc := locationHeaderPattern.FindStringSubmatch(headers)
	if loc == nil {
		return domain.Point{}, true, fmt.Errorf(
			"%w: no location header in response for %q", domain.ErrUnrecognizedFormat, link,
		)
	}

	spot := spotLinkPattern.FindStringSubmatch(loc[1])
	if spot == nil {
		return domain.Point{}, true, fmt.Errorf(
			"%w: location header of %q has no coordinates", domain.ErrUnrecognizedFormat, link,
		)
	}

	point, err := pointFromGroups(spot)
	return point, true, err
}

func (p *Parser) matchSpotLink(_ context.Context, input string) (domain.Point, bool, error) {
	m := spotLinkPattern.FindStringSubmatch(input)
	if m == nil {
		return domain.Point{}, false, nil
	}

	point, err := pointFromGroups(m)
	return point, true, err
}

func (p *Parser) matchDecimalPair(_ context.Context, input string) (domain.Point, bool, error) {
	m := decimalPairPattern.FindStringSubmatch(stripPointEnvelope(input))
	if m == nil {
		return domain.Point{}, false, nil
	}

	point, err := pointFromGroups(m)
	return point, true, err
}

func (p *Parser) matchTokenPair(_ context.Context, input string) (domain.Point, bool, error) {
	tokens := splitValues(stripPointEnvelope(input))
	if len(tokens) != pointValues {
		return domain.Point{}, false, nil
	}

	axes := [pointValues]domain.Axis{domain.Latitude, domain.Longitude}
	var values [pointValues]float64

	for i, token := range tokens {
		v, err := valueFromToken(token, axes[i])
		if err != nil {
			return domain.Point{}, true, &domain.ParseError{Input: input, Token: token, Err: err}
		}
		values[i] = domain.Round(v, decimalPrecision)
	}

	return domain.Point{Lat: values[0], Lon: values[1]}, true, nil
}

func (p *Parser) matchTimezone(ctx context.Context, input string) (domain.Point, bool, error) {
	m := timezonePattern.FindStringSubmatch(input)
	if m == nil {
		return domain.Point{}, false, nil
	}
	if err := expectGroups(m, groupsTimezone); err != nil {
		return domain.Point{}, true, err
	}

	if p.timezones == nil {
		return domain.Point{}, true, ErrNoTimezoneLocator
	}

	zone := m[1]
	lat, lon, err := p.timezones.Locate(ctx, zone)
	if err != nil {
		return domain.Point{}, true, fmt.Errorf("locate %q: %w", zone, err)
	}

	latInt, latFrac := splitDecimal(lat)
	lonInt, lonFrac := splitDecimal(lon)

	point, err := pointFromGroups([]string{zone, latInt, latFrac, lonInt, lonFrac})
	return point, true, err
}
