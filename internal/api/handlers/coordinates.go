package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"geocoord/internal/api/dto"
	"geocoord/internal/domain"
	"geocoord/internal/services"

	log "github.com/sirupsen/logrus"
)

type CoordinateHandler struct {
	Parser *services.Parser
}

// Parse normalizes one coordinate description into decimal and DMS form.
func (h *CoordinateHandler) Parse(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ParseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	combined := strings.TrimSpace(req.Coordinate)
	lat := strings.TrimSpace(req.Latitude)
	lon := strings.TrimSpace(req.Longitude)

	var args []string
	switch {
	case combined != "" && lat == "" && lon == "":
		args = []string{combined}
	case combined == "" && lat != "" && lon != "":
		args = []string{lat, lon}
	default:
		writeError(w, r, http.StatusBadRequest, "provide either coordinate or latitude and longitude")
		return
	}

	c, err := services.FromArgs(r.Context(), h.Parser, args...)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toCoordinateResponse(c))
}

// Compare reports distance, bearing and compass direction from source to target.
func (h *CoordinateHandler) Compare(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.CompareRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if strings.TrimSpace(req.Source) == "" || strings.TrimSpace(req.Target) == "" {
		writeError(w, r, http.StatusBadRequest, "source and target are required")
		return
	}

	res, err := compare(r.Context(), h.Parser, req.Source, req.Target)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

func compare(ctx context.Context, parser *services.Parser, source, target string) (dto.CompareResponse, error) {
	from, err := services.FromString(ctx, parser, source)
	if err != nil {
		return dto.CompareResponse{}, err
	}
	to, err := services.FromString(ctx, parser, target)
	if err != nil {
		return dto.CompareResponse{}, err
	}

	meters, err := from.DistanceTo(to, domain.Meters)
	if err != nil {
		return dto.CompareResponse{}, err
	}
	kilometers, err := from.DistanceTo(to, domain.Kilometers)
	if err != nil {
		return dto.CompareResponse{}, err
	}
	direction, err := from.CompassDirection(to)
	if err != nil {
		return dto.CompareResponse{}, err
	}

	return dto.CompareResponse{
		Source:             toCoordinateResponse(from),
		Target:             toCoordinateResponse(to),
		DistanceMeters:     meters,
		DistanceKilometers: kilometers,
		Bearing:            from.BearingTo(to),
		Direction:          string(direction),
	}, nil
}

// fail maps input problems to 422 and everything else to 500.
func (h *CoordinateHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	var pe *domain.ParseError
	switch {
	case errors.As(err, &pe),
		errors.Is(err, domain.ErrAngleOutOfRange),
		errors.Is(err, domain.ErrNoCoordinates),
		errors.Is(err, domain.ErrUnsupportedParameters):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		log.WithError(err).Error("coordinate request failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}

func toCoordinateResponse(c domain.Coordinate) dto.CoordinateResponse {
	return dto.CoordinateResponse{
		Latitude:  toAngleResponse(c.Latitude()),
		Longitude: toAngleResponse(c.Longitude()),
	}
}

func toAngleResponse(v domain.AngleValue) dto.AngleResponse {
	return dto.AngleResponse{
		Decimal:   v.Decimal(),
		DMS:       v.String(),
		Degree:    v.Degree(),
		Minutes:   v.Minutes(),
		Seconds:   v.Seconds(),
		Direction: v.Direction(),
	}
}
