package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"geocoord/internal/domain"
	"geocoord/internal/services"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

type coordinateView struct {
	Input        string  `json:"input" yaml:"input"`
	Latitude     float64 `json:"latitude" yaml:"latitude"`
	Longitude    float64 `json:"longitude" yaml:"longitude"`
	LatitudeDMS  string  `json:"latitude_dms" yaml:"latitude_dms"`
	LongitudeDMS string  `json:"longitude_dms" yaml:"longitude_dms"`
}

type comparisonView struct {
	DistanceMeters     float64 `json:"distance_meters" yaml:"distance_meters"`
	DistanceKilometers float64 `json:"distance_kilometers" yaml:"distance_kilometers"`
	Bearing            float64 `json:"bearing" yaml:"bearing"`
	Direction          string  `json:"direction" yaml:"direction"`
}

type showResult struct {
	Source     coordinateView  `json:"source" yaml:"source"`
	Target     *coordinateView `json:"target,omitempty" yaml:"target,omitempty"`
	Comparison *comparisonView `json:"comparison,omitempty" yaml:"comparison,omitempty"`
}

func newShowCommand(parser *services.Parser) *cobra.Command {
	var (
		output    string
		dmsFormat string
	)

	cmd := &cobra.Command{
		Use:   "show <source> [target]",
		Short: "Print decimal and DMS values, and distance, bearing and direction to a target",
		Args:  rangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := domain.ParseDMSFormat(dmsFormat)
			if err != nil {
				return invalidInput(err)
			}

			res, err := buildShowResult(cmd, parser, format, args)
			if err != nil {
				return err
			}

			return writeShowResult(cmd.OutOrStdout(), output, res)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "Output format: table, json or yaml")
	cmd.Flags().StringVar(&dmsFormat, "dms-format", "suffix", "DMS layout: suffix (51°3′1.44″N) or prefix (N51°3′1.44″)")

	return cmd
}

func buildShowResult(cmd *cobra.Command, parser *services.Parser, format domain.DMSFormat, args []string) (showResult, error) {
	coords := make([]domain.Coordinate, 0, len(args))
	views := make([]coordinateView, 0, len(args))

	for _, arg := range args {
		c, err := services.FromString(cmd.Context(), parser, arg)
		if err != nil {
			return showResult{}, err
		}
		v, err := toView(arg, c, format)
		if err != nil {
			return showResult{}, err
		}
		coords = append(coords, c)
		views = append(views, v)
	}

	res := showResult{Source: views[0]}
	if len(coords) == 1 {
		return res, nil
	}

	cmp, err := compareCoordinates(coords[0], coords[1])
	if err != nil {
		return showResult{}, err
	}
	res.Target = &views[1]
	res.Comparison = &cmp

	return res, nil
}

func toView(input string, c domain.Coordinate, format domain.DMSFormat) (coordinateView, error) {
	lat, err := c.LatitudeDMS(format)
	if err != nil {
		return coordinateView{}, err
	}
	lon, err := c.LongitudeDMS(format)
	if err != nil {
		return coordinateView{}, err
	}

	return coordinateView{
		Input:        input,
		Latitude:     c.LatitudeDecimal(),
		Longitude:    c.LongitudeDecimal(),
		LatitudeDMS:  lat,
		LongitudeDMS: lon,
	}, nil
}

func compareCoordinates(from, to domain.Coordinate) (comparisonView, error) {
	meters, err := from.DistanceTo(to, domain.Meters)
	if err != nil {
		return comparisonView{}, err
	}
	kilometers, err := from.DistanceTo(to, domain.Kilometers)
	if err != nil {
		return comparisonView{}, err
	}
	direction, err := from.CompassDirection(to)
	if err != nil {
		return comparisonView{}, err
	}

	return comparisonView{
		DistanceMeters:     meters,
		DistanceKilometers: kilometers,
		Bearing:            from.BearingTo(to),
		Direction:          string(direction),
	}, nil
}

func writeShowResult(w io.Writer, output string, res showResult) error {
	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case outputTable:
		_, err := fmt.Fprintln(w, renderShowTable(res))
		return err
	default:
		return invalidInput(fmt.Errorf("unsupported output %q", output))
	}
}

func renderShowTable(res showResult) string {
	views := []coordinateView{res.Source}
	if res.Target != nil {
		views = append(views, *res.Target)
	}

	rows := lo.Map(views, func(v coordinateView, _ int) []Pair {
		return Pairs(
			"Input", v.Input,
			"Latitude", formatFloat(v.Latitude),
			"Longitude", formatFloat(v.Longitude),
			"Latitude DMS", v.LatitudeDMS,
			"Longitude DMS", v.LongitudeDMS,
		)
	})
	out := BasicTable("Coordinates", rows)

	if res.Comparison != nil {
		c := res.Comparison
		out += "\n" + BasicTable("Source → Target", [][]Pair{Pairs(
			"Distance", formatFloat(c.DistanceKilometers)+" km",
			"Bearing", formatFloat(c.Bearing)+"°",
			"Direction", c.Direction,
		)})
	}

	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
