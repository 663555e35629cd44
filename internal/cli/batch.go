package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"geocoord/internal/services"

	"github.com/gocarina/gocsv"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type batchRow struct {
	Source string `csv:"source"`
	Target string `csv:"target"`
}

type batchResult struct {
	Source             string  `csv:"source"`
	Target             string  `csv:"target"`
	SourceLatitude     float64 `csv:"source_latitude"`
	SourceLongitude    float64 `csv:"source_longitude"`
	TargetLatitude     float64 `csv:"target_latitude"`
	TargetLongitude    float64 `csv:"target_longitude"`
	DistanceMeters     float64 `csv:"distance_meters"`
	DistanceKilometers float64 `csv:"distance_kilometers"`
	Bearing            float64 `csv:"bearing"`
	Direction          string  `csv:"direction"`
	Error              string  `csv:"error"`
}

func newBatchCommand(parser *services.Parser, defaultWorkers int) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch <file.csv>",
		Short: "Compare source,target pairs from a CSV file and write the results as CSV",
		Args:  rangeArgs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 {
				return invalidInput(fmt.Errorf("workers must be at least 1, got %d", workers))
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open batch file: %w", err)
			}
			defer f.Close()

			return runBatch(cmd.Context(), parser, f, cmd.OutOrStdout(), workers)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", max(defaultWorkers, 1), "Number of rows processed concurrently")

	return cmd
}

// runBatch reads source,target rows from in and writes one result row per
// input row to out, in input order. A row that fails to parse gets its error
// column filled; only I/O and CSV shape problems fail the whole batch.
func runBatch(ctx context.Context, parser *services.Parser, in io.Reader, out io.Writer, workers int) error {
	var rows []*batchRow
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return invalidInput(fmt.Errorf("read batch csv: %w", err))
	}

	results := make([]*batchResult, len(rows))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			results[i] = compareRow(ctx, parser, row)
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := lo.CountBy(results, func(r *batchResult) bool { return r.Error != "" })
	log.WithFields(log.Fields{"rows": len(results), "failed": failed}).Debug("batch done")

	if err := gocsv.Marshal(results, out); err != nil {
		return fmt.Errorf("write batch csv: %w", err)
	}
	return nil
}

func compareRow(ctx context.Context, parser *services.Parser, row *batchRow) *batchResult {
	res := &batchResult{
		Source: strings.TrimSpace(row.Source),
		Target: strings.TrimSpace(row.Target),
	}

	fail := func(err error) *batchResult {
		log.WithError(err).WithField("source", res.Source).Debug("batch row failed")
		res.Error = err.Error()
		return res
	}

	from, err := services.FromString(ctx, parser, res.Source)
	if err != nil {
		return fail(err)
	}
	res.SourceLatitude, res.SourceLongitude = from.LatitudeDecimal(), from.LongitudeDecimal()

	to, err := services.FromString(ctx, parser, res.Target)
	if err != nil {
		return fail(err)
	}
	res.TargetLatitude, res.TargetLongitude = to.LatitudeDecimal(), to.LongitudeDecimal()

	cmp, err := compareCoordinates(from, to)
	if err != nil {
		return fail(err)
	}
	res.DistanceMeters = cmp.DistanceMeters
	res.DistanceKilometers = cmp.DistanceKilometers
	res.Bearing = cmp.Bearing
	res.Direction = cmp.Direction

	return res
}

