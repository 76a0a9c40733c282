package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type (
	// DuplicateDestinationError is returned when several inputs of a batch
	// convert to the same file, e.g. a/x.emd and b/x.emd.
	DuplicateDestinationError struct {
		Destination string
		Sources     []string
	}
)

func (r DuplicateDestinationError) Error() string {
	return fmt.Sprintf("%d inputs convert to %s: %v", len(r.Sources), r.Destination, r.Sources)
}

// checkDestinations maps every input to its destination and fails on the
// first destination shared by two inputs.
func checkDestinations(files []string, destination func(string) string) ([]string, error) {
	destinations := make([]string, 0, len(files))
	sources := map[string][]string{}
	for _, from := range files {
		to := destination(from)
		destinations = append(destinations, to)
		sources[to] = append(sources[to], from)
	}
	for _, to := range destinations {
		if len(sources[to]) > 1 {
			return nil, DuplicateDestinationError{Destination: to, Sources: sources[to]}
		}
	}
	return destinations, nil
}

// ConvertBatch converts files into outDir with at most workers decodes in
// flight. The first failure cancels the conversions not yet started.
func (c Converter) ConvertBatch(ctx context.Context, files []string, outDir string, force bool, workers int) error {
	destinations, err := checkDestinations(
		files,
		func(from string) string {
			return DestinationPath(outDir, from, c.Output.Format)
		},
	)
	if err != nil {
		err := errors.Wrap(err, "ConvertBatch error")
		return err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		err := errors.Wrap(err, "ConvertBatch error: create output directory")
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, from := range files {
		to := destinations[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, err := c.ConvertFile(from, to, force, nil)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		err := errors.Wrap(err, "ConvertBatch error")
		return err
	}
	return nil
}
