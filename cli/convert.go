package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"emdtojson/emd"
	"emdtojson/emd/dformat"
	"emdtojson/filter"
	"emdtojson/output"
	"emdtojson/source"
	"github.com/pkg/errors"
)

type (
	// Converter turns dump files into their serialized form. A zero Logger
	// discards output.
	Converter struct {
		Output output.Options
		Strict bool
		Filter *filter.Filter
		Logger *slog.Logger
		// Format overrides the layout the version byte selects.
		Format *dformat.Format
	}
)

const Stdout = "-"

var (
	ErrSourceNotExist    = errors.New("source file does not exist")
	ErrDestinationExists = errors.New("destination file exists, use --force to overwrite it")
)

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// DestinationPath names the converted file of from inside outDir.
func DestinationPath(outDir string, from string, format output.Format) string {
	return filepath.Join(outDir, source.TrimExtension(from)+format.Extension())
}

func (c Converter) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Decode reads one dump and applies the strict mode and the record filter.
func (c Converter) Decode(r io.Reader) (*emd.Dump, emd.Warnings, error) {
	opts := []emd.Option{emd.WithLogger(c.logger())}
	if c.Format != nil {
		opts = append(opts, emd.WithFormat(*c.Format))
	}
	dump, warnings, err := emd.Decode(r, opts...)
	if err != nil {
		return nil, nil, err
	}
	if c.Strict {
		if err := warnings.Err(); err != nil {
			err := errors.Wrap(err, "Converter.Decode error: strict mode")
			return nil, warnings, err
		}
	}
	if c.Filter != nil {
		if err := c.Filter.ApplyDump(dump); err != nil {
			err := errors.Wrap(err, "Converter.Decode error")
			return nil, warnings, err
		}
	}
	return dump, warnings, nil
}

// ConvertFile decodes from and writes the result to to, or to standard
// output when to is "-". Nothing is written when decoding fails.
func (c Converter) ConvertFile(from string, to string, force bool, stdout io.Writer) (*emd.Summary, error) {
	if from != source.Stdin && !CheckExistence(from) {
		err := errors.Wrapf(ErrSourceNotExist, "ConvertFile error: %s", from)
		return nil, err
	}
	if to != Stdout && CheckExistence(to) && !force {
		err := errors.Wrapf(ErrDestinationExists, "ConvertFile error: %s", to)
		return nil, err
	}

	rc, err := source.Open(from)
	if err != nil {
		err := errors.Wrap(err, "ConvertFile error")
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	dump, warnings, err := c.Decode(rc)
	if err != nil {
		err := errors.Wrapf(err, "ConvertFile error: decode %s", from)
		return nil, err
	}
	for _, warning := range warnings {
		c.logger().Warn("decode warning", "from", from, "warning", warning)
	}

	bs, err := output.Encode(dump, c.Output)
	if err != nil {
		err := errors.Wrap(err, "ConvertFile error")
		return nil, err
	}
	if to == Stdout {
		_, err = stdout.Write(bs)
	} else {
		err = os.WriteFile(to, bs, 0644)
	}
	if err != nil {
		err := errors.Wrapf(err, "ConvertFile error: write %s", to)
		return nil, err
	}

	summary := emd.Summarize(dump)
	c.logger().Info("converted", "from", from, "to", to, "summary", summary)
	return &summary, nil
}
