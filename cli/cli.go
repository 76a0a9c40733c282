package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"emdtojson/config"
	"emdtojson/emd/dformat"
	"emdtojson/filter"
	"emdtojson/output"
	"emdtojson/ui"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Config      string          `arg:"--config" help:"path to a YAML config file" placeholder:"FILE"`
		LogLevel    string          `arg:"--log-level" help:"debug, info, warn or error" placeholder:"LEVEL"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Convert     *ConvertCmd     `arg:"subcommand:convert"`
		Batch       *BatchCmd       `arg:"subcommand:batch"`
		Watch       *WatchCmd       `arg:"subcommand:watch"`
	}
	OutputArgs struct {
		Format string `help:"json or msgpack" placeholder:"FORMAT"`
		Legacy bool   `help:"use the emdtojson.py key layout"`
		Where  string `help:"keep records matching an expression" placeholder:"EXPR"`
		Strict bool   `help:"fail on checksum mismatch or unknown dump type"`

		// FormatVersion decodes as that revision's layout whatever the
		// version byte says.
		FormatVersion *uint8 `arg:"--format-version" help:"force the layout of revision 0-3" placeholder:"N"`
	}
	InteractiveCmd struct {
		Dir string `help:"directory to browse, the working directory by default" placeholder:"DIR"`
	}
	ConvertCmd struct {
		From  string `arg:"required" help:"path to dump, - for stdin" placeholder:"orders.emd"`
		To    string `help:"path to destination, stdout by default" placeholder:"file.json"`
		Force bool   `help:"overwrite the destination file"`
		OutputArgs
	}
	BatchCmd struct {
		OutDir  string   `arg:"--out-dir,required" help:"directory for converted files" placeholder:"DIR"`
		Force   bool     `help:"overwrite destination files"`
		Workers int      `help:"number of parallel conversions" placeholder:"N"`
		Files   []string `arg:"positional,required" placeholder:"DUMP"`
		OutputArgs
	}
	WatchCmd struct {
		Dir    string `arg:"required" help:"directory the dumps are written to" placeholder:"DIR"`
		OutDir string `arg:"--out-dir" help:"directory for converted files, --dir by default" placeholder:"DIR"`
		OutputArgs
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to convert EVE market dumps (.emd) to JSON or MessagePack.",
			"Compressed dumps (.zst, .gz) are read transparently.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// LoadConfig reads the config file when given and applies the global flags.
func LoadConfig(args Args) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if args.Config != "" {
		var err error
		cfg, err = config.LoadConfig(args.Config)
		if err != nil {
			return nil, err
		}
	}
	if args.LogLevel != "" {
		cfg.LogLevel = args.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		err := errors.Wrap(err, "LoadConfig error")
		return nil, err
	}
	return cfg, nil
}

// NewConverter combines the config with the command's output flags.
func NewConverter(cfg *config.Config, outputArgs OutputArgs, logger *slog.Logger) (*Converter, error) {
	converter := Converter{
		Output: cfg.Output,
		Strict: cfg.Strict || outputArgs.Strict,
		Logger: logger,
	}
	if outputArgs.Format != "" {
		format, err := output.ParseFormat(outputArgs.Format)
		if err != nil {
			err := errors.Wrap(err, "NewConverter error")
			return nil, err
		}
		converter.Output.Format = format
	}
	if outputArgs.Legacy {
		converter.Output.Legacy = true
	}
	formatVersion := cfg.FormatVersion
	if outputArgs.FormatVersion != nil {
		formatVersion = outputArgs.FormatVersion
	}
	if formatVersion != nil {
		format, err := dformat.Lookup(*formatVersion)
		if err != nil {
			err := errors.Wrap(err, "NewConverter error")
			return nil, err
		}
		converter.Format = &format
	}
	if outputArgs.Where != "" {
		f, err := filter.Compile(outputArgs.Where)
		if err != nil {
			err := errors.Wrap(err, "NewConverter error")
			return nil, err
		}
		converter.Filter = f
	}
	return &converter, nil
}

func NewLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

func Run(ctx context.Context, args Args, stdout io.Writer, stderr io.Writer) error {
	cfg, err := LoadConfig(args)
	if err != nil {
		return err
	}
	logger := NewLogger(stderr, cfg)

	switch {
	case args.Convert != nil:
		cmd := args.Convert
		converter, err := NewConverter(cfg, cmd.OutputArgs, logger)
		if err != nil {
			return err
		}
		to := cmd.To
		if to == "" {
			to = Stdout
		}
		_, err = converter.ConvertFile(cmd.From, to, cmd.Force, stdout)
		return err
	case args.Batch != nil:
		cmd := args.Batch
		converter, err := NewConverter(cfg, cmd.OutputArgs, logger)
		if err != nil {
			return err
		}
		workers := cfg.Workers
		if cmd.Workers > 0 {
			workers = cmd.Workers
		}
		return converter.ConvertBatch(ctx, cmd.Files, cmd.OutDir, cmd.Force, workers)
	case args.Watch != nil:
		cmd := args.Watch
		converter, err := NewConverter(cfg, cmd.OutputArgs, logger)
		if err != nil {
			return err
		}
		outDir := cmd.OutDir
		if outDir == "" {
			outDir = cmd.Dir
		}
		return converter.Watch(ctx, cmd.Dir, outDir, cfg.Watch.Extension)
	default:
		dir := "."
		if args.Interactive != nil && args.Interactive.Dir != "" {
			dir = args.Interactive.Dir
		}
		return ui.Start(dir, cfg.Watch.Extension)
	}
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := Run(ctx, args, os.Stdout, os.Stderr); err != nil {
		println("Error: " + err.Error())
		stop()
		os.Exit(1)
	}
}
