package emd

import (
	"io"
	"log/slog"

	"emdtojson/ds"
	"emdtojson/emd/dformat"
	"emdtojson/emd/dheader"
	"emdtojson/emd/dhistory"
	"emdtojson/emd/dlocation"
	"emdtojson/emd/dorder"
	"emdtojson/emd/lbytes"
	"github.com/pkg/errors"
)

type (
	options struct {
		logger *slog.Logger
		format *dformat.Format
	}
	Option func(*options)
)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithFormat lays out the header and records as format instead of the
// revision the version byte declares. The dump writer stamps version 1 on
// dumps laid out as dformat.VersionExpiration.
func WithFormat(format dformat.Format) Option {
	return func(o *options) {
		o.format = &format
	}
}

func decodeRecords(reader *lbytes.Reader, format dformat.Format, dumpType dformat.DumpType) (Records, error) {
	switch dumpType {
	case dformat.DumpTypeLocations:
		return dlocation.DecodeBlock(reader)
	case dformat.DumpTypeOrders:
		return dorder.DecodeBlock(reader, format)
	case dformat.DumpTypeHistories:
		return dhistory.Decode(reader)
	default:
		return nil, ds.ErrUnreachableCode{Caller: "emd.decodeRecords"}
	}
}

// Decode reads one dump from r in a single forward pass.
//
// Truncated input, invalid UTF-8 and unknown versions are fatal and no dump
// is returned. An unrecognized dump type or a checksum mismatch still yields
// the dump, with the condition reported in the returned warnings.
func Decode(r io.Reader, opts ...Option) (*Dump, Warnings, error) {
	o := options{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	reader := lbytes.NewReader(r)
	var (
		header *dheader.Header
		err    error
	)
	if o.format != nil {
		header, err = dheader.DecodeAs(reader, *o.format)
	} else {
		header, err = dheader.Decode(reader)
	}
	if err != nil {
		err := errors.Wrap(err, "emd.Decode error")
		return nil, nil, err
	}
	o.logger.Debug(
		"decoded header",
		"version", header.Version,
		"format", header.Format.Name,
		"header_size", reader.Offset(),
	)

	dump := Dump{
		Version:          header.Version,
		DumpType:         header.DumpType,
		DeclaredChecksum: header.Checksum,
		Date:             header.Date,
		Snapshot:         header.Snapshot,
		Expiration:       header.Expiration,
		Banner:           header.Banner,
		Format:           header.Format,
	}
	warnings := Warnings{}

	dumpType := header.ResolvedDumpType()
	if !header.Format.Carries(dumpType) {
		warning := UnrecognizedDumpTypeError{Version: header.Version, DumpType: dumpType}
		o.logger.Warn("skipping records", "error", warning)
		return &dump, append(warnings, warning), nil
	}

	var checksum *lbytes.Accumulator
	if header.Format.HasChecksumScope {
		checksum = reader.BeginChecksum()
	}
	dump.Records, err = decodeRecords(reader, header.Format, dumpType)
	if err != nil {
		err := errors.Wrapf(err, "emd.Decode error: %s table", dumpType)
		return nil, nil, err
	}
	o.logger.Debug(
		"decoded records",
		"dump_type", dumpType,
		"records", dump.Records.Len(),
		"bytes", reader.Offset(),
	)

	if checksum != nil {
		computed := checksum.Value()
		dump.ComputedChecksum = &computed
		if computed != dump.DeclaredChecksum {
			warning := ChecksumMismatchError{Declared: dump.DeclaredChecksum, Computed: computed}
			o.logger.Warn("checksum mismatch", "error", warning)
			warnings = append(warnings, warning)
		}
	}

	return &dump, warnings, nil
}
