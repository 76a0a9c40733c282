package dheader

import (
	"emdtojson/ds"
	"emdtojson/emd/dformat"
	"emdtojson/emd/lbytes"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

func readDumpType(reader *lbytes.Reader) (dformat.DumpType, error) {
	n, err := reader.ReadU8()
	return dformat.DumpType(n), err
}

func createInstruction(field dformat.Field) lbytes.Instruction[Header] {
	var readFunction lbytes.ReadFunction[Header]
	switch field {
	case dformat.FieldType:
		readFunction = lbytes.ReadOptionalInto(
			readDumpType,
			func(h *Header) **dformat.DumpType { return &h.DumpType },
		)
	case dformat.FieldChecksum:
		readFunction = lbytes.ReadInto(
			(*lbytes.Reader).ReadU32,
			func(h *Header) *uint32 { return &h.Checksum },
		)
	case dformat.FieldDate:
		readFunction = lbytes.ReadOptionalInto(
			(*lbytes.Reader).ReadU64,
			func(h *Header) **uint64 { return &h.Date },
		)
	case dformat.FieldSnapshot:
		readFunction = lbytes.ReadOptionalInto(
			(*lbytes.Reader).ReadU64,
			func(h *Header) **uint64 { return &h.Snapshot },
		)
	case dformat.FieldExpiration:
		readFunction = lbytes.ReadOptionalInto(
			(*lbytes.Reader).ReadU64,
			func(h *Header) **uint64 { return &h.Expiration },
		)
	case dformat.FieldBanner:
		readFunction = lbytes.CreatePaddedStringReadFunction(
			dformat.BannerSize,
			func(h *Header) *string { return &h.Banner },
		)
	default:
		readFunction = func(*lbytes.Reader, *Header) error {
			return ds.ErrUnreachableCode{Caller: "dheader.createInstruction " + string(field)}
		}
	}
	return lbytes.Instruction[Header]{
		Key:          string(field),
		ReadFunction: readFunction,
	}
}

// Decode reads the version byte, resolves the revision and then reads the
// remaining header fields in the order the revision lays them out.
func Decode(reader *lbytes.Reader) (*Header, error) {
	return decode(reader, nil)
}

// DecodeAs reads the version byte but lays out the rest of the header as
// format, whatever version the byte declares.
func DecodeAs(reader *lbytes.Reader, format dformat.Format) (*Header, error) {
	return decode(reader, &format)
}

func decode(reader *lbytes.Reader, forced *dformat.Format) (*Header, error) {
	version, err := reader.ReadU8()
	if err != nil {
		err := errors.Wrap(err, "dheader.Decode error: read version")
		return nil, err
	}
	var format dformat.Format
	if forced != nil {
		format = *forced
	} else {
		format, err = dformat.Lookup(version)
		if err != nil {
			return nil, err
		}
	}

	instructions := lo.Map(
		format.Shape,
		func(field dformat.Field, _ int) lbytes.Instruction[Header] {
			return createInstruction(field)
		},
	)
	header, err := lbytes.ExecuteInstructions(reader, instructions)
	if err != nil {
		err := errors.Wrap(err, "dheader.Decode error")
		return nil, err
	}
	header.Version = version
	header.Format = format

	return header, nil
}

// ResolvedDumpType is the table the header announces. Revisions without a
// type discriminant only ever carried locations.
func (h Header) ResolvedDumpType() dformat.DumpType {
	if h.DumpType == nil {
		return dformat.DumpTypeLocations
	}
	return *h.DumpType
}
