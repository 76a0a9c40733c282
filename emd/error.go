package emd

import (
	"fmt"

	"emdtojson/emd/dformat"
	"emdtojson/emd/lbytes"
	"github.com/pkg/errors"
)

type (
	TruncatedInputError     = lbytes.TruncatedInputError
	InvalidEncodingError    = lbytes.InvalidEncodingError
	UnsupportedVersionError = dformat.UnsupportedVersionError

	UnrecognizedDumpTypeError struct {
		Version  uint8
		DumpType dformat.DumpType
	}
	ChecksumMismatchError struct {
		Declared uint32
		Computed uint32
	}
)

func (r UnrecognizedDumpTypeError) Error() string {
	return fmt.Sprintf("unrecognized dump type %d for version %d", uint8(r.DumpType), r.Version)
}

func (r ChecksumMismatchError) Error() string {
	return fmt.Sprintf(
		"checksum mismatch: header declares %#08x, body hashes to %#08x",
		r.Declared, r.Computed,
	)
}

// Err folds the warnings into a single error, nil when there are none.
func (w Warnings) Err() error {
	switch len(w) {
	case 0:
		return nil
	case 1:
		return w[0]
	default:
		return errors.Wrapf(w[0], "%d warnings, first", len(w))
	}
}

func (w Warnings) ChecksumMismatch() bool {
	var mismatch ChecksumMismatchError
	for _, warning := range w {
		if errors.As(warning, &mismatch) {
			return true
		}
	}
	return false
}
