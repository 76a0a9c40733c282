package lbytes

import (
	"fmt"
)

type (
	TruncatedInputError struct {
		Offset int64
		Want   uint64
		Got    uint64
	}
	InvalidEncodingError struct {
		Offset int64
		Length int
	}
)

func (r TruncatedInputError) Error() string {
	return fmt.Sprintf(
		"truncated input at offset %d: wanted %d bytes, got %d",
		r.Offset, r.Want, r.Got,
	)
}

func (r InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid UTF-8 in %d bytes at offset %d", r.Length, r.Offset)
}
