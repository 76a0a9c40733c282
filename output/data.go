// Package output serializes decoded dumps.
package output

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	Format  string
	Options struct {
		Format Format `yaml:"format"`
		// Indent is used for JSON only; empty means compact output.
		Indent string `yaml:"indent"`
		// Legacy uses the emdtojson.py key layout.
		Legacy bool `yaml:"legacy"`
	}
)

const (
	FormatJSON    = Format("json")
	FormatMsgpack = Format("msgpack")
)

const (
	KeyVersion  = "version"
	KeyType     = "type"
	KeyChecksum = "checksum"
	KeyAsciiArt = "ascii_art"
	KeyData     = "data"
)

// Extension is the file extension for files written in format f.
func (f Format) Extension() string {
	switch f {
	case FormatMsgpack:
		return ".msgpack"
	default:
		return ".json"
	}
}

var Formats = []Format{FormatJSON, FormatMsgpack}

func ParseFormat(s string) (Format, error) {
	format := Format(s)
	if !lo.Contains(Formats, format) {
		return "", errors.Errorf("unknown output format %q, expected one of %v", s, Formats)
	}
	return format, nil
}
