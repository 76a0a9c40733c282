package output

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"emdtojson/ds"
	"emdtojson/emd"
	"emdtojson/emd/dformat"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// ToLinkedHashMap lays the dump out the way emdtojson.py does: header
// fields first, the banner as "ascii_art" with its NUL padding restored, the
// table as "data".
func ToLinkedHashMap(dump *emd.Dump) *ds.LinkedHashMap[string, any] {
	lhm := ds.NewLinkedHashMap[string, any]()
	lhm.Put(KeyVersion, dump.Version)
	dumpType := dformat.DumpTypeLocations
	if dump.DumpType != nil {
		dumpType = *dump.DumpType
	}
	lhm.Put(KeyType, dumpType)
	lhm.Put(KeyChecksum, dump.DeclaredChecksum)
	timestamps := []struct {
		field dformat.Field
		value *uint64
	}{
		{dformat.FieldDate, dump.Date},
		{dformat.FieldSnapshot, dump.Snapshot},
		{dformat.FieldExpiration, dump.Expiration},
	}
	for _, timestamp := range timestamps {
		if timestamp.value != nil {
			lhm.Put(string(timestamp.field), *timestamp.value)
		}
	}
	lhm.Put(KeyAsciiArt, PadBanner(dump.Banner))
	if dump.Records != nil {
		lhm.Put(KeyData, dump.Records)
	}
	return lhm
}

// PadBanner restores the trailing NULs trimmed from a decoded banner.
func PadBanner(banner string) string {
	if len(banner) >= dformat.BannerSize {
		return banner
	}
	return banner + strings.Repeat("\x00", dformat.BannerSize-len(banner))
}

func Encode(dump *emd.Dump, options Options) ([]byte, error) {
	var value any = dump
	if options.Legacy {
		value = ToLinkedHashMap(dump)
	}

	switch options.Format {
	case FormatJSON, "":
		var (
			bs  []byte
			err error
		)
		if options.Indent != "" {
			bs, err = json.MarshalIndent(value, "", options.Indent)
		} else {
			bs, err = json.Marshal(value)
		}
		if err != nil {
			err := errors.Wrap(err, "output.Encode error: JSON")
			return nil, err
		}
		return append(bs, '\n'), nil
	case FormatMsgpack:
		buf := bytes.Buffer{}
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		if err := enc.Encode(value); err != nil {
			err := errors.Wrap(err, "output.Encode error: msgpack")
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, errors.Errorf("output.Encode error: unknown format %q", options.Format)
	}
}

func Write(w io.Writer, dump *emd.Dump, options Options) error {
	bs, err := Encode(dump, options)
	if err != nil {
		return err
	}
	if _, err := w.Write(bs); err != nil {
		err := errors.Wrap(err, "output.Write error")
		return err
	}
	return nil
}
