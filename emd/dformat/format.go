package dformat

import (
	"fmt"

	"emdtojson/ds"
	"github.com/samber/lo"
)

var formats = []Format{
	{
		Version:          VersionLegacy,
		Name:             "legacy",
		Shape:            []Field{FieldChecksum, FieldDate, FieldBanner},
		HasDumpType:      false,
		HasRegionID:      false,
		HasChecksumScope: false,
		DumpTypes:        []DumpType{DumpTypeLocations},
	},
	{
		Version:          VersionTyped,
		Name:             "typed",
		Shape:            []Field{FieldType, FieldChecksum, FieldDate, FieldBanner},
		HasDumpType:      true,
		HasRegionID:      false,
		HasChecksumScope: true,
		DumpTypes:        []DumpType{DumpTypeLocations, DumpTypeOrders},
	},
	{
		Version:          VersionSnapshot,
		Name:             "snapshot",
		Shape:            []Field{FieldType, FieldChecksum, FieldSnapshot, FieldExpiration, FieldBanner},
		HasDumpType:      true,
		HasRegionID:      true,
		HasChecksumScope: true,
		DumpTypes:        []DumpType{DumpTypeLocations, DumpTypeOrders, DumpTypeHistories},
	},
	{
		Version:          VersionExpiration,
		Name:             "expiration",
		Shape:            []Field{FieldType, FieldChecksum, FieldExpiration, FieldBanner},
		HasDumpType:      true,
		HasRegionID:      true,
		HasChecksumScope: true,
		DumpTypes:        []DumpType{DumpTypeLocations, DumpTypeOrders, DumpTypeHistories},
	},
}

var formatByVersion = lo.SliceToMap(
	formats,
	func(format Format) (uint8, Format) {
		return format.Version, format
	},
)

type UnsupportedVersionError struct {
	Version uint8
}

func (r UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported dump version %d", r.Version)
}

func Lookup(version uint8) (Format, error) {
	format, ok := formatByVersion[version]
	if !ok {
		return Format{}, UnsupportedVersionError{Version: version}
	}
	return format, nil
}

func Formats() []Format {
	return ds.ShallowCopy(formats)
}

// Carries reports whether a dump of this revision can hold the given table.
func (f Format) Carries(dumpType DumpType) bool {
	return lo.Contains(f.DumpTypes, dumpType)
}

func (f Format) HasField(field Field) bool {
	return lo.Contains(f.Shape, field)
}

// HeaderSize is the number of bytes the header occupies, version byte included.
func (f Format) HeaderSize() int {
	return lo.Reduce(
		f.Shape,
		func(size int, field Field, _ int) int {
			return size + field.Size()
		},
		1,
	)
}

func (f Field) Size() int {
	switch f {
	case FieldType:
		return 1
	case FieldChecksum:
		return 4
	case FieldDate, FieldSnapshot, FieldExpiration:
		return 8
	case FieldBanner:
		return BannerSize
	default:
		return 0
	}
}

func (t DumpType) String() string {
	switch t {
	case DumpTypeLocations:
		return "locations"
	case DumpTypeOrders:
		return "orders"
	case DumpTypeHistories:
		return "histories"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}
