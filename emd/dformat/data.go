// Package dformat enumerates the revisions of the dump format. Everything
// that differs between revisions is looked up here instead of being guessed
// from the bytes.
package dformat

type (
	DumpType uint8
	// Field is one entry of a header shape.
	Field string
	Format struct {
		Version uint8
		Name    string
		// Shape lists the header fields following the version byte, in order.
		Shape            []Field
		HasDumpType      bool
		HasRegionID      bool
		HasChecksumScope bool
		// DumpTypes are the record tables this revision can carry.
		DumpTypes []DumpType
	}
)

const (
	DumpTypeLocations = DumpType(0)
	DumpTypeOrders    = DumpType(1)
	DumpTypeHistories = DumpType(2)
)

const (
	FieldType       = Field("type")
	FieldChecksum   = Field("checksum")
	FieldDate       = Field("date")
	FieldSnapshot   = Field("snapshot")
	FieldExpiration = Field("expiration")
	FieldBanner     = Field("banner")
)

const (
	// BannerSize is the length of the text blob closing every header.
	BannerSize = 32
)

const (
	VersionLegacy     = uint8(0)
	VersionTyped      = uint8(1)
	VersionSnapshot   = uint8(2)
	VersionExpiration = uint8(3)
)
