package dheader

import (
	"emdtojson/emd/dformat"
)

type (
	Header struct {
		Version    uint8             `json:"version"`
		DumpType   *dformat.DumpType `json:"dump_type,omitempty"`
		Checksum   uint32            `json:"checksum"`
		Date       *uint64           `json:"date,omitempty"`
		Snapshot   *uint64           `json:"snapshot,omitempty"`
		Expiration *uint64           `json:"expiration,omitempty"`
		Banner     string            `json:"banner"`
		// Format is the revision resolved from Version.
		Format dformat.Format `json:"-"`
	}
)
