// Package emd decodes EVE market dump files: a fixed header followed by one
// table of locations, orders or market history.
package emd

import (
	"emdtojson/emd/dformat"
)

type (
	Dump struct {
		Version          uint8             `json:"version"`
		DumpType         *dformat.DumpType `json:"dump_type,omitempty"`
		DeclaredChecksum uint32            `json:"declared_checksum"`
		// ComputedChecksum is nil when the revision has no checksum scope or
		// the body was not read.
		ComputedChecksum *uint32 `json:"computed_checksum,omitempty"`
		Date             *uint64 `json:"date,omitempty"`
		Snapshot         *uint64 `json:"snapshot,omitempty"`
		Expiration       *uint64 `json:"expiration,omitempty"`
		Banner           string  `json:"banner"`
		// Records is a dlocation.Table, a dorder.Table or a *dhistory.Day, and
		// nil when the dump type was not recognized.
		Records Records `json:"records,omitempty"`

		Format dformat.Format `json:"-"`
	}
	Records interface {
		DumpType() dformat.DumpType
		Len() int
	}
	// Warnings are the non-fatal conditions met while decoding. The dump they
	// come with is complete and well formed.
	Warnings []error
)
