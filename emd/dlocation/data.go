package dlocation

import (
	"emdtojson/emd/dformat"
)

type (
	Location struct {
		ID       uint64  `json:"id"`
		TypeID   uint64  `json:"type_id"`
		OwnerID  uint64  `json:"owner_id"`
		SystemID uint64  `json:"system_id"`
		Security float32 `json:"security"`
		Name     string  `json:"name"`
	}
	Table []Location
)

func (t Table) DumpType() dformat.DumpType {
	return dformat.DumpTypeLocations
}

func (t Table) Len() int {
	return len(t)
}
