package dorder

import (
	"emdtojson/emd/dformat"
)

type (
	Order struct {
		IsBuyOrder bool `json:"is_buy_order"`
		// Range is -2 for station, -1 for solar system, 0 for region and the
		// jump count otherwise.
		Range        int8   `json:"range"`
		Duration     uint32 `json:"duration"`
		Issued       uint64 `json:"issued"`
		MinVolume    uint64 `json:"min_volume"`
		VolumeRemain uint64 `json:"volume_remain"`
		VolumeTotal  uint64 `json:"volume_total"`
		LocationID   uint64 `json:"location_id"`
		SystemID     uint64 `json:"system_id"`
		TypeID       uint64 `json:"type_id"`
		// RegionID is nil for revisions that did not record it.
		RegionID *uint64 `json:"region_id,omitempty"`
		OrderID  uint64  `json:"order_id"`
		Price    float64 `json:"price"`
	}
	Table []Order
)

const (
	RangeStation     = int8(-2)
	RangeSolarSystem = int8(-1)
	RangeRegion      = int8(0)
)

func (t Table) DumpType() dformat.DumpType {
	return dformat.DumpTypeOrders
}

func (t Table) Len() int {
	return len(t)
}
