package dhistory

import (
	"emdtojson/emd/dformat"
)

type (
	// Day holds the market statistics of every market for one day of the year.
	Day struct {
		Year  uint16 `json:"year"`
		Day   uint16 `json:"day"`
		Stats []Stat `json:"stats"`
	}
	Stat struct {
		RegionID   uint64  `json:"region_id"`
		TypeID     uint64  `json:"type_id"`
		Average    float64 `json:"average"`
		Highest    float64 `json:"highest"`
		Lowest     float64 `json:"lowest"`
		OrderCount uint64  `json:"order_count"`
		Volume     uint64  `json:"volume"`
	}
)

func (d Day) DumpType() dformat.DumpType {
	return dformat.DumpTypeHistories
}

func (d Day) Len() int {
	return len(d.Stats)
}
