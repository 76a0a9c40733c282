package dhistory

import (
	"emdtojson/emd/lbytes"
	"github.com/pkg/errors"
)

var dateInstructions = []lbytes.Instruction[Day]{
	{"year", lbytes.ReadInto((*lbytes.Reader).ReadU16, func(d *Day) *uint16 { return &d.Year })},
	{"day", lbytes.ReadInto((*lbytes.Reader).ReadU16, func(d *Day) *uint16 { return &d.Day })},
}

var statInstructions = []lbytes.Instruction[Stat]{
	{"region_id", lbytes.ReadInto((*lbytes.Reader).ReadU64, func(s *Stat) *uint64 { return &s.RegionID })},
	{"type_id", lbytes.ReadInto((*lbytes.Reader).ReadU64, func(s *Stat) *uint64 { return &s.TypeID })},
	{"average", lbytes.ReadInto((*lbytes.Reader).ReadF64, func(s *Stat) *float64 { return &s.Average })},
	{"highest", lbytes.ReadInto((*lbytes.Reader).ReadF64, func(s *Stat) *float64 { return &s.Highest })},
	{"lowest", lbytes.ReadInto((*lbytes.Reader).ReadF64, func(s *Stat) *float64 { return &s.Lowest })},
	{"order_count", lbytes.ReadInto((*lbytes.Reader).ReadU64, func(s *Stat) *uint64 { return &s.OrderCount })},
	{"volume", lbytes.ReadInto((*lbytes.Reader).ReadU64, func(s *Stat) *uint64 { return &s.Volume })},
}

func DecodeStat(reader *lbytes.Reader) (*Stat, error) {
	stat, err := lbytes.ExecuteInstructions(reader, statInstructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeStat error")
		return nil, err
	}
	return stat, nil
}

// Decode reads a single day: year, day of year, then a u64 count of stats.
// Unlike the other tables there is no outer count.
func Decode(reader *lbytes.Reader) (*Day, error) {
	day, err := lbytes.ExecuteInstructions(reader, dateInstructions)
	if err != nil {
		err := errors.Wrap(err, "dhistory.Decode error")
		return nil, err
	}

	count, err := reader.ReadU64()
	if err != nil {
		err := errors.Wrap(err, "dhistory.Decode error: read stat count")
		return nil, err
	}
	day.Stats = make([]Stat, 0, lbytes.CapacityHint(count))
	for i := uint64(0); i < count; i++ {
		stat, err := DecodeStat(reader)
		if err != nil {
			err := errors.Wrapf(err, "dhistory.Decode error: stat %d of %d", i, count)
			return nil, err
		}
		day.Stats = append(day.Stats, *stat)
	}

	return day, nil
}
