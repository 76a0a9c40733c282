package dlocation

import (
	"emdtojson/emd/lbytes"
	"github.com/pkg/errors"
)

var entryInstructions = []lbytes.Instruction[Location]{
	{"id", lbytes.ReadInto((*lbytes.Reader).ReadU64, func(l *Location) *uint64 { return &l.ID })},
	{"type_id", lbytes.ReadInto((*lbytes.Reader).ReadU64, func(l *Location) *uint64 { return &l.TypeID })},
	{"owner_id", lbytes.ReadInto((*lbytes.Reader).ReadU64, func(l *Location) *uint64 { return &l.OwnerID })},
	{"system_id", lbytes.ReadInto((*lbytes.Reader).ReadU64, func(l *Location) *uint64 { return &l.SystemID })},
	{"security", lbytes.ReadInto((*lbytes.Reader).ReadF32, func(l *Location) *float32 { return &l.Security })},
	{"name", lbytes.ReadInto((*lbytes.Reader).ReadString, func(l *Location) *string { return &l.Name })},
}

func DecodeEntry(reader *lbytes.Reader) (*Location, error) {
	location, err := lbytes.ExecuteInstructions(reader, entryInstructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeEntry error")
		return nil, err
	}
	return location, nil
}

// DecodeBlock reads the u64 location count followed by that many locations.
func DecodeBlock(reader *lbytes.Reader) (Table, error) {
	count, err := reader.ReadU64()
	if err != nil {
		err := errors.Wrap(err, "dlocation.DecodeBlock error: read count")
		return nil, err
	}

	locations := make(Table, 0, lbytes.CapacityHint(count))
	for i := uint64(0); i < count; i++ {
		location, err := DecodeEntry(reader)
		if err != nil {
			err := errors.Wrapf(err, "dlocation.DecodeBlock error: location %d of %d", i, count)
			return nil, err
		}
		locations = append(locations, *location)
	}

	return locations, nil
}
