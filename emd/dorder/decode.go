package dorder

import (
	"emdtojson/emd/dformat"
	"emdtojson/emd/lbytes"
	"github.com/pkg/errors"
)

type instruction = lbytes.Instruction[Order]

func readU64(key string, field func(o *Order) *uint64) instruction {
	return instruction{key, lbytes.ReadInto((*lbytes.Reader).ReadU64, field)}
}

// CreateEntryInstructions lists the order fields in the order the given
// revision writes them.
func CreateEntryInstructions(format dformat.Format) []instruction {
	instructions := []instruction{
		{"is_buy_order", lbytes.ReadInto((*lbytes.Reader).ReadBool, func(o *Order) *bool { return &o.IsBuyOrder })},
		{"range", lbytes.ReadInto((*lbytes.Reader).ReadI8, func(o *Order) *int8 { return &o.Range })},
		{"duration", lbytes.ReadInto((*lbytes.Reader).ReadU32, func(o *Order) *uint32 { return &o.Duration })},
		readU64("issued", func(o *Order) *uint64 { return &o.Issued }),
		readU64("min_volume", func(o *Order) *uint64 { return &o.MinVolume }),
		readU64("volume_remain", func(o *Order) *uint64 { return &o.VolumeRemain }),
		readU64("volume_total", func(o *Order) *uint64 { return &o.VolumeTotal }),
		readU64("location_id", func(o *Order) *uint64 { return &o.LocationID }),
		readU64("system_id", func(o *Order) *uint64 { return &o.SystemID }),
		readU64("type_id", func(o *Order) *uint64 { return &o.TypeID }),
	}
	if format.HasRegionID {
		instructions = append(instructions, instruction{
			"region_id",
			lbytes.ReadOptionalInto((*lbytes.Reader).ReadU64, func(o *Order) **uint64 { return &o.RegionID }),
		})
	}
	instructions = append(
		instructions,
		readU64("order_id", func(o *Order) *uint64 { return &o.OrderID }),
		instruction{"price", lbytes.ReadInto((*lbytes.Reader).ReadF64, func(o *Order) *float64 { return &o.Price })},
	)
	return instructions
}

func DecodeEntry(reader *lbytes.Reader, instructions []instruction) (*Order, error) {
	order, err := lbytes.ExecuteInstructions(reader, instructions)
	if err != nil {
		err := errors.Wrap(err, "DecodeEntry error")
		return nil, err
	}
	return order, nil
}

// DecodeBlock reads the u64 order count followed by that many orders laid
// out for the given revision.
func DecodeBlock(reader *lbytes.Reader, format dformat.Format) (Table, error) {
	count, err := reader.ReadU64()
	if err != nil {
		err := errors.Wrap(err, "dorder.DecodeBlock error: read count")
		return nil, err
	}

	instructions := CreateEntryInstructions(format)
	orders := make(Table, 0, lbytes.CapacityHint(count))
	for i := uint64(0); i < count; i++ {
		order, err := DecodeEntry(reader, instructions)
		if err != nil {
			err := errors.Wrapf(err, "dorder.DecodeBlock error: order %d of %d", i, count)
			return nil, err
		}
		orders = append(orders, *order)
	}

	return orders, nil
}
