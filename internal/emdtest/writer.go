// Package emdtest builds dump files byte by byte for tests, the same way the
// dump writer lays them out.
package emdtest

import (
	"encoding/binary"
	"hash/crc32"
	"math"

	"emdtojson/emd/dformat"
	"emdtojson/emd/dhistory"
	"emdtojson/emd/dlocation"
	"emdtojson/emd/dorder"
)

type (
	Writer struct {
		bs []byte
	}
	Header struct {
		Version  uint8
		DumpType dformat.DumpType
		// Checksum overrides the CRC-32 of the body when set.
		Checksum   *uint32
		Date       uint64
		Snapshot   uint64
		Expiration uint64
		Banner     string
	}
)

func (w *Writer) U8(n uint8) *Writer {
	w.bs = append(w.bs, n)
	return w
}

func (w *Writer) I8(n int8) *Writer {
	return w.U8(uint8(n))
}

func (w *Writer) Bool(b bool) *Writer {
	if b {
		return w.U8(1)
	}
	return w.U8(0)
}

func (w *Writer) U16(n uint16) *Writer {
	w.bs = binary.BigEndian.AppendUint16(w.bs, n)
	return w
}

func (w *Writer) U32(n uint32) *Writer {
	w.bs = binary.BigEndian.AppendUint32(w.bs, n)
	return w
}

func (w *Writer) U64(n uint64) *Writer {
	w.bs = binary.BigEndian.AppendUint64(w.bs, n)
	return w
}

func (w *Writer) F32(x float32) *Writer {
	return w.U32(math.Float32bits(x))
}

func (w *Writer) F64(x float64) *Writer {
	return w.U64(math.Float64bits(x))
}

func (w *Writer) Raw(bs []byte) *Writer {
	w.bs = append(w.bs, bs...)
	return w
}

func (w *Writer) Text(s string) *Writer {
	return w.U64(uint64(len(s))).Raw([]byte(s))
}

func (w *Writer) Padded(s string, n int) *Writer {
	block := make([]byte, n)
	copy(block, s)
	return w.Raw(block)
}

func (w *Writer) Bytes() []byte {
	return w.bs
}

func Uint8(n uint8) *uint8 {
	return &n
}

func Uint64(n uint64) *uint64 {
	return &n
}

func Uint32(n uint32) *uint32 {
	return &n
}

// Dump prepends the header of the given revision to body.
func Dump(header Header, body []byte) []byte {
	format, err := dformat.Lookup(header.Version)
	if err != nil {
		panic(err)
	}
	checksum := crc32.ChecksumIEEE(body)
	if header.Checksum != nil {
		checksum = *header.Checksum
	}

	w := &Writer{}
	w.U8(header.Version)
	for _, field := range format.Shape {
		switch field {
		case dformat.FieldType:
			w.U8(uint8(header.DumpType))
		case dformat.FieldChecksum:
			w.U32(checksum)
		case dformat.FieldDate:
			w.U64(header.Date)
		case dformat.FieldSnapshot:
			w.U64(header.Snapshot)
		case dformat.FieldExpiration:
			w.U64(header.Expiration)
		case dformat.FieldBanner:
			w.Padded(header.Banner, dformat.BannerSize)
		}
	}
	return w.Raw(body).Bytes()
}

func LocationTable(locations ...dlocation.Location) []byte {
	w := &Writer{}
	w.U64(uint64(len(locations)))
	for _, location := range locations {
		w.U64(location.ID).
			U64(location.TypeID).
			U64(location.OwnerID).
			U64(location.SystemID).
			F32(location.Security).
			Text(location.Name)
	}
	return w.Bytes()
}

// OrderTable writes region ids only when withRegionID is set; orders lacking
// one are written with region 0.
func OrderTable(withRegionID bool, orders ...dorder.Order) []byte {
	w := &Writer{}
	w.U64(uint64(len(orders)))
	for _, order := range orders {
		w.Bool(order.IsBuyOrder).
			I8(order.Range).
			U32(order.Duration).
			U64(order.Issued).
			U64(order.MinVolume).
			U64(order.VolumeRemain).
			U64(order.VolumeTotal).
			U64(order.LocationID).
			U64(order.SystemID).
			U64(order.TypeID)
		if withRegionID {
			regionID := uint64(0)
			if order.RegionID != nil {
				regionID = *order.RegionID
			}
			w.U64(regionID)
		}
		w.U64(order.OrderID).F64(order.Price)
	}
	return w.Bytes()
}

func HistoryDay(day dhistory.Day) []byte {
	w := &Writer{}
	w.U16(day.Year).U16(day.Day).U64(uint64(len(day.Stats)))
	for _, stat := range day.Stats {
		w.U64(stat.RegionID).
			U64(stat.TypeID).
			F64(stat.Average).
			F64(stat.Highest).
			F64(stat.Lowest).
			U64(stat.OrderCount).
			U64(stat.Volume)
	}
	return w.Bytes()
}

// StampedDump lays the dump out as revision layout but writes header.Version
// as the version byte, the way the dump writer stamps version 1 on dumps laid
// out as dformat.VersionExpiration.
func StampedDump(layout uint8, header Header, body []byte) []byte {
	stamped := header.Version
	header.Version = layout
	bs := Dump(header, body)
	bs[0] = stamped
	return bs
}
