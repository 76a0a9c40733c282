package lbytes

import (
	"hash/crc32"
)

func NewAccumulator() *Accumulator {
	return &Accumulator{
		hash: crc32.NewIEEE(),
	}
}

// Fold adds bs to the running checksum. hash.Hash32 writes never fail.
func (a *Accumulator) Fold(bs []byte) {
	_, _ = a.hash.Write(bs)
	a.count += int64(len(bs))
}

func (a *Accumulator) Value() uint32 {
	return a.hash.Sum32()
}

// Len is the number of bytes folded so far.
func (a *Accumulator) Len() int64 {
	return a.count
}
