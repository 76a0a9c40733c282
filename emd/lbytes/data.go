package lbytes

import (
	"hash"
	"io"
)

type (
	// Reader reads big-endian scalars from a forward-only stream. Once
	// BeginChecksum is called, every byte it hands out is also folded into
	// the returned Accumulator.
	Reader struct {
		r        io.Reader
		offset   int64
		checksum *Accumulator
	}
	// Accumulator is the running CRC-32 of the bytes consumed through a Reader.
	Accumulator struct {
		hash  hash.Hash32
		count int64
	}
	Instruction[T any] struct {
		Key          string
		ReadFunction ReadFunction[T]
	}
	ReadFunction[T any] func(reader *Reader, t *T) error
)

const (
	// readChunkSize bounds the up-front allocation of a single read; longer
	// blocks grow as bytes actually arrive.
	readChunkSize = 64 << 10
)

const (
	// maxPreallocatedEntries caps the capacity reserved from an untrusted
	// element count.
	maxPreallocatedEntries = 4096
)
