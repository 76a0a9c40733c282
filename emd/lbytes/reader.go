package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

func NewReader(r io.Reader) *Reader {
	return &Reader{
		r: r,
	}
}

func NewBytesReader(bs []byte) *Reader {
	return NewReader(bytes.NewReader(bs))
}

// BeginChecksum starts folding every subsequent read into a fresh accumulator.
func (b *Reader) BeginChecksum() *Accumulator {
	b.checksum = NewAccumulator()
	return b.checksum
}

// Offset is the number of bytes consumed since the start of the stream.
func (b *Reader) Offset() int64 {
	return b.offset
}

func (b *Reader) ReadFixed(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Errorf("ReadFixed error: negative length %d", n)
	}
	// return early to avoid an EOF error when the stream is exhausted
	// and the number of bytes to read is 0
	if n == 0 {
		return []byte{}, nil
	}

	var (
		bs  []byte
		got int
		err error
	)
	if n <= readChunkSize {
		bs = make([]byte, n)
		got, err = io.ReadFull(b.r, bs)
	} else {
		buf := bytes.Buffer{}
		copied, copyErr := io.CopyN(&buf, b.r, int64(n))
		bs, got, err = buf.Bytes(), int(copied), copyErr
	}
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, TruncatedInputError{
				Offset: b.offset,
				Want:   uint64(n),
				Got:    uint64(got),
			}
		}
		return nil, errors.Wrapf(err, "ReadFixed error at offset %d", b.offset)
	}

	b.offset += int64(n)
	if b.checksum != nil {
		b.checksum.Fold(bs)
	}
	return bs, nil
}

func (b *Reader) ReadU8() (uint8, error) {
	bs, err := b.ReadFixed(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (b *Reader) ReadI8() (int8, error) {
	n, err := b.ReadU8()
	return int8(n), err
}

func (b *Reader) ReadBool() (bool, error) {
	n, err := b.ReadU8()
	return n != 0, err
}

func (b *Reader) ReadU16() (uint16, error) {
	bs, err := b.ReadFixed(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(bs), nil
}

func (b *Reader) ReadU32() (uint32, error) {
	bs, err := b.ReadFixed(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(bs), nil
}

func (b *Reader) ReadU64() (uint64, error) {
	bs, err := b.ReadFixed(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(bs), nil
}

func (b *Reader) ReadF32() (float32, error) {
	n, err := b.ReadU32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(n), nil
}

func (b *Reader) ReadF64() (float64, error) {
	n, err := b.ReadU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(n), nil
}

// ReadString reads a u64 byte length followed by that many UTF-8 bytes.
func (b *Reader) ReadString() (string, error) {
	length, err := b.ReadU64()
	if err != nil {
		return "", err
	}
	if length > math.MaxInt32 {
		// no stream this decoder reads can hold a string that long
		return "", TruncatedInputError{Offset: b.offset, Want: length}
	}
	offset := b.offset
	bs, err := b.ReadFixed(int(length))
	if err != nil {
		return "", err
	}
	return decodeUTF8(bs, offset)
}

// ReadPaddedString reads an n byte block holding UTF-8 text padded with
// zero bytes.
func (b *Reader) ReadPaddedString(n int) (string, error) {
	offset := b.offset
	bs, err := b.ReadFixed(n)
	if err != nil {
		return "", err
	}
	return decodeUTF8(bytes.TrimRight(bs, "\x00"), offset)
}

func decodeUTF8(bs []byte, offset int64) (string, error) {
	validated, _, err := transform.Bytes(encoding.UTF8Validator, bs)
	if err != nil {
		return "", InvalidEncodingError{Offset: offset, Length: len(bs)}
	}
	return string(validated), nil
}

// CapacityHint is the slice capacity to reserve for count entries read from
// the stream.
func CapacityHint(count uint64) int {
	return int(min(count, maxPreallocatedEntries))
}
