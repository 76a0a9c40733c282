package lbytes

import (
	"bytes"
	"hash/crc32"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadScalars(t *testing.T) {
	reader := NewBytesReader(
		[]byte{
			0xFF,
			0xFE,
			0x01, 0x02,
			0x01, 0x02, 0x03, 0x04,
			0x00, 0x00, 0x00, 0x00, 0x65, 0x53, 0xF1, 0x00,
		},
	)

	u8, err := reader.ReadU8()
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), u8)

	i8, err := reader.ReadI8()
	assert.NoError(t, err)
	assert.Equal(t, int8(-2), i8)

	u16, err := reader.ReadU16()
	assert.NoError(t, err)
	assert.Equal(t, uint16(258), u16)

	u32, err := reader.ReadU32()
	assert.NoError(t, err)
	assert.Equal(t, uint32(16909060), u32)

	u64, err := reader.ReadU64()
	assert.NoError(t, err)
	assert.Equal(t, uint64(1700000000), u64)

	assert.Equal(t, int64(16), reader.Offset())
}

func TestReader_ReadFloats(t *testing.T) {
	bs := make([]byte, 0, 12)
	bs = append(bs, 0x3F, 0x00, 0x00, 0x00)
	bs = append(bs, 0x40, 0x09, 0x21, 0xFB, 0x54, 0x44, 0x2D, 0x18)
	reader := NewBytesReader(bs)

	f32, err := reader.ReadF32()
	assert.NoError(t, err)
	assert.Equal(t, float32(0.5), f32)

	f64, err := reader.ReadF64()
	assert.NoError(t, err)
	assert.Equal(t, math.Pi, f64)
}

func TestReader_ReadBool(t *testing.T) {
	reader := NewBytesReader([]byte{0, 1, 7})
	for _, expected := range []bool{false, true, true} {
		value, err := reader.ReadBool()
		assert.NoError(t, err)
		assert.Equal(t, expected, value)
	}
}

func TestReader_ReadString(t *testing.T) {
	name := "Jita IV - Moon 4 - Caldari Navy Assembly Plant"
	bs := []byte{0, 0, 0, 0, 0, 0, 0, byte(len(name))}
	bs = append(bs, name...)
	reader := NewBytesReader(bs)

	value, err := reader.ReadString()
	assert.NoError(t, err)
	assert.Equal(t, name, value)
}

func TestReader_ReadEmptyStringAtEndOfStream(t *testing.T) {
	reader := NewBytesReader(make([]byte, 8))

	value, err := reader.ReadString()
	assert.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestReader_ReadStringInvalidUTF8(t *testing.T) {
	bs := []byte{0, 0, 0, 0, 0, 0, 0, 2, 0xC3, 0x28}
	reader := NewBytesReader(bs)

	_, err := reader.ReadString()
	var encodingErr InvalidEncodingError
	require.True(t, errors.As(err, &encodingErr))
	assert.Equal(t, int64(8), encodingErr.Offset)
	assert.Equal(t, 2, encodingErr.Length)
}

func TestReader_ReadStringHugeLength(t *testing.T) {
	bs := []byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 'a'}
	reader := NewBytesReader(bs)

	_, err := reader.ReadString()
	var truncatedErr TruncatedInputError
	assert.True(t, errors.As(err, &truncatedErr))
}

func TestReader_ReadLargeBlockTruncated(t *testing.T) {
	reader := NewBytesReader(make([]byte, readChunkSize+10))

	_, err := reader.ReadFixed(readChunkSize + 11)
	var truncatedErr TruncatedInputError
	require.True(t, errors.As(err, &truncatedErr))
	assert.Equal(t, uint64(readChunkSize+11), truncatedErr.Want)
	assert.Equal(t, uint64(readChunkSize+10), truncatedErr.Got)
}

func TestReader_ReadPaddedString(t *testing.T) {
	bs := make([]byte, 32)
	copy(bs, "TEST")
	reader := NewBytesReader(bs)

	value, err := reader.ReadPaddedString(32)
	assert.NoError(t, err)
	assert.Equal(t, "TEST", value)
	assert.Equal(t, int64(32), reader.Offset())
}

func TestReader_Truncated(t *testing.T) {
	tests := map[string]struct {
		in   []byte
		read func(reader *Reader) error
		got  uint64
	}{
		"u16 with one byte": {
			in:   []byte{1},
			read: func(reader *Reader) error { _, err := reader.ReadU16(); return err },
			got:  1,
		},
		"u32 on empty stream": {
			in:   []byte{},
			read: func(reader *Reader) error { _, err := reader.ReadU32(); return err },
			got:  0,
		},
		"u64 with seven bytes": {
			in:   make([]byte, 7),
			read: func(reader *Reader) error { _, err := reader.ReadU64(); return err },
			got:  7,
		},
		"string body cut short": {
			in:   []byte{0, 0, 0, 0, 0, 0, 0, 5, 'a', 'b'},
			read: func(reader *Reader) error { _, err := reader.ReadString(); return err },
			got:  2,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			err := test.read(NewBytesReader(test.in))
			var truncatedErr TruncatedInputError
			require.True(t, errors.As(err, &truncatedErr), "got %v", err)
			assert.Equal(t, test.got, truncatedErr.Got)
		})
	}
}

func TestReader_ChecksumCoversOnlyBytesAfterBegin(t *testing.T) {
	header := []byte{9, 9, 9, 9}
	body := []byte("the body bytes")
	reader := NewReader(bytes.NewReader(append(header, body...)))

	_, err := reader.ReadFixed(len(header))
	require.NoError(t, err)
	accumulator := reader.BeginChecksum()
	_, err = reader.ReadFixed(3)
	require.NoError(t, err)
	_, err = reader.ReadFixed(len(body) - 3)
	require.NoError(t, err)

	assert.Equal(t, crc32.ChecksumIEEE(body), accumulator.Value())
	assert.Equal(t, int64(len(body)), accumulator.Len())
}

func TestExecuteInstructions(t *testing.T) {
	type pair struct {
		A uint16
		B *uint32
		C string
	}
	instructions := []Instruction[pair]{
		{"a", ReadInto((*Reader).ReadU16, func(p *pair) *uint16 { return &p.A })},
		{"b", ReadOptionalInto((*Reader).ReadU32, func(p *pair) **uint32 { return &p.B })},
		{"c", CreatePaddedStringReadFunction(4, func(p *pair) *string { return &p.C })},
	}

	value, err := ExecuteInstructions(NewBytesReader([]byte{0, 7, 0, 0, 0, 9, 'o', 'k', 0, 0}), instructions)
	require.NoError(t, err)
	assert.Equal(t, uint16(7), value.A)
	require.NotNil(t, value.B)
	assert.Equal(t, uint32(9), *value.B)
	assert.Equal(t, "ok", value.C)

	value, err = ExecuteInstructions(NewBytesReader([]byte{0, 7, 0}), instructions)
	assert.Nil(t, value)
	assert.ErrorContains(t, err, `reading key "b"`)
}
