package dheader

import (
	"testing"

	"emdtojson/emd/dformat"
	"emdtojson/emd/lbytes"
	"emdtojson/internal/emdtest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func padded(s string) []byte {
	bs := make([]byte, dformat.BannerSize)
	copy(bs, s)
	return bs
}

func TestDecode_Shapes(t *testing.T) {
	tests := map[string]struct {
		in         []byte
		dumpType   dformat.DumpType
		typed      bool
		date       *uint64
		snapshot   *uint64
		expiration *uint64
	}{
		"legacy": {
			in: append(
				[]byte{0, 0, 0, 0, 7, 0, 0, 0, 0, 0, 0, 0, 5},
				padded("A")...,
			),
			dumpType: dformat.DumpTypeLocations,
			date:     u64(5),
		},
		"typed": {
			in: append(
				[]byte{1, 1, 0, 0, 0, 7, 0, 0, 0, 0, 0, 0, 0, 5},
				padded("A")...,
			),
			dumpType: dformat.DumpTypeOrders,
			typed:    true,
			date:     u64(5),
		},
		"snapshot": {
			in: append(
				[]byte{2, 2, 0, 0, 0, 7, 0, 0, 0, 0, 0, 0, 0, 5, 0, 0, 0, 0, 0, 0, 0, 6},
				padded("A")...,
			),
			dumpType:   dformat.DumpTypeHistories,
			typed:      true,
			snapshot:   u64(5),
			expiration: u64(6),
		},
		"expiration": {
			in: append(
				[]byte{3, 0, 0, 0, 0, 7, 0, 0, 0, 0, 0, 0, 0, 6},
				padded("A")...,
			),
			dumpType:   dformat.DumpTypeLocations,
			typed:      true,
			expiration: u64(6),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			reader := lbytes.NewBytesReader(test.in)
			header, err := Decode(reader)
			require.NoError(t, err)

			assert.Equal(t, uint32(7), header.Checksum)
			assert.Equal(t, "A", header.Banner)
			assert.Equal(t, test.typed, header.DumpType != nil)
			assert.Equal(t, test.dumpType, header.ResolvedDumpType())
			assert.Equal(t, test.date, header.Date)
			assert.Equal(t, test.snapshot, header.Snapshot)
			assert.Equal(t, test.expiration, header.Expiration)
			assert.Equal(t, int64(len(test.in)), reader.Offset())
			assert.Equal(t, header.Format.HeaderSize(), len(test.in))
		})
	}
}

func TestDecode_TruncatedBanner(t *testing.T) {
	in := append([]byte{3, 0, 0, 0, 0, 7, 0, 0, 0, 0, 0, 0, 0, 6}, "short"...)

	header, err := Decode(lbytes.NewBytesReader(in))
	assert.Nil(t, header)
	assert.ErrorContains(t, err, `reading key "banner"`)
	assert.ErrorContains(t, err, "truncated input")
}

func u64(n uint64) *uint64 {
	return &n
}

func TestDecodeAs(t *testing.T) {
	expiration, err := dformat.Lookup(dformat.VersionExpiration)
	require.NoError(t, err)
	bs := emdtest.StampedDump(
		dformat.VersionExpiration,
		emdtest.Header{Version: dformat.VersionTyped, DumpType: dformat.DumpTypeOrders, Expiration: 42, Banner: "x"},
		nil,
	)

	header, err := DecodeAs(lbytes.NewBytesReader(bs), expiration)
	require.NoError(t, err)
	assert.Equal(t, dformat.VersionTyped, header.Version)
	assert.Equal(t, expiration.Name, header.Format.Name)
	assert.Nil(t, header.Date)
	require.NotNil(t, header.Expiration)
	assert.Equal(t, uint64(42), *header.Expiration)
	assert.Equal(t, "x", header.Banner)

	_, err = DecodeAs(lbytes.NewBytesReader([]byte{7, 1}), expiration)
	var truncated lbytes.TruncatedInputError
	assert.True(t, errors.As(err, &truncated))
}
