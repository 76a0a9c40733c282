package ds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.True(t, len(lhm.Keys()) == 0)

	lhm.Put("b", 1)
	lhm.Put("a", 2)
	lhm.Put("b", 3)

	assert.Equal(t, []string{"b", "a"}, lhm.Keys())
	value, ok := lhm.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 3, value)
	assert.Equal(t, 2, lhm.Len())
}

func TestLinkedHashMap_MarshalJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("zeta", 1)
	lhm.Put("alpha", []int{2, 3})
	lhm.Put("mid", nil)

	bs, err := json.Marshal(lhm)
	assert.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":[2,3],"mid":null}`, string(bs))
}

func TestLinkedHashMap_MarshalJSONEmpty(t *testing.T) {
	bs, err := json.Marshal(NewLinkedHashMap[string, any]())
	assert.NoError(t, err)
	assert.Equal(t, `{}`, string(bs))
}

func TestLinkedHashMap_EncodeMsgpack(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("zeta", 1)
	lhm.Put("alpha", "two")

	bs, err := msgpack.Marshal(lhm)
	require.NoError(t, err)

	decoded := map[string]any{}
	require.NoError(t, msgpack.Unmarshal(bs, &decoded))
	assert.Len(t, decoded, 2)
	assert.Equal(t, "two", decoded["alpha"])
}
