package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, DumpJSON(map[string]int{"a": 1}))
	assert.Contains(t, DumpJSON(func() {}), "DumpJSON error")
}

func TestShallowCopy(t *testing.T) {
	ts := []int{1, 2, 3}
	tsCopy := ShallowCopy(ts)
	tsCopy[0] = 9
	assert.Equal(t, []int{1, 2, 3}, ts)
	assert.Equal(t, []int{9, 2, 3}, tsCopy)
}

func TestErrUnreachableCode(t *testing.T) {
	assert.EqualError(t, ErrUnreachableCode{Caller: "decodeRecords"}, "decodeRecords: unreachable code")
}
