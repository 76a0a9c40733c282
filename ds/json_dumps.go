package ds

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// DumpJSON renders t on one line for display, or the encoding error text.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return errors.Wrap(err, "DumpJSON error").Error()
	}

	return string(tBytes)
}
