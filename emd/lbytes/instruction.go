package lbytes

import (
	"github.com/pkg/errors"
)

// ExecuteInstructions creates the final value t with type T by running every
// instruction against the reader in order. Layouts are positional, so the
// first failure aborts and no partial value is returned.
func ExecuteInstructions[T any](reader *Reader, instructions []Instruction[T]) (*T, error) {
	var t T
	for _, instruction := range instructions {
		if err := instruction.ReadFunction(reader, &t); err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
			return nil, err
		}
	}
	return &t, nil
}

// ReadInto adapts a scalar read such as (*Reader).ReadU64 into a
// ReadFunction storing its result in the field returned by field.
func ReadInto[T any, V any](read func(*Reader) (V, error), field func(t *T) *V) ReadFunction[T] {
	return func(reader *Reader, t *T) error {
		value, err := read(reader)
		if err != nil {
			return err
		}
		*field(t) = value
		return nil
	}
}

// ReadOptionalInto is ReadInto for fields that only exist in some layouts.
func ReadOptionalInto[T any, V any](read func(*Reader) (V, error), field func(t *T) **V) ReadFunction[T] {
	return func(reader *Reader, t *T) error {
		value, err := read(reader)
		if err != nil {
			return err
		}
		*field(t) = &value
		return nil
	}
}

func CreatePaddedStringReadFunction[T any](n int, field func(t *T) *string) ReadFunction[T] {
	return ReadInto(
		func(reader *Reader) (string, error) {
			return reader.ReadPaddedString(n)
		},
		field,
	)
}
