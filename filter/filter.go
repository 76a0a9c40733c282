// Package filter keeps the records of a dump that match a boolean
// expression over their fields, e.g. `Price > 1000 && IsBuyOrder`.
package filter

import (
	"fmt"

	"emdtojson/emd"
	"emdtojson/emd/dformat"
	"emdtojson/emd/dhistory"
	"emdtojson/emd/dlocation"
	"emdtojson/emd/dorder"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	// Filter holds the expression compiled once per record type whose fields
	// it can be evaluated against.
	Filter struct {
		Source   string
		programs map[dformat.DumpType]*vm.Program
		errs     map[dformat.DumpType]error
	}
	NotApplicableError struct {
		Source   string
		DumpType dformat.DumpType
		Err      error
	}
)

func (e NotApplicableError) Error() string {
	return fmt.Sprintf("filter %q does not apply to %s: %v", e.Source, e.DumpType, e.Err)
}

func (e NotApplicableError) Unwrap() error {
	return e.Err
}

var environments = map[dformat.DumpType]any{
	dformat.DumpTypeLocations: dlocation.Location{},
	dformat.DumpTypeOrders:    dorder.Order{},
	dformat.DumpTypeHistories: dhistory.Stat{},
}

// Compile fails only when the expression fits none of the record types.
func Compile(source string) (*Filter, error) {
	filter := Filter{
		Source:   source,
		programs: map[dformat.DumpType]*vm.Program{},
		errs:     map[dformat.DumpType]error{},
	}
	for dumpType, env := range environments {
		program, err := expr.Compile(source, expr.Env(env), expr.AsBool())
		if err != nil {
			filter.errs[dumpType] = err
			continue
		}
		filter.programs[dumpType] = program
	}
	if len(filter.programs) == 0 {
		err := filter.errs[dformat.DumpTypeOrders]
		err = errors.Wrapf(err, "filter.Compile error: %q", source)
		return nil, err
	}
	return &filter, nil
}

// DumpTypes lists the record types the expression compiled against.
func (f *Filter) DumpTypes() []dformat.DumpType {
	return lo.Filter(
		[]dformat.DumpType{dformat.DumpTypeLocations, dformat.DumpTypeOrders, dformat.DumpTypeHistories},
		func(dumpType dformat.DumpType, _ int) bool {
			_, ok := f.programs[dumpType]
			return ok
		},
	)
}

func keep[T any](program *vm.Program, items []T) ([]T, error) {
	kept := make([]T, 0, len(items))
	for i, item := range items {
		out, err := expr.Run(program, item)
		if err != nil {
			err := errors.Wrapf(err, "filter.keep error: record %d", i)
			return nil, err
		}
		if out.(bool) {
			kept = append(kept, item)
		}
	}
	return kept, nil
}

// Apply returns a new table holding the matching records. A nil records
// value passes through untouched.
func (f *Filter) Apply(records emd.Records) (emd.Records, error) {
	if records == nil {
		return nil, nil
	}
	dumpType := records.DumpType()
	program, ok := f.programs[dumpType]
	if !ok {
		return nil, NotApplicableError{Source: f.Source, DumpType: dumpType, Err: f.errs[dumpType]}
	}

	var (
		filtered emd.Records
		err      error
	)
	switch records := records.(type) {
	case dlocation.Table:
		var kept []dlocation.Location
		kept, err = keep(program, records)
		filtered = dlocation.Table(kept)
	case dorder.Table:
		var kept []dorder.Order
		kept, err = keep(program, records)
		filtered = dorder.Table(kept)
	case *dhistory.Day:
		filtered, err = keepStats(program, *records)
	case dhistory.Day:
		filtered, err = keepStats(program, records)
	default:
		return nil, errors.Errorf("filter.Apply error: unexpected records %T", records)
	}
	if err != nil {
		err := errors.Wrapf(err, "filter.Apply error: %s", dumpType)
		return nil, err
	}
	return filtered, nil
}

func keepStats(program *vm.Program, day dhistory.Day) (*dhistory.Day, error) {
	stats, err := keep(program, day.Stats)
	if err != nil {
		return nil, err
	}
	return &dhistory.Day{Year: day.Year, Day: day.Day, Stats: stats}, nil
}

// ApplyDump replaces the records of dump with the matching ones.
func (f *Filter) ApplyDump(dump *emd.Dump) error {
	records, err := f.Apply(dump.Records)
	if err != nil {
		err := errors.Wrap(err, "filter.ApplyDump error")
		return err
	}
	dump.Records = records
	return nil
}
