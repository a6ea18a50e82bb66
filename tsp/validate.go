package tsp

import (
	"fmt"

	"github.com/katalvlaran/tourgeo/pointset"
)

// validateOptions checks Options without looking at the point set.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return fmt.Errorf("%w: negative TimeLimit %v", ErrOptionViolation, opts.TimeLimit)
	}
	switch opts.Start {
	case StartFirstKey, StartFixed, StartSeeded:
	default:
		return fmt.Errorf("%w: unknown start policy %v", ErrOptionViolation, opts.Start)
	}
	return nil
}

// validateInput runs the shared entry checks in priority order:
// options, size, coordinates, start key.
//
// Complexity: O(n).
func validateInput(ps *pointset.PointSet, opts Options) error {
	if err := validateOptions(opts); err != nil {
		return err
	}
	if ps.Len() < 2 {
		return fmt.Errorf("%w: got %d", ErrEmptyInput, ps.Len())
	}
	if err := ps.Validate(); err != nil {
		return err
	}
	if opts.Start == StartFixed && !ps.Has(opts.StartKey) {
		return fmt.Errorf("%w: %d", ErrStartNotFound, opts.StartKey)
	}
	return nil
}
