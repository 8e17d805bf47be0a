package timewindow

import (
	"github.com/cockroachdb/errors"
)

// Array builds a window from every input and folds them into as few windows as one
// Union pass allows, e.g. [8:00-11:59, 12:00-15:59] with a join threshold of 1 becomes
// [8:00-15:59]. The first input seeds the fold.
func Array(inputs []any, joinThreshold float64) ([]Window, error) {
	if len(inputs) == 0 {
		return []Window{}, nil
	}

	seed, err := New(inputs[0])
	if err != nil {
		return nil, errors.Wrapf(err, "input 0")
	}

	rest := make([]Window, 0, len(inputs)-1)
	for idx, input := range inputs[1:] {
		w, err := New(input)
		if err != nil {
			return nil, errors.Wrapf(err, "input %d", idx+1)
		}
		rest = append(rest, w)
	}

	if len(rest) == 0 {
		return []Window{seed}, nil
	}
	return seed.Union(rest, joinThreshold), nil
}

// Strings is a convenience for Array over text inputs.
func Strings(inputs []string, joinThreshold float64) []Window {
	converted := make([]any, len(inputs))
	for idx, s := range inputs {
		converted[idx] = s
	}
	// strings never fail to construct
	windows, _ := Array(converted, joinThreshold)
	return windows
}
