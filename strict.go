package timewindow

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseStrict is Parse with validation: both sides must be exactly three numeric clock
// fields within a day (24:00:00 is allowed as an end of day) and the end may not
// precede the start.
func ParseStrict(s string) (Window, error) {
	idx := strings.Index(s, separator)
	if idx < 0 {
		return Window{}, errors.Wrapf(ErrMalformed, "%q: missing %q separator", s, separator)
	}

	start, err := strictClock(s[:idx])
	if err != nil {
		return Window{}, errors.Wrap(err, "start")
	}
	end, err := strictClock(s[idx+len(separator):])
	if err != nil {
		return Window{}, errors.Wrap(err, "end")
	}

	w := newWindow(start, end)
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate reports windows whose bounds are not numbers or are inverted.
func (w Window) Validate() error {
	if math.IsNaN(w.start) {
		return errors.Wrap(ErrMalformed, "start is not a number")
	}
	if math.IsNaN(w.end) {
		return errors.Wrap(ErrMalformed, "end is not a number")
	}
	if w.end < w.start {
		return errors.Wrapf(ErrMalformed, "end %v precedes start %v", w.end, w.start)
	}
	return nil
}

func strictClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, errors.Wrapf(ErrMalformed, "%q: want HH:MM:SS", s)
	}

	names := [3]string{"hours", "minutes", "seconds"}
	limits := [3]int{24, 59, 59}
	var values [3]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return 0, errors.Wrapf(ErrMalformed, "%q: %s %q is not a number", s, names[i], part)
		}
		if v < 0 || v > limits[i] {
			return 0, errors.Wrapf(ErrMalformed, "%q: %s %d out of range", s, names[i], v)
		}
		values[i] = v
	}

	total := values[0]*OneHour + values[1]*OneMinute + values[2]
	if total > 24*OneHour {
		return 0, errors.Wrapf(ErrMalformed, "%q: past the end of the day", s)
	}
	return float64(total), nil
}
