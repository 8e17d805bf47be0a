package timewindow

import (
	"math"
	"strconv"
)

// Layouts accepted by Format.
const (
	LayoutHM  = "HH:MM"
	LayoutHMS = "HH:MM:SS"
)

// String renders the window as "8:15am - 10:30am".
func (w Window) String() string {
	return w.Format(LayoutHM)
}

// Format renders both ends on a 12-hour clock. LayoutHMS adds seconds, any other
// layout omits them. Offsets outside a single day are not wrapped.
func (w Window) Format(layout string) string {
	return formatClock(w.start, layout) + separator + formatClock(w.end, layout)
}

func formatClock(offset float64, layout string) string {
	hours := (offset - math.Mod(offset, OneHour)) / OneHour
	rest := offset - hours*OneHour
	minutes := (rest - math.Mod(rest, OneMinute)) / OneMinute
	seconds := offset - hours*OneHour - minutes*OneMinute

	suffix := "am"
	if hours > 11 {
		if hours != 12 {
			hours -= 12
		}
		suffix = "pm"
	}

	clock := formatNumber(hours) + ":" + padNumber(minutes)
	if layout == LayoutHMS {
		clock += ":" + padNumber(seconds)
	}
	return clock + suffix
}

func padNumber(v float64) string {
	if v < 10 {
		return "0" + formatNumber(v)
	}
	return formatNumber(v)
}

// formatNumber prints the shortest representation, NaN as "NaN" and -0 as "0".
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
