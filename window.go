package timewindow

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// In seconds
const (
	OneMinute = 60
	OneHour   = 3600
)

const separator = " - "

// Window is a time-of-day interval stored as offsets in seconds from a day origin.
// Start and End are not clamped to a single day and Start <= End is not enforced.
type Window struct {
	start    float64
	end      float64
	duration float64
}

// New builds a window from a string, one of the structured inputs (Bounds, StartFor,
// EndFor, Fields) or a Text. Anything else fails with ErrInvalidArgument.
func New(input any) (Window, error) {
	var start, end float64

	switch in := input.(type) {
	case string:
		start, end = parseText(in)
	case Text:
		start, end = parseText(string(in))
	case Bounds:
		start, end = in.Start.Seconds(), in.End.Seconds()
	case StartFor:
		start = in.Start.Seconds()
		end = start + in.Duration
	case EndFor:
		end = in.End.Seconds()
		start = end - in.Duration
	case Fields:
		start, end = in.resolve()
	case *Fields:
		if in == nil {
			return Window{}, invalidArgument(input)
		}
		start, end = in.resolve()
	default:
		return Window{}, invalidArgument(input)
	}

	return newWindow(start, end), nil
}

// Parse builds a window from "HH:MM:SS - HH:MM:SS". Malformed fields become NaN.
func Parse(s string) Window {
	start, end := parseText(s)
	return newWindow(start, end)
}

func FromBounds(start, end float64) Window {
	return newWindow(start, end)
}

func FromStart(start, duration float64) Window {
	return newWindow(start, start+duration)
}

func FromEnd(end, duration float64) Window {
	return newWindow(end-duration, end)
}

// FromTimes keeps only the time-of-day of each timestamp, in its own location.
func FromTimes(start, end time.Time) Window {
	return newWindow(At(start).Seconds(), At(end).Seconds())
}

func newWindow(start, end float64) Window {
	return Window{
		start:    start,
		end:      end,
		duration: math.Round(end - start),
	}
}

func (w Window) Start() float64 {
	return w.start
}

func (w Window) End() float64 {
	return w.end
}

func (w Window) Duration() float64 {
	return w.duration
}

// Clone returns an independent copy with the duration rederived from start and end.
func (w Window) Clone() Window {
	return newWindow(w.start, w.end)
}

func parseText(s string) (float64, float64) {
	idx := strings.Index(s, separator)
	var startText, endText string
	if idx < 0 {
		// the end side still starts where a separator at -1 would have ended
		endText = s[min(len(separator)-1, len(s)):]
	} else {
		startText = s[:idx]
		endText = s[idx+len(separator):]
	}
	return clockSeconds(startText), clockSeconds(endText)
}

// clockSeconds combines H:M:S into seconds. A missing or non-numeric field is NaN.
func clockSeconds(s string) float64 {
	parts := strings.Split(s, ":")
	weights := [3]float64{OneHour, OneMinute, 1}

	total := 0.0
	for i, weight := range weights {
		if i >= len(parts) {
			return math.NaN()
		}
		v, ok := parseLeadingInt(parts[i])
		if !ok {
			return math.NaN()
		}
		total += v * weight
	}
	return total
}

// parseLeadingInt reads an optionally signed integer prefix after leading spaces,
// ignoring whatever trails it ("08am" is 8). A 0x or 0X prefix reads hex digits.
func parseLeadingInt(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\n\r")
	sign := 1.0
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseUint(s[:end], base, 64)
	if err != nil {
		return 0, false
	}
	return sign * float64(v), true
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16:
		return (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	}
	return false
}
