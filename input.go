package timewindow

import (
	"math"
	"time"
)

// Text is a window written as "HH:MM:SS - HH:MM:SS".
type Text string

// Offset is one endpoint of a window: either raw seconds from the day origin or a
// calendar timestamp whose time-of-day is used.
type Offset struct {
	seconds float64
	at      time.Time
	isTime  bool
}

func Seconds(v float64) Offset {
	return Offset{seconds: v}
}

// At uses the seconds elapsed since midnight of t's own date, in t's location.
func At(t time.Time) Offset {
	return Offset{at: t, isTime: true}
}

func (o Offset) Seconds() float64 {
	if !o.isTime {
		return o.seconds
	}
	midnight := time.Date(o.at.Year(), o.at.Month(), o.at.Day(), 0, 0, 0, 0, o.at.Location())
	return float64(o.at.Sub(midnight)) / float64(time.Second)
}

func (o Offset) IsTime() bool {
	return o.isTime
}

// Bounds gives both endpoints.
type Bounds struct {
	Start Offset
	End   Offset
}

// StartFor gives the start and a duration in seconds.
type StartFor struct {
	Start    Offset
	Duration float64
}

// EndFor gives the end and a duration in seconds.
type EndFor struct {
	End      Offset
	Duration float64
}

// Fields is the loosely specified "two of three" form, as produced by decoders. When
// both Start and End are set Duration is ignored; a missing operand yields NaN.
type Fields struct {
	Start    *Offset
	End      *Offset
	Duration *float64
}

func (f Fields) resolve() (float64, float64) {
	duration := math.NaN()
	if f.Duration != nil {
		duration = *f.Duration
	}

	switch {
	case f.Start != nil && f.End != nil:
		return f.Start.Seconds(), f.End.Seconds()
	case f.Start != nil:
		start := f.Start.Seconds()
		return start, start + duration
	case f.End != nil:
		end := f.End.Seconds()
		return end - duration, end
	default:
		return math.NaN(), math.NaN()
	}
}
