package timewindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	eightFifteenToTenThirty = Parse("08:15:00 - 10:30:00")
	nineToTen               = Parse("09:00:00 - 10:00:00")
	nineToEleven            = Parse("09:00:00 - 11:00:00")
	tenToTwelve             = Parse("10:00:00 - 12:00:00")
	twelveToThirteen        = Parse("12:00:00 - 13:00:00")
)

func TestIntersects(t *testing.T) {
	tests := []struct {
		name      string
		a, b      string
		threshold float64
		expected  bool
	}{
		{"gap of one second", "07:00:00 - 07:59:59", "08:00:00 - 09:00:00", 0, false},
		{"touching", "07:00:00 - 08:00:00", "08:00:00 - 09:00:00", 0, true},
		{"starts one second late", "08:00:00 - 09:00:00", "09:00:01 - 10:00:00", 0, false},
		{"gap within threshold", "08:00:00 - 08:00:01", "08:00:02 - 09:00:00", 1, true},
		{"gap beyond threshold", "08:00:00 - 08:00:01", "08:00:03 - 09:00:00", 1, false},
		{"overlapping", "08:15:00 - 10:30:00", "09:00:00 - 11:00:00", 0, true},
		{"enclosed", "09:00:00 - 10:00:00", "08:00:00 - 11:00:00", 0, true},
		{"after", "12:00:00 - 13:00:00", "09:00:00 - 11:00:00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := Parse(tt.a), Parse(tt.b)
			assert.Equal(t, tt.expected, a.Intersects([]Window{b}, tt.threshold))
			assert.Equal(t, tt.expected, b.Intersects([]Window{a}, tt.threshold))
		})
	}
}

func TestIntersectsAny(t *testing.T) {
	w := Parse("09:00:00 - 10:00:00")

	require.False(t, w.Intersects(nil, 0))
	require.False(t, w.Intersects([]Window{}, 100))
	require.True(t, w.Intersects([]Window{twelveToThirteen, tenToTwelve}, 0))
	require.True(t, w.Intersects([]Window{tenToTwelve, twelveToThirteen}, 0))
	require.False(t, w.Intersects([]Window{twelveToThirteen}, 0))
}

func TestContainedBy(t *testing.T) {
	require.False(t, nineToEleven.ContainedBy([]Window{nineToTen}, 0))
	require.True(t, nineToTen.ContainedBy([]Window{nineToEleven}, 0))

	require.False(t, nineToTen.ContainedBy(nil, 0))
	require.True(t, nineToTen.ContainedBy([]Window{twelveToThirteen, nineToEleven}, 0))
	require.True(t, nineToTen.ContainedBy([]Window{nineToTen}, 0))

	// each edge may stick out by the threshold
	w := Parse("08:59:50 - 11:00:10")
	require.False(t, w.ContainedBy([]Window{nineToEleven}, 9))
	require.True(t, w.ContainedBy([]Window{nineToEleven}, 10))
}

func TestUnion(t *testing.T) {
	unions := eightFifteenToTenThirty.Union([]Window{nineToEleven, twelveToThirteen}, 0)

	// 8:15 --------- 10:30
	//         9:00 -------- 11:00
	//                                12:00 ---- 13:00
	// becomes
	// 8:15 ---------------- 11:00    12:00 ---- 13:00
	require.Len(t, unions, 2)
	require.Equal(t, 8.25*OneHour, unions[0].Start())
	require.Equal(t, 11.0*OneHour, unions[0].End())
	require.Equal(t, 2.75*OneHour, unions[0].Duration())
	require.Equal(t, "12:00pm - 1:00pm", unions[1].String())
	require.Equal(t, twelveToThirteen, unions[1])

	// the receiver is untouched
	require.Equal(t, 10.5*OneHour, eightFifteenToTenThirty.End())
}

func TestUnionEmpty(t *testing.T) {
	w := Parse("08:00:00 - 09:00:00")
	require.Empty(t, w.Clone().Union([]Window{}, 0))
	require.Empty(t, w.Union(nil, 60))
}

func TestUnionSingleWindow(t *testing.T) {
	unions := nineToTen.Union([]Window{tenToTwelve}, 0)
	require.Len(t, unions, 1)
	require.Equal(t, "9:00am - 12:00pm", unions[0].String())
}

func TestUnionIsSinglePass(t *testing.T) {
	seed := Parse("08:00:00 - 09:00:00")
	later := Parse("10:00:00 - 11:00:00")
	bridge := Parse("08:30:00 - 10:00:00")

	// later is visited before bridge extends the seed, so it stays apart
	unions := seed.Union([]Window{later, bridge}, 0)
	require.Len(t, unions, 2)
	require.Equal(t, "8:00am - 10:00am", unions[0].String())
	require.Equal(t, later, unions[1])

	unions = seed.Union([]Window{bridge, later}, 0)
	require.Len(t, unions, 1)
	require.Equal(t, "8:00am - 11:00am", unions[0].String())
}

func TestUnionThreshold(t *testing.T) {
	seed := Parse("08:00:00 - 11:59:59")
	next := Parse("12:00:00 - 15:59:59")

	require.Len(t, seed.Union([]Window{next}, 0), 2)

	unions := seed.Union([]Window{next}, 1)
	require.Len(t, unions, 1)
	require.Equal(t, "8:00:00am - 3:59:59pm", unions[0].Format(LayoutHMS))
}

func TestUnionKeepsFractionalDuration(t *testing.T) {
	require.Equal(t, 10.0, FromBounds(0, 10.4).Duration())

	unions := FromBounds(0, 5).Union([]Window{FromBounds(4, 10.4)}, 0)
	require.Len(t, unions, 1)
	require.Equal(t, 10.4, unions[0].Duration())
	require.Equal(t, 10.0, unions[0].Clone().Duration())
}

func TestDifference(t *testing.T) {
	differences := nineToEleven.Difference([]Window{tenToTwelve, twelveToThirteen})

	require.Len(t, differences, 2)
	require.Equal(t, nineToEleven.Start(), differences[0].Start())
	require.Equal(t, tenToTwelve.Start(), differences[0].End())
	require.Equal(t, tenToTwelve.Start()-nineToEleven.Start(), differences[0].Duration())

	// a window that does not intersect leaves the original in the result
	require.Equal(t, nineToEleven.String(), differences[1].String())
	require.Equal(t, nineToEleven, differences[1])
}

func TestDifferenceRepeatsUntouchedWindow(t *testing.T) {
	differences := nineToTen.Difference([]Window{twelveToThirteen, Parse("14:00:00 - 15:00:00")})
	require.Equal(t, []Window{nineToTen, nineToTen}, differences)
}

func TestDifferenceCases(t *testing.T) {
	tests := []struct {
		name     string
		window   string
		others   []string
		expected []string
	}{
		{"cut on the right", "09:00:00 - 11:00:00", []string{"10:00:00 - 12:00:00"}, []string{"9:00am - 10:00am"}},
		{"cut on the left", "10:00:00 - 12:00:00", []string{"09:00:00 - 11:00:00"}, []string{"11:00am - 12:00pm"}},
		{"split in two", "09:00:00 - 12:00:00", []string{"10:00:00 - 11:00:00"}, []string{"9:00am - 10:00am", "11:00am - 12:00pm"}},
		{"covered", "10:00:00 - 11:00:00", []string{"09:00:00 - 12:00:00"}, []string{}},
		{"identical", "10:00:00 - 11:00:00", []string{"10:00:00 - 11:00:00"}, []string{}},
		{"shared start", "10:00:00 - 12:00:00", []string{"10:00:00 - 11:00:00"}, []string{}},
		{"within one second", "09:00:00 - 10:00:00", []string{"10:00:01 - 11:00:00"}, []string{"9:00am - 10:00am"}},
		{
			"each candidate against the original",
			"09:00:00 - 12:00:00",
			[]string{"08:00:00 - 10:00:00", "11:00:00 - 13:00:00"},
			[]string{"10:00am - 12:00pm", "9:00am - 11:00am"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			others := make([]Window, len(tt.others))
			for idx, s := range tt.others {
				others[idx] = Parse(s)
			}

			differences := Parse(tt.window).Difference(others)
			rendered := make([]string, len(differences))
			for idx, w := range differences {
				rendered[idx] = w.String()
			}
			require.Equal(t, tt.expected, rendered)
		})
	}
}

func TestDifferenceEmpty(t *testing.T) {
	require.Empty(t, nineToEleven.Difference(nil))
	require.Empty(t, nineToEleven.Difference([]Window{}))
}
