package timewindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		window string
		hm     string
		hms    string
	}{
		{"08:15:00 - 10:30:00", "8:15am - 10:30am", "8:15:00am - 10:30:00am"},
		{"09:00:00 - 11:00:00", "9:00am - 11:00am", "9:00:00am - 11:00:00am"},
		{"10:00:00 - 12:00:00", "10:00am - 12:00pm", "10:00:00am - 12:00:00pm"},
		{"12:00:00 - 13:00:00", "12:00pm - 1:00pm", "12:00:00pm - 1:00:00pm"},
		{"00:00:00 - 00:30:05", "0:00am - 0:30am", "0:00:00am - 0:30:05am"},
		{"11:59:59 - 23:59:59", "11:59am - 11:59pm", "11:59:59am - 11:59:59pm"},
		{"18:05:09 - 24:00:00", "6:05pm - 12:00pm", "6:05:09pm - 12:00:00pm"},
		{"25:00:00 - 36:00:00", "13:00pm - 24:00pm", "13:00:00pm - 24:00:00pm"},
	}

	for _, tt := range tests {
		t.Run(tt.window, func(t *testing.T) {
			w := Parse(tt.window)
			assert.Equal(t, tt.hm, w.String())
			assert.Equal(t, tt.hm, w.Format(LayoutHM))
			assert.Equal(t, tt.hm, w.Format("anything else"))
			assert.Equal(t, tt.hms, w.Format(LayoutHMS))
		})
	}
}

func TestFormatUnnormalizedOffsets(t *testing.T) {
	// negative offsets are not wrapped into the previous day
	assert.Equal(t, "0:0-30am - 1:00am", FromBounds(-30*OneMinute, OneHour).String())
	assert.Equal(t, "0:00:00.5am - 0:00:01am", FromBounds(0.5, 1).Format(LayoutHMS))
}
