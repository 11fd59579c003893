package forecasts

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseDataset(t *testing.T) {
	is := is.New(t)

	tests := []struct {
		selector string
		expected Dataset
	}{
		{"S", ShortRange},
		{"s", ShortRange},
		{"", ShortRange},
		{"L", LongRange},
		{" l ", LongRange},
	}

	for _, tc := range tests {
		ds, err := ParseDataset(tc.selector)
		is.NoErr(err)
		is.Equal(ds, tc.expected)
	}

	_, err := ParseDataset("M")
	is.True(err != nil)
}

func TestDatasetIntervals(t *testing.T) {
	is := is.New(t)

	is.Equal(ShortRange.Name, "MOSMIX_S")
	is.Equal(ShortRange.IntervalMinutes, 60)
	is.Equal(LongRange.Name, "MOSMIX_L")
	is.Equal(LongRange.IntervalMinutes, 360)
	is.True(LongRange.IsLongRange())
	is.True(!ShortRange.IsLongRange())
}
