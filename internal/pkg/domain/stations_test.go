package domain

import (
	"testing"

	"github.com/matryer/is"
)

func TestParseStationLine(t *testing.T) {
	is := is.New(t)

	s, err := ParseStation("10389 EDDT BERLIN/TEGEL         52.34    13.19      36\r\n")
	is.NoErr(err)

	is.Equal(s.ID, "10389")
	is.Equal(s.ICAO, "EDDT")
	is.Equal(s.Name, "BERLIN/TEGEL")
	is.Equal(s.Latitude, 52.34)
	is.Equal(s.Longitude, 13.19)
	is.Equal(s.Elevation, 36.0)
}

func TestParseStationKeepsColumnsAlignedAfterUmlauts(t *testing.T) {
	is := is.New(t)

	s, err := ParseStation("10791 ---- GROSSER ARBER        49.07    13.08    1436")
	is.NoErr(err)
	is.Equal(s.Elevation, 1436.0)

	s, err = ParseStation("10675 ---- MÜNSTER/OSNABRÜCK    52.08     7.42      48")
	is.NoErr(err)
	is.Equal(s.Name, "MÜNSTER/OSNABRÜCK")
	is.Equal(s.Latitude, 52.08)
	is.Equal(s.Longitude, 7.42)
}

func TestParseStationWithNegativeLongitude(t *testing.T) {
	is := is.New(t)

	s, err := ParseStation("01001 ENJA JAN MAYEN            70.56    -8.40      10")
	is.NoErr(err)
	is.Equal(s.ID, "01001")
	is.Equal(s.Longitude, -8.40)
}

func TestParseStationIDIsAlwaysTheFirstFiveCharacters(t *testing.T) {
	is := is.New(t)

	s, err := ParseStation("P0489 ---- HAMBURG-INNENSTADT   53.33     9.59      15")
	is.NoErr(err)
	is.Equal(s.ID, "P0489")
}

func TestParseStationFailsOnTruncatedLines(t *testing.T) {
	is := is.New(t)

	_, err := ParseStation("10389 EDDT BERLIN")
	is.True(err != nil)

	_, err = ParseStation("1")
	is.True(err != nil)
}

func TestNewStationAndString(t *testing.T) {
	is := is.New(t)

	s := NewStation("10389", "EDDT", "BERLIN/TEGEL", 52.34, 13.19, 36)
	is.Equal(s.String(), "10389 EDDT BERLIN/TEGEL 52.34 13.19 36")
}
