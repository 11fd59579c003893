package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Station is an entry in the MOSMIX station registry
type Station struct {
	ID        string  `json:"id"`
	ICAO      string  `json:"icao"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
}

func NewStation(id, icao, name string, lat, lon, elev float64) Station {
	return Station{
		ID:        id,
		ICAO:      icao,
		Name:      name,
		Latitude:  lat,
		Longitude: lon,
		Elevation: elev,
	}
}

// ParseStation reads a fixed width registry line such as
//
//	10389 EDDT BERLIN/TEGEL         52.34    13.19      36
//
// Column positions are counted in characters, not bytes, so that names with
// umlauts keep the following columns aligned.
func ParseStation(line string) (Station, error) {
	runes := []rune(strings.TrimRight(line, "\r\n"))

	if len(runes) < 5 {
		return Station{}, fmt.Errorf("station line too short (%d characters)", len(runes))
	}

	s := Station{
		ID:   string(runes[0:5]),
		ICAO: strings.TrimSpace(field(runes, 6, 10)),
		Name: strings.TrimSpace(field(runes, 11, 31)),
	}

	var err error

	if s.Latitude, err = parseCoordinate(runes, 32, 37); err != nil {
		return Station{}, fmt.Errorf("station %s has a bad latitude: %w", s.ID, err)
	}

	if s.Longitude, err = parseCoordinate(runes, 39, 46); err != nil {
		return Station{}, fmt.Errorf("station %s has a bad longitude: %w", s.ID, err)
	}

	if s.Elevation, err = parseCoordinate(runes, 47, 54); err != nil {
		return Station{}, fmt.Errorf("station %s has a bad elevation: %w", s.ID, err)
	}

	return s, nil
}

func (s Station) String() string {
	return fmt.Sprintf("%s %s %s %g %g %g", s.ID, s.ICAO, s.Name, s.Latitude, s.Longitude, s.Elevation)
}

func field(runes []rune, from, to int) string {
	if from >= len(runes) {
		return ""
	}
	if to > len(runes) {
		to = len(runes)
	}
	return string(runes[from:to])
}

func parseCoordinate(runes []rune, from, to int) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(field(runes, from, to)), 64)
}
