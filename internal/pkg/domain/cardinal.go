package domain

import "math"

// CardinalSector is one of the 16 compass points. Angles in [LowerBound, UpperBound)
// belong to the sector.
type CardinalSector struct {
	Name       string  `json:"name"`
	Bearing    string  `json:"bearing"`
	Azimuth    float64 `json:"azimuth"`
	LowerBound float64 `json:"lowerBound"`
	UpperBound float64 `json:"upperBound"`
}

// North is split in two rows so that both ends of the circle resolve to it.
// The last row also accepts exactly 360.
var cardinalSectors = [...]CardinalSector{
	{Name: "North", Bearing: "N", Azimuth: 0.00, LowerBound: 0.00, UpperBound: 11.25},
	{Name: "North-northeast", Bearing: "NNE", Azimuth: 22.50, LowerBound: 11.25, UpperBound: 33.75},
	{Name: "Northeast", Bearing: "NE", Azimuth: 45.00, LowerBound: 33.75, UpperBound: 56.25},
	{Name: "East-northeast", Bearing: "ENE", Azimuth: 67.50, LowerBound: 56.25, UpperBound: 78.75},
	{Name: "East", Bearing: "E", Azimuth: 90.00, LowerBound: 78.75, UpperBound: 101.25},
	{Name: "East-southeast", Bearing: "ESE", Azimuth: 112.50, LowerBound: 101.25, UpperBound: 123.75},
	{Name: "Southeast", Bearing: "SE", Azimuth: 135.00, LowerBound: 123.75, UpperBound: 146.25},
	{Name: "South-southeast", Bearing: "SSE", Azimuth: 157.50, LowerBound: 146.25, UpperBound: 168.75},
	{Name: "South", Bearing: "S", Azimuth: 180.00, LowerBound: 168.75, UpperBound: 191.25},
	{Name: "South-southwest", Bearing: "SSW", Azimuth: 202.50, LowerBound: 191.25, UpperBound: 213.75},
	{Name: "Southwest", Bearing: "SW", Azimuth: 225.00, LowerBound: 213.75, UpperBound: 236.25},
	{Name: "West-southwest", Bearing: "WSW", Azimuth: 247.50, LowerBound: 236.25, UpperBound: 258.75},
	{Name: "West", Bearing: "W", Azimuth: 270.00, LowerBound: 258.75, UpperBound: 281.25},
	{Name: "West-northwest", Bearing: "WNW", Azimuth: 292.50, LowerBound: 281.25, UpperBound: 303.75},
	{Name: "Northwest", Bearing: "NW", Azimuth: 315.00, LowerBound: 303.75, UpperBound: 326.25},
	{Name: "North-northwest", Bearing: "NNW", Azimuth: 337.50, LowerBound: 326.25, UpperBound: 348.75},
	{Name: "North", Bearing: "N", Azimuth: 360.00, LowerBound: 348.75, UpperBound: 360.00},
}

// CardinalSectors returns a copy of the lookup table in ascending LowerBound order
func CardinalSectors() []CardinalSector {
	sectors := make([]CardinalSector, len(cardinalSectors))
	copy(sectors, cardinalSectors[:])
	return sectors
}

// FindCardinalSector returns the sector containing angle, or the zero sector when
// angle is NaN or outside [0, 360].
func FindCardinalSector(angle float64) CardinalSector {
	if math.IsNaN(angle) {
		return CardinalSector{}
	}

	last := len(cardinalSectors) - 1

	for i, s := range cardinalSectors {
		if s.LowerBound <= angle && (angle < s.UpperBound || (i == last && angle == s.UpperBound)) {
			return s
		}
	}

	return CardinalSector{}
}

func (s CardinalSector) IsZero() bool {
	return s.Name == "" && s.Bearing == ""
}

// Label renders the sector the way the derived wind direction column shows it
func (s CardinalSector) Label() string {
	return s.Name + " (" + s.Bearing + ")"
}
