package forecasts

import (
	"fmt"
	"strings"
)

const (
	DefaultShortRangeURL        string = "https://opendata.dwd.de/weather/local_forecasts/mos/MOSMIX_S/all_stations/kml/MOSMIX_S_LATEST_240.kmz"
	DefaultLongRangeURLTemplate string = "https://opendata.dwd.de/weather/local_forecasts/mos/MOSMIX_L/single_stations/%s/kml/MOSMIX_L_LATEST_%s.kmz"
)

// Dataset selects one of the two MOSMIX products
type Dataset struct {
	Selector        string
	Name            string
	IntervalMinutes int
}

var (
	ShortRange = Dataset{Selector: "S", Name: "MOSMIX_S", IntervalMinutes: 60}
	LongRange  = Dataset{Selector: "L", Name: "MOSMIX_L", IntervalMinutes: 360}
)

// ParseDataset accepts "S" or "L" in any case. An empty selector means the short
// range product.
func ParseDataset(selector string) (Dataset, error) {
	switch strings.ToUpper(strings.TrimSpace(selector)) {
	case "", ShortRange.Selector:
		return ShortRange, nil
	case LongRange.Selector:
		return LongRange, nil
	default:
		return Dataset{}, fmt.Errorf("unknown dataset %q, expected S or L", selector)
	}
}

func (d Dataset) IsLongRange() bool {
	return d.Selector == LongRange.Selector
}

func (d Dataset) String() string {
	return d.Name
}
