package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("api-mosmix/api")

func getLatLonFromURL(r *http.Request) (float64, float64, error) {
	query := r.URL.Query()

	if query.Get("lat") == "" || query.Get("lon") == "" {
		return 0, 0, fmt.Errorf("both lat and lon must be specified")
	}

	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, fmt.Errorf("invalid latitude %q", query.Get("lat"))
	}

	lon, err := strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, fmt.Errorf("invalid longitude %q", query.Get("lon"))
	}

	return lat, lon, nil
}

func getFlagFromURL(r *http.Request, name string) (bool, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return false, nil
	}

	flag, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid value %q for %s", value, name)
	}

	return flag, nil
}

func writeData(w http.ResponseWriter, body []byte) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("{\"data\": " + string(body) + "}"))
}
