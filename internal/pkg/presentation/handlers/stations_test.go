package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/diwise/api-mosmix/internal/pkg/application/services/stations"
	"github.com/diwise/api-mosmix/internal/pkg/domain"
	"github.com/rs/zerolog"
)

func TestRetrieveNearestStation(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := defaultStationServiceMock()

	r.Get("/stations/nearest", NewRetrieveNearestStationHandler(zerolog.Logger{}, svc))
	response, body := newGetRequest(is, ts, "application/json", "/stations/nearest?lat=52.4534004&lon=13.249524122469008", nil)

	is.Equal(response.StatusCode, http.StatusOK) // response status should be 200 OK
	is.Equal(len(svc.FindNearestCalls()), 1)
	is.Equal(svc.FindNearestCalls()[0].Lat, 52.4534004)
	is.Equal(svc.FindNearestCalls()[0].Lon, 13.249524122469008)

	result := struct {
		Data NearestStation `json:"data"`
	}{}
	is.NoErr(json.Unmarshal([]byte(body), &result))
	is.Equal(result.Data.Station.ID, "10389")
	is.Equal(result.Data.Distance, 13.24)
}

func TestRetrieveNearestStationWithBadCoordinates(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := defaultStationServiceMock()
	r.Get("/stations/nearest", NewRetrieveNearestStationHandler(zerolog.Logger{}, svc))

	for _, query := range []string{"", "?lat=52.4", "?lat=north&lon=13.2", "?lat=91&lon=13.2", "?lat=52.4&lon=181"} {
		response, _ := newGetRequest(is, ts, "application/json", "/stations/nearest"+query, nil)
		is.Equal(response.StatusCode, http.StatusBadRequest)
	}

	is.Equal(len(svc.FindNearestCalls()), 0)
}

func TestRetrieveNearestStationErrors(t *testing.T) {
	is, r, ts := setupTest(t)
	defer ts.Close()

	svc := defaultStationServiceMock()
	r.Get("/stations/nearest", NewRetrieveNearestStationHandler(zerolog.Logger{}, svc))

	svc.FindNearestFunc = func(ctx context.Context, lat, lon float64) (domain.Station, float64, error) {
		return domain.Station{}, 0, stations.ErrNoStationFound
	}
	response, _ := newGetRequest(is, ts, "application/json", "/stations/nearest?lat=1&lon=1", nil)
	is.Equal(response.StatusCode, http.StatusNotFound)

	svc.FindNearestFunc = func(ctx context.Context, lat, lon float64) (domain.Station, float64, error) {
		return domain.Station{}, 0, errors.New("registry unavailable")
	}
	response, _ = newGetRequest(is, ts, "application/json", "/stations/nearest?lat=1&lon=1", nil)
	is.Equal(response.StatusCode, http.StatusInternalServerError)
}

func defaultStationServiceMock() *stations.StationServiceMock {
	return &stations.StationServiceMock{
		FindNearestFunc: func(ctx context.Context, lat, lon float64) (domain.Station, float64, error) {
			return domain.NewStation("10389", "EDDT", "BERLIN/TEGEL", 52.34, 13.19, 36), 13.24, nil
		},
	}
}
