package opendata

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matryer/is"
)

func TestGetReturnsTheBody(t *testing.T) {
	is := is.New(t)
	server := setupMockServiceThatReturns(http.StatusOK, "hello")
	defer server.Close()

	b, err := Get(context.Background(), NewHTTPClient(), server.URL)
	is.NoErr(err)
	is.Equal(string(b), "hello")
}

func TestOpenStreamsTheBody(t *testing.T) {
	is := is.New(t)
	server := setupMockServiceThatReturns(http.StatusOK, "line 1\nline 2\n")
	defer server.Close()

	body, err := Open(context.Background(), server.Client(), server.URL)
	is.NoErr(err)
	defer body.Close()

	b, err := io.ReadAll(body)
	is.NoErr(err)
	is.Equal(string(b), "line 1\nline 2\n")
}

func TestErrorStatusCodesFail(t *testing.T) {
	is := is.New(t)

	for _, code := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusNoContent} {
		server := setupMockServiceThatReturns(code, "")

		_, err := Get(context.Background(), NewHTTPClient(), server.URL)
		is.True(err != nil) // non 200 responses should fail

		server.Close()
	}
}

func TestUnreachableHostFails(t *testing.T) {
	is := is.New(t)
	server := setupMockServiceThatReturns(http.StatusOK, "")
	url := server.URL
	server.Close()

	_, err := Get(context.Background(), NewHTTPClient(), url)
	is.True(err != nil)
}

func setupMockServiceThatReturns(responseCode int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(responseCode)
		if body != "" {
			w.Write([]byte(body))
		}
	}))
}
