package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiptracker/internal/app/ds"
	"shiptracker/internal/app/service"
)

func TestNameGenerator_ReturnsFirstName(t *testing.T) {
	var gotKey, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`["Smith","Jones"]`))
	}))
	defer srv.Close()

	gen := service.NewNameGeneratorService(srv.URL, "test-key", time.Second)
	name, err := gen.GenerateName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Smith", name)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "nameType=surname&quantity=1", gotQuery)
}

func TestNameGenerator_EmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	gen := service.NewNameGeneratorService(srv.URL, "test-key", time.Second)
	_, err := gen.GenerateName(context.Background())
	assert.ErrorIs(t, err, ds.ErrNameServiceUnavailable)
}

func TestNameGenerator_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	gen := service.NewNameGeneratorService(srv.URL, "test-key", time.Second)
	_, err := gen.GenerateName(context.Background())
	assert.ErrorIs(t, err, ds.ErrNameServiceUnavailable)
}

func TestNameGenerator_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"oops": true}`))
	}))
	defer srv.Close()

	gen := service.NewNameGeneratorService(srv.URL, "test-key", time.Second)
	_, err := gen.GenerateName(context.Background())
	assert.ErrorIs(t, err, ds.ErrNameServiceUnavailable)
}

func TestNameGenerator_TransportError(t *testing.T) {
	// закрытый сервер: соединение отклоняется
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	gen := service.NewNameGeneratorService(srv.URL, "test-key", time.Second)
	_, err := gen.GenerateName(context.Background())
	assert.ErrorIs(t, err, ds.ErrNameServiceUnavailable)
}

func TestNameGenerator_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`["Smith"]`))
	}))
	defer srv.Close()

	gen := service.NewNameGeneratorService(srv.URL, "test-key", 50*time.Millisecond)
	_, err := gen.GenerateName(context.Background())
	assert.ErrorIs(t, err, ds.ErrNameServiceUnavailable)
}
