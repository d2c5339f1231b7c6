package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiptracker/internal/app/ds"
	"shiptracker/internal/app/handler/api"
)

type fakeShipService struct {
	ships map[uint]ds.ShipResponse
}

func (f *fakeShipService) List(context.Context) ([]ds.ShipResponse, error) {
	out := make([]ds.ShipResponse, 0, len(f.ships))
	for _, s := range f.ships {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeShipService) GetByID(_ context.Context, id uint) (ds.ShipResponse, error) {
	s, ok := f.ships[id]
	if !ok {
		return ds.ShipResponse{}, ds.ErrShipNotFound
	}
	return s, nil
}

func (f *fakeShipService) Create(_ context.Context, req ds.ShipRequest) (ds.ShipResponse, error) {
	if err := ds.Validate(req); err != nil {
		return ds.ShipResponse{}, err
	}
	return ds.ShipResponse{ID: 1, Name: req.Name, LaunchDate: req.LaunchDate, ShipType: req.ShipType, Tonnage: req.Tonnage}, nil
}

func (f *fakeShipService) Update(_ context.Context, id uint, req ds.ShipRequest) (ds.ShipResponse, error) {
	if _, ok := f.ships[id]; !ok {
		return ds.ShipResponse{}, ds.ErrShipNotFound
	}
	if err := ds.Validate(req); err != nil {
		return ds.ShipResponse{}, err
	}
	return ds.ShipResponse{ID: id, Name: req.Name}, nil
}

func (f *fakeShipService) AttachPhoto(context.Context, uint, string) error { return nil }

type fakeNameService struct {
	name string
	err  error
}

func (f *fakeNameService) GenerateName(context.Context) (string, error) {
	return f.name, f.err
}

func newShipRouter(ships *fakeShipService, names *fakeNameService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := &api.ShipHandler{Ships: ships, Names: names}
	router := gin.New()
	router.GET("/api/ships", h.GetShipsAPI)
	router.GET("/api/ships/generate-name", h.GenerateNameAPI)
	router.GET("/api/ships/:id", h.GetShipAPI)
	router.POST("/api/ships", h.CreateShipAPI)
	router.PUT("/api/ships/:id", h.UpdateShipAPI)
	return router
}

func TestShipAPI_Get(t *testing.T) {
	ships := &fakeShipService{ships: map[uint]ds.ShipResponse{
		1: {ID: 1, Name: "Atlantic Pioneer", ReportCount: 2},
	}}
	router := newShipRouter(ships, &fakeNameService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ships/1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Atlantic Pioneer")
	assert.Contains(t, w.Body.String(), `"reportCount":2`)
}

func TestShipAPI_GetNotFound(t *testing.T) {
	router := newShipRouter(&fakeShipService{}, &fakeNameService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ships/99", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShipAPI_GetBadID(t *testing.T) {
	router := newShipRouter(&fakeShipService{}, &fakeNameService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ships/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShipAPI_Create(t *testing.T) {
	router := newShipRouter(&fakeShipService{}, &fakeNameService{})

	body := `{"name":"Atlantic Pioneer","launchDate":"2015-06-20","shipType":"Cargo","tonnage":75000.00}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ships", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"launchDate":"2015-06-20"`)
}

func TestShipAPI_CreateValidationNamesFields(t *testing.T) {
	router := newShipRouter(&fakeShipService{}, &fakeNameService{})

	body := `{"name":"","launchDate":"2015-06-20","shipType":"Cargo","tonnage":-1}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ships", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "name")
	assert.Contains(t, resp.Fields, "tonnage")
}

func TestShipAPI_CreateMalformedDate(t *testing.T) {
	router := newShipRouter(&fakeShipService{}, &fakeNameService{})

	body := `{"name":"X","launchDate":"20-06-2015","shipType":"Cargo","tonnage":1}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ships", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShipAPI_UpdateNotFound(t *testing.T) {
	router := newShipRouter(&fakeShipService{}, &fakeNameService{})

	body := `{"name":"X","launchDate":"2015-06-20","shipType":"Cargo","tonnage":1}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/ships/42", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShipAPI_GenerateName(t *testing.T) {
	router := newShipRouter(&fakeShipService{}, &fakeNameService{name: "Smith"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ships/generate-name", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Smith")
}

func TestShipAPI_GenerateNameUnavailable(t *testing.T) {
	router := newShipRouter(&fakeShipService{}, &fakeNameService{err: ds.ErrNameServiceUnavailable})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ships/generate-name", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestShipAPI_ListSorted(t *testing.T) {
	// сортировку обеспечивает сервис; хэндлер отдаёт как есть
	ships := &fakeShipService{ships: map[uint]ds.ShipResponse{
		1: {ID: 1, Name: "Atlantic Pioneer", LaunchDate: ds.NewDate(2015, time.June, 20)},
	}}
	router := newShipRouter(ships, &fakeNameService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ships", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}
