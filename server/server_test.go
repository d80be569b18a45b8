package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/requests"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

func newTestServer(t *testing.T, routing *router.Settings, render *renderer.Settings) *httptest.Server {
	t.Helper()
	cat := catalogue.New()
	require.NoError(t, requests.Ingest(cat, []requests.BaseRequest{
		{Type: requests.TypeStop, Name: "A", Latitude: 55.6, Longitude: 37.2, RoadDistances: map[string]uint32{"B": 1000}},
		{Type: requests.TypeStop, Name: "B", Latitude: 55.7, Longitude: 37.3},
		{Type: requests.TypeStop, Name: "C", Latitude: 55.8, Longitude: 37.4},
		{Type: requests.TypeBus, Name: "1", Stops: []string{"A", "B"}},
	}))
	srv := New(requests.NewTransport(cat, routing, render), config.Default().Server)
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, into any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if into != nil && resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
	}
	return resp.StatusCode
}

func TestServer_Health(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	var body map[string]any
	status := getJSON(t, ts.URL+"/api/health", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(3), body["stops"])
	assert.Equal(t, float64(1), body["buses"])
	assert.Equal(t, false, body["routing"])
}

func TestServer_Stop(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	var stop requests.StopResponse
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/stops/B?id=7", &stop))
	assert.Equal(t, requests.StopResponse{Buses: []string{"1"}, RequestID: 7}, stop)

	var empty requests.StopResponse
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/stops/C", &empty))
	assert.Empty(t, empty.Buses)

	var missing requests.ErrorResponse
	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/stops/Z", &missing))
	assert.Equal(t, "not found", missing.ErrorMessage)

	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/stops/B?id=x", nil))
}

func TestServer_Bus(t *testing.T) {
	ts := newTestServer(t, nil, nil)

	var bus requests.BusResponse
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/buses/1", &bus))
	assert.Equal(t, uint32(2000), bus.RouteLength)
	assert.Equal(t, 3, bus.StopCount)
	assert.Equal(t, 2, bus.UniqueStopCount)

	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/buses/2", nil))
}

func TestServer_Route(t *testing.T) {
	ts := newTestServer(t, &router.Settings{BusVelocity: 40, BusWaitTime: 6}, nil)

	var route requests.RouteResponse
	assert.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/routes?from=A&to=B&id=3", &route))
	assert.Equal(t, 3, route.RequestID)
	assert.InDelta(t, 7.5, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 2)
	assert.Equal(t, "Wait", route.Items[0].Type)
	assert.Equal(t, "A", route.Items[0].StopName)
	assert.Equal(t, "Bus", route.Items[1].Type)
	assert.Equal(t, "1", route.Items[1].Bus)
	assert.Equal(t, 1, route.Items[1].SpanCount)

	assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/routes?from=A&to=C", nil))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/routes?from=A", nil))
}

func TestServer_RouteWithoutRoutingSettings(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, getJSON(t, ts.URL+"/api/routes?from=A&to=B", nil))
}

func TestServer_Map(t *testing.T) {
	t.Run("without render settings", func(t *testing.T) {
		ts := newTestServer(t, nil, nil)
		assert.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/map", nil))
	})

	t.Run("svg", func(t *testing.T) {
		ts := newTestServer(t, nil, &renderer.Settings{
			Width: 200, Height: 200, Padding: 10,
			LineWidth: 4, StopRadius: 3,
			BusLabelFontSize: 12, StopLabelFontSize: 10,
			UnderlayerWidth: 2,
			ColorPalette:    []svg.Color{svg.NamedColor("green")},
		})
		resp, err := http.Get(ts.URL + "/api/map")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
		var sb strings.Builder
		_, err = io.Copy(&sb, resp.Body)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(sb.String(), "<?xml"))
		assert.Contains(t, sb.String(), `stroke="green"`)
	})
}

func TestServer_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil, nil)
	resp, err := http.Post(ts.URL+"/api/health", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := config.Default().Server
	cfg.Port = 0
	cfg.ShutdownTimeoutSec = 1
	srv := New(requests.NewTransport(catalogue.New(), nil, nil), cfg)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
