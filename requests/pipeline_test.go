package requests

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

func openTestdata(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func makeBase(t *testing.T) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "base.db")
	written, err := MakeBase(openTestdata(t, "make_base.json"), Options{SnapshotFile: file})
	require.NoError(t, err)
	require.Equal(t, file, written)
	return file
}

func TestMakeBaseThenProcessRequests(t *testing.T) {
	file := makeBase(t)

	var out bytes.Buffer
	require.NoError(t, ProcessRequests(openTestdata(t, "process_requests.json"), &out, Options{SnapshotFile: file}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 11)

	geometric := geo.ComputeDistance(geo.Coordinates{Lat: 55.611087, Lng: 37.20829}, geo.Coordinates{Lat: 55.595884, Lng: 37.209755}) +
		geo.ComputeDistance(geo.Coordinates{Lat: 55.595884, Lng: 37.209755}, geo.Coordinates{Lat: 55.632761, Lng: 37.333324})

	t.Run("bus", func(t *testing.T) {
		assert.Equal(t, 1.0, got[0]["request_id"])
		assert.Equal(t, 27200.0, got[0]["route_length"])
		assert.Equal(t, 5.0, got[0]["stop_count"])
		assert.Equal(t, 3.0, got[0]["unique_stop_count"])
		assert.InDelta(t, 13600/geometric, got[0]["curvature"], 1e-9)

		assert.Equal(t, 19400.0, got[1]["route_length"])
		assert.Equal(t, 3.0, got[1]["stop_count"])
		assert.Equal(t, 2.0, got[1]["unique_stop_count"])

		assert.Equal(t, map[string]any{"error_message": "not found", "request_id": 3.0}, got[2])
	})

	t.Run("stop", func(t *testing.T) {
		assert.Equal(t, map[string]any{"buses": []any{"14", "750"}, "request_id": 4.0}, got[3])
		assert.Equal(t, map[string]any{"buses": []any{}, "request_id": 5.0}, got[4])
		assert.Equal(t, "not found", got[5]["error_message"])
	})

	t.Run("route", func(t *testing.T) {
		assert.InDelta(t, 26.7, got[6]["total_time"], 1e-9)
		items := got[6]["items"].([]any)
		require.Len(t, items, 2)
		assert.Equal(t, map[string]any{"stop_name": "Tolstopaltsevo", "time": 6.0, "type": "Wait"}, items[0])
		bus := items[1].(map[string]any)
		assert.Equal(t, "750", bus["bus"])
		assert.Equal(t, 2.0, bus["span_count"])
		assert.Equal(t, "Bus", bus["type"])
		assert.InDelta(t, 20.7, bus["time"], 1e-9)

		assert.InDelta(t, 26.1, got[7]["total_time"], 1e-9)

		assert.Equal(t, map[string]any{"items": []any{}, "request_id": 9.0, "total_time": 0.0}, got[8])
		assert.Equal(t, "not found", got[9]["error_message"])
	})

	t.Run("map", func(t *testing.T) {
		svg, ok := got[10]["map"].(string)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8" ?>`))
		assert.Contains(t, svg, `stroke="green"`)
		assert.Contains(t, svg, `stroke="rgb(255,160,0)"`)
		assert.NotContains(t, svg, ">Lonely</text>")
	})
}

func TestProcessRequests_SortedKeysAndRawMarkup(t *testing.T) {
	file := makeBase(t)

	in := strings.NewReader(`{"stat_requests": [{"id": 1, "type": "Bus", "name": "14"}, {"id": 2, "type": "Map"}]}`)
	var out bytes.Buffer
	require.NoError(t, ProcessRequests(in, &out, Options{SnapshotFile: file}))

	text := out.String()
	keys := []string{`"curvature"`, `"request_id"`, `"route_length"`, `"stop_count"`, `"unique_stop_count"`}
	for i := 1; i < len(keys); i++ {
		assert.Less(t, strings.Index(text, keys[i-1]), strings.Index(text, keys[i]))
	}
	assert.Contains(t, text, "<svg")
	assert.NotContains(t, text, `\u003c`)
}

func TestMakeBase_Errors(t *testing.T) {
	t.Run("no snapshot file", func(t *testing.T) {
		_, err := MakeBase(strings.NewReader(`{"base_requests": []}`), Options{})
		assert.ErrorIs(t, err, ErrNoSnapshotFile)
	})
	t.Run("no routing settings", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "base.db")
		_, err := MakeBase(strings.NewReader(`{"base_requests": []}`), Options{SnapshotFile: file})
		assert.ErrorIs(t, err, ErrNoRoutingSettings)
	})
	t.Run("routing defaults from options", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "base.db")
		_, err := MakeBase(strings.NewReader(`{"base_requests": []}`), Options{
			SnapshotFile: file,
			Routing:      &router.Settings{BusVelocity: 40, BusWaitTime: 6},
		})
		assert.NoError(t, err)
	})
	t.Run("zero velocity", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "base.db")
		in := `{"base_requests": [], "routing_settings": {"bus_velocity": 0, "bus_wait_time": 6}}`
		_, err := MakeBase(strings.NewReader(in), Options{SnapshotFile: file})
		assert.ErrorIs(t, err, router.ErrInvalidConfiguration)
	})
	t.Run("document names the file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "named.db")
		in := `{"base_requests": [], "routing_settings": {"bus_velocity": 40, "bus_wait_time": 6}, "serialization_settings": {"file": ` +
			strconvQuote(file) + `}}`
		written, err := MakeBase(strings.NewReader(in), Options{SnapshotFile: "ignored.db"})
		require.NoError(t, err)
		assert.Equal(t, file, written)
		assert.FileExists(t, file)
	})
}

func TestProcessRequests_Errors(t *testing.T) {
	file := makeBase(t)

	err := ProcessRequests(strings.NewReader(`{"stat_requests": [{"id": 1, "type": "Tram"}]}`), &bytes.Buffer{}, Options{SnapshotFile: file})
	assert.ErrorIs(t, err, ErrUnknownRequestType)

	err = ProcessRequests(strings.NewReader(`{"stat_requests": []}`), &bytes.Buffer{}, Options{SnapshotFile: filepath.Join(t.TempDir(), "missing.db")})
	assert.Error(t, err)
}

func strconvQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestMakeBase_MapUnchangedByReload(t *testing.T) {
	file := filepath.Join(t.TempDir(), "base.db")
	in := `{
		"base_requests": [
			{"type": "Stop", "name": "A", "latitude": 55.6, "longitude": 37.2, "road_distances": {"B": 1000}},
			{"type": "Stop", "name": "B", "latitude": 55.7, "longitude": 37.3},
			{"type": "Bus", "name": "1", "stops": ["A", "B"], "is_roundtrip": false}
		],
		"routing_settings": {"bus_velocity": 40, "bus_wait_time": 6},
		"render_settings": {
			"width": 600, "height": 400, "padding": 50,
			"line_width": 14, "stop_radius": 5,
			"bus_label_font_size": 20, "bus_label_offset": [7, 15],
			"stop_label_font_size": 18, "stop_label_offset": [7, -3],
			"underlayer_width": 3,
			"color_palette": ["green"]
		},
		"serialization_settings": {"file": ` + strconvQuote(file) + `}
	}`

	doc, err := ReadDocument(strings.NewReader(in))
	require.NoError(t, err)
	built, err := Build(doc, Options{})
	require.NoError(t, err)
	before, err := NewHandler(built).Handle(StatRequest{ID: 1, Type: TypeMap})
	require.NoError(t, err)

	_, err = MakeBase(strings.NewReader(in), Options{})
	require.NoError(t, err)
	loaded, err := Load(file, nil)
	require.NoError(t, err)
	after, err := NewHandler(loaded).Handle(StatRequest{ID: 1, Type: TypeMap})
	require.NoError(t, err)

	assert.Equal(t, before, after)
	assert.Contains(t, after.(MapResponse).Map, `fill="rgba(255,255,255,0.85)"`)
}
