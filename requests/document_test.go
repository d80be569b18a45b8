package requests

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

func TestColor_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    svg.Color
		wantErr bool
	}{
		{name: "name", in: `"green"`, want: svg.NamedColor("green")},
		{name: "none", in: `"none"`, want: svg.NamedColor("none")},
		{name: "null", in: `null`, want: svg.NoColor()},
		{name: "rgb", in: `[255, 160, 0]`, want: svg.RGB(255, 160, 0)},
		{name: "rgba", in: `[255, 255, 255, 0.85]`, want: svg.RGBA(255, 255, 255, 0.85)},
		{name: "too short", in: `[1, 2]`, wantErr: true},
		{name: "channel out of range", in: `[256, 0, 0]`, wantErr: true},
		{name: "fractional channel", in: `[1.5, 0, 0]`, wantErr: true},
		{name: "object", in: `{"r": 1}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Color
			err := json.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Color)
		})
	}
}

func TestReadDocument(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(`{
		"base_requests": [{"type": "Stop", "name": "A", "latitude": 1, "longitude": 2, "road_distances": {"B": 10}}],
		"routing_settings": {"bus_velocity": 40, "bus_wait_time": 6},
		"render_settings": {"width": 600, "height": 400, "bus_label_offset": [7, 15], "color_palette": ["green"]},
		"serialization_settings": {"file": "base.db"},
		"stat_requests": [{"id": 3, "type": "Route", "from": "A", "to": "B"}]
	}`))
	require.NoError(t, err)

	require.Len(t, doc.BaseRequests, 1)
	assert.Equal(t, map[string]uint32{"B": 10}, doc.BaseRequests[0].RoadDistances)
	assert.Equal(t, 40.0, doc.RoutingSettings.BusVelocity)
	assert.Equal(t, "base.db", doc.SerializationSettings.File)
	assert.Equal(t, []StatRequest{{ID: 3, Type: TypeRoute, From: "A", To: "B"}}, doc.StatRequests)

	settings := doc.RenderSettings.Settings()
	assert.Equal(t, svg.Point{X: 7, Y: 15}, settings.BusLabelOffset)
	assert.Equal(t, []svg.Color{svg.NamedColor("green")}, settings.ColorPalette)
	assert.False(t, settings.UnderlayerColor.IsSet())
	assert.Equal(t, renderer.DefaultUnderlayerColor, renderer.New(nil, settings).Settings().UnderlayerColor)
}

func TestReadDocument_Invalid(t *testing.T) {
	for _, in := range []string{`{`, `{"base_requests": {}}`, `{"render_settings": {"color_palette": [[1]]}}`} {
		_, err := ReadDocument(strings.NewReader(in))
		assert.ErrorIs(t, err, ErrInvalidDocument, in)
	}
}
