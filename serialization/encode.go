package serialization

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/domain"
	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// Snapshot top-level fields.
const (
	fieldStops          protowire.Number = 1
	fieldBuses          protowire.Number = 2
	fieldDistances      protowire.Number = 3
	fieldRenderSettings protowire.Number = 4
	fieldRouterSettings protowire.Number = 5
	fieldRouteBuilder   protowire.Number = 6
	fieldRouter         protowire.Number = 7
)

// Color oneof fields.
const (
	fieldColorString protowire.Number = 1
	fieldColorRGB    protowire.Number = 2
	fieldColorRGBA   protowire.Number = 3
)

func encodeSnapshot(s Snapshot) []byte {
	var b []byte
	for _, stop := range s.Catalogue.Stops() {
		b = appendMessage(b, fieldStops, encodeStop(stop))
	}
	for _, bus := range s.Catalogue.Buses() {
		b = appendMessage(b, fieldBuses, encodeBus(bus))
	}
	for _, d := range s.Catalogue.RoadDistances() {
		b = appendMessage(b, fieldDistances, encodeDistance(d))
	}
	if s.RenderSettings != nil {
		b = appendMessage(b, fieldRenderSettings, encodeRenderSettings(*s.RenderSettings))
	}
	if s.Planner != nil {
		builder := s.Planner.Builder()
		b = appendMessage(b, fieldRouterSettings, encodeRouterSettings(builder.Settings()))
		b = appendMessage(b, fieldRouteBuilder, encodeRouteBuilder(builder.Data()))
		b = appendMessage(b, fieldRouter, encodeRouter(s.Planner.Router().Routes()))
	}
	return b
}

func encodeStop(stop domain.Stop) []byte {
	var coords []byte
	coords = appendDouble(coords, 1, stop.Coordinates.Lat)
	coords = appendDouble(coords, 2, stop.Coordinates.Lng)

	var b []byte
	b = appendUint(b, 1, uint64(stop.ID))
	b = appendString(b, 2, stop.Name)
	return appendMessage(b, 3, coords)
}

func encodeBus(bus domain.Bus) []byte {
	var b []byte
	b = appendUint(b, 1, uint64(bus.ID))
	b = appendString(b, 2, bus.Name)
	b = appendPacked(b, 3, bus.Stops)
	return appendUint(b, 4, uint64(bus.RouteType))
}

func encodeDistance(d catalogue.RoadDistance) []byte {
	var b []byte
	b = appendUint(b, 1, uint64(d.From))
	b = appendUint(b, 2, uint64(d.To))
	return appendUint(b, 3, uint64(d.Length))
}

func encodePoint(p svg.Point) []byte {
	var b []byte
	b = appendDouble(b, 1, p.X)
	return appendDouble(b, 2, p.Y)
}

// encodeColor writes "none" as an empty string and leaves the oneof empty for
// an unset color, so the renderer default still applies after a reload.
func encodeColor(c svg.Color) []byte {
	var channels []byte
	channels = appendUint(channels, 1, uint64(c.Red))
	channels = appendUint(channels, 2, uint64(c.Green))
	channels = appendUint(channels, 3, uint64(c.Blue))

	switch c.Kind {
	case svg.ColorNamed:
		return appendString(nil, fieldColorString, c.Name)
	case svg.ColorRGB:
		return appendMessage(nil, fieldColorRGB, channels)
	case svg.ColorRGBA:
		channels = appendDouble(channels, 4, c.Opacity)
		return appendMessage(nil, fieldColorRGBA, channels)
	case svg.ColorNone:
		return appendString(nil, fieldColorString, "")
	default:
		return nil
	}
}

func encodeRenderSettings(s renderer.Settings) []byte {
	var b []byte
	b = appendDouble(b, 1, s.Width)
	b = appendDouble(b, 2, s.Height)
	b = appendDouble(b, 3, s.Padding)
	b = appendDouble(b, 4, s.LineWidth)
	b = appendDouble(b, 5, s.StopRadius)
	b = appendUint(b, 6, uint64(s.BusLabelFontSize))
	b = appendMessage(b, 7, encodePoint(s.BusLabelOffset))
	b = appendUint(b, 8, uint64(s.StopLabelFontSize))
	b = appendMessage(b, 9, encodePoint(s.StopLabelOffset))
	b = appendMessage(b, 10, encodeColor(s.UnderlayerColor))
	b = appendDouble(b, 11, s.UnderlayerWidth)
	for _, c := range s.ColorPalette {
		b = appendMessage(b, 12, encodeColor(c))
	}
	return b
}

func encodeRouterSettings(s router.Settings) []byte {
	var b []byte
	b = appendDouble(b, 1, s.BusVelocity)
	return appendDouble(b, 2, s.BusWaitTime)
}

func encodeRouteBuilder(data router.Data) []byte {
	var g []byte
	for _, e := range data.Graph.Edges() {
		var edge []byte
		edge = appendUint(edge, 1, uint64(e.From))
		edge = appendUint(edge, 2, uint64(e.To))
		edge = appendDouble(edge, 3, e.Weight)
		g = appendMessage(g, 1, edge)
	}
	for _, list := range data.Graph.IncidenceLists() {
		g = appendMessage(g, 2, appendPacked(nil, 1, list))
	}

	b := appendMessage(nil, 1, g)
	for _, info := range data.Edges {
		var edge []byte
		edge = appendString(edge, 1, info.Name)
		edge = appendUint(edge, 2, uint64(info.SpanCount))
		edge = appendDouble(edge, 3, info.Weight)
		b = appendMessage(b, 2, edge)
	}
	return b
}

// encodeRouter writes one row per source vertex. Unreachable targets are
// empty entries so every row keeps one entry per vertex.
func encodeRouter(routes [][]graph.RouteInternalData[float64]) []byte {
	var b []byte
	for _, row := range routes {
		var rowMsg []byte
		for _, data := range row {
			var opt []byte
			if data.Reachable {
				var d []byte
				d = appendDouble(d, 1, data.Weight)
				if data.HasPrevEdge {
					d = appendMessage(d, 2, appendUint(nil, 1, uint64(data.PrevEdge)))
				}
				opt = appendMessage(opt, 1, d)
			}
			rowMsg = appendMessage(rowMsg, 1, opt)
		}
		b = appendMessage(b, 1, rowMsg)
	}
	return b
}
