package requests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// Request types.
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeMap   = "Map"
	TypeRoute = "Route"
)

// Document is a whole request document.
type Document struct {
	BaseRequests          []BaseRequest          `json:"base_requests"`
	RoutingSettings       *router.Settings       `json:"routing_settings"`
	RenderSettings        *RenderSettings        `json:"render_settings"`
	SerializationSettings *SerializationSettings `json:"serialization_settings"`
	StatRequests          []StatRequest          `json:"stat_requests"`
}

// BaseRequest is a Stop or a Bus record.
type BaseRequest struct {
	Type string `json:"type"`
	Name string `json:"name"`

	// Stop
	Latitude      float64           `json:"latitude"`
	Longitude     float64           `json:"longitude"`
	RoadDistances map[string]uint32 `json:"road_distances"`

	// Bus
	Stops       []string `json:"stops"`
	IsRoundtrip bool     `json:"is_roundtrip"`
}

type SerializationSettings struct {
	File string `json:"file"`
}

// StatRequest is one query. Stop and Bus use Name, Route uses From and To.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// RenderSettings is the render_settings section.
type RenderSettings struct {
	Width             float64    `json:"width"`
	Height            float64    `json:"height"`
	Padding           float64    `json:"padding"`
	LineWidth         float64    `json:"line_width"`
	StopRadius        float64    `json:"stop_radius"`
	BusLabelFontSize  uint32     `json:"bus_label_font_size"`
	BusLabelOffset    [2]float64 `json:"bus_label_offset"`
	StopLabelFontSize uint32     `json:"stop_label_font_size"`
	StopLabelOffset   [2]float64 `json:"stop_label_offset"`
	UnderlayerColor   *Color     `json:"underlayer_color"`
	UnderlayerWidth   float64    `json:"underlayer_width"`
	ColorPalette      []Color    `json:"color_palette"`
}

// Settings converts the section into renderer settings.
func (s RenderSettings) Settings() renderer.Settings {
	out := renderer.Settings{
		Width:             s.Width,
		Height:            s.Height,
		Padding:           s.Padding,
		LineWidth:         s.LineWidth,
		StopRadius:        s.StopRadius,
		BusLabelFontSize:  s.BusLabelFontSize,
		BusLabelOffset:    svg.Point{X: s.BusLabelOffset[0], Y: s.BusLabelOffset[1]},
		StopLabelFontSize: s.StopLabelFontSize,
		StopLabelOffset:   svg.Point{X: s.StopLabelOffset[0], Y: s.StopLabelOffset[1]},
		UnderlayerWidth:   s.UnderlayerWidth,
		ColorPalette:      make([]svg.Color, 0, len(s.ColorPalette)),
	}
	if s.UnderlayerColor != nil {
		out.UnderlayerColor = s.UnderlayerColor.Color
	}
	for _, c := range s.ColorPalette {
		out.ColorPalette = append(out.ColorPalette, c.Color)
	}
	return out
}

// Color accepts a color name, [r, g, b] or [r, g, b, opacity].
type Color struct {
	svg.Color
}

func (c *Color) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		c.Color = svg.NoColor()
		return nil
	}
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		c.Color = svg.NamedColor(name)
		return nil
	}
	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("color must be a string or an array: %w", err)
	}
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("color array must have 3 or 4 elements, got %d", len(parts))
	}
	var rgb [3]uint8
	for i := range rgb {
		if parts[i] < 0 || parts[i] > 255 || parts[i] != float64(int(parts[i])) {
			return fmt.Errorf("color channel %v is not an integer in [0, 255]", parts[i])
		}
		rgb[i] = uint8(parts[i])
	}
	if len(parts) == 3 {
		c.Color = svg.RGB(rgb[0], rgb[1], rgb[2])
	} else {
		c.Color = svg.RGBA(rgb[0], rgb[1], rgb[2], parts[3])
	}
	return nil
}

// ReadDocument decodes one request document from r.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return doc, nil
}
