package renderer

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/transport-catalogue/domain"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

const fontFamily = "Verdana"

// Network is the read-only view of a catalogue the renderer draws.
type Network interface {
	Buses() []domain.Bus
	StopByID(id int) domain.Stop
}

// Renderer draws a network with fixed settings.
type Renderer struct {
	network  Network
	settings Settings
}

func New(network Network, settings Settings) *Renderer {
	if !settings.UnderlayerColor.IsSet() {
		settings.UnderlayerColor = DefaultUnderlayerColor
	}
	return &Renderer{network: network, settings: settings}
}

func (r *Renderer) Settings() Settings { return r.settings }

// Render returns the SVG document of the whole network.
func (r *Renderer) Render() []byte {
	return r.Document().Render()
}

// label is a text drawn over its underlayer copy.
type label struct {
	underlayer svg.Text
	text       svg.Text
}

// Document builds the layered map without serializing it.
func (r *Renderer) Document() *svg.Document {
	buses := r.drawableBuses()

	stops := map[string]geo.Coordinates{}
	var points orb.MultiPoint
	for _, bus := range buses {
		for _, id := range bus.Stops {
			stop := r.network.StopByID(id)
			stops[stop.Name] = stop.Coordinates
			points = append(points, toOrbPoint(stop.Coordinates))
		}
	}
	proj := newProjector(points, r.settings.Width, r.settings.Height, r.settings.Padding)

	doc := &svg.Document{}
	var busLabels []label
	for i, bus := range buses {
		color := r.paletteColor(i)
		doc.Add(r.busLine(bus, color, proj))
		busLabels = append(busLabels, r.busLabels(bus, color, proj)...)
	}
	addLabels(doc, busLabels)

	names := make([]string, 0, len(stops))
	for name := range stops {
		names = append(names, name)
	}
	sort.Strings(names)

	stopLabels := make([]label, 0, len(names))
	for _, name := range names {
		at := proj.project(stops[name])
		doc.Add(svg.Circle{
			Center:    at,
			Radius:    r.settings.StopRadius,
			PathProps: svg.PathProps{Fill: svg.NamedColor("white")},
		})
		stopLabels = append(stopLabels, r.stopLabel(name, at))
	}
	addLabels(doc, stopLabels)
	return doc
}

// drawableBuses returns the buses with at least one stop, sorted by name.
func (r *Renderer) drawableBuses() []domain.Bus {
	all := r.network.Buses()
	buses := make([]domain.Bus, 0, len(all))
	for _, bus := range all {
		if len(bus.Stops) > 0 {
			buses = append(buses, bus)
		}
	}
	sort.Slice(buses, func(i, j int) bool { return buses[i].Name < buses[j].Name })
	return buses
}

func (r *Renderer) paletteColor(i int) svg.Color {
	palette := r.settings.ColorPalette
	if len(palette) == 0 {
		return svg.NoColor()
	}
	return palette[i%len(palette)]
}

// busLine traces the route; forward routes are traced there and back.
func (r *Renderer) busLine(bus domain.Bus, color svg.Color, proj projector) svg.Polyline {
	points := make([]svg.Point, 0, len(bus.Stops)*2)
	for _, id := range bus.Stops {
		points = append(points, proj.project(r.network.StopByID(id).Coordinates))
	}
	if bus.RouteType == domain.RouteForward {
		for i := len(bus.Stops) - 2; i >= 0; i-- {
			points = append(points, proj.project(r.network.StopByID(bus.Stops[i]).Coordinates))
		}
	}
	return svg.Polyline{
		Points: points,
		PathProps: svg.PathProps{
			Fill:        svg.NoColor(),
			Stroke:      color,
			StrokeWidth: r.settings.LineWidth,
			LineCap:     svg.LineCapRound,
			LineJoin:    svg.LineJoinRound,
		},
	}
}

// busLabels names the bus at its first stop, and at its last stop too for
// forward routes whose ends lie at different coordinates.
func (r *Renderer) busLabels(bus domain.Bus, color svg.Color, proj projector) []label {
	first := r.network.StopByID(bus.Stops[0]).Coordinates
	last := r.network.StopByID(bus.Stops[len(bus.Stops)-1]).Coordinates
	labels := []label{r.busLabel(bus.Name, color, proj.project(first))}
	if bus.RouteType == domain.RouteForward && last != first {
		labels = append(labels, r.busLabel(bus.Name, color, proj.project(last)))
	}
	return labels
}

func (r *Renderer) busLabel(name string, color svg.Color, at svg.Point) label {
	text := svg.Text{
		Position:   at,
		Offset:     r.settings.BusLabelOffset,
		FontSize:   r.settings.BusLabelFontSize,
		FontFamily: fontFamily,
		FontWeight: "bold",
		Data:       name,
	}
	return r.withUnderlayer(text, color)
}

func (r *Renderer) stopLabel(name string, at svg.Point) label {
	text := svg.Text{
		Position:   at,
		Offset:     r.settings.StopLabelOffset,
		FontSize:   r.settings.StopLabelFontSize,
		FontFamily: fontFamily,
		Data:       name,
	}
	return r.withUnderlayer(text, svg.NamedColor("black"))
}

func (r *Renderer) withUnderlayer(text svg.Text, fill svg.Color) label {
	under := text
	under.PathProps = svg.PathProps{
		Fill:        r.settings.UnderlayerColor,
		Stroke:      r.settings.UnderlayerColor,
		StrokeWidth: r.settings.UnderlayerWidth,
		LineCap:     svg.LineCapRound,
		LineJoin:    svg.LineJoinRound,
	}
	text.PathProps = svg.PathProps{Fill: fill}
	return label{underlayer: under, text: text}
}

func addLabels(doc *svg.Document, labels []label) {
	for _, l := range labels {
		doc.Add(l.underlayer)
		doc.Add(l.text)
	}
}
