package renderer

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

const epsilon = 1e-6

func isZero(v float64) bool { return math.Abs(v) < epsilon }

// projector maps coordinates into the canvas. A bounding box that is flat
// along one axis is fitted along the other; a single point maps to the padding corner.
type projector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

func newProjector(points orb.MultiPoint, width, height, padding float64) projector {
	p := projector{padding: padding}
	if len(points) == 0 {
		return p
	}
	bound := points.Bound()
	p.minLng = bound.Min.Lon()
	p.maxLat = bound.Max.Lat()

	lngSpan := bound.Max.Lon() - bound.Min.Lon()
	latSpan := bound.Max.Lat() - bound.Min.Lat()
	widthFits, heightFits := !isZero(lngSpan), !isZero(latSpan)

	var widthZoom, heightZoom float64
	if widthFits {
		widthZoom = (width - 2*padding) / lngSpan
	}
	if heightFits {
		heightZoom = (height - 2*padding) / latSpan
	}
	switch {
	case widthFits && heightFits:
		p.zoom = math.Min(widthZoom, heightZoom)
	case widthFits:
		p.zoom = widthZoom
	case heightFits:
		p.zoom = heightZoom
	}
	return p
}

func (p projector) project(c geo.Coordinates) svg.Point {
	return svg.Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}

func toOrbPoint(c geo.Coordinates) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}
