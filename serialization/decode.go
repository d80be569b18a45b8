package serialization

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/domain"
	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// rawSnapshot is the decoded message before the catalogue and the routing
// state are rebuilt from it.
type rawSnapshot struct {
	stops     []domain.Stop
	buses     []catalogue.RestoredBus
	distances []catalogue.RoadDistance

	renderSettings *renderer.Settings
	routerSettings *router.Settings

	hasBuilder bool
	edges      []graph.Edge[float64]
	incidence  [][]graph.EdgeID
	edgeInfos  []router.EdgeInfo

	hasRouter bool
	routes    [][]graph.RouteInternalData[float64]
}

func decodeSnapshot(b []byte) (Snapshot, error) {
	var raw rawSnapshot
	err := forEachField(b, func(f field) error {
		switch f.num {
		case fieldStops:
			return decodeInto(f, &raw.stops, decodeStop)
		case fieldBuses:
			return decodeInto(f, &raw.buses, decodeBus)
		case fieldDistances:
			return decodeInto(f, &raw.distances, decodeDistance)
		case fieldRenderSettings:
			msg, err := f.asBytes()
			if err != nil {
				return err
			}
			s, err := decodeRenderSettings(msg)
			if err != nil {
				return err
			}
			raw.renderSettings = &s
		case fieldRouterSettings:
			msg, err := f.asBytes()
			if err != nil {
				return err
			}
			s, err := decodeRouterSettings(msg)
			if err != nil {
				return err
			}
			raw.routerSettings = &s
		case fieldRouteBuilder:
			msg, err := f.asBytes()
			if err != nil {
				return err
			}
			raw.hasBuilder = true
			return raw.decodeRouteBuilder(msg)
		case fieldRouter:
			msg, err := f.asBytes()
			if err != nil {
				return err
			}
			raw.hasRouter = true
			return raw.decodeRouter(msg)
		}
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return raw.restore()
}

func decodeInto[T any](f field, dst *[]T, decode func([]byte) (T, error)) error {
	msg, err := f.asBytes()
	if err != nil {
		return err
	}
	v, err := decode(msg)
	if err != nil {
		return err
	}
	*dst = append(*dst, v)
	return nil
}

func (raw *rawSnapshot) restore() (Snapshot, error) {
	cat, err := catalogue.Restore(raw.stops, raw.buses, raw.distances)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	snap := Snapshot{Catalogue: cat, RenderSettings: raw.renderSettings}
	if !raw.hasBuilder {
		return snap, nil
	}
	if raw.routerSettings == nil {
		return Snapshot{}, fmt.Errorf("%w: routing graph without router settings", ErrMalformedSnapshot)
	}

	g, err := graph.RestoreDirectedWeightedGraph(raw.edges, raw.incidence)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	builder, err := router.RestoreBuilder(cat, *raw.routerSettings, g, raw.edgeInfos)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	if !raw.hasRouter {
		snap.Planner = router.NewPlanner(builder)
		return snap, nil
	}
	planner, err := router.RestorePlanner(builder, raw.routes)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	snap.Planner = planner
	return snap, nil
}

func decodeStop(b []byte) (domain.Stop, error) {
	var stop domain.Stop
	err := forEachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			stop.ID, err = f.asInt()
		case 2:
			stop.Name, err = f.asString()
		case 3:
			var msg []byte
			if msg, err = f.asBytes(); err != nil {
				return err
			}
			err = forEachField(msg, func(f field) error {
				var err error
				switch f.num {
				case 1:
					stop.Coordinates.Lat, err = f.asDouble()
				case 2:
					stop.Coordinates.Lng, err = f.asDouble()
				}
				return err
			})
		}
		return err
	})
	return stop, err
}

func decodeBus(b []byte) (catalogue.RestoredBus, error) {
	var bus catalogue.RestoredBus
	err := forEachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			bus.ID, err = f.asInt()
		case 2:
			bus.Name, err = f.asString()
		case 3:
			var ids []int
			if ids, err = f.asInts(); err == nil {
				bus.Stops = append(bus.Stops, ids...)
			}
		case 4:
			var v int
			if v, err = f.asInt(); err != nil {
				return err
			}
			switch domain.RouteType(v) {
			case domain.RouteForward, domain.RouteCycle:
				bus.RouteType = domain.RouteType(v)
			default:
				err = fmt.Errorf("%w: bus %q has route type %d", ErrMalformedSnapshot, bus.Name, v)
			}
		}
		return err
	})
	return bus, err
}

func decodeDistance(b []byte) (catalogue.RoadDistance, error) {
	var d catalogue.RoadDistance
	err := forEachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			d.From, err = f.asInt()
		case 2:
			d.To, err = f.asInt()
		case 3:
			var v uint64
			if v, err = f.asUint(); err == nil {
				if v > 1<<32-1 {
					err = fmt.Errorf("%w: road distance %d out of range", ErrMalformedSnapshot, v)
				}
				d.Length = uint32(v)
			}
		}
		return err
	})
	return d, err
}

func decodePoint(b []byte) (svg.Point, error) {
	var p svg.Point
	err := forEachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			p.X, err = f.asDouble()
		case 2:
			p.Y, err = f.asDouble()
		}
		return err
	})
	return p, err
}

func decodeChannels(b []byte) (svg.Color, error) {
	var c svg.Color
	err := forEachField(b, func(f field) error {
		if f.num == 4 {
			var err error
			c.Opacity, err = f.asDouble()
			return err
		}
		v, err := f.asUint()
		if err != nil {
			return err
		}
		if v > 255 {
			return fmt.Errorf("%w: color channel %d out of range", ErrMalformedSnapshot, v)
		}
		switch f.num {
		case 1:
			c.Red = uint8(v)
		case 2:
			c.Green = uint8(v)
		case 3:
			c.Blue = uint8(v)
		}
		return nil
	})
	return c, err
}

// decodeColor maps an empty string back to "none" and a color without any
// oneof field to an unset color.
func decodeColor(b []byte) (svg.Color, error) {
	var c svg.Color
	err := forEachField(b, func(f field) error {
		switch f.num {
		case fieldColorString:
			name, err := f.asString()
			if err != nil {
				return err
			}
			if name == "" {
				c = svg.NoColor()
			} else {
				c = svg.NamedColor(name)
			}
		case fieldColorRGB, fieldColorRGBA:
			msg, err := f.asBytes()
			if err != nil {
				return err
			}
			channels, err := decodeChannels(msg)
			if err != nil {
				return err
			}
			if f.num == fieldColorRGB {
				c = svg.RGB(channels.Red, channels.Green, channels.Blue)
			} else {
				c = svg.RGBA(channels.Red, channels.Green, channels.Blue, channels.Opacity)
			}
		}
		return nil
	})
	return c, err
}

func decodeFontSize(f field) (uint32, error) {
	v, err := f.asUint()
	if err != nil {
		return 0, err
	}
	if v > 1<<32-1 {
		return 0, fmt.Errorf("%w: font size %d out of range", ErrMalformedSnapshot, v)
	}
	return uint32(v), nil
}

func decodeRenderSettings(b []byte) (renderer.Settings, error) {
	var s renderer.Settings
	err := forEachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			s.Width, err = f.asDouble()
		case 2:
			s.Height, err = f.asDouble()
		case 3:
			s.Padding, err = f.asDouble()
		case 4:
			s.LineWidth, err = f.asDouble()
		case 5:
			s.StopRadius, err = f.asDouble()
		case 6:
			s.BusLabelFontSize, err = decodeFontSize(f)
		case 7:
			s.BusLabelOffset, err = decodeMessage(f, decodePoint)
		case 8:
			s.StopLabelFontSize, err = decodeFontSize(f)
		case 9:
			s.StopLabelOffset, err = decodeMessage(f, decodePoint)
		case 10:
			s.UnderlayerColor, err = decodeMessage(f, decodeColor)
		case 11:
			s.UnderlayerWidth, err = f.asDouble()
		case 12:
			err = decodeInto(f, &s.ColorPalette, decodeColor)
		}
		return err
	})
	return s, err
}

func decodeMessage[T any](f field, decode func([]byte) (T, error)) (T, error) {
	msg, err := f.asBytes()
	if err != nil {
		var zero T
		return zero, err
	}
	return decode(msg)
}

func decodeRouterSettings(b []byte) (router.Settings, error) {
	var s router.Settings
	err := forEachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			s.BusVelocity, err = f.asDouble()
		case 2:
			s.BusWaitTime, err = f.asDouble()
		}
		return err
	})
	return s, err
}

func (raw *rawSnapshot) decodeRouteBuilder(b []byte) error {
	return forEachField(b, func(f field) error {
		switch f.num {
		case 1:
			msg, err := f.asBytes()
			if err != nil {
				return err
			}
			return raw.decodeGraph(msg)
		case 2:
			return decodeInto(f, &raw.edgeInfos, decodeEdgeInfo)
		}
		return nil
	})
}

func (raw *rawSnapshot) decodeGraph(b []byte) error {
	return forEachField(b, func(f field) error {
		switch f.num {
		case 1:
			return decodeInto(f, &raw.edges, decodeEdge)
		case 2:
			msg, err := f.asBytes()
			if err != nil {
				return err
			}
			list := []graph.EdgeID{}
			err = forEachField(msg, func(f field) error {
				if f.num != 1 {
					return nil
				}
				ids, err := f.asInts()
				list = append(list, ids...)
				return err
			})
			if err != nil {
				return err
			}
			raw.incidence = append(raw.incidence, list)
		}
		return nil
	})
}

func decodeEdge(b []byte) (graph.Edge[float64], error) {
	var e graph.Edge[float64]
	err := forEachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			e.From, err = f.asInt()
		case 2:
			e.To, err = f.asInt()
		case 3:
			e.Weight, err = f.asDouble()
		}
		return err
	})
	return e, err
}

func decodeEdgeInfo(b []byte) (router.EdgeInfo, error) {
	var info router.EdgeInfo
	err := forEachField(b, func(f field) error {
		var err error
		switch f.num {
		case 1:
			info.Name, err = f.asString()
		case 2:
			info.SpanCount, err = f.asInt()
		case 3:
			info.Weight, err = f.asDouble()
		}
		return err
	})
	return info, err
}

func (raw *rawSnapshot) decodeRouter(b []byte) error {
	return forEachField(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		msg, err := f.asBytes()
		if err != nil {
			return err
		}
		row := []graph.RouteInternalData[float64]{}
		err = forEachField(msg, func(f field) error {
			if f.num != 1 {
				return nil
			}
			return decodeInto(f, &row, decodeOptRoute)
		})
		if err != nil {
			return err
		}
		raw.routes = append(raw.routes, row)
		return nil
	})
}

// decodeOptRoute reads one route table entry; an entry without data is unreachable.
func decodeOptRoute(b []byte) (graph.RouteInternalData[float64], error) {
	var data graph.RouteInternalData[float64]
	err := forEachField(b, func(f field) error {
		if f.num != 1 {
			return nil
		}
		msg, err := f.asBytes()
		if err != nil {
			return err
		}
		data.Reachable = true
		return forEachField(msg, func(f field) error {
			var err error
			switch f.num {
			case 1:
				data.Weight, err = f.asDouble()
			case 2:
				var prev []byte
				if prev, err = f.asBytes(); err != nil {
					return err
				}
				data.HasPrevEdge = true
				err = forEachField(prev, func(f field) error {
					if f.num != 1 {
						return nil
					}
					var err error
					data.PrevEdge, err = f.asInt()
					return err
				})
			}
			return err
		})
	})
	return data, err
}
