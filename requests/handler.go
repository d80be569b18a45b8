package requests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

const notFound = "not found"

// Response shapes. Fields are declared in key order so encoded objects
// have sorted keys.
type (
	StopResponse struct {
		Buses     []string `json:"buses"`
		RequestID int      `json:"request_id"`
	}

	BusResponse struct {
		Curvature       float64 `json:"curvature"`
		RequestID       int     `json:"request_id"`
		RouteLength     uint32  `json:"route_length"`
		StopCount       int     `json:"stop_count"`
		UniqueStopCount int     `json:"unique_stop_count"`
	}

	MapResponse struct {
		Map       string `json:"map"`
		RequestID int    `json:"request_id"`
	}

	RouteResponse struct {
		Items     []RouteItem `json:"items"`
		RequestID int         `json:"request_id"`
		TotalTime float64     `json:"total_time"`
	}

	// RouteItem is a Wait item (StopName) or a Bus item (Bus, SpanCount).
	// Each kind is encoded with exactly its own keys, see MarshalJSON.
	RouteItem struct {
		Bus       string  `json:"bus"`
		SpanCount int     `json:"span_count"`
		StopName  string  `json:"stop_name"`
		Time      float64 `json:"time"`
		Type      string  `json:"type"`
	}

	ErrorResponse struct {
		ErrorMessage string `json:"error_message"`
		RequestID    int    `json:"request_id"`
	}
)

// Handler answers stat requests against one transport.
type Handler struct {
	transport *Transport
}

func NewHandler(t *Transport) *Handler {
	return &Handler{transport: t}
}

// Handle answers one request. Absent answers are ErrorResponse values; an
// error means the request could not be evaluated at all.
func (h *Handler) Handle(req StatRequest) (any, error) {
	switch req.Type {
	case TypeStop:
		return h.stop(req), nil
	case TypeBus:
		return h.bus(req), nil
	case TypeMap:
		return h.drawMap(req), nil
	case TypeRoute:
		return h.route(req)
	default:
		return nil, fmt.Errorf("%w: stat request %d has type %q", ErrUnknownRequestType, req.ID, req.Type)
	}
}

// HandleAll answers every request in order.
func (h *Handler) HandleAll(reqs []StatRequest) ([]any, error) {
	out := make([]any, 0, len(reqs))
	for _, req := range reqs {
		resp, err := h.Handle(req)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func notFoundResponse(id int) ErrorResponse {
	return ErrorResponse{ErrorMessage: notFound, RequestID: id}
}

func (h *Handler) stop(req StatRequest) any {
	info, ok := h.transport.Catalogue().GetStop(req.Name)
	if !ok {
		return notFoundResponse(req.ID)
	}
	return StopResponse{Buses: info.Buses, RequestID: req.ID}
}

func (h *Handler) bus(req StatRequest) any {
	info, ok := h.transport.Catalogue().GetBus(req.Name)
	if !ok {
		return notFoundResponse(req.ID)
	}
	return newBusResponse(req.ID, info)
}

func newBusResponse(id int, info catalogue.BusInfo) BusResponse {
	return BusResponse{
		Curvature:       info.Curvature,
		RequestID:       id,
		RouteLength:     info.RouteLength,
		StopCount:       info.StopCount(),
		UniqueStopCount: info.UniqueStopCount(),
	}
}

// drawMap answers "not found" when the base has no render settings.
func (h *Handler) drawMap(req StatRequest) any {
	settings := h.transport.RenderSettings()
	if settings == nil {
		return notFoundResponse(req.ID)
	}
	svg := renderer.New(h.transport.Catalogue(), *settings).Render()
	return MapResponse{Map: string(svg), RequestID: req.ID}
}

func (h *Handler) route(req StatRequest) (any, error) {
	planner, err := h.transport.EnsureRouter()
	if err != nil {
		return nil, err
	}
	it, ok := planner.FindRoute(req.From, req.To)
	if !ok {
		return notFoundResponse(req.ID), nil
	}
	return newRouteResponse(req.ID, it), nil
}

func newRouteResponse(id int, it router.Itinerary) RouteResponse {
	resp := RouteResponse{
		Items:     make([]RouteItem, 0, len(it.Legs)),
		RequestID: id,
		TotalTime: it.TotalTime,
	}
	for _, leg := range it.Legs {
		item := RouteItem{Time: leg.Time, Type: leg.Kind.String()}
		if leg.Kind == router.LegBus {
			item.Bus = leg.BusName
			item.SpanCount = leg.SpanCount
		} else {
			item.StopName = leg.StopName
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}

type (
	waitItem struct {
		StopName string  `json:"stop_name"`
		Time     float64 `json:"time"`
		Type     string  `json:"type"`
	}

	busItem struct {
		Bus       string  `json:"bus"`
		SpanCount int     `json:"span_count"`
		Time      float64 `json:"time"`
		Type      string  `json:"type"`
	}
)

// MarshalJSON writes a Bus item as {bus, span_count, time, type} and a Wait
// item as {stop_name, time, type}, empty values included.
func (i RouteItem) MarshalJSON() ([]byte, error) {
	var v any = waitItem{StopName: i.StopName, Time: i.Time, Type: i.Type}
	if i.Type == router.LegBus.String() {
		v = busItem{Bus: i.Bus, SpanCount: i.SpanCount, Time: i.Time, Type: i.Type}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteResponses writes responses as one indented JSON array. HTML
// characters are not escaped so SVG maps stay readable.
func WriteResponses(w io.Writer, responses []any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(responses); err != nil {
		return fmt.Errorf("failed to write responses: %w", err)
	}
	return nil
}
