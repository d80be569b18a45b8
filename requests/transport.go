package requests

import (
	"sync"

	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
	"github.com/theoremus-urban-solutions/transport-catalogue/serialization"
)

// Transport holds the state of one base: the catalogue, its settings and
// the planner once it is built.
//
// Example:
//
//	t, err := requests.Load("transport_catalogue.db", &config.Config.Routing)
//	if err != nil {
//	    // handle error
//	}
//	planner, err := t.EnsureRouter() // builds only if the snapshot had no router
//
// Thread safety: Safe for concurrent use. The planner is built at most once,
// also under concurrent callers; the catalogue must not be mutated after the
// transport is shared.
type Transport struct {
	mu sync.Mutex

	catalogue *catalogue.Catalogue
	routing   *router.Settings
	render    *renderer.Settings
	planner   *router.Planner
}

// NewTransport wraps a built catalogue. Both settings are optional.
func NewTransport(cat *catalogue.Catalogue, routing *router.Settings, render *renderer.Settings) *Transport {
	return &Transport{catalogue: cat, routing: routing, render: render}
}

// FromSnapshot restores a transport, including its planner when the
// snapshot carries one.
func FromSnapshot(s serialization.Snapshot) *Transport {
	t := &Transport{catalogue: s.Catalogue, render: s.RenderSettings, planner: s.Planner}
	if s.Planner != nil {
		settings := s.Planner.Builder().Settings()
		t.routing = &settings
	}
	return t
}

func (t *Transport) Catalogue() *catalogue.Catalogue { return t.catalogue }

// RenderSettings returns nil when the base has no render settings.
func (t *Transport) RenderSettings() *renderer.Settings { return t.render }

// SetRoutingSettings provides settings for a planner that is not built yet.
// It has no effect once the planner exists.
func (t *Transport) SetRoutingSettings(s router.Settings) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.planner != nil {
		return
	}
	t.routing = &s
}

// Built reports whether the planner exists.
func (t *Transport) Built() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.planner != nil
}

// EnsureRouter builds the routing graph and the route table on first use
// and returns the same planner on every later call.
func (t *Transport) EnsureRouter() (*router.Planner, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.planner != nil {
		return t.planner, nil
	}
	if t.routing == nil {
		return nil, ErrNoRoutingSettings
	}
	builder, err := router.NewBuilder(t.catalogue, *t.routing)
	if err != nil {
		return nil, err
	}
	t.planner = router.NewPlanner(builder)
	slog.Info("router built",
		"vertices", builder.Graph().VertexCount(),
		"edges", builder.Graph().EdgeCount(),
		"bus_velocity", t.routing.BusVelocity,
		"bus_wait_time", t.routing.BusWaitTime)
	return t.planner, nil
}

// Snapshot captures the current state for persistence.
func (t *Transport) Snapshot() serialization.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return serialization.Snapshot{
		Catalogue:      t.catalogue,
		RenderSettings: t.render,
		Planner:        t.planner,
	}
}
