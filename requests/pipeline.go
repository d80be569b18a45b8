package requests

import (
	"io"

	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
	"github.com/theoremus-urban-solutions/transport-catalogue/serialization"
)

// Options fill in what a request document leaves out.
type Options struct {
	// Routing is used when the document has no routing_settings.
	Routing *router.Settings
	// SnapshotFile is used when the document has no serialization_settings.
	SnapshotFile string
}

func (o Options) snapshotFile(doc Document) (string, error) {
	if doc.SerializationSettings != nil && doc.SerializationSettings.File != "" {
		return doc.SerializationSettings.File, nil
	}
	if o.SnapshotFile != "" {
		return o.SnapshotFile, nil
	}
	return "", ErrNoSnapshotFile
}

func (o Options) routing(doc Document) *router.Settings {
	if doc.RoutingSettings != nil {
		return doc.RoutingSettings
	}
	return o.Routing
}

// Build ingests the base requests of doc into a fresh transport.
func Build(doc Document, opts Options) (*Transport, error) {
	var render *renderer.Settings
	if doc.RenderSettings != nil {
		s := doc.RenderSettings.Settings()
		if err := s.Validate(); err != nil {
			return nil, err
		}
		render = &s
	}
	routing := opts.routing(doc)
	if routing != nil {
		if err := routing.Validate(); err != nil {
			return nil, err
		}
	}

	cat := catalogue.New()
	if err := Ingest(cat, doc.BaseRequests); err != nil {
		return nil, err
	}
	return NewTransport(cat, routing, render), nil
}

// MakeBase reads a document from in, builds the catalogue and the router
// and writes the snapshot file. It returns the path written.
func MakeBase(in io.Reader, opts Options) (string, error) {
	doc, err := ReadDocument(in)
	if err != nil {
		return "", err
	}
	file, err := opts.snapshotFile(doc)
	if err != nil {
		return "", err
	}
	t, err := Build(doc, opts)
	if err != nil {
		return "", err
	}
	if _, err := t.EnsureRouter(); err != nil {
		return "", err
	}
	if err := serialization.ToFile(t.Snapshot(), file); err != nil {
		return "", err
	}
	return file, nil
}

// ProcessRequests reads a document from in, loads the snapshot it names and
// writes the answers to its stat_requests to out.
func ProcessRequests(in io.Reader, out io.Writer, opts Options) error {
	doc, err := ReadDocument(in)
	if err != nil {
		return err
	}
	file, err := opts.snapshotFile(doc)
	if err != nil {
		return err
	}
	t, err := Load(file, opts.routing(doc))
	if err != nil {
		return err
	}
	responses, err := NewHandler(t).HandleAll(doc.StatRequests)
	if err != nil {
		return err
	}
	slog.Debug("stat requests answered", "count", len(responses))
	return WriteResponses(out, responses)
}

// Load restores a transport from a snapshot file. routing is used only if
// the snapshot has no router.
func Load(file string, routing *router.Settings) (*Transport, error) {
	snap, err := serialization.FromFile(file)
	if err != nil {
		return nil, err
	}
	t := FromSnapshot(snap)
	if routing != nil {
		t.SetRoutingSettings(*routing)
	}
	return t, nil
}
