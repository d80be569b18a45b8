package requests

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/slog"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/domain"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// Ingest applies base requests to cat: every stop first, together with the
// road distances, then the buses in document order. A bus naming an unknown
// stop is skipped and logged; any other failure stops the ingest.
func Ingest(cat *catalogue.Catalogue, base []BaseRequest) error {
	var (
		stops     []catalogue.StopInput
		distances []catalogue.StopDistances
		buses     []catalogue.BusInput
	)
	for _, req := range base {
		switch req.Type {
		case TypeStop:
			stops = append(stops, catalogue.StopInput{
				Name:        req.Name,
				Coordinates: geo.Coordinates{Lat: req.Latitude, Lng: req.Longitude},
			})
			if len(req.RoadDistances) > 0 {
				distances = append(distances, stopDistances(req))
			}
		case TypeBus:
			buses = append(buses, catalogue.BusInput{
				Name:      req.Name,
				Stops:     req.Stops,
				RouteType: domain.RouteTypeFromRoundtrip(req.IsRoundtrip),
			})
		default:
			return fmt.Errorf("%w: base request %q", ErrUnknownRequestType, req.Type)
		}
	}

	if err := cat.AddStops(stops, distances); err != nil {
		return err
	}
	skipped := 0
	for _, bus := range buses {
		err := cat.AddBus(bus)
		if errors.Is(err, catalogue.ErrUnknownStop) {
			slog.Warn("bus skipped", "bus", bus.Name, "err", err)
			skipped++
			continue
		}
		if err != nil {
			return err
		}
	}
	slog.Debug("base requests ingested", "stops", cat.StopCount(), "buses", cat.BusCount(), "skipped", skipped)
	return nil
}

// stopDistances lists the neighbors of a stop in name order.
func stopDistances(req BaseRequest) catalogue.StopDistances {
	out := catalogue.StopDistances{From: req.Name, To: make([]catalogue.Neighbor, 0, len(req.RoadDistances))}
	for name, length := range req.RoadDistances {
		out.To = append(out.To, catalogue.Neighbor{Name: name, Length: length})
	}
	sort.Slice(out.To, func(i, j int) bool { return out.To[i].Name < out.To[j].Name })
	return out
}
