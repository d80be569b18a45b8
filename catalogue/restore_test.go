package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/domain"
)

func exportBuses(c *Catalogue) []RestoredBus {
	out := make([]RestoredBus, 0, c.BusCount())
	for _, b := range c.Buses() {
		out = append(out, RestoredBus{ID: b.ID, Name: b.Name, Stops: b.Stops, RouteType: b.RouteType})
	}
	return out
}

func TestRestore_ReproducesQueries(t *testing.T) {
	c := newCatalogue(t, []StopDistances{
		{From: "A", To: []Neighbor{{Name: "B", Length: 100}}},
		{From: "B", To: []Neighbor{{Name: "C", Length: 200}}},
		{From: "C", To: []Neighbor{{Name: "A", Length: 150}}},
	})
	require.NoError(t, c.AddBus(BusInput{Name: "loop", Stops: []string{"A", "B", "C", "A"}, RouteType: domain.RouteCycle}))
	require.NoError(t, c.AddBus(BusInput{Name: "line", Stops: []string{"C", "B"}, RouteType: domain.RouteForward}))

	// reverse the slices so Restore has to place entities by id
	stops := append([]domain.Stop(nil), c.Stops()...)
	for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
		stops[i], stops[j] = stops[j], stops[i]
	}
	buses := exportBuses(c)
	buses[0], buses[1] = buses[1], buses[0]

	restored, err := Restore(stops, buses, c.RoadDistances())
	require.NoError(t, err)

	assert.Equal(t, c.Stops(), restored.Stops())
	assert.Equal(t, c.Buses(), restored.Buses())
	for _, name := range []string{"loop", "line"} {
		want, _ := c.GetBus(name)
		got, ok := restored.GetBus(name)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	for _, name := range []string{"A", "B", "C"} {
		want, _ := c.GetStop(name)
		got, ok := restored.GetStop(name)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestRestore_RejectsBrokenData(t *testing.T) {
	stops := []domain.Stop{{ID: 0, Name: "A"}, {ID: 1, Name: "B"}}

	tests := []struct {
		name      string
		stops     []domain.Stop
		buses     []RestoredBus
		distances []RoadDistance
	}{
		{
			name:  "gap in stop ids",
			stops: []domain.Stop{{ID: 0, Name: "A"}, {ID: 2, Name: "B"}},
		},
		{
			name:  "repeated stop id",
			stops: []domain.Stop{{ID: 0, Name: "A"}, {ID: 0, Name: "B"}},
		},
		{
			name:  "bus references missing stop",
			stops: stops,
			buses: []RestoredBus{{ID: 0, Name: "1", Stops: []int{0, 5}}},
		},
		{
			name:  "bus id out of range",
			stops: stops,
			buses: []RestoredBus{{ID: 3, Name: "1"}},
		},
		{
			name:      "distance references missing stop",
			stops:     stops,
			distances: []RoadDistance{{From: 0, To: 9, Length: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.stops, tt.buses, tt.distances)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}
