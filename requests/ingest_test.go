package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/domain"
)

func TestIngest(t *testing.T) {
	cat := catalogue.New()
	err := Ingest(cat, []BaseRequest{
		{Type: TypeBus, Name: "1", Stops: []string{"A", "B", "A"}, IsRoundtrip: true},
		{Type: TypeBus, Name: "broken", Stops: []string{"A", "Z"}},
		{Type: TypeStop, Name: "A", Latitude: 55.6, Longitude: 37.2, RoadDistances: map[string]uint32{"B": 100}},
		{Type: TypeStop, Name: "B", Latitude: 55.7, Longitude: 37.3, RoadDistances: map[string]uint32{"A": 120}},
		{Type: TypeBus, Name: "2", Stops: []string{"B", "A"}},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, cat.StopCount())
	assert.Equal(t, 2, cat.BusCount(), "bus with unknown stop is skipped")
	_, ok := cat.GetBus("broken")
	assert.False(t, ok)

	one, ok := cat.GetBus("1")
	require.True(t, ok)
	assert.Equal(t, domain.RouteCycle, one.RouteType)
	assert.Equal(t, uint32(220), one.RouteLength)

	two, ok := cat.GetBus("2")
	require.True(t, ok)
	assert.Equal(t, domain.RouteForward, two.RouteType)
	assert.Equal(t, uint32(120+100), two.RouteLength)
}

func TestIngest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		base    []BaseRequest
		wantErr error
	}{
		{
			name:    "unknown type",
			base:    []BaseRequest{{Type: "Tram", Name: "T1"}},
			wantErr: ErrUnknownRequestType,
		},
		{
			name:    "distance to unknown stop",
			base:    []BaseRequest{{Type: TypeStop, Name: "A", RoadDistances: map[string]uint32{"Z": 1}}},
			wantErr: catalogue.ErrUnknownStop,
		},
		{
			name:    "duplicate stop",
			base:    []BaseRequest{{Type: TypeStop, Name: "A"}, {Type: TypeStop, Name: "A"}},
			wantErr: catalogue.ErrDuplicateStop,
		},
		{
			name: "duplicate bus",
			base: []BaseRequest{
				{Type: TypeStop, Name: "A"},
				{Type: TypeBus, Name: "1", Stops: []string{"A"}},
				{Type: TypeBus, Name: "1", Stops: []string{"A"}},
			},
			wantErr: catalogue.ErrDuplicateBus,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Ingest(catalogue.New(), tt.base)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
