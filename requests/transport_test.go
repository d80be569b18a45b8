package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/router"
)

func TestTransport_EnsureRouterIsIdempotent(t *testing.T) {
	tr := NewTransport(catalogue.New(), &router.Settings{BusVelocity: 40, BusWaitTime: 6}, nil)
	assert.False(t, tr.Built())

	first, err := tr.EnsureRouter()
	require.NoError(t, err)
	second, err := tr.EnsureRouter()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.True(t, tr.Built())
	assert.Same(t, first, tr.Snapshot().Planner)

	tr.SetRoutingSettings(router.Settings{BusVelocity: 10})
	third, err := tr.EnsureRouter()
	require.NoError(t, err)
	assert.Same(t, first, third, "settings given after the build are ignored")
}

func TestTransport_EnsureRouterErrors(t *testing.T) {
	_, err := NewTransport(catalogue.New(), nil, nil).EnsureRouter()
	assert.ErrorIs(t, err, ErrNoRoutingSettings)

	_, err = NewTransport(catalogue.New(), &router.Settings{}, nil).EnsureRouter()
	assert.ErrorIs(t, err, router.ErrInvalidConfiguration)
}
