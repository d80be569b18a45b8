/*
Package router turns a built catalogue into a routing graph and answers
"fastest way from stop A to stop B" queries.

Every stop contributes two vertices: a wait vertex (2 * stop id) where a
journey arrives and a ready vertex (2 * stop id + 1) from which buses leave.
A wait edge joins them with the configured wait time. Every bus contributes
ride edges from the ready vertex of a stop to the wait vertex of each later
stop it reaches without a transfer, weighted with the cumulative travel time.

# Usage

	b, err := router.NewBuilder(cat, router.Settings{BusVelocity: 40, BusWaitTime: 6})
	if err != nil {
	    return err // ErrInvalidConfiguration
	}
	p := router.NewPlanner(b)
	it, ok := p.FindRoute("Biryulyovo Zapadnoye", "Universam")

Times are minutes. The builder and planner keep every table they derive so
a snapshot can restore them with RestoreBuilder and RestorePlanner instead of
rebuilding.
*/
package router
