package connectivity

import "context"

// Pinger is the reachability probe the monitor polls. It is satisfied by
// the HTTP sync adapter's Ping method.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor tracks whether the remote data API is reachable and notifies
// subscribers on every transition.
type Monitor interface {
	// Online reports the last observed connectivity state.
	Online() bool

	// Subscribe registers fn to be called once per transition with the
	// new state. Subscriptions cannot be removed individually; they live
	// until Stop tears the monitor down.
	Subscribe(fn func(online bool))

	// Start launches the background poller. Any previously running
	// poller is stopped first.
	Start(ctx context.Context)

	// Stop cancels the background poller and blocks until it has fully
	// exited. Safe to call when the monitor is not running.
	Stop()
}
