// Package workers provides abstractions for managing and running
// background workers in the agent.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Start launches the worker's goroutine and returns immediately; Stop blocks
// until the worker has fully exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
