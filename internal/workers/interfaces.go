// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background
// worker. Start launches the worker's goroutine and returns immediately;
// Stop blocks until the goroutine has fully exited.
//
// Both the debounced autosave job and the market feed implement Worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
