// Package delivery defines the transport-agnostic server contract.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started by
// the application container.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
