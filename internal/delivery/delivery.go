// Package delivery defines the transport entry points started by the cmd binaries.
package delivery

import "context"

// Delivery is a long-running transport (HTTP API, Pub/Sub push worker).
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
