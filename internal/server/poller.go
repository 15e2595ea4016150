package server

import (
	"context"

	"github.com/preston-bernstein/live-arena-service/internal/poller"
)

// Poller defines the poller behavior needed by the server and the admin refresh endpoint.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	PollNow(ctx context.Context) error
	Status() poller.Status
}
