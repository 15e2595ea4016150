package server

import (
	"time"

	"github.com/preston-bernstein/live-arena-service/internal/config"
)

const (
	fallbackReadTimeout     = 10 * time.Second
	fallbackWriteTimeout    = 10 * time.Second
	fallbackIdleTimeout     = 60 * time.Second
	fallbackShutdownTimeout = 10 * time.Second
)

type timeouts struct {
	read     time.Duration
	write    time.Duration
	idle     time.Duration
	shutdown time.Duration
}

// resolveTimeouts fills unset or negative values so a zero Config still produces a bounded server.
func resolveTimeouts(cfg config.HTTPConfig) timeouts {
	return timeouts{
		read:     positiveOr(cfg.ReadTimeout, fallbackReadTimeout),
		write:    positiveOr(cfg.WriteTimeout, fallbackWriteTimeout),
		idle:     positiveOr(cfg.IdleTimeout, fallbackIdleTimeout),
		shutdown: positiveOr(cfg.ShutdownTimeout, fallbackShutdownTimeout),
	}
}

func positiveOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}
	return fallback
}
