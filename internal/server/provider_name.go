package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/live-arena-service/internal/providers"
)

type namedProvider interface {
	Name() string
}

// normalizeProviderName returns a lower-cased provider name for metrics and logs: the configured
// name first, then the provider's own Name, then its type.
func normalizeProviderName(raw string, provider providers.FeedProvider) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if named, ok := provider.(namedProvider); ok && named.Name() != "" {
		return strings.ToLower(named.Name())
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
