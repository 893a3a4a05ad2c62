package imagery

import (
	"net/http"
	"time"

	"github.com/coocood/freecache"

	"github.com/nahubn1/airplane-recognition-quiz/pkg/logger"
)

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithBaseURLs points the three lookup tiers at alternate endpoints,
// mainly for tests. Empty strings keep the defaults.
func WithBaseURLs(summary, mediaList, query string) Option {
	return func(r *Resolver) {
		if summary != "" {
			r.summaryBase = summary
		}
		if mediaList != "" {
			r.mediaListBase = mediaList
		}
		if query != "" {
			r.queryBase = query
		}
	}
}

// WithHTTPClient replaces the outbound HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) {
		if client != nil {
			r.client = client
		}
	}
}

// WithTimeout sets the outbound request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Resolver) {
		if timeout > 0 {
			r.client.Timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header sent to the lookup services.
func WithUserAgent(ua string) Option {
	return func(r *Resolver) {
		if ua != "" {
			r.userAgent = ua
		}
	}
}

// WithHotCacheSize sets the in-process cache size in bytes.
func WithHotCacheSize(sizeBytes int) Option {
	return func(r *Resolver) {
		if sizeBytes > 0 {
			r.hot = freecache.NewCache(sizeBytes)
		}
	}
}

// WithLogger sets a custom logger for the resolver.
func WithLogger(log logger.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.logger = log
		}
	}
}
