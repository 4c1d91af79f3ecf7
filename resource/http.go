package resource

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/flowglyph/flowglyph/flowerr"
)

// retryDelays are spec §4.6's exact backoff schedule: 100ms, 500ms, 1s,
// one delay per retry after the first attempt.
var retryDelays = []time.Duration{100 * time.Millisecond, 500 * time.Millisecond, 1 * time.Second}

// HTTPLoader fetches http:// and https:// URIs, priority 200 (spec
// §4.6) — last in the chain, since it is the only loader with real
// network latency. Transient failures (network errors, 5xx) retry up to
// 3 times on the schedule above; 4xx responses are not retried.
type HTTPLoader struct {
	Client *http.Client
}

// NewHTTPLoader builds an HTTPLoader whose client times out after
// timeoutSeconds (spec §4.7's ResourceLimits.HttpTimeout).
func NewHTTPLoader(timeoutSeconds float64) *HTTPLoader {
	return &HTTPLoader{Client: &http.Client{Timeout: time.Duration(timeoutSeconds * float64(time.Second))}}
}

func (*HTTPLoader) CanHandle(uri string) bool {
	return strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://")
}
func (*HTTPLoader) Priority() int { return 200 }

func (l *HTTPLoader) Load(ctx context.Context, uri string, maxSize int64) ([]byte, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}

	var lastErr error
	for attempt := 0; attempt <= len(retryDelays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelays[attempt-1]):
			}
		}

		data, retriable, err := l.attempt(ctx, client, uri, maxSize)
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !retriable {
			return nil, err
		}
	}
	return nil, lastErr
}

// attempt performs a single fetch. retriable is true for network errors
// and 5xx responses; false for 4xx (spec §4.6: "4xx not retried") and for
// a body exceeding maxSize, since retrying won't shrink the resource.
func (l *HTTPLoader) attempt(ctx context.Context, client *http.Client, uri string, maxSize int64) (data []byte, retriable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, false, flowerr.New(flowerr.CodeResourceNotFound, fmt.Sprintf("build request for %q: %v", uri, err))
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, true, flowerr.New(flowerr.CodeResourceNotFound, fmt.Sprintf("fetch %q: %v", uri, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, true, flowerr.New(flowerr.CodeResourceNotFound, fmt.Sprintf("fetch %q: server error %d", uri, resp.StatusCode))
	}
	if resp.StatusCode >= 400 {
		return nil, false, flowerr.New(flowerr.CodeResourceNotFound, fmt.Sprintf("fetch %q: client error %d", uri, resp.StatusCode))
	}

	body, err := readCapped(resp.Body, maxSize, uri)
	if err != nil {
		return nil, false, err
	}
	return body, false, nil
}
