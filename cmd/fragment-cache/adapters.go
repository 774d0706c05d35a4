package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fragment-cache/internal/interfaces"
)

// Ensure OriginRenderer implements interfaces.Renderer
var _ interfaces.Renderer = (*OriginRenderer)(nil)

// OriginRenderer is the external rendering pipeline: it fetches fragment
// markup from a region's origin URL over HTTP. The caller's identity and
// culture are forwarded so the origin can render personalized variants.
type OriginRenderer struct {
	client *http.Client
	logger *zap.Logger
}

// NewOriginRenderer creates a renderer with the given per-request timeout
func NewOriginRenderer(timeout time.Duration, logger *zap.Logger) *OriginRenderer {
	return &OriginRenderer{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Render fetches the fragment from origin. A non-2xx response is a render
// failure; the cache layer propagates it without retaining anything.
func (o *OriginRenderer) Render(ctx context.Context, origin string, req interfaces.RequestContext) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, origin, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build origin request: %w", err)
	}

	if user, ok := req.User(); ok {
		httpReq.Header.Set("X-User-Id", user)
	}
	if culture, ok := req.Culture(); ok {
		httpReq.Header.Set("Accept-Language", culture)
	}

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("origin request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		o.logger.Warn("Origin returned non-success status",
			zap.String("origin", origin),
			zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("origin returned status %d", resp.StatusCode)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read origin response: %w", err)
	}

	return content, nil
}
