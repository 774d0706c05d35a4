package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"fragment-cache/internal/models"
)

// handleRender serves one cached fragment, populating the cache from the
// region's origin on a miss.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["region"]
	region, ok := s.registry.Lookup(name)
	if !ok {
		s.writeErrorResponse(w, "unknown region: "+name, http.StatusNotFound)
		return
	}

	reqCtx := NewRequestContext(r)

	result, err := s.engine.Render(r.Context(), region.Name, region.VaryBy, region.Expiration, reqCtx,
		func(ctx context.Context) ([]byte, error) {
			return s.renderer.Render(ctx, region.Origin, reqCtx)
		})
	if err != nil {
		if errors.Is(err, models.ErrPopulationTimeout) {
			s.writeErrorResponse(w, "fragment population timed out", http.StatusGatewayTimeout)
			return
		}
		// A cache miscalculation degrades to rendering every time, never to
		// serving wrong content; an upstream failure is the upstream's.
		s.writeErrorResponse(w, "origin render failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Fragment-Cache", string(result.Status))
	if _, err := w.Write(result.Content); err != nil {
		s.logger.Error("Failed to write fragment content", zap.String("region", name), zap.Error(err))
	}
}

// handleInvalidate drops the cached variant addressed by the request's
// vary-by dimensions.
func (s *Server) handleInvalidate(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["region"]
	region, ok := s.registry.Lookup(name)
	if !ok {
		s.writeErrorResponse(w, "unknown region: "+name, http.StatusNotFound)
		return
	}

	key := s.engine.Invalidate(region.Name, region.VaryBy, NewRequestContext(r))

	s.writeResponse(w, &StatusResponse{
		Success: true,
		Region:  name,
		Key:     string(key),
	})
}

// handleSweep runs an expired-entry sweep on demand
func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	removed := s.engine.Sweep()

	s.writeResponse(w, &StatusResponse{
		Success: true,
		Removed: removed,
	})
}
