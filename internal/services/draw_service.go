// internal/services/draw_service.go
// Orchestrates draw generation: validate, run the engine, persist, cache
// idempotency, record metrics, and notify subscribers.

package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"drawbracket/internal/draw"
	"drawbracket/internal/repositories"
)

const idempotencyTTL = 24 * time.Hour

// DrawService handles draw generation requests.
type DrawService struct {
	repo         *repositories.DrawRepository
	cache        *CacheService
	metrics      *MetricsService
	notification *NotificationService
	logger       *log.Logger
}

// NewDrawService creates a new draw service
func NewDrawService(
	repo *repositories.DrawRepository,
	cache *CacheService,
	metrics *MetricsService,
	notification *NotificationService,
	logger *log.Logger,
) *DrawService {
	return &DrawService{
		repo:         repo,
		cache:        cache,
		metrics:      metrics,
		notification: notification,
		logger:       logger,
	}
}

// Generate runs the draw engine for req. When idempotencyKey is non-empty,
// a prior response under the same key is replayed verbatim instead of
// re-running the engine, so retried requests never produce a second draw.
func (s *DrawService) Generate(ctx context.Context, idempotencyKey string, req draw.Request) (string, *draw.Response, error) {
	drawSeed, err := draw.ResolveDrawSeed(req)
	if err != nil {
		s.metrics.RecordFailure("internal_invariant_violation")
		return "", nil, err
	}
	req.Context.DrawSeed = drawSeed

	cacheKey := ""
	if idempotencyKey != "" {
		cacheKey = fmt.Sprintf("draw_idempotency_%s", idempotencyKey)
		var cached draw.Response
		if err := s.cache.Get(cacheKey, &cached); err == nil {
			return drawSeed, &cached, nil
		}
	}

	start := time.Now()
	resp, genErr := draw.Generate(req)
	elapsed := time.Since(start)
	if genErr != nil {
		kind := "unknown"
		if de, ok := genErr.(*draw.Error); ok {
			kind = string(de.Kind)
		}
		s.metrics.RecordFailure(kind)
		s.notification.NotifyDrawFailed(req.Context.Sport, genErr.Error())
		return "", nil, genErr
	}

	s.metrics.RecordSuccess(elapsed, resp.Summary.Quality.Score)

	if err := s.repo.Save(ctx, drawSeed, req, resp); err != nil {
		s.logger.Printf("Failed to persist draw record %s: %v", drawSeed, err)
	}

	if cacheKey != "" {
		if err := s.cache.Set(cacheKey, resp, idempotencyTTL); err != nil {
			s.logger.Printf("Failed to cache idempotent response for key %s: %v", idempotencyKey, err)
		}
	}

	s.notification.NotifyDrawCompleted(drawSeed, resp)

	return drawSeed, resp, nil
}

// GetBySeed retrieves a previously generated draw by its seed.
func (s *DrawService) GetBySeed(ctx context.Context, drawSeed string) (*draw.Response, error) {
	record, err := s.repo.FindBySeed(ctx, drawSeed)
	if err != nil {
		return nil, ErrNotFound
	}
	return &record.Response, nil
}
