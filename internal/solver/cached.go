package solver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ThisisBizness/Study-Buddy/internal/domain"
)

// Cache is the minimal cache surface the solver needs. Implementations map a
// problem fingerprint to a serialized answer; Get reports a miss with found
// set to false rather than with an error.
type Cache interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// CachedEngine wraps another Engine and reuses answers for identical
// problems. Only successful answers are cached; cache failures are logged
// and never fail the solve.
type CachedEngine struct {
	inner  Engine
	cache  Cache
	logger *slog.Logger
}

// NewCachedEngine creates a CachedEngine wrapping the given engine.
func NewCachedEngine(inner Engine, cache Cache, logger *slog.Logger) (*CachedEngine, error) {
	if inner == nil {
		return nil, errors.New("inner engine cannot be nil")
	}
	if cache == nil {
		return nil, errors.New("cache cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &CachedEngine{
		inner:  inner,
		cache:  cache,
		logger: logger.With(slog.String("component", "cached_engine")),
	}, nil
}

// Solve implements Engine. It serves a cached answer when one exists for the
// problem's fingerprint and otherwise delegates to the wrapped engine,
// caching the result on success.
func (e *CachedEngine) Solve(ctx context.Context, problem *domain.Problem) (*domain.StructuredAnswer, error) {
	if problem == nil {
		return e.inner.Solve(ctx, problem)
	}

	key := cacheKey(problem)

	if cached, found, err := e.cache.Get(ctx, key); err != nil {
		e.logger.WarnContext(ctx, "Cache lookup failed, solving without cache",
			slog.String("cache_key", key),
			slog.String("error", err.Error()))
	} else if found {
		var answer domain.StructuredAnswer
		if err := json.Unmarshal([]byte(cached), &answer); err != nil {
			e.logger.WarnContext(ctx, "Discarding unreadable cache entry",
				slog.String("cache_key", key),
				slog.String("error", err.Error()))
		} else if err := answer.Validate(); err != nil {
			e.logger.WarnContext(ctx, "Discarding invalid cache entry",
				slog.String("cache_key", key),
				slog.String("error", err.Error()))
		} else {
			e.logger.DebugContext(ctx, "Serving answer from cache",
				slog.String("cache_key", key))
			return &answer, nil
		}
	}

	answer, err := e.inner.Solve(ctx, problem)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(answer)
	if err != nil {
		e.logger.WarnContext(ctx, "Failed to serialize answer for cache",
			slog.String("cache_key", key),
			slog.String("error", err.Error()))
		return answer, nil
	}

	if err := e.cache.Set(ctx, key, string(payload)); err != nil {
		e.logger.WarnContext(ctx, "Failed to store answer in cache",
			slog.String("cache_key", key),
			slog.String("error", err.Error()))
	}

	return answer, nil
}

// cacheKey fingerprints a problem. Text and image contribute to the hash
// with a separator between fields so adjacent values cannot collide.
func cacheKey(problem *domain.Problem) string {
	h := sha256.New()
	h.Write([]byte(problem.Text))
	h.Write([]byte{0})
	if problem.HasImage() {
		h.Write([]byte(problem.Image.MIMEType))
		h.Write([]byte{0})
		h.Write(problem.Image.Data)
	}
	return hex.EncodeToString(h.Sum(nil))
}
