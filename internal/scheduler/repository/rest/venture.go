package rest

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"deepwork-scheduler/internal/model"
	"deepwork-scheduler/internal/scheduler/repository"
	pkgLog "deepwork-scheduler/pkg/log"
)

const ventureCacheKey = "ventures"

type implVentureRepository struct {
	client *Client
	cache  *expirable.LRU[string, []model.Venture]
	l      pkgLog.Logger
}

// NewVentureRepository creates a read-through cached VentureRepository.
// Ventures change rarely; the cache avoids hammering the directory on every
// candidate-pool decoration.
func NewVentureRepository(client *Client, cacheTTL time.Duration, l pkgLog.Logger) repository.VentureRepository {
	return &implVentureRepository{
		client: client,
		cache:  expirable.NewLRU[string, []model.Venture](1, nil, cacheTTL),
		l:      l,
	}
}

func (r *implVentureRepository) ListVentures(ctx context.Context) ([]model.Venture, error) {
	if cached, ok := r.cache.Get(ventureCacheKey); ok {
		return cached, nil
	}

	dtos, err := r.client.ListVentures(ctx)
	if err != nil {
		r.l.Errorf(ctx, "venture repository: failed to list ventures: %v", err)
		return nil, err
	}

	ventures := make([]model.Venture, 0, len(dtos))
	for _, dto := range dtos {
		ventures = append(ventures, model.Venture{
			ID:    dto.ID,
			Name:  dto.Name,
			Color: dto.Color,
			Icon:  dto.Icon,
		})
	}

	r.cache.Add(ventureCacheKey, ventures)
	return ventures, nil
}
