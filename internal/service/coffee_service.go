package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aqsmith02/coffee-journal/internal/cache"
	dom "github.com/aqsmith02/coffee-journal/internal/domain"
	"github.com/aqsmith02/coffee-journal/internal/dto"
	"github.com/aqsmith02/coffee-journal/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

type CoffeeEntryService struct {
	repo  repo.CoffeeEntryRepo
	cache *cache.ListCache[dom.CoffeeEntry]
	sf    singleflight.Group
}

// NewCoffeeEntryService creates a CoffeeEntryService. If c is nil, caching is disabled.
func NewCoffeeEntryService(r repo.CoffeeEntryRepo, c *cache.ListCache[dom.CoffeeEntry]) *CoffeeEntryService {
	return &CoffeeEntryService{repo: r, cache: c}
}

func (s *CoffeeEntryService) Create(ctx context.Context, req dto.CreateCoffeeEntryRequest) (dom.CoffeeEntry, error) {
	name := strings.TrimSpace(req.CoffeeName)
	if name == "" {
		return dom.CoffeeEntry{}, fmt.Errorf("%w: coffee_name must not be empty", ErrValidation)
	}
	e, err := s.repo.Create(ctx, dom.CoffeeEntry{
		CoffeeName:    name,
		Roaster:       req.Roaster,
		Origin:        req.Origin,
		Processing:    req.Processing,
		RoastLevel:    req.RoastLevel,
		BrewingMethod: req.BrewingMethod,
		Rating:        req.Rating,
		TastingNotes:  req.TastingNotes,
		DateTried:     dto.TimePtr(req.DateTried),
	})
	if err != nil {
		return dom.CoffeeEntry{}, err
	}
	s.invalidateCache(ctx)
	return e, nil
}

func (s *CoffeeEntryService) List(ctx context.Context) ([]dom.CoffeeEntry, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.Get(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.Set(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.CoffeeEntry), nil
	}
	return s.repo.List(ctx)
}

func (s *CoffeeEntryService) GetByID(ctx context.Context, id int64) (dom.CoffeeEntry, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.CoffeeEntry{}, ErrNotFound
		}
		return dom.CoffeeEntry{}, err
	}
	return e, nil
}

func (s *CoffeeEntryService) Update(ctx context.Context, id int64, req dto.UpdateCoffeeEntryRequest) (dom.CoffeeEntry, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.CoffeeEntry{}, ErrNotFound
		}
		return dom.CoffeeEntry{}, err
	}
	patch := existing
	if req.CoffeeName.Set {
		if req.CoffeeName.Value == nil || strings.TrimSpace(*req.CoffeeName.Value) == "" {
			return dom.CoffeeEntry{}, fmt.Errorf("%w: coffee_name must not be empty", ErrValidation)
		}
		patch.CoffeeName = strings.TrimSpace(*req.CoffeeName.Value)
	}
	if req.Roaster.Set {
		patch.Roaster = req.Roaster.Value
	}
	if req.Origin.Set {
		patch.Origin = req.Origin.Value
	}
	if req.Processing.Set {
		patch.Processing = req.Processing.Value
	}
	if req.RoastLevel.Set {
		patch.RoastLevel = req.RoastLevel.Value
	}
	if req.BrewingMethod.Set {
		patch.BrewingMethod = req.BrewingMethod.Value
	}
	if req.Rating.Set {
		patch.Rating = req.Rating.Value
	}
	if req.TastingNotes.Set {
		patch.TastingNotes = req.TastingNotes.Value
	}
	if req.DateTried.Set {
		patch.DateTried = dto.TimePtr(req.DateTried.Value)
	}
	e, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.CoffeeEntry{}, ErrNotFound
		}
		return dom.CoffeeEntry{}, err
	}
	s.invalidateCache(ctx)
	return e, nil
}

func (s *CoffeeEntryService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *CoffeeEntryService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
