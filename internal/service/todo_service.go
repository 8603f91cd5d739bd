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

type TodoService struct {
	repo  repo.TodoRepo
	cache *cache.ListCache[dom.Todo]
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c *cache.ListCache[dom.Todo]) *TodoService {
	return &TodoService{repo: r, cache: c}
}

func (s *TodoService) Create(ctx context.Context, req dto.CreateTodoRequest) (dom.Todo, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return dom.Todo{}, fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	t, err := s.repo.Create(ctx, dom.Todo{
		Title:       title,
		Description: req.Description,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
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
		return v.([]dom.Todo), nil
	}
	return s.repo.List(ctx)
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

// Update applies only the fields present in req to the stored record.
// Last write wins when two updates race; there is no version check.
func (s *TodoService) Update(ctx context.Context, id int64, req dto.UpdateTodoRequest) (dom.Todo, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	patch := existing
	if req.Title.Set {
		if req.Title.Value == nil || strings.TrimSpace(*req.Title.Value) == "" {
			return dom.Todo{}, fmt.Errorf("%w: title must not be empty", ErrValidation)
		}
		patch.Title = strings.TrimSpace(*req.Title.Value)
	}
	if req.Description.Set {
		patch.Description = req.Description.Value
	}
	if req.Completed.Set {
		if req.Completed.Value == nil {
			return dom.Todo{}, fmt.Errorf("%w: completed must not be null", ErrValidation)
		}
		patch.Completed = *req.Completed.Value
	}
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
