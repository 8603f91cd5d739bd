package service

import (
	"context"
	"encoding/json"
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

type PokerHandService struct {
	repo  repo.PokerHandRepo
	cache *cache.ListCache[dom.PokerHand]
	sf    singleflight.Group
}

// NewPokerHandService creates a PokerHandService. If c is nil, caching is disabled.
func NewPokerHandService(r repo.PokerHandRepo, c *cache.ListCache[dom.PokerHand]) *PokerHandService {
	return &PokerHandService{repo: r, cache: c}
}

func (s *PokerHandService) Create(ctx context.Context, req dto.CreatePokerHandRequest) (dom.PokerHand, error) {
	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		return dom.PokerHand{}, fmt.Errorf("%w: player_name must not be empty", ErrValidation)
	}
	h, err := s.repo.Create(ctx, dom.PokerHand{
		PlayerName:    name,
		OpponentName:  req.OpponentName,
		Stakes:        req.Stakes,
		PlayerCards:   req.PlayerCards,
		OpponentCards: req.OpponentCards,
		Community:     req.Community,
		Streets:       req.Streets,
		TotalPot:      req.TotalPot,
		Notes:         req.Notes,
		Winner:        req.Winner,
	})
	if err != nil {
		return dom.PokerHand{}, err
	}
	s.invalidateCache(ctx)
	return h, nil
}

func (s *PokerHandService) List(ctx context.Context) ([]dom.PokerHand, error) {
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
		return v.([]dom.PokerHand), nil
	}
	return s.repo.List(ctx)
}

func (s *PokerHandService) GetByID(ctx context.Context, id int64) (dom.PokerHand, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.PokerHand{}, ErrNotFound
		}
		return dom.PokerHand{}, err
	}
	return h, nil
}

func (s *PokerHandService) Update(ctx context.Context, id int64, req dto.UpdatePokerHandRequest) (dom.PokerHand, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.PokerHand{}, ErrNotFound
		}
		return dom.PokerHand{}, err
	}
	patch := existing
	if req.PlayerName.Set {
		if req.PlayerName.Value == nil || strings.TrimSpace(*req.PlayerName.Value) == "" {
			return dom.PokerHand{}, fmt.Errorf("%w: player_name must not be empty", ErrValidation)
		}
		patch.PlayerName = strings.TrimSpace(*req.PlayerName.Value)
	}
	if req.OpponentName.Set {
		patch.OpponentName = req.OpponentName.Value
	}
	if req.Stakes.Set {
		patch.Stakes = req.Stakes.Value
	}
	if req.PlayerCards.Set {
		patch.PlayerCards = req.PlayerCards.Value
	}
	if req.OpponentCards.Set {
		patch.OpponentCards = req.OpponentCards.Value
	}
	if req.Community.Set {
		patch.Community = rawOrNil(req.Community.Value)
	}
	if req.Streets.Set {
		patch.Streets = rawOrNil(req.Streets.Value)
	}
	if req.TotalPot.Set {
		patch.TotalPot = req.TotalPot.Value
	}
	if req.Notes.Set {
		patch.Notes = req.Notes.Value
	}
	if req.Winner.Set {
		patch.Winner = req.Winner.Value
	}
	h, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.PokerHand{}, ErrNotFound
		}
		return dom.PokerHand{}, err
	}
	s.invalidateCache(ctx)
	return h, nil
}

func (s *PokerHandService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *PokerHandService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}

func rawOrNil(v *json.RawMessage) json.RawMessage {
	if v == nil {
		return nil
	}
	return *v
}
