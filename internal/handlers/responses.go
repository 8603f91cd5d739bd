package handlers

import (
	dom "github.com/aqsmith02/coffee-journal/internal/domain"
	"github.com/aqsmith02/coffee-journal/internal/dto"
)

func TodoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func CoffeeEntryToResponse(e dom.CoffeeEntry) dto.CoffeeEntryResponse {
	return dto.CoffeeEntryResponse{
		ID:            e.ID,
		CoffeeName:    e.CoffeeName,
		Roaster:       e.Roaster,
		Origin:        e.Origin,
		Processing:    e.Processing,
		RoastLevel:    e.RoastLevel,
		BrewingMethod: e.BrewingMethod,
		Rating:        e.Rating,
		TastingNotes:  e.TastingNotes,
		DateTried:     e.DateTried,
	}
}

func PokerHandToResponse(h dom.PokerHand) dto.PokerHandResponse {
	return dto.PokerHandResponse{
		ID:            h.ID,
		PlayerName:    h.PlayerName,
		OpponentName:  h.OpponentName,
		Stakes:        h.Stakes,
		PlayerCards:   h.PlayerCards,
		OpponentCards: h.OpponentCards,
		Community:     h.Community,
		Streets:       h.Streets,
		TotalPot:      h.TotalPot,
		Notes:         h.Notes,
		Winner:        h.Winner,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}
