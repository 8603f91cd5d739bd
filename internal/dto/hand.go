package dto

import (
	"encoding/json"
	"time"
)

type CreatePokerHandRequest struct {
	PlayerName    string          `json:"player_name" binding:"required,min=1,max=200"`
	OpponentName  *string         `json:"opponent_name"`
	Stakes        *string         `json:"stakes"`
	PlayerCards   *string         `json:"player_cards"`
	OpponentCards *string         `json:"opponent_cards"`
	Community     json.RawMessage `json:"community"`
	Streets       json.RawMessage `json:"streets"`
	TotalPot      *float64        `json:"total_pot"`
	Notes         *string         `json:"notes"`
	Winner        *string         `json:"winner"`
}

type UpdatePokerHandRequest struct {
	PlayerName    Optional[string]          `json:"player_name"`
	OpponentName  Optional[string]          `json:"opponent_name"`
	Stakes        Optional[string]          `json:"stakes"`
	PlayerCards   Optional[string]          `json:"player_cards"`
	OpponentCards Optional[string]          `json:"opponent_cards"`
	Community     Optional[json.RawMessage] `json:"community"`
	Streets       Optional[json.RawMessage] `json:"streets"`
	TotalPot      Optional[float64]         `json:"total_pot"`
	Notes         Optional[string]          `json:"notes"`
	Winner        Optional[string]          `json:"winner"`
}

type PokerHandResponse struct {
	ID            int64           `json:"id"`
	PlayerName    string          `json:"player_name"`
	OpponentName  *string         `json:"opponent_name"`
	Stakes        *string         `json:"stakes"`
	PlayerCards   *string         `json:"player_cards"`
	OpponentCards *string         `json:"opponent_cards"`
	Community     json.RawMessage `json:"community"`
	Streets       json.RawMessage `json:"streets"`
	TotalPot      *float64        `json:"total_pot"`
	Notes         *string         `json:"notes"`
	Winner        *string         `json:"winner"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
