package domain

import (
	"encoding/json"
	"time"
)

// PokerHand is one recorded hand. Community and Streets are free-form JSON
// documents (jsonb in Postgres); nil means the column is NULL.
type PokerHand struct {
	ID            int64
	PlayerName    string
	OpponentName  *string
	Stakes        *string
	PlayerCards   *string
	OpponentCards *string
	Community     json.RawMessage
	Streets       json.RawMessage
	TotalPot      *float64
	Notes         *string
	Winner        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
