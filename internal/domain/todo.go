package domain

import "time"

// Todo is the business entity. It does not depend on Gin, Postgres or Redis.
// Optional columns are pointers so NULL survives the round trip.
type Todo struct {
	ID          int64
	Title       string
	Description *string
	Completed   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
