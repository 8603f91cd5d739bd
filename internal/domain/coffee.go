package domain

import "time"

// CoffeeEntry is one logged coffee tasting. Everything but the name is
// optional. The table carries no audit timestamps.
type CoffeeEntry struct {
	ID            int64
	CoffeeName    string
	Roaster       *string
	Origin        *string
	Processing    *string
	RoastLevel    *string
	BrewingMethod *string
	Rating        *float64
	TastingNotes  *string
	DateTried     *time.Time
}
