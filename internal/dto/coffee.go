package dto

import "time"

type CreateCoffeeEntryRequest struct {
	CoffeeName    string    `json:"coffee_name" binding:"required,min=1,max=200"`
	Roaster       *string   `json:"roaster"`
	Origin        *string   `json:"origin"`
	Processing    *string   `json:"processing"`
	RoastLevel    *string   `json:"roast_level"`
	BrewingMethod *string   `json:"brewing_method"`
	Rating        *float64  `json:"rating"`
	TastingNotes  *string   `json:"tasting_notes"`
	DateTried     *DateTime `json:"date_tried"` // "2026-02-19" or RFC3339
}

type UpdateCoffeeEntryRequest struct {
	CoffeeName    Optional[string]   `json:"coffee_name"`
	Roaster       Optional[string]   `json:"roaster"`
	Origin        Optional[string]   `json:"origin"`
	Processing    Optional[string]   `json:"processing"`
	RoastLevel    Optional[string]   `json:"roast_level"`
	BrewingMethod Optional[string]   `json:"brewing_method"`
	Rating        Optional[float64]  `json:"rating"`
	TastingNotes  Optional[string]   `json:"tasting_notes"`
	DateTried     Optional[DateTime] `json:"date_tried"`
}

type CoffeeEntryResponse struct {
	ID            int64      `json:"id"`
	CoffeeName    string     `json:"coffee_name"`
	Roaster       *string    `json:"roaster"`
	Origin        *string    `json:"origin"`
	Processing    *string    `json:"processing"`
	RoastLevel    *string    `json:"roast_level"`
	BrewingMethod *string    `json:"brewing_method"`
	Rating        *float64   `json:"rating"`
	TastingNotes  *string    `json:"tasting_notes"`
	DateTried     *time.Time `json:"date_tried"`
}
