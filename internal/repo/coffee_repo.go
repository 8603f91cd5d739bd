package repo

import (
	"context"

	dom "github.com/aqsmith02/coffee-journal/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CoffeeEntryRepo interface {
	Create(ctx context.Context, e dom.CoffeeEntry) (dom.CoffeeEntry, error)
	GetByID(ctx context.Context, id int64) (dom.CoffeeEntry, error)
	List(ctx context.Context) ([]dom.CoffeeEntry, error)
	Update(ctx context.Context, id int64, patch dom.CoffeeEntry) (dom.CoffeeEntry, error)
	Delete(ctx context.Context, id int64) error
}

type PGCoffeeEntryRepo struct {
	db *pgxpool.Pool
}

func NewPGCoffeeEntryRepo(db *pgxpool.Pool) *PGCoffeeEntryRepo {
	return &PGCoffeeEntryRepo{db: db}
}

const coffeeColumns = `id, coffee_name, roaster, origin, processing, roast_level,
		brewing_method, rating, tasting_notes, date_tried`

func scanCoffeeEntry(row pgx.Row) (dom.CoffeeEntry, error) {
	var e dom.CoffeeEntry
	err := row.Scan(&e.ID, &e.CoffeeName, &e.Roaster, &e.Origin, &e.Processing,
		&e.RoastLevel, &e.BrewingMethod, &e.Rating, &e.TastingNotes, &e.DateTried)
	return e, err
}

func (r *PGCoffeeEntryRepo) Create(ctx context.Context, e dom.CoffeeEntry) (dom.CoffeeEntry, error) {
	query := `
		INSERT INTO coffee_entries (coffee_name, roaster, origin, processing,
			roast_level, brewing_method, rating, tasting_notes, date_tried)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + coffeeColumns
	return scanCoffeeEntry(r.db.QueryRow(ctx, query,
		e.CoffeeName, e.Roaster, e.Origin, e.Processing, e.RoastLevel,
		e.BrewingMethod, e.Rating, e.TastingNotes, e.DateTried))
}

func (r *PGCoffeeEntryRepo) GetByID(ctx context.Context, id int64) (dom.CoffeeEntry, error) {
	query := `SELECT ` + coffeeColumns + ` FROM coffee_entries WHERE id = $1`
	return scanCoffeeEntry(r.db.QueryRow(ctx, query, id))
}

func (r *PGCoffeeEntryRepo) List(ctx context.Context) ([]dom.CoffeeEntry, error) {
	query := `SELECT ` + coffeeColumns + ` FROM coffee_entries ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.CoffeeEntry
	for rows.Next() {
		e, err := scanCoffeeEntry(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update rewrites every mutable column; the table has no updated_at.
func (r *PGCoffeeEntryRepo) Update(ctx context.Context, id int64, patch dom.CoffeeEntry) (dom.CoffeeEntry, error) {
	query := `
		UPDATE coffee_entries SET coffee_name = $2, roaster = $3, origin = $4,
			processing = $5, roast_level = $6, brewing_method = $7, rating = $8,
			tasting_notes = $9, date_tried = $10
		WHERE id = $1
		RETURNING ` + coffeeColumns
	return scanCoffeeEntry(r.db.QueryRow(ctx, query, id,
		patch.CoffeeName, patch.Roaster, patch.Origin, patch.Processing,
		patch.RoastLevel, patch.BrewingMethod, patch.Rating, patch.TastingNotes,
		patch.DateTried))
}

func (r *PGCoffeeEntryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM coffee_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
