package repo

import (
	"context"

	dom "github.com/aqsmith02/coffee-journal/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PokerHandRepo interface {
	Create(ctx context.Context, h dom.PokerHand) (dom.PokerHand, error)
	GetByID(ctx context.Context, id int64) (dom.PokerHand, error)
	List(ctx context.Context) ([]dom.PokerHand, error)
	Update(ctx context.Context, id int64, patch dom.PokerHand) (dom.PokerHand, error)
	Delete(ctx context.Context, id int64) error
}

type PGPokerHandRepo struct {
	db *pgxpool.Pool
}

func NewPGPokerHandRepo(db *pgxpool.Pool) *PGPokerHandRepo {
	return &PGPokerHandRepo{db: db}
}

const handColumns = `id, player_name, opponent_name, stakes, player_cards,
		opponent_cards, community, streets, total_pot, notes, winner,
		created_at, updated_at`

func scanPokerHand(row pgx.Row) (dom.PokerHand, error) {
	var h dom.PokerHand
	err := row.Scan(&h.ID, &h.PlayerName, &h.OpponentName, &h.Stakes,
		&h.PlayerCards, &h.OpponentCards, &h.Community, &h.Streets,
		&h.TotalPot, &h.Notes, &h.Winner, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

func (r *PGPokerHandRepo) Create(ctx context.Context, h dom.PokerHand) (dom.PokerHand, error) {
	query := `
		INSERT INTO hands (player_name, opponent_name, stakes, player_cards,
			opponent_cards, community, streets, total_pot, notes, winner)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + handColumns
	return scanPokerHand(r.db.QueryRow(ctx, query,
		h.PlayerName, h.OpponentName, h.Stakes, h.PlayerCards, h.OpponentCards,
		h.Community, h.Streets, h.TotalPot, h.Notes, h.Winner))
}

func (r *PGPokerHandRepo) GetByID(ctx context.Context, id int64) (dom.PokerHand, error) {
	query := `SELECT ` + handColumns + ` FROM hands WHERE id = $1`
	return scanPokerHand(r.db.QueryRow(ctx, query, id))
}

func (r *PGPokerHandRepo) List(ctx context.Context) ([]dom.PokerHand, error) {
	query := `SELECT ` + handColumns + ` FROM hands ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.PokerHand
	for rows.Next() {
		h, err := scanPokerHand(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

func (r *PGPokerHandRepo) Update(ctx context.Context, id int64, patch dom.PokerHand) (dom.PokerHand, error) {
	query := `
		UPDATE hands SET player_name = $2, opponent_name = $3, stakes = $4,
			player_cards = $5, opponent_cards = $6, community = $7, streets = $8,
			total_pot = $9, notes = $10, winner = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + handColumns
	return scanPokerHand(r.db.QueryRow(ctx, query, id,
		patch.PlayerName, patch.OpponentName, patch.Stakes, patch.PlayerCards,
		patch.OpponentCards, patch.Community, patch.Streets, patch.TotalPot,
		patch.Notes, patch.Winner))
}

func (r *PGPokerHandRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM hands WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
