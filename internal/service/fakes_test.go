package service

import (
	"context"
	"sort"
	"sync"
	"time"

	dom "github.com/aqsmith02/coffee-journal/internal/domain"

	"github.com/jackc/pgx/v5"
)

// In-memory repo fakes. They mirror the PG repos' contract: pgx.ErrNoRows
// for a missing id, updated_at refreshed on update where the column exists.

type fakeTodoRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]dom.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{nextID: 1, rows: map[int64]dom.Todo{}}
}

func (r *fakeTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = r.nextID
	r.nextID++
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	r.rows[t.ID] = t
	return t, nil
}

func (r *fakeTodoRepo) GetByID(_ context.Context, id int64) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *fakeTodoRepo) List(_ context.Context) ([]dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []dom.Todo
	for _, t := range r.rows {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeTodoRepo) Update(_ context.Context, id int64, patch dom.Todo) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.rows[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	patch.ID = id
	patch.CreatedAt = prev.CreatedAt
	patch.UpdatedAt = prev.UpdatedAt.Add(time.Second)
	r.rows[id] = patch
	return patch, nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeTodoRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type fakeCoffeeRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]dom.CoffeeEntry
}

func newFakeCoffeeRepo() *fakeCoffeeRepo {
	return &fakeCoffeeRepo{nextID: 1, rows: map[int64]dom.CoffeeEntry{}}
}

func (r *fakeCoffeeRepo) Create(_ context.Context, e dom.CoffeeEntry) (dom.CoffeeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	r.rows[e.ID] = e
	return e, nil
}

func (r *fakeCoffeeRepo) GetByID(_ context.Context, id int64) (dom.CoffeeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.rows[id]
	if !ok {
		return dom.CoffeeEntry{}, pgx.ErrNoRows
	}
	return e, nil
}

func (r *fakeCoffeeRepo) List(_ context.Context) ([]dom.CoffeeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []dom.CoffeeEntry
	for _, e := range r.rows {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeCoffeeRepo) Update(_ context.Context, id int64, patch dom.CoffeeEntry) (dom.CoffeeEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return dom.CoffeeEntry{}, pgx.ErrNoRows
	}
	patch.ID = id
	r.rows[id] = patch
	return patch, nil
}

func (r *fakeCoffeeRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

type fakeHandRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]dom.PokerHand
}

func newFakeHandRepo() *fakeHandRepo {
	return &fakeHandRepo{nextID: 1, rows: map[int64]dom.PokerHand{}}
}

func (r *fakeHandRepo) Create(_ context.Context, h dom.PokerHand) (dom.PokerHand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h.ID = r.nextID
	r.nextID++
	now := time.Now()
	h.CreatedAt = now
	h.UpdatedAt = now
	r.rows[h.ID] = h
	return h, nil
}

func (r *fakeHandRepo) GetByID(_ context.Context, id int64) (dom.PokerHand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.rows[id]
	if !ok {
		return dom.PokerHand{}, pgx.ErrNoRows
	}
	return h, nil
}

func (r *fakeHandRepo) List(_ context.Context) ([]dom.PokerHand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []dom.PokerHand
	for _, h := range r.rows {
		list = append(list, h)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeHandRepo) Update(_ context.Context, id int64, patch dom.PokerHand) (dom.PokerHand, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.rows[id]
	if !ok {
		return dom.PokerHand{}, pgx.ErrNoRows
	}
	patch.ID = id
	patch.CreatedAt = prev.CreatedAt
	patch.UpdatedAt = prev.UpdatedAt.Add(time.Second)
	r.rows[id] = patch
	return patch, nil
}

func (r *fakeHandRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}
