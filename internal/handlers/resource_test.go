package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	dom "github.com/aqsmith02/coffee-journal/internal/domain"
	"github.com/aqsmith02/coffee-journal/internal/dto"
	"github.com/aqsmith02/coffee-journal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTodoRepo implements repo.TodoRepo in memory, mirroring the PG contract.
type memTodoRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]dom.Todo
}

func newMemTodoRepo() *memTodoRepo {
	return &memTodoRepo{nextID: 1, rows: map[int64]dom.Todo{}}
}

func (r *memTodoRepo) Create(_ context.Context, t dom.Todo) (dom.Todo, error) {
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

func (r *memTodoRepo) GetByID(_ context.Context, id int64) (dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.rows[id]
	if !ok {
		return dom.Todo{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *memTodoRepo) List(_ context.Context) ([]dom.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var list []dom.Todo
	for _, t := range r.rows {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *memTodoRepo) Update(_ context.Context, id int64, patch dom.Todo) (dom.Todo, error) {
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

func (r *memTodoRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

func newTodoRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := service.NewTodoService(newMemTodoRepo(), nil)
	NewResource[dto.CreateTodoRequest, dto.UpdateTodoRequest](
		"todo", svc, TodoToResponse).Register(r.Group(""), "/todos")
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var rdr *bytes.Reader
	if body != "" {
		rdr = bytes.NewReader([]byte(body))
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTodoLifecycle(t *testing.T) {
	r := newTodoRouter()

	// create
	w := do(r, http.MethodPost, "/todos", `{"title":"buy milk"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "buy milk", created["title"])
	assert.Nil(t, created["description"])
	assert.Equal(t, false, created["completed"])

	// patch only completed; title stays
	w = do(r, http.MethodPatch, "/todos/1", `{"completed":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, true, updated["completed"])
	assert.Equal(t, "buy milk", updated["title"])
	assert.NotEqual(t, created["updated_at"], updated["updated_at"])

	// delete, then the id is gone
	w = do(r, http.MethodDelete, "/todos/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	w = do(r, http.MethodGet, "/todos/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTodoListEmptyIsArray(t *testing.T) {
	r := newTodoRouter()
	w := do(r, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestTodoListReturnsAll(t *testing.T) {
	r := newTodoRouter()
	do(r, http.MethodPost, "/todos", `{"title":"a"}`)
	do(r, http.MethodPost, "/todos", `{"title":"b","description":"second"}`)

	w := do(r, http.MethodGet, "/todos", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0]["title"])
	assert.Equal(t, "second", list[1]["description"])
}

func TestTodoCreateMissingTitle(t *testing.T) {
	r := newTodoRouter()
	w := do(r, http.MethodPost, "/todos", `{"description":"no title"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "Title", body.Fields[0].Field)
}

func TestTodoCreateWrongType(t *testing.T) {
	r := newTodoRouter()
	w := do(r, http.MethodPost, "/todos", `{"title":123}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestTodoGetNotFound(t *testing.T) {
	r := newTodoRouter()
	w := do(r, http.MethodGet, "/todos/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "todo with id 99 not found")
}

func TestTodoInvalidID(t *testing.T) {
	r := newTodoRouter()
	for _, path := range []string{"/todos/abc", "/todos/0", "/todos/-1"} {
		w := do(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestTodoPatchNotFound(t *testing.T) {
	r := newTodoRouter()
	w := do(r, http.MethodPatch, "/todos/5", `{"completed":true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTodoPatchNullTitle(t *testing.T) {
	r := newTodoRouter()
	do(r, http.MethodPost, "/todos", `{"title":"keep me"}`)

	w := do(r, http.MethodPatch, "/todos/1", `{"title":null}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(r, http.MethodGet, "/todos/1", "")
	assert.Contains(t, w.Body.String(), "keep me")
}

func TestTodoPatchClearsDescription(t *testing.T) {
	r := newTodoRouter()
	do(r, http.MethodPost, "/todos", `{"title":"x","description":"temp"}`)

	w := do(r, http.MethodPatch, "/todos/1", `{"description":null}`)
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body["description"])
	assert.Equal(t, "x", body["title"])
}

func TestTodoDeleteNotFound(t *testing.T) {
	r := newTodoRouter()
	w := do(r, http.MethodDelete, "/todos/12", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
