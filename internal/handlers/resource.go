package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aqsmith02/coffee-journal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Service is what a resource needs to expose to get the five CRUD routes.
// C is the create request, U the sparse update request, M the domain record.
type Service[C, U, M any] interface {
	List(ctx context.Context) ([]M, error)
	GetByID(ctx context.Context, id int64) (M, error)
	Create(ctx context.Context, req C) (M, error)
	Update(ctx context.Context, id int64, req U) (M, error)
	Delete(ctx context.Context, id int64) error
}

// Resource implements list/get/create/patch/delete once for every record
// type; the three resources differ only in their type parameters and the
// domain-to-response mapping.
type Resource[C, U, M, R any] struct {
	name       string
	svc        Service[C, U, M]
	toResponse func(M) R
}

func NewResource[C, U, M, R any](name string, svc Service[C, U, M], toResponse func(M) R) *Resource[C, U, M, R] {
	return &Resource[C, U, M, R]{name: name, svc: svc, toResponse: toResponse}
}

// Register mounts the five routes under path (e.g. "/todos").
func (h *Resource[C, U, M, R]) Register(r *gin.RouterGroup, path string) {
	r.GET(path, h.List)
	r.POST(path, h.Create)
	r.GET(path+"/:id", h.GetByID)
	r.PATCH(path+"/:id", h.Update)
	r.DELETE(path+"/:id", h.Delete)
}

func (h *Resource[C, U, M, R]) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]R, len(list))
	for i := range list {
		out[i] = h.toResponse(list[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *Resource[C, U, M, R]) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	m, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(m))
}

func (h *Resource[C, U, M, R]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	m, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, 0, err)
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(m))
}

func (h *Resource[C, U, M, R]) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}
	m, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(m))
}

func (h *Resource[C, U, M, R]) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Resource[C, U, M, R]) writeError(c *gin.Context, id int64, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("%s with id %d not found", h.name, id)})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// writeBindError maps gin binding failures to 422 with field detail where
// the underlying error carries one.
func writeBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, gin.H{
				"field":   fe.Field(),
				"message": fmt.Sprintf("failed on the %q rule", fe.Tag()),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid payload", "fields": fields})
		return
	}
	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "invalid payload",
			"fields": []gin.H{{
				"field":   ute.Field,
				"message": fmt.Sprintf("expected %s", ute.Type),
			}},
		})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
