package handler

import (
	"strconv"

	"hospital-admin-backend/internal/models"
	"hospital-admin-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ResourceStore is the persistence surface one entity handler needs.
type ResourceStore[T models.Resource[T]] interface {
	ListAll() ([]T, error)
	FindByID(id int) ([]T, error)
	Create(record *T) error
	Update(id int, record T) error
	Delete(id int) error
}

// ResourceHandler serves the uniform CRUD surface for one entity. All ten
// resource endpoints are instances of this handler over different models.
type ResourceHandler[T models.Resource[T]] struct {
	store ResourceStore[T]
}

func NewResourceHandler[T models.Resource[T]](store ResourceStore[T]) *ResourceHandler[T] {
	return &ResourceHandler[T]{store: store}
}

// Register wires the handler's routes for the given resource path.
func (h *ResourceHandler[T]) Register(r gin.IRouter, resource string) {
	r.GET("/"+resource, h.List)
	r.GET("/"+resource+"/:id", h.Get)
	r.POST("/"+resource, h.Create)
	r.PUT("/"+resource+"/:id", h.Update)
	r.DELETE("/"+resource+"/:id", h.Delete)
}

// List returns every row as a JSON array, empty array included.
func (h *ResourceHandler[T]) List(c *gin.Context) {
	rows, err := h.store.ListAll()
	if err != nil {
		utils.ErrorResponse(c, err.Error())
		return
	}
	utils.RowsResponse(c, rows)
}

// Get returns the rows matching the id as a JSON array. A missing id yields
// 200 with an empty array, never a 404; clients check array length. The
// literal segment "0" is treated as no id at all and returns the full list.
func (h *ResourceHandler[T]) Get(c *gin.Context) {
	if c.Param("id") == "0" {
		h.List(c)
		return
	}
	rows, err := h.store.FindByID(pathID(c))
	if err != nil {
		utils.ErrorResponse(c, err.Error())
		return
	}
	utils.RowsResponse(c, rows)
}

// Create inserts a new row from the JSON body, text fields sanitized, and
// echoes the assigned id.
func (h *ResourceHandler[T]) Create(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.ErrorResponse(c, "Invalid request body")
		return
	}

	record = record.Sanitized()

	if err := h.store.Create(&record); err != nil {
		utils.ErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, record.ResourceID())
}

// Update fully replaces the row identified by the id with the JSON body.
func (h *ResourceHandler[T]) Update(c *gin.Context) {
	var record T
	if err := c.ShouldBindJSON(&record); err != nil {
		utils.ErrorResponse(c, "Invalid request body")
		return
	}

	record = record.Sanitized()

	if err := h.store.Update(pathID(c), record); err != nil {
		utils.ErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c)
}

// Delete removes the row identified by the id. Deleting an id that matches
// no row still reports success.
func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	if err := h.store.Delete(pathID(c)); err != nil {
		utils.ErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c)
}

// pathID coerces the id path segment to an integer. Non-numeric segments
// become 0, which matches no row.
func pathID(c *gin.Context) int {
	id, _ := strconv.Atoi(c.Param("id"))
	return id
}
