package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/service"
	"library-backend/internal/shared"
	"library-backend/internal/shared/response"
	"library-backend/internal/shared/utils"
)

// Handler - HTTP handlers for the book catalog
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Create - POST /books
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid book payload", err)
		return
	}

	book := &model.Book{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.ISBN,
	}

	created, err := h.service.Register(c.Request.Context(), book)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, model.ToBookResponse(*created))
}

// Get - GET /books/:id
func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		response.BadRequest(c, "invalid book id")
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), utils.ParseStringToUUID(id))
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, model.ToBookResponse(*book))
}

// Update - PUT /books/:id
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid book payload", err)
		return
	}

	// The book must exist before it can be overwritten.
	book, err := h.service.GetByID(c.Request.Context(), utils.ParseStringToUUID(id))
	if model.HandleBookError(c, err) {
		return
	}

	book.Title = req.Title
	book.Author = req.Author
	book.ISBN = req.ISBN

	updated, err := h.service.Update(c.Request.Context(), book)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, model.ToBookResponse(*updated))
}

// Delete - DELETE /books/:id
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		response.BadRequest(c, "invalid book id")
		return
	}

	book, err := h.service.GetByID(c.Request.Context(), utils.ParseStringToUUID(id))
	if model.HandleBookError(c, err) {
		return
	}

	if err := h.service.Delete(c.Request.Context(), book); model.HandleBookError(c, err) {
		return
	}

	c.Status(http.StatusNoContent)
}

// Find - GET /books
// Query params: title, author, isbn, page, size
func (h *Handler) Find(c *gin.Context) {
	filter := model.BookFilter{
		Title:  c.Query("title"),
		Author: c.Query("author"),
		ISBN:   c.Query("isbn"),
	}
	page := ParsePageRequest(c)

	books, meta, err := h.service.Find(c.Request.Context(), filter, page)
	if err != nil {
		response.InternalServerError(c, "failed to find books")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, model.ToBookResponses(books), meta)
}

// ParsePageRequest reads zero-based page/size query params with defaults.
func ParsePageRequest(c *gin.Context) shared.PageRequest {
	page := shared.PageRequest{Page: 0, Size: 20}

	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p >= 0 {
			page.Page = p
		}
	}
	if sizeStr := c.Query("size"); sizeStr != "" {
		if s, err := strconv.Atoi(sizeStr); err == nil && s > 0 && s <= 100 {
			page.Size = s
		}
	}

	return page
}
