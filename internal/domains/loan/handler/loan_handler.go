package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	bookhandler "library-backend/internal/domains/book/handler"
	bookmodel "library-backend/internal/domains/book/model"
	bookservice "library-backend/internal/domains/book/service"
	"library-backend/internal/domains/loan/model"
	"library-backend/internal/domains/loan/service"
	"library-backend/internal/shared/response"
	"library-backend/internal/shared/utils"
)

// Handler - HTTP handlers for the loan lifecycle. It also needs the book
// service to resolve loan requests by isbn and the loans-by-book listing.
type Handler struct {
	service     service.ServiceInterface
	bookService bookservice.ServiceInterface
}

func NewHandler(service service.ServiceInterface, bookService bookservice.ServiceInterface) *Handler {
	return &Handler{
		service:     service,
		bookService: bookService,
	}
}

// Create - POST /loans
// The loan date is stamped here with today's date; the service requires it
// to be set by the caller.
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid loan payload", err)
		return
	}

	book, err := h.bookService.GetByISBN(c.Request.Context(), req.ISBN)
	if errors.Is(err, bookmodel.ErrBookNotFound) {
		response.BadRequest(c, "book not found for passed isbn")
		return
	}
	if bookmodel.HandleBookError(c, err) {
		return
	}

	y, m, d := time.Now().Date()
	loan := &model.Loan{
		BookID:   book.ID,
		Customer: req.Customer,
		LoanDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
	}

	created, err := h.service.Create(c.Request.Context(), loan)
	if model.HandleLoanError(c, err) {
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": created.ID})
}

// Return - PATCH /loans/:id
func (h *Handler) Return(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		response.BadRequest(c, "invalid loan id")
		return
	}

	var req model.ReturnLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "invalid return payload", err)
		return
	}

	loan, err := h.service.GetByID(c.Request.Context(), utils.ParseStringToUUID(id))
	if model.HandleLoanError(c, err) {
		return
	}

	loan.Returned = req.Returned
	if err := h.service.Update(c.Request.Context(), loan); model.HandleLoanError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, model.ToLoanResponse(*loan))
}

// Find - GET /loans
// Query params: isbn, customer, page, size. The filters combine with OR.
func (h *Handler) Find(c *gin.Context) {
	filter := model.LoanFilter{
		ISBN:     c.Query("isbn"),
		Customer: c.Query("customer"),
	}
	page := bookhandler.ParsePageRequest(c)

	loans, meta, err := h.service.Find(c.Request.Context(), filter, page)
	if err != nil {
		response.InternalServerError(c, "failed to find loans")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, model.ToLoanResponses(loans), meta)
}

// LoansByBook - GET /books/:id/loans
func (h *Handler) LoansByBook(c *gin.Context) {
	id := c.Param("id")
	if !utils.IsValidUUID(id) {
		response.BadRequest(c, "invalid book id")
		return
	}

	book, err := h.bookService.GetByID(c.Request.Context(), utils.ParseStringToUUID(id))
	if bookmodel.HandleBookError(c, err) {
		return
	}

	page := bookhandler.ParsePageRequest(c)
	loans, meta, err := h.service.GetLoansByBook(c.Request.Context(), book, page)
	if err != nil {
		response.InternalServerError(c, "failed to find loans for book")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, model.ToLoanResponses(loans), meta)
}
