package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"
)

var (
	ErrLoanNotFound      = errors.New("loan not found")
	ErrBookAlreadyLoaned = errors.New("book has already been loaned")
	ErrMissingLoanID     = errors.New("loan id can't be null")
	ErrIncompleteLoan    = errors.New("loan requires a book, a customer and a loan date")
)

var loanErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrLoanNotFound: {
		Status:  http.StatusNotFound,
		Code:    "LOAN_NOT_FOUND",
		Message: "The specified loan does not exist",
	},
	ErrBookAlreadyLoaned: {
		Status:  http.StatusBadRequest,
		Code:    "BOOK_ALREADY_LOANED",
		Message: "This book is already out on an active loan",
	},
	ErrMissingLoanID: {
		Status:  http.StatusBadRequest,
		Code:    "MISSING_LOAN_ID",
		Message: "A loan id is required for this operation",
	},
	ErrIncompleteLoan: {
		Status:  http.StatusBadRequest,
		Code:    "INCOMPLETE_LOAN",
		Message: "A loan requires a book, a customer and a loan date",
	},
}

// HandleLoanError writes the HTTP response for a loan error. Returns true
// when err was non-nil and a response has been written.
func HandleLoanError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range loanErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	logger.Error("Unhandled loan error", err)
	response.InternalServerError(c, "Internal server error")
	return true
}
