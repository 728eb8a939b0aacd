package model

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/shared/response"
	"library-backend/pkg/logger"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrISBNAlreadyExists = errors.New("isbn already registered")
	ErrMissingBookID     = errors.New("book id can't be null")
)

var bookErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrBookNotFound: {
		Status:  http.StatusNotFound,
		Code:    "BOOK_NOT_FOUND",
		Message: "The specified book does not exist",
	},
	ErrISBNAlreadyExists: {
		Status:  http.StatusConflict,
		Code:    "ISBN_ALREADY_EXISTS",
		Message: "This ISBN is already registered in the catalog",
	},
	ErrMissingBookID: {
		Status:  http.StatusBadRequest,
		Code:    "MISSING_BOOK_ID",
		Message: "A book id is required for this operation",
	},
}

// HandleBookError writes the HTTP response for a book error. Returns true
// when err was non-nil and a response has been written.
func HandleBookError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for sentinel, cfg := range bookErrorMap {
		if errors.Is(err, sentinel) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	logger.Error("Unhandled book error", err)
	response.InternalServerError(c, "Internal server error")
	return true
}
