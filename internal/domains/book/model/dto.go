package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"library-backend/internal/shared"
)

// CreateBookRequest - POST /books
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Length(1, 32),
		),
	)
}

// UpdateBookRequest - PUT /books/:id. The isbn is written exactly as
// supplied; clients that want to keep it must send it back unchanged.
type UpdateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	ISBN   string `json:"isbn"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Author, validation.Required.Error("author is required")),
		validation.Field(&r.ISBN, validation.Required.Error("isbn is required")),
	)
}

// BookFilter - GET /books query. Every non-empty field becomes a
// case-insensitive substring predicate; empty fields impose no constraint.
type BookFilter struct {
	Title  string
	Author string
	ISBN   string
}

// BookResponse is the external shape of a catalog record.
type BookResponse struct {
	ID     uuid.UUID `json:"id"`
	Title  string    `json:"title"`
	Author string    `json:"author"`
	ISBN   string    `json:"isbn"`
}

func ToBookResponse(b Book) BookResponse {
	return BookResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		ISBN:   b.ISBN,
	}
}

func ToBookResponses(books []Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = ToBookResponse(b)
	}
	return out
}

// BooksPageResponse pairs a page of books with its metadata.
type BooksPageResponse struct {
	Books      []BookResponse  `json:"books"`
	Pagination shared.PageMeta `json:"pagination"`
}
