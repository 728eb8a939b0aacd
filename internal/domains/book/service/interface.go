package service

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/shared"
)

// ServiceInterface orchestrates catalog mutations and the isbn uniqueness rule.
type ServiceInterface interface {
	// Register persists a new book. Fails with model.ErrISBNAlreadyExists when
	// the isbn is taken.
	Register(ctx context.Context, book *model.Book) (*model.Book, error)

	// GetByID returns the book or model.ErrBookNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// GetByISBN returns the book or model.ErrBookNotFound. Used by the loan
	// service to resolve a loan request's target.
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)

	// Update overwrites title, author and isbn. Fails with
	// model.ErrMissingBookID when the book carries no identity.
	Update(ctx context.Context, book *model.Book) (*model.Book, error)

	// Delete removes the book. Same identity guard as Update. Historical
	// loans referencing the book are not checked.
	Delete(ctx context.Context, book *model.Book) error

	// Find returns a page of books matching the filter.
	Find(ctx context.Context, filter model.BookFilter, page shared.PageRequest) ([]model.Book, shared.PageMeta, error)
}
