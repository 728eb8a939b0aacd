package repository

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/shared"
)

// RepositoryInterface is the catalog store contract the book service depends on.
type RepositoryInterface interface {
	// ExistsByISBN reports whether a book with exactly this isbn is registered.
	ExistsByISBN(ctx context.Context, isbn string) (bool, error)

	// GetByID returns the book or model.ErrBookNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// GetByISBN returns the book or model.ErrBookNotFound.
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)

	// Create persists a new book and returns it with its assigned id.
	Create(ctx context.Context, book *model.Book) (*model.Book, error)

	// Update overwrites title, author and isbn of an existing book.
	Update(ctx context.Context, book *model.Book) error

	// Delete removes the book row.
	Delete(ctx context.Context, id uuid.UUID) error

	// Find returns a page of books matching the filter plus the total match count.
	Find(ctx context.Context, filter model.BookFilter, page shared.PageRequest) ([]model.Book, int, error)
}
