package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/repository"
	"library-backend/internal/shared"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"
)

const detailCacheTTL = time.Hour

// BookService - implements ServiceInterface
type BookService struct {
	repo  repository.RepositoryInterface
	cache cache.Cache
}

func NewService(repo repository.RepositoryInterface, cache cache.Cache) ServiceInterface {
	return &BookService{
		repo:  repo,
		cache: cache,
	}
}

func (s *BookService) Register(ctx context.Context, book *model.Book) (*model.Book, error) {
	exists, err := s.repo.ExistsByISBN(ctx, book.ISBN)
	if err != nil {
		return nil, fmt.Errorf("failed to check isbn: %w", err)
	}
	if exists {
		return nil, model.ErrISBNAlreadyExists
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *BookService) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	cacheKey := detailCacheKey(id)

	var cached model.Book
	found, err := s.cache.Get(ctx, cacheKey, &cached)
	if err != nil {
		logger.Error("Book detail cache read failed", err)
	}
	if found {
		return &cached, nil
	}

	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, book, detailCacheTTL); err != nil {
		logger.Error("Book detail cache write failed", err)
	}

	return book, nil
}

func (s *BookService) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

func (s *BookService) Update(ctx context.Context, book *model.Book) (*model.Book, error) {
	if book == nil || book.ID == uuid.Nil {
		return nil, model.ErrMissingBookID
	}

	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	s.invalidateDetail(ctx, book.ID)
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, book *model.Book) error {
	if book == nil || book.ID == uuid.Nil {
		return model.ErrMissingBookID
	}

	if err := s.repo.Delete(ctx, book.ID); err != nil {
		return err
	}

	s.invalidateDetail(ctx, book.ID)
	return nil
}

func (s *BookService) Find(ctx context.Context, filter model.BookFilter, page shared.PageRequest) ([]model.Book, shared.PageMeta, error) {
	books, total, err := s.repo.Find(ctx, filter, page)
	if err != nil {
		return nil, shared.PageMeta{}, fmt.Errorf("failed to find books: %w", err)
	}

	return books, shared.NewPageMeta(page, total), nil
}

func (s *BookService) invalidateDetail(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, detailCacheKey(id)); err != nil {
		logger.Error("Book detail cache invalidation failed", err)
	}
}

func detailCacheKey(id uuid.UUID) string {
	return "books:detail:" + id.String()
}
