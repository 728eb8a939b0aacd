package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/shared"
)

// fakeBookRepo is an in-memory stand-in for the Postgres repository.
type fakeBookRepo struct {
	books []model.Book

	createCalls int
	updateCalls int
	deleteCalls int
}

func (f *fakeBookRepo) ExistsByISBN(_ context.Context, isbn string) (bool, error) {
	for _, b := range f.books {
		if b.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Book, error) {
	for _, b := range f.books {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (f *fakeBookRepo) GetByISBN(_ context.Context, isbn string) (*model.Book, error) {
	for _, b := range f.books {
		if b.ISBN == isbn {
			found := b
			return &found, nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (f *fakeBookRepo) Create(_ context.Context, book *model.Book) (*model.Book, error) {
	f.createCalls++
	for _, b := range f.books {
		if b.ISBN == book.ISBN {
			return nil, model.ErrISBNAlreadyExists
		}
	}
	created := *book
	created.ID = uuid.New()
	f.books = append(f.books, created)
	return &created, nil
}

func (f *fakeBookRepo) Update(_ context.Context, book *model.Book) error {
	f.updateCalls++
	for i, b := range f.books {
		if b.ID == book.ID {
			f.books[i] = *book
			return nil
		}
	}
	return model.ErrBookNotFound
}

func (f *fakeBookRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deleteCalls++
	for i, b := range f.books {
		if b.ID == id {
			f.books = append(f.books[:i], f.books[i+1:]...)
			return nil
		}
	}
	return model.ErrBookNotFound
}

func (f *fakeBookRepo) Find(_ context.Context, filter model.BookFilter, page shared.PageRequest) ([]model.Book, int, error) {
	var matched []model.Book
	for _, b := range f.books {
		if containsFold(b.Title, filter.Title) &&
			containsFold(b.Author, filter.Author) &&
			containsFold(b.ISBN, filter.ISBN) {
			matched = append(matched, b)
		}
	}

	total := len(matched)
	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + page.Size
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func containsFold(value, fragment string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(fragment))
}

// noopCache satisfies the cache dependency without caching anything.
type noopCache struct{}

func (noopCache) Get(context.Context, string, interface{}) (bool, error)        { return false, nil }
func (noopCache) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (noopCache) Delete(context.Context, ...string) error                       { return nil }
func (noopCache) DeletePattern(context.Context, string) error                   { return nil }
func (noopCache) Ping(context.Context) error                                    { return nil }

func newTestService() (*fakeBookRepo, ServiceInterface) {
	repo := &fakeBookRepo{}
	return repo, NewService(repo, noopCache{})
}

func TestRegisterAssignsID(t *testing.T) {
	_, svc := newTestService()

	created, err := svc.Register(context.Background(), &model.Book{
		Title:  "As Aventuras",
		Author: "Fulano",
		ISBN:   "123",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "As Aventuras", created.Title)
}

func TestRegisterRejectsDuplicateISBN(t *testing.T) {
	_, svc := newTestService()

	_, err := svc.Register(context.Background(), &model.Book{Title: "First", Author: "A", ISBN: "123"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &model.Book{Title: "Second", Author: "B", ISBN: "123"})
	assert.ErrorIs(t, err, model.ErrISBNAlreadyExists)

	// The original registration is untouched.
	existing, err := svc.GetByISBN(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "First", existing.Title)
}

func TestGetByIDNotFound(t *testing.T) {
	_, svc := newTestService()

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestUpdateRequiresID(t *testing.T) {
	repo, svc := newTestService()

	_, err := svc.Update(context.Background(), &model.Book{Title: "t", Author: "a", ISBN: "1"})
	assert.ErrorIs(t, err, model.ErrMissingBookID)
	assert.Zero(t, repo.updateCalls, "store must not be touched without an id")
}

func TestDeleteRequiresID(t *testing.T) {
	repo, svc := newTestService()

	err := svc.Delete(context.Background(), &model.Book{Title: "t"})
	assert.ErrorIs(t, err, model.ErrMissingBookID)
	assert.Zero(t, repo.deleteCalls, "store must not be touched without an id")
}

func TestUpdateChangesFields(t *testing.T) {
	_, svc := newTestService()

	created, err := svc.Register(context.Background(), &model.Book{Title: "Old", Author: "A", ISBN: "123"})
	require.NoError(t, err)

	created.Title = "New"
	created.ISBN = "456"
	_, err = svc.Update(context.Background(), created)
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, "456", got.ISBN)
}

func TestFindEchoesRequestedPage(t *testing.T) {
	_, svc := newTestService()

	_, err := svc.Register(context.Background(), &model.Book{Title: "As Aventuras", Author: "Fulano", ISBN: "123"})
	require.NoError(t, err)

	books, meta, err := svc.Find(context.Background(), model.BookFilter{Title: "aventuras"}, shared.PageRequest{Page: 0, Size: 10})

	require.NoError(t, err)
	assert.Len(t, books, 1)
	assert.Equal(t, 0, meta.Page)
	assert.Equal(t, 10, meta.Size)
	assert.Equal(t, 1, meta.TotalElements)
}

func TestFindMatchesSubstringsCaseInsensitive(t *testing.T) {
	_, svc := newTestService()

	ctx := context.Background()
	_, err := svc.Register(ctx, &model.Book{Title: "The Adventures of Tom Sawyer", Author: "Mark Twain", ISBN: "111"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &model.Book{Title: "Adventure Time", Author: "Someone Else", ISBN: "222"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, &model.Book{Title: "Cooking Basics", Author: "A. Chef", ISBN: "333"})
	require.NoError(t, err)

	books, meta, err := svc.Find(ctx, model.BookFilter{Title: "ADVENTUR"}, shared.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Len(t, books, 2)
	assert.Equal(t, 2, meta.TotalElements)

	// An empty filter matches everything.
	_, meta, err = svc.Find(ctx, model.BookFilter{}, shared.PageRequest{Page: 0, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, meta.TotalElements)
}
