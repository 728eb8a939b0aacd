package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/shared"
	"library-backend/internal/shared/utils"
)

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ExistsByISBN(ctx context.Context, isbn string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE isbn = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, isbn).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check isbn: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `
		SELECT id, title, author, isbn, created_at, updated_at
		FROM books
		WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *postgresRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	query := `
		SELECT id, title, author, isbn, created_at, updated_at
		FROM books
		WHERE isbn = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, isbn))
}

func (r *postgresRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
		INSERT INTO books (title, author, isbn)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query, book.Title, book.Author, book.ISBN).
		Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if isUniqueViolation(err) {
		return nil, model.ErrISBNAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return book, nil
}

func (r *postgresRepository) Update(ctx context.Context, book *model.Book) error {
	query := `
		UPDATE books
		SET title = $2, author = $3, isbn = $4, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, book.ID, book.Title, book.Author, book.ISBN)
	if isUniqueViolation(err) {
		return model.ErrISBNAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

// Find matches every non-empty filter field as a case-insensitive substring.
// An empty filter matches the whole catalog.
func (r *postgresRepository) Find(ctx context.Context, filter model.BookFilter, page shared.PageRequest) ([]model.Book, int, error) {
	whereClause, args := buildBookFilter(filter)

	countQuery := `SELECT count(*) FROM books` + whereClause
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, title, author, isbn, created_at, updated_at
		FROM books%s
		ORDER BY created_at, id
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)
	args = append(args, page.Limit(), page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find books: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0, page.Limit())
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return books, total, nil
}

func buildBookFilter(filter model.BookFilter) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", column, len(args)))
	}

	add("title", filter.Title)
	add("author", filter.Author)
	add("isbn", filter.ISBN)

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + utils.JoinWithAnd(clauses), args
}

func (r *postgresRepository) scanOne(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return &b, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
