package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/domains/loan/model"
	"library-backend/internal/shared"
	"library-backend/internal/shared/utils"
)

// loanColumns is the join used by every read; loans are always returned with
// their book attached.
const loanColumns = `
	l.id, l.book_id, l.customer, l.loan_date, l.returned,
	b.id, b.title, b.author, b.isbn, b.created_at, b.updated_at
`

// postgresRepository - raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ExistsActiveByBook(ctx context.Context, bookID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM loans
			WHERE book_id = $1 AND returned IS NOT TRUE
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, bookID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check active loan: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Loan, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM loans l
		JOIN books b ON b.id = l.book_id
		WHERE l.id = $1
	`, loanColumns)

	loan, err := scanLoan(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrLoanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return loan, nil
}

func (r *postgresRepository) Create(ctx context.Context, loan *model.Loan) (*model.Loan, error) {
	query := `
		INSERT INTO loans (book_id, customer, loan_date, returned)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query, loan.BookID, loan.Customer, loan.LoanDate, loan.Returned).
		Scan(&loan.ID)
	if isActiveLoanViolation(err) {
		// Lost the race against a concurrent loan on the same book; the
		// partial unique index is the backstop for the service-level check.
		return nil, model.ErrBookAlreadyLoaned
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create loan: %w", err)
	}

	return loan, nil
}

func (r *postgresRepository) Update(ctx context.Context, loan *model.Loan) error {
	query := `
		UPDATE loans
		SET customer = $2, loan_date = $3, returned = $4
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, loan.ID, loan.Customer, loan.LoanDate, loan.Returned)
	if isActiveLoanViolation(err) {
		return model.ErrBookAlreadyLoaned
	}
	if err != nil {
		return fmt.Errorf("failed to update loan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrLoanNotFound
	}

	return nil
}

// FindByISBNOrCustomer reproduces the documented OR semantics: both
// parameters are always bound, so an empty customer only matches loans whose
// customer is literally empty.
func (r *postgresRepository) FindByISBNOrCustomer(ctx context.Context, isbn, customer string, page shared.PageRequest) ([]model.Loan, int, error) {
	whereClause := utils.JoinWithOr([]string{"b.isbn = $1", "l.customer = $2"})

	countQuery := fmt.Sprintf(`
		SELECT count(*)
		FROM loans l
		JOIN books b ON b.id = l.book_id
		WHERE %s
	`, whereClause)

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, isbn, customer).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count loans: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM loans l
		JOIN books b ON b.id = l.book_id
		WHERE %s
		ORDER BY l.loan_date, l.id
		LIMIT $3 OFFSET $4
	`, loanColumns, whereClause)

	return r.queryLoans(ctx, query, total, isbn, customer, page.Limit(), page.Offset())
}

func (r *postgresRepository) FindByBook(ctx context.Context, bookID uuid.UUID, page shared.PageRequest) ([]model.Loan, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM loans WHERE book_id = $1`, bookID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count loans: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM loans l
		JOIN books b ON b.id = l.book_id
		WHERE l.book_id = $1
		ORDER BY l.id
		LIMIT $2 OFFSET $3
	`, loanColumns)

	return r.queryLoans(ctx, query, total, bookID, page.Limit(), page.Offset())
}

func (r *postgresRepository) FindOverdue(ctx context.Context, threshold time.Time) ([]model.Loan, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM loans l
		JOIN books b ON b.id = l.book_id
		WHERE l.loan_date < $1 AND l.returned IS NOT TRUE
		ORDER BY l.loan_date, l.id
	`, loanColumns)

	loans, _, err := r.queryLoans(ctx, query, 0, threshold)
	if err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *postgresRepository) queryLoans(ctx context.Context, query string, total int, args ...interface{}) ([]model.Loan, int, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find loans: %w", err)
	}
	defer rows.Close()

	var loans []model.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, *loan)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows error: %w", err)
	}

	return loans, total, nil
}

func scanLoan(row pgx.Row) (*model.Loan, error) {
	var l model.Loan
	var b bookmodel.Book

	err := row.Scan(
		&l.ID, &l.BookID, &l.Customer, &l.LoanDate, &l.Returned,
		&b.ID, &b.Title, &b.Author, &b.ISBN, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Book = &b
	return &l, nil
}

// isActiveLoanViolation matches the partial unique index on
// loans(book_id) WHERE returned IS NOT TRUE.
func isActiveLoanViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == "23505" &&
		pgErr.ConstraintName == "uq_loans_active_book"
}
