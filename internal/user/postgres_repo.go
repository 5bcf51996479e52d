package user

import (
	"context"
	"errors"
	"time"

	"bookswap/internal/book"
	"bookswap/internal/platform/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const selectUser = `
	SELECT u.id, u.username, u.email, u.password_hash, u.created_at, u.updated_at,
	       ARRAY(SELECT o.book_id::text FROM owned_books o WHERE o.user_id = u.id ORDER BY o.book_id),
	       ARRAY(SELECT d.book_id::text FROM desired_books d WHERE d.user_id = u.id ORDER BY d.created_at)
	FROM users u
	`

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt, &u.OwnedBooks, &u.DesiredBooks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) Create(ctx context.Context, user *User) error {
	const query = `
	INSERT INTO users (username, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, user.Username, user.Email, user.Password).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if postgres.IsUniqueViolation(err) {
		return ErrAlreadyExists
	}
	if err != nil {
		return err
	}
	user.OwnedBooks = []string{}
	user.DesiredBooks = []string{}
	return nil
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanUser(r.db.QueryRow(timeoutCtx, selectUser+`WHERE lower(u.email) = lower($1) LIMIT 1`, email))
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (User, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanUser(r.db.QueryRow(timeoutCtx, selectUser+`WHERE u.id = $1`, id))
}

func (r *PostgresRepo) Exists(ctx context.Context, id string) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var ok bool
	err := r.db.QueryRow(timeoutCtx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}

func (r *PostgresRepo) BookExists(ctx context.Context, bookID string) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var ok bool
	err := r.db.QueryRow(timeoutCtx, `SELECT EXISTS (SELECT 1 FROM books WHERE id = $1)`, bookID).Scan(&ok)
	return ok, err
}

func (r *PostgresRepo) RemoveDesired(ctx context.Context, userID, bookID string) (bool, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, `DELETE FROM desired_books WHERE user_id = $1 AND book_id = $2`, userID, bookID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *PostgresRepo) AddDesired(ctx context.Context, userID, bookID string) error {
	const query = `
	INSERT INTO desired_books (user_id, book_id)
	VALUES ($1, $2)
	ON CONFLICT DO NOTHING
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query, userID, bookID)
	return err
}

func (r *PostgresRepo) DesiredIDs(ctx context.Context, userID string) ([]string, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	var ids []string
	err := r.db.QueryRow(timeoutCtx,
		`SELECT ARRAY(SELECT book_id::text FROM desired_books WHERE user_id = $1 ORDER BY created_at)`, userID,
	).Scan(&ids)
	return ids, err
}

func (r *PostgresRepo) DesiredBooks(ctx context.Context, userID string) ([]book.Book, error) {
	query := `
	SELECT ` + book.Columns("b") + `
	FROM desired_books d
	JOIN books b ON b.id = d.book_id
	WHERE d.user_id = $1
	ORDER BY d.created_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []book.Book
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(b.ScanTargets()...); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
