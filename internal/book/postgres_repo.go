package book

import (
	"context"
	"fmt"
	"time"

	"bookswap/internal/ownership"
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

func (r *PostgresRepo) Create(ctx context.Context, ownerID string, in Input) (Book, error) {
	sql := `
		INSERT INTO books (title, author, genre, isbn, description, image_url, owned_by, is_offered)
		VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, FALSE))
		RETURNING ` + Columns("")

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, sql,
			in.Title, in.Author, in.Genre, in.ISBN, in.Description, in.ImageURL, ownerID, in.IsOffered,
		).Scan(b.ScanTargets()...)
		if err != nil {
			return fmt.Errorf("insert book: %w", err)
		}
		return ownership.Assign(ctx, ownership.NewPostgresStore(tx), b.ID, ownerID)
	})
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Update(ctx context.Context, ownerID, bookID string, in Input) (Book, error) {
	sql := `
		UPDATE books
		SET title = $3, author = $4, genre = $5, isbn = $6, description = $7, image_url = $8,
		    is_offered = COALESCE($9, is_offered), updated_at = NOW()
		WHERE id = $1 AND owned_by = $2
		RETURNING ` + Columns("")

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := r.db.QueryRow(ctx, sql,
		bookID, ownerID, in.Title, in.Author, in.Genre, in.ISBN, in.Description, in.ImageURL, in.IsOffered,
	).Scan(b.ScanTargets()...)
	if err != nil {
		if postgres.IsNoRows(err) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, ownerID, bookID string) (Book, error) {
	lockSQL := `SELECT ` + Columns("") + ` FROM books WHERE id = $1 AND owned_by = $2 FOR UPDATE`
	const pendingSQL = `
		SELECT EXISTS (
			SELECT 1 FROM exchange_requests
			WHERE status = 'pending' AND (book_offered_id = $1 OR book_requested_id = $1)
		)`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var b Book
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, lockSQL, bookID, ownerID).Scan(b.ScanTargets()...); err != nil {
			if postgres.IsNoRows(err) {
				return ErrNotFound
			}
			return err
		}

		var pending bool
		if err := tx.QueryRow(ctx, pendingSQL, bookID).Scan(&pending); err != nil {
			return err
		}
		if pending {
			return ErrInPendingExchange
		}

		if err := ownership.Release(ctx, ownership.NewPostgresStore(tx), bookID, ownerID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, bookID)
		return err
	})
	if err != nil {
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) ListByOwner(ctx context.Context, ownerID string) ([]Book, error) {
	sql := `SELECT ` + Columns("") + ` FROM books WHERE owned_by = $1 ORDER BY created_at DESC`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(b.ScanTargets()...); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListOffered(ctx context.Context, excludeOwnerID string) ([]OfferedBook, error) {
	sql := `
		SELECT ` + Columns("b") + `, u.id, u.username
		FROM books b
		JOIN users u ON u.id = b.owned_by
		WHERE b.is_offered AND b.owned_by <> $1
		ORDER BY b.updated_at DESC`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, sql, excludeOwnerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OfferedBook
	var ownerIDs []string
	seen := map[string]bool{}
	for rows.Next() {
		var ob OfferedBook
		dest := append(ob.Book.ScanTargets(), &ob.Owner.ID, &ob.Owner.Username)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		if !seen[ob.Owner.ID] {
			seen[ob.Owner.ID] = true
			ownerIDs = append(ownerIDs, ob.Owner.ID)
		}
		out = append(out, ob)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	desired, err := r.desiredByUser(ctx, ownerIDs)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Owner.DesiredBooks = desired[out[i].Owner.ID]
		if out[i].Owner.DesiredBooks == nil {
			out[i].Owner.DesiredBooks = []Book{}
		}
	}
	return out, nil
}

func (r *PostgresRepo) desiredByUser(ctx context.Context, userIDs []string) (map[string][]Book, error) {
	sql := `
		SELECT d.user_id, ` + Columns("b") + `
		FROM desired_books d
		JOIN books b ON b.id = d.book_id
		WHERE d.user_id = ANY($1)
		ORDER BY d.created_at`

	rows, err := r.db.Query(ctx, sql, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]Book, len(userIDs))
	for rows.Next() {
		var userID string
		var b Book
		if err := rows.Scan(append([]any{&userID}, b.ScanTargets()...)...); err != nil {
			return nil, err
		}
		out[userID] = append(out[userID], b)
	}
	return out, rows.Err()
}
