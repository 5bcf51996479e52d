package exchange

import (
	"context"
	"fmt"
	"time"

	"bookswap/internal/book"
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

func (r *PostgresRepo) InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return pgx.BeginFunc(timeoutCtx, r.db, func(tx pgx.Tx) error {
		return fn(timeoutCtx, &pgTx{PostgresStore: ownership.NewPostgresStore(tx), tx: tx})
	})
}

const requestColumns = `id, requester_id, requestee_id, book_offered_id, book_requested_id, status, created_at, updated_at`

func scanRequest(row pgx.Row) (Request, error) {
	var req Request
	err := row.Scan(&req.ID, &req.RequesterID, &req.RequesteeID, &req.BookOfferedID, &req.BookRequestedID,
		&req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return Request{}, ErrNotFound
		}
		return Request{}, err
	}
	return req, nil
}

type pgTx struct {
	*ownership.PostgresStore
	tx pgx.Tx
}

func (t *pgTx) LockBooks(ctx context.Context, ids ...string) (map[string]book.Book, error) {
	// Rows are locked in id order so concurrent transactions cannot deadlock
	// on the same pair.
	sql := `SELECT ` + book.Columns("") + ` FROM books WHERE id = ANY($1) ORDER BY id FOR UPDATE`

	rows, err := t.tx.Query(ctx, sql, ids)
	if err != nil {
		return nil, fmt.Errorf("lock books: %w", err)
	}
	defer rows.Close()

	out := make(map[string]book.Book, len(ids))
	for rows.Next() {
		var b book.Book
		if err := rows.Scan(b.ScanTargets()...); err != nil {
			return nil, err
		}
		out[b.ID] = b
	}
	return out, rows.Err()
}

func (t *pgTx) HasPendingBetween(ctx context.Context, bookA, bookB string) (bool, error) {
	const sql = `
		SELECT EXISTS (
			SELECT 1 FROM exchange_requests
			WHERE status = 'pending'
			  AND LEAST(book_offered_id, book_requested_id) = LEAST($1::uuid, $2::uuid)
			  AND GREATEST(book_offered_id, book_requested_id) = GREATEST($1::uuid, $2::uuid)
		)`
	var ok bool
	err := t.tx.QueryRow(ctx, sql, bookA, bookB).Scan(&ok)
	return ok, err
}

func (t *pgTx) Insert(ctx context.Context, req *Request) error {
	const sql = `
		INSERT INTO exchange_requests (requester_id, requestee_id, book_offered_id, book_requested_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := t.tx.QueryRow(ctx, sql, req.RequesterID, req.RequesteeID, req.BookOfferedID, req.BookRequestedID, req.Status).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if postgres.IsUniqueViolation(err) {
		return ErrDuplicatePending
	}
	return err
}

func (t *pgTx) GetRequest(ctx context.Context, id string) (Request, error) {
	return scanRequest(t.tx.QueryRow(ctx, `SELECT `+requestColumns+` FROM exchange_requests WHERE id = $1`, id))
}

func (t *pgTx) LockRequest(ctx context.Context, id string) (Request, error) {
	return scanRequest(t.tx.QueryRow(ctx, `SELECT `+requestColumns+` FROM exchange_requests WHERE id = $1 FOR UPDATE`, id))
}

func (t *pgTx) SetStatus(ctx context.Context, id string, status Status) (Request, error) {
	sql := `UPDATE exchange_requests SET status = $2, updated_at = NOW() WHERE id = $1 RETURNING ` + requestColumns
	return scanRequest(t.tx.QueryRow(ctx, sql, id, status))
}

func (t *pgTx) RejectPendingInvolving(ctx context.Context, bookIDs []string) (int64, error) {
	const sql = `
		UPDATE exchange_requests
		SET status = 'rejected', updated_at = NOW()
		WHERE status = 'pending'
		  AND (book_offered_id = ANY($1) OR book_requested_id = ANY($1))`
	tag, err := t.tx.Exec(ctx, sql, bookIDs)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// detailSelect expands a request with both parties and both books.
var detailSelect = `
	SELECT er.id, er.status, er.created_at, er.updated_at,
	       rq.id, rq.username, rq.email,
	       re.id, re.username, re.email,
	       ` + book.Columns("bo") + `,
	       ` + book.Columns("br") + `
	FROM exchange_requests er
	JOIN users rq ON rq.id = er.requester_id
	JOIN users re ON re.id = er.requestee_id
	JOIN books bo ON bo.id = er.book_offered_id
	JOIN books br ON br.id = er.book_requested_id
	`

func (r *PostgresRepo) queryDetails(ctx context.Context, where string, args ...any) ([]Detail, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(timeoutCtx, detailSelect+where+` ORDER BY er.created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Detail
	for rows.Next() {
		var d Detail
		dest := []any{
			&d.ID, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.Requester.ID, &d.Requester.Username, &d.Requester.Email,
			&d.Requestee.ID, &d.Requestee.Username, &d.Requestee.Email,
		}
		dest = append(dest, d.BookOffered.ScanTargets()...)
		dest = append(dest, d.BookRequested.ScanTargets()...)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListPending(ctx context.Context, userID string, side Side) ([]Detail, error) {
	column := "er.requestee_id"
	if side == SideSent {
		column = "er.requester_id"
	}
	return r.queryDetails(ctx, `WHERE `+column+` = $1 AND er.status = 'pending'`, userID)
}

func (r *PostgresRepo) ListResolved(ctx context.Context, userID string) ([]Detail, error) {
	return r.queryDetails(ctx, `WHERE (er.requester_id = $1 OR er.requestee_id = $1) AND er.status IN ('accepted', 'rejected')`, userID)
}
