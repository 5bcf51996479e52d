package ownership

import (
	"context"
	"fmt"

	"bookswap/internal/platform/postgres"
)

// PostgresStore implements Store on a pgx transaction or pool.
type PostgresStore struct {
	db postgres.DBTX
}

func NewPostgresStore(db postgres.DBTX) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) SetBookOwner(ctx context.Context, bookID, ownerID string) error {
	const q = `
		UPDATE books
		SET owned_by = $2, is_offered = FALSE, updated_at = NOW()
		WHERE id = $1`
	tag, err := s.db.Exec(ctx, q, bookID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return fmt.Errorf("book %s not found", bookID)
	}
	return nil
}

func (s *PostgresStore) AddOwnedBook(ctx context.Context, userID, bookID string) error {
	const q = `
		INSERT INTO owned_books (user_id, book_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	_, err := s.db.Exec(ctx, q, userID, bookID)
	return err
}

func (s *PostgresStore) RemoveOwnedBook(ctx context.Context, userID, bookID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM owned_books WHERE user_id = $1 AND book_id = $2`, userID, bookID)
	return err
}
