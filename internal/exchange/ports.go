package exchange

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=exchange

import (
	"context"

	"bookswap/internal/book"
	"bookswap/internal/ownership"
)

// Side selects which participant a pending listing is for.
type Side int

const (
	SideReceived Side = iota
	SideSent
)

type Repository interface {
	// InTx runs fn in one transaction, committing only if fn returns nil.
	// fn must use the context it is given.
	InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	ListPending(ctx context.Context, userID string, side Side) ([]Detail, error)
	ListResolved(ctx context.Context, userID string) ([]Detail, error)
}

// Tx is the transactional view of storage. Lock methods hold row locks until
// the transaction ends. Books are always locked before requests.
type Tx interface {
	ownership.Store
	// LockBooks returns the existing books among ids keyed by id.
	LockBooks(ctx context.Context, ids ...string) (map[string]book.Book, error)
	HasPendingBetween(ctx context.Context, bookA, bookB string) (bool, error)
	Insert(ctx context.Context, r *Request) error
	GetRequest(ctx context.Context, id string) (Request, error)
	LockRequest(ctx context.Context, id string) (Request, error)
	SetStatus(ctx context.Context, id string, status Status) (Request, error)
	// RejectPendingInvolving rejects pending requests referencing any of
	// bookIDs and returns how many changed.
	RejectPendingInvolving(ctx context.Context, bookIDs []string) (int64, error)
}
