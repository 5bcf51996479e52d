package exchange

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"sync"
	"time"

	"bookswap/internal/book"
)

var errInjected = errors.New("injected failure")

// memRepo is an in-memory Repository whose transactions are serialized and
// rolled back on error.
type memRepo struct {
	mu       sync.Mutex
	users    map[string]Party
	books    map[string]book.Book
	owned    map[string]map[string]bool
	requests map[string]Request
	seq      int
	clock    time.Time

	// skipPendingCheck makes HasPendingBetween always report false so the
	// uniqueness of Insert is exercised on its own.
	skipPendingCheck bool
	// failAt makes the n-th call of the named method fail.
	failAt map[string]int
	calls  map[string]int
}

type memState struct {
	books    map[string]book.Book
	owned    map[string]map[string]bool
	requests map[string]Request
	seq      int
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:    map[string]Party{},
		books:    map[string]book.Book{},
		owned:    map[string]map[string]bool{},
		requests: map[string]Request{},
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		failAt:   map[string]int{},
		calls:    map[string]int{},
	}
}

func (m *memRepo) addUser(id string) {
	m.users[id] = Party{ID: id, Username: id, Email: id + "@example.com"}
}

func (m *memRepo) addBook(id, owner string, offered bool) {
	m.books[id] = book.Book{ID: id, Title: "Title " + id, OwnedBy: owner, IsOffered: offered}
	if m.owned[owner] == nil {
		m.owned[owner] = map[string]bool{}
	}
	m.owned[owner][id] = true
}

func (m *memRepo) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *memRepo) hit(method string) error {
	m.calls[method]++
	if n, ok := m.failAt[method]; ok && m.calls[method] == n {
		return fmt.Errorf("%s: %w", method, errInjected)
	}
	return nil
}

func (m *memRepo) snapshot() memState {
	owned := make(map[string]map[string]bool, len(m.owned))
	for u, set := range m.owned {
		owned[u] = maps.Clone(set)
	}
	return memState{books: maps.Clone(m.books), owned: owned, requests: maps.Clone(m.requests), seq: m.seq}
}

func (m *memRepo) restore(s memState) {
	m.books, m.owned, m.requests, m.seq = s.books, s.owned, s.requests, s.seq
}

func (m *memRepo) InTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := m.snapshot()
	if err := fn(ctx, memTx{m}); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *memRepo) detail(r Request) Detail {
	return Detail{
		ID:            r.ID,
		Requester:     m.users[r.RequesterID],
		Requestee:     m.users[r.RequesteeID],
		BookOffered:   m.books[r.BookOfferedID],
		BookRequested: m.books[r.BookRequestedID],
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (m *memRepo) list(keep func(Request) bool) []Detail {
	var out []Detail
	for _, r := range m.requests {
		if keep(r) {
			out = append(out, m.detail(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *memRepo) ListPending(_ context.Context, userID string, side Side) ([]Detail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.list(func(r Request) bool {
		if r.Status != StatusPending {
			return false
		}
		if side == SideSent {
			return r.RequesterID == userID
		}
		return r.RequesteeID == userID
	}), nil
}

func (m *memRepo) ListResolved(_ context.Context, userID string) ([]Detail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.list(func(r Request) bool {
		return r.Status.Terminal() && (r.RequesterID == userID || r.RequesteeID == userID)
	}), nil
}

// checkInvariants reports the first broken storage invariant.
func (m *memRepo) checkInvariants() error {
	for id, b := range m.books {
		if !m.owned[b.OwnedBy][id] {
			return fmt.Errorf("book %s owned by %s but missing from their set", id, b.OwnedBy)
		}
	}
	for user, set := range m.owned {
		for id := range set {
			if m.books[id].OwnedBy != user {
				return fmt.Errorf("user %s lists book %s owned by %s", user, id, m.books[id].OwnedBy)
			}
		}
	}
	pairs := map[[2]string]string{}
	for _, r := range m.requests {
		if r.Status != StatusPending {
			continue
		}
		key := pairKey(r.BookOfferedID, r.BookRequestedID)
		if other, ok := pairs[key]; ok {
			return fmt.Errorf("requests %s and %s both pending on %v", other, r.ID, key)
		}
		pairs[key] = r.ID
	}
	return nil
}

func pairKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

type memTx struct{ m *memRepo }

func (t memTx) SetBookOwner(_ context.Context, bookID, ownerID string) error {
	if err := t.m.hit("SetBookOwner"); err != nil {
		return err
	}
	b, ok := t.m.books[bookID]
	if !ok {
		return fmt.Errorf("book %s not found", bookID)
	}
	b.OwnedBy, b.IsOffered, b.UpdatedAt = ownerID, false, t.m.tick()
	t.m.books[bookID] = b
	return nil
}

func (t memTx) AddOwnedBook(_ context.Context, userID, bookID string) error {
	if err := t.m.hit("AddOwnedBook"); err != nil {
		return err
	}
	if t.m.owned[userID] == nil {
		t.m.owned[userID] = map[string]bool{}
	}
	t.m.owned[userID][bookID] = true
	return nil
}

func (t memTx) RemoveOwnedBook(_ context.Context, userID, bookID string) error {
	if err := t.m.hit("RemoveOwnedBook"); err != nil {
		return err
	}
	delete(t.m.owned[userID], bookID)
	return nil
}

func (t memTx) LockBooks(_ context.Context, ids ...string) (map[string]book.Book, error) {
	if err := t.m.hit("LockBooks"); err != nil {
		return nil, err
	}
	out := map[string]book.Book{}
	for _, id := range ids {
		if b, ok := t.m.books[id]; ok {
			out[id] = b
		}
	}
	return out, nil
}

func (t memTx) HasPendingBetween(_ context.Context, bookA, bookB string) (bool, error) {
	if t.m.skipPendingCheck {
		return false, nil
	}
	key := pairKey(bookA, bookB)
	for _, r := range t.m.requests {
		if r.Status == StatusPending && pairKey(r.BookOfferedID, r.BookRequestedID) == key {
			return true, nil
		}
	}
	return false, nil
}

func (t memTx) Insert(_ context.Context, r *Request) error {
	key := pairKey(r.BookOfferedID, r.BookRequestedID)
	for _, existing := range t.m.requests {
		if existing.Status == StatusPending && pairKey(existing.BookOfferedID, existing.BookRequestedID) == key {
			return ErrDuplicatePending
		}
	}
	t.m.seq++
	r.ID = fmt.Sprintf("00000000-0000-4000-8000-%012d", t.m.seq)
	r.CreatedAt = t.m.tick()
	r.UpdatedAt = r.CreatedAt
	t.m.requests[r.ID] = *r
	return nil
}

func (t memTx) GetRequest(_ context.Context, id string) (Request, error) {
	r, ok := t.m.requests[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	return r, nil
}

func (t memTx) LockRequest(ctx context.Context, id string) (Request, error) {
	return t.GetRequest(ctx, id)
}

func (t memTx) SetStatus(_ context.Context, id string, status Status) (Request, error) {
	if err := t.m.hit("SetStatus"); err != nil {
		return Request{}, err
	}
	r, ok := t.m.requests[id]
	if !ok {
		return Request{}, ErrNotFound
	}
	r.Status, r.UpdatedAt = status, t.m.tick()
	t.m.requests[id] = r
	return r, nil
}

func (t memTx) RejectPendingInvolving(_ context.Context, bookIDs []string) (int64, error) {
	var n int64
	for id, r := range t.m.requests {
		if r.Status != StatusPending {
			continue
		}
		for _, b := range bookIDs {
			if r.BookOfferedID == b || r.BookRequestedID == b {
				r.Status, r.UpdatedAt = StatusRejected, t.m.tick()
				t.m.requests[id] = r
				n++
				break
			}
		}
	}
	return n, nil
}
