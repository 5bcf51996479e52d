// Package exchange implements the exchange-request ledger and the ownership
// transfer that completes an accepted request.
package exchange

import (
	"errors"
	"time"

	"bookswap/internal/book"
)

var (
	ErrNotFound = errors.New("exchange: not found")
	// ErrDuplicatePending is returned by storage when the pending-pair index rejects an insert.
	ErrDuplicatePending = errors.New("exchange: duplicate pending request")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(s); st {
	case StatusPending, StatusAccepted, StatusRejected:
		return st, true
	}
	return "", false
}

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Request is a proposal to swap BookOffered (owned by Requester) for
// BookRequested (owned by Requestee).
type Request struct {
	ID              string    `json:"id"`
	RequesterID     string    `json:"requester"`
	RequesteeID     string    `json:"requestee"`
	BookOfferedID   string    `json:"bookOffered"`
	BookRequestedID string    `json:"bookRequested"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Party is the public view of a user taking part in an exchange.
type Party struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Detail is a request with both parties and both books expanded.
type Detail struct {
	ID            string    `json:"id"`
	Requester     Party     `json:"requester"`
	Requestee     Party     `json:"requestee"`
	BookOffered   book.Book `json:"bookOffered"`
	BookRequested book.Book `json:"bookRequested"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// HistoryEntry is a resolved request seen from one participant.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Partner   Party     `json:"exchangePartner"`
	Given     book.Book `json:"givenBook"`
	Received  book.Book `json:"receivedBook"`
	Role      string    `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ViewFor orients d around userID: the requester gives the offered book,
// the requestee gives the requested one.
func (d Detail) ViewFor(userID string) HistoryEntry {
	e := HistoryEntry{ID: d.ID, Status: d.Status, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
	if d.Requester.ID == userID {
		e.Role = "requester"
		e.Partner = d.Requestee
		e.Given = d.BookOffered
		e.Received = d.BookRequested
	} else {
		e.Role = "requestee"
		e.Partner = d.Requester
		e.Given = d.BookRequested
		e.Received = d.BookOffered
	}
	return e
}

// Transfer holds both books after an accepted request swapped their owners.
type Transfer struct {
	BookRequested book.Book `json:"bookRequested"`
	BookOffered   book.Book `json:"bookOffered"`
}

// Resolution is the outcome of a status update. Transfer is set only when
// the request was accepted.
type Resolution struct {
	Request  Request   `json:"request"`
	Transfer *Transfer `json:"transfer,omitempty"`
}
