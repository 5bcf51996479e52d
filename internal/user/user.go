package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("user not found")
	ErrAlreadyExists = errors.New("user already exists")
)

// User is an account. OwnedBooks and DesiredBooks hold book IDs.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	OwnedBooks   []string  `json:"ownedBooks"`
	DesiredBooks []string  `json:"desiredBooks"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Toggle is the outcome of flipping a book in the desired set.
type Toggle struct {
	Added        bool
	DesiredBooks []string
}
