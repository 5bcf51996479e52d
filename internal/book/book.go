package book

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a book does not exist or is not owned by the caller.
	ErrNotFound = errors.New("book not found")
	// ErrInPendingExchange is returned when deleting a book a pending request still references.
	ErrInPendingExchange = errors.New("book is part of a pending exchange")
)

// Book is a physical book registered by its current owner.
type Book struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	ISBN        string    `json:"isbn"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	OwnedBy     string    `json:"ownedBy"`
	IsOffered   bool      `json:"isOffered"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Owner is the public view of a book owner in the offered listing.
type Owner struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	DesiredBooks []Book `json:"desiredBooks"`
}

// OfferedBook is a book listed for exchange together with its owner.
type OfferedBook struct {
	Book
	Owner Owner `json:"owner"`
}

// Input carries the writable fields of a book.
type Input struct {
	Title       string `json:"title" validate:"required,max=255"`
	Author      string `json:"author" validate:"required,max=255"`
	Genre       string `json:"genre" validate:"required,max=100"`
	ISBN        string `json:"isbn" validate:"required,max=32"`
	Description string `json:"description" validate:"max=5000"`
	ImageURL    string `json:"imageUrl" validate:"max=2048"`
	IsOffered   *bool  `json:"isOffered"`
}

func (in Input) normalized() Input {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Genre = strings.TrimSpace(in.Genre)
	in.ISBN = strings.TrimSpace(in.ISBN)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	return in
}

func (in Input) complete() bool {
	return in.Title != "" && in.Author != "" && in.Genre != "" && in.ISBN != ""
}

// Metadata is what an external catalog knows about an ISBN.
type Metadata struct {
	Description string
	ImageURL    string
}

var columns = []string{
	"id", "title", "author", "genre", "isbn", "description",
	"image_url", "owned_by", "is_offered", "created_at", "updated_at",
}

// Columns returns the book column list qualified with alias, in the order
// ScanTargets expects.
func Columns(alias string) string {
	if alias == "" {
		return strings.Join(columns, ", ")
	}
	qualified := make([]string, len(columns))
	for i, c := range columns {
		qualified[i] = alias + "." + c
	}
	return strings.Join(qualified, ", ")
}

// ScanTargets returns pointers to b's fields in Columns order.
func (b *Book) ScanTargets() []any {
	return []any{
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.ISBN, &b.Description,
		&b.ImageURL, &b.OwnedBy, &b.IsOffered, &b.CreatedAt, &b.UpdatedAt,
	}
}
