package user

import (
	"net/http"

	"bookswap/internal/apperr"
	"bookswap/internal/httpx"

	"github.com/google/uuid"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// GetCurrentUser handles GET /api/user
func (h *HTTPHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.service.GetByID(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "User", map[string]any{"user": u})
}

// ToggleDesired handles PUT /api/user/book/{id}
func (h *HTTPHandler) ToggleDesired(w http.ResponseWriter, r *http.Request) {
	bookID := r.PathValue("id")
	if _, err := uuid.Parse(bookID); err != nil {
		httpx.Error(w, r, apperr.BadRequest("Invalid book id"))
		return
	}

	res, err := h.service.ToggleDesired(r.Context(), httpx.UserIDFrom(r), bookID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	msg := "Book removed from desired list"
	if res.Added {
		msg = "Book added to desired list"
	}
	httpx.JSONSuccess(w, msg, res.DesiredBooks)
}

// ListDesired handles GET /api/book/desired
func (h *HTTPHandler) ListDesired(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListDesired(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Desired books fetched", books)
}
