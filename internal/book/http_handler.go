package book

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

func bookIDFrom(r *http.Request) (string, error) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperr.BadRequest("Invalid book id")
	}
	return id, nil
}

func decodeInput(r *http.Request) (Input, []httpx.ErrorDetail, error) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		return Input{}, nil, err
	}
	in = in.normalized()
	return in, httpx.ValidateStruct(in), nil
}

// invalidInputMessage names missing fields when there are any, otherwise
// points at the failing field details.
func invalidInputMessage(in Input) string {
	if !in.complete() {
		return errIncomplete.Error()
	}
	return "Invalid book fields"
}

// List handles GET /api/book
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListByOwner(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Book retrieved successfully", books)
}

// Add handles POST /api/book
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	in, details, err := decodeInput(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	if details != nil {
		httpx.JSONError(w, http.StatusBadRequest, invalidInputMessage(in), details)
		return
	}

	b, err := h.service.Add(r.Context(), httpx.UserIDFrom(r), in)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Book created successfully", b)
}

// Update handles PUT /api/book/{id}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDFrom(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	in, details, err := decodeInput(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	if details != nil {
		httpx.JSONError(w, http.StatusBadRequest, invalidInputMessage(in), details)
		return
	}

	b, err := h.service.Update(r.Context(), httpx.UserIDFrom(r), id, in)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Book updated successfully", b)
}

// Delete handles DELETE /api/book/{id}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := bookIDFrom(r)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	b, err := h.service.Delete(r.Context(), httpx.UserIDFrom(r), id)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Book deleted successfully", b)
}

// ListOffered handles GET /api/book/all-offered
func (h *HTTPHandler) ListOffered(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ListOffered(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Offered Books fetched", books)
}
