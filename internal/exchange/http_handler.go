package exchange

import (
	"net/http"

	"bookswap/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type CreateReq struct {
	BookRequestedID string `json:"bookRequestedId" validate:"required,uuid"`
	BookOfferedID   string `json:"bookOfferedId" validate:"required,uuid"`
}

type UpdateStatusReq struct {
	RequestID string `json:"requestId" validate:"required,uuid"`
	Status    string `json:"status" validate:"required"`
}

// Create handles POST /api/exchange
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid input", validationErrors)
		return
	}

	created, err := h.service.Create(r.Context(), httpx.UserIDFrom(r), req.BookRequestedID, req.BookOfferedID)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Exchange request created successfully", created)
}

// UpdateStatus handles PUT /api/exchange/status
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid input", validationErrors)
		return
	}

	res, err := h.service.UpdateStatus(r.Context(), httpx.UserIDFrom(r), req.RequestID, req.Status)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}

	msg := "Request status updated successfully"
	if res.Transfer != nil {
		msg = "Books exchanged successfully and ownership updated"
	}
	httpx.JSONSuccess(w, msg, res)
}

// ListSent handles GET /api/exchange/sent
func (h *HTTPHandler) ListSent(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListSent(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Sent requests fetched successfully", out)
}

// ListReceived handles GET /api/exchange/received
func (h *HTTPHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListReceived(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Received requests fetched successfully", out)
}

// ListHistory handles GET /api/exchange/history
func (h *HTTPHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	out, err := h.service.ListHistory(r.Context(), httpx.UserIDFrom(r))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "Exchange history fetched successfully", out)
}
