package auth

import (
	"net/http"
	"strings"

	"bookswap/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

type RegisterReq struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/auth/register
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "All fields are required", validationErrors)
		return
	}

	u, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "User Signup Successfully", u)
}

// Login handles POST /api/auth/login
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, r, err)
		return
	}
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, http.StatusBadRequest, "All fields are required", validationErrors)
		return
	}

	res, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSONSuccess(w, "User Login Successfully", res)
}
