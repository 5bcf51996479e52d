package main

import (
	"context"
	"net/http"
	"time"

	"bookswap/internal/auth"
	"bookswap/internal/book"
	"bookswap/internal/exchange"
	"bookswap/internal/user"
)

type handlers struct {
	auth     *auth.HTTPHandler
	users    *user.HTTPHandler
	books    *book.HTTPHandler
	exchange *exchange.HTTPHandler

	requireAuth func(http.Handler) http.Handler
	authLimit   func(http.Handler) http.Handler
	ready       func(ctx context.Context) error
}

func newRouter(h handlers) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := h.ready(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Handle("POST /api/auth/register", h.authLimit(http.HandlerFunc(h.auth.Register)))
	router.Handle("POST /api/auth/login", h.authLimit(http.HandlerFunc(h.auth.Login)))

	protected := func(pattern string, fn http.HandlerFunc) {
		router.Handle(pattern, h.requireAuth(fn))
	}

	protected("GET /api/user", h.users.GetCurrentUser)
	protected("PUT /api/user/book/{id}", h.users.ToggleDesired)

	protected("GET /api/book", h.books.List)
	protected("POST /api/book", h.books.Add)
	protected("GET /api/book/all-offered", h.books.ListOffered)
	protected("GET /api/book/desired", h.users.ListDesired)
	protected("PUT /api/book/{id}", h.books.Update)
	protected("DELETE /api/book/{id}", h.books.Delete)

	protected("POST /api/exchange", h.exchange.Create)
	protected("GET /api/exchange/sent", h.exchange.ListSent)
	protected("GET /api/exchange/received", h.exchange.ListReceived)
	protected("GET /api/exchange/history", h.exchange.ListHistory)
	protected("PUT /api/exchange/status", h.exchange.UpdateStatus)

	return router
}
