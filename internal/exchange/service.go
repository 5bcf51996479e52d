package exchange

import (
	"context"
	"errors"
	"fmt"

	"bookswap/internal/apperr"
	"bookswap/internal/book"
	"bookswap/internal/ownership"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var errDuplicate = apperr.Conflict("A similar pending request already exists")

type Service struct {
	repo   Repository
	logger *zap.Logger
	tracer trace.Tracer
}

func NewService(repo Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		logger: logger,
		tracer: otel.Tracer("bookswap/internal/exchange"),
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Create records a pending proposal to swap bookOfferedID, which the
// requester must own, for bookRequestedID.
func (s *Service) Create(ctx context.Context, requesterID, bookRequestedID, bookOfferedID string) (req Request, err error) {
	ctx, span := s.tracer.Start(ctx, "exchange.Create", trace.WithAttributes(
		attribute.String("requester.id", requesterID),
		attribute.String("book.requested", bookRequestedID),
		attribute.String("book.offered", bookOfferedID),
	))
	defer func() { endSpan(span, err) }()

	if bookRequestedID == "" || bookOfferedID == "" {
		return Request{}, apperr.BadRequest("bookRequestedId and bookOfferedId are required")
	}

	err = s.repo.InTx(ctx, func(ctx context.Context, tx Tx) error {
		books, err := tx.LockBooks(ctx, bookRequestedID, bookOfferedID)
		if err != nil {
			return err
		}
		requested, ok := books[bookRequestedID]
		if !ok {
			return apperr.NotFound("Requested book not found")
		}
		if requested.OwnedBy == requesterID {
			return apperr.BadRequest("You cannot request your own book")
		}
		offered, ok := books[bookOfferedID]
		if !ok || offered.OwnedBy != requesterID {
			return apperr.BadRequest("You do not own the offered book")
		}

		dup, err := tx.HasPendingBetween(ctx, offered.ID, requested.ID)
		if err != nil {
			return err
		}
		if dup {
			return errDuplicate
		}

		req = Request{
			RequesterID:     requesterID,
			RequesteeID:     requested.OwnedBy,
			BookOfferedID:   offered.ID,
			BookRequestedID: requested.ID,
			Status:          StatusPending,
		}
		if err := tx.Insert(ctx, &req); err != nil {
			if errors.Is(err, ErrDuplicatePending) {
				return errDuplicate
			}
			return err
		}
		return nil
	})
	if err != nil {
		return Request{}, err
	}

	s.logger.Info("exchange request created",
		zap.String("request_id", req.ID),
		zap.String("requester_id", req.RequesterID),
		zap.String("requestee_id", req.RequesteeID),
	)
	return req, nil
}

// UpdateStatus moves a request the acting user received to status. Accepting
// transfers both books in the same transaction.
func (s *Service) UpdateStatus(ctx context.Context, actingUserID, requestID, status string) (res Resolution, err error) {
	ctx, span := s.tracer.Start(ctx, "exchange.UpdateStatus", trace.WithAttributes(
		attribute.String("request.id", requestID),
		attribute.String("request.status", status),
	))
	defer func() { endSpan(span, err) }()

	target, ok := ParseStatus(status)
	if !ok {
		return Resolution{}, apperr.BadRequest("Invalid status value")
	}

	authorize := func(req Request) error {
		if req.RequesteeID != actingUserID {
			return apperr.Unauthorized("You are not authorized to update this request")
		}
		return nil
	}

	err = s.repo.InTx(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		res, err = s.resolve(ctx, tx, requestID, target, authorize)
		return err
	})
	if err != nil {
		return Resolution{}, err
	}
	return res, nil
}

// Fulfill accepts a pending request and transfers its books without an
// acting-user check. It is meant for trusted callers only.
func (s *Service) Fulfill(ctx context.Context, requestID string) (res Resolution, err error) {
	ctx, span := s.tracer.Start(ctx, "exchange.Fulfill", trace.WithAttributes(
		attribute.String("request.id", requestID),
	))
	defer func() { endSpan(span, err) }()

	err = s.repo.InTx(ctx, func(ctx context.Context, tx Tx) error {
		var err error
		res, err = s.resolve(ctx, tx, requestID, StatusAccepted, nil)
		return err
	})
	if err != nil {
		return Resolution{}, err
	}
	return res, nil
}

func (s *Service) resolve(ctx context.Context, tx Tx, requestID string, target Status, authorize func(Request) error) (Resolution, error) {
	req, err := tx.GetRequest(ctx, requestID)
	if errors.Is(err, ErrNotFound) {
		return Resolution{}, apperr.NotFound("Exchange request not found")
	}
	if err != nil {
		return Resolution{}, err
	}
	if authorize != nil {
		if err := authorize(req); err != nil {
			return Resolution{}, err
		}
	}

	// Lock order is books first, then the request row, matching Create and
	// the bulk reject below.
	books, err := tx.LockBooks(ctx, req.BookRequestedID, req.BookOfferedID)
	if err != nil {
		return Resolution{}, err
	}
	req, err = tx.LockRequest(ctx, requestID)
	if err != nil {
		return Resolution{}, err
	}

	switch {
	case req.Status == StatusPending && target == StatusPending:
		return Resolution{Request: req}, nil
	case req.Status.Terminal():
		return Resolution{}, apperr.Conflict(fmt.Sprintf("Exchange request has already been %s", req.Status))
	case target == StatusRejected:
		updated, err := tx.SetStatus(ctx, req.ID, StatusRejected)
		if err != nil {
			return Resolution{}, err
		}
		s.logger.Info("exchange request rejected", zap.String("request_id", req.ID))
		return Resolution{Request: updated}, nil
	}

	transfer, err := s.transfer(ctx, tx, req, books)
	if err != nil {
		return Resolution{}, err
	}
	updated, err := tx.SetStatus(ctx, req.ID, StatusAccepted)
	if err != nil {
		return Resolution{}, err
	}
	n, err := tx.RejectPendingInvolving(ctx, []string{req.BookRequestedID, req.BookOfferedID})
	if err != nil {
		return Resolution{}, err
	}

	s.logger.Info("exchange request accepted",
		zap.String("request_id", req.ID),
		zap.String("book_requested", req.BookRequestedID),
		zap.String("book_offered", req.BookOfferedID),
		zap.Int64("auto_rejected", n),
	)
	return Resolution{Request: updated, Transfer: transfer}, nil
}

// transfer swaps the owners of both books of req. books must be locked.
func (s *Service) transfer(ctx context.Context, tx Tx, req Request, books map[string]book.Book) (*Transfer, error) {
	requested, okRequested := books[req.BookRequestedID]
	offered, okOffered := books[req.BookOfferedID]
	if !okRequested || !okOffered {
		return nil, apperr.NotFound("Books involved in the exchange not found")
	}
	if requested.OwnedBy != req.RequesteeID || offered.OwnedBy != req.RequesterID {
		return nil, apperr.Conflict("Books involved in the exchange have changed owners")
	}

	err := ownership.Swap(ctx, tx,
		ownership.Holding{BookID: requested.ID, OwnerID: req.RequesteeID},
		ownership.Holding{BookID: offered.ID, OwnerID: req.RequesterID},
	)
	if err != nil {
		return nil, err
	}

	requested.OwnedBy, requested.IsOffered = req.RequesterID, false
	offered.OwnedBy, offered.IsOffered = req.RequesteeID, false
	return &Transfer{BookRequested: requested, BookOffered: offered}, nil
}

// ListReceived returns pending requests addressed to userID.
func (s *Service) ListReceived(ctx context.Context, userID string) ([]Detail, error) {
	return s.listPending(ctx, userID, SideReceived)
}

// ListSent returns pending requests userID made.
func (s *Service) ListSent(ctx context.Context, userID string) ([]Detail, error) {
	return s.listPending(ctx, userID, SideSent)
}

func (s *Service) listPending(ctx context.Context, userID string, side Side) ([]Detail, error) {
	out, err := s.repo.ListPending(ctx, userID, side)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []Detail{}
	}
	return out, nil
}

// ListHistory returns resolved requests userID took part in, each oriented
// as given and received book from userID's side.
func (s *Service) ListHistory(ctx context.Context, userID string) ([]HistoryEntry, error) {
	details, err := s.repo.ListResolved(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryEntry, 0, len(details))
	for _, d := range details {
		out = append(out, d.ViewFor(userID))
	}
	return out, nil
}
