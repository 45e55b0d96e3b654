// File: internal/booking/service.go
package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService runs a submission through the modal state machine.
type BookingService interface {
	// Submit returns the submitted modal, or the still-open modal with ErrSubmitDisabled.
	Submit(ctx context.Context, kind Kind, proName, selectedDateTime string, form Form) (Modal, Request, error)
}

type service struct {
	sink   Sink
	logger *zap.Logger
	newID  func() string
}

// NewService creates a booking service emitting to sink.
func NewService(sink Sink, logger *zap.Logger) BookingService {
	return &service{sink: sink, logger: logger, newID: uuid.NewString}
}

func (s *service) Submit(ctx context.Context, kind Kind, proName, selectedDateTime string, form Form) (Modal, Request, error) {
	m := Open(Closed(), proName, nil, selectedDateTime, kind)
	m = Edit(m, Fill(form))

	next, req, err := Submit(m)
	if err != nil {
		s.logger.Debug("Booking submission blocked", zap.Strings("missing", MissingFields(m.Form)))
		return m, Request{}, err
	}

	req.RequestID = s.newID()
	if err := s.sink.Emit(ctx, req); err != nil {
		s.logger.Error("Failed to emit booking request", zap.Error(err), zap.String("requestId", req.RequestID))
		return m, Request{}, fmt.Errorf("emit booking request: %w", err)
	}
	return next, req, nil
}
