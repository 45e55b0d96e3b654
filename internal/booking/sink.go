// File: internal/booking/sink.go
package booking

import (
	"context"

	"go.uber.org/zap"
)

// Sink receives submitted booking requests.
type Sink interface {
	Emit(ctx context.Context, req Request) error
}

// LogSink writes each request as one structured log entry. Nothing is persisted.
type LogSink struct {
	logger *zap.Logger
}

func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(_ context.Context, req Request) error {
	s.logger.Info("Booking request received",
		zap.String("requestId", req.RequestID),
		zap.String("type", string(req.Kind)),
		zap.String("proName", req.ProName),
		zap.String("selectedDateTime", req.SelectedDateTime),
		zap.String("name", req.Name),
		zap.String("phone", req.Phone),
		zap.Int("people", req.People),
		zap.String("location", req.Location),
		zap.String("service", req.Service),
		zap.String("note", req.Note),
	)
	return nil
}
