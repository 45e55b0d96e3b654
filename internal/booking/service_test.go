package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockSink is a mock type for booking.Sink
type MockSink struct {
	mock.Mock
}

func (m *MockSink) Emit(ctx context.Context, req Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func newTestService(sink Sink) *service {
	return &service{sink: sink, logger: zap.NewNop(), newID: func() string { return "req-1" }}
}

func TestService_SubmitEmits(t *testing.T) {
	sink := new(MockSink)
	sink.On("Emit", mock.Anything, mock.MatchedBy(func(r Request) bool {
		return r.RequestID == "req-1" && r.ProName == "Hannah Park" && r.Kind == KindWaitlist && r.People == 1
	})).Return(nil).Once()

	m, req, err := newTestService(sink).Submit(context.Background(), KindWaitlist, "Hannah Park", "", Form{Name: "Kim", Phone: "010", Agree: true})
	require.NoError(t, err)
	assert.Equal(t, StateSubmitted, m.State)
	assert.Equal(t, "req-1", req.RequestID)
	sink.AssertExpectations(t)
}

func TestService_SubmitBlocked(t *testing.T) {
	sink := new(MockSink)

	m, _, err := newTestService(sink).Submit(context.Background(), KindReservation, "Hannah Park", "", Form{Name: "Kim", Phone: "010"})
	assert.ErrorIs(t, err, ErrSubmitDisabled)
	assert.Equal(t, StateOpen, m.State)
	assert.Equal(t, "Kim", m.Form.Name)
	sink.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
}

func TestService_SinkFailure(t *testing.T) {
	sink := new(MockSink)
	sink.On("Emit", mock.Anything, mock.Anything).Return(errors.New("broken pipe"))

	_, _, err := newTestService(sink).Submit(context.Background(), KindReservation, "Hannah Park", "", Form{Name: "Kim", Phone: "010", Agree: true})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSubmitDisabled)
}
