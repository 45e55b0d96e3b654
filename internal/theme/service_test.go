package theme

import (
	"context"
	"errors"
	"testing"

	"teeup_backend/internal/common"
	"teeup_backend/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockRepository is a mock type for theme.Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Find(ctx context.Context, slug string) (profile.Theme, bool, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(profile.Theme), args.Bool(1), args.Error(2)
}

func (m *MockRepository) Save(ctx context.Context, slug string, t profile.Theme) error {
	args := m.Called(ctx, slug, t)
	return args.Error(0)
}

func newTestStore(t *testing.T) *profile.Store {
	t.Helper()
	store, err := profile.NewStore(profile.Catalog(), profile.DefaultSlug)
	require.NoError(t, err)
	return store
}

func strPtr(s string) *string { return &s }

func TestService_GetFallsBackToCatalog(t *testing.T) {
	svc := NewService(newTestStore(t), NewMemoryRepository(), zap.NewNop())

	th, err := svc.Get(context.Background(), "elliot-kim")
	require.NoError(t, err)
	assert.Equal(t, profile.DefaultTheme(), th)

	th, err = svc.Get(context.Background(), "mina-jang")
	require.NoError(t, err)
	assert.Equal(t, profile.FontModern, th.FontPreset)

	_, err = svc.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestService_UpdateMergesOverCurrent(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newTestStore(t), NewMemoryRepository(), zap.NewNop())

	th, err := svc.Update(ctx, "mina-jang", profile.ThemeUpdate{AccentColor: strPtr("#AA3300")})
	require.NoError(t, err)
	assert.Equal(t, "#AA3300", th.AccentColor)
	assert.Equal(t, profile.FontModern, th.FontPreset, "catalog override survives")
	assert.True(t, th.DarkModeEnabled)

	dark := false
	th, err = svc.Update(ctx, "mina-jang", profile.ThemeUpdate{DarkModeEnabled: &dark})
	require.NoError(t, err)
	assert.Equal(t, "#AA3300", th.AccentColor, "earlier update survives")
	assert.False(t, th.DarkModeEnabled)

	got, err := svc.Get(ctx, "mina-jang")
	require.NoError(t, err)
	assert.Equal(t, th, got)
}

func TestService_UpdateRejectsInvalid(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Find", mock.Anything, "hannah-park").Return(profile.Theme{}, false, nil)
	svc := NewService(newTestStore(t), repo, zap.NewNop())

	_, err := svc.Update(context.Background(), "hannah-park", profile.ThemeUpdate{AccentColor: strPtr("teal")})
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", apiErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_UpdateUnknownSlug(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(newTestStore(t), repo, zap.NewNop())

	_, err := svc.Update(context.Background(), "nobody", profile.ThemeUpdate{})
	assert.ErrorIs(t, err, ErrProfileNotFound)
	repo.AssertExpectations(t)
}

func TestService_SaveFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Find", mock.Anything, "elliot-kim").Return(profile.Theme{}, false, nil)
	repo.On("Save", mock.Anything, "elliot-kim", mock.Anything).Return(errors.New("disk full"))
	svc := NewService(newTestStore(t), repo, zap.NewNop())

	_, err := svc.Update(context.Background(), "elliot-kim", profile.ThemeUpdate{})
	assert.ErrorContains(t, err, "disk full")
	repo.AssertExpectations(t)
}
