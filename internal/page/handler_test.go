package page

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"teeup_backend/internal/booking"
	"teeup_backend/internal/config"
	"teeup_backend/internal/profile"
	"teeup_backend/internal/theme"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type recordingSink struct {
	mu       sync.Mutex
	requests []booking.Request
}

func (r *recordingSink) Emit(_ context.Context, req booking.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, req)
	return nil
}

type PageSuite struct {
	suite.Suite
	sink   *recordingSink
	themes theme.Service
	router *gin.Engine
}

type failingThemes struct{}

func (failingThemes) Get(context.Context, string) (profile.Theme, error) {
	return profile.Theme{}, errors.New("db down")
}

func (failingThemes) Update(context.Context, string, profile.ThemeUpdate) (profile.Theme, error) {
	return profile.Theme{}, errors.New("db down")
}

func (s *PageSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	store, err := profile.NewStore(profile.Catalog(), profile.DefaultSlug)
	s.Require().NoError(err)
	tmpl, err := Templates()
	s.Require().NoError(err)

	s.sink = &recordingSink{}
	cfg := &config.Config{KakaoChannelID: "_teeup", ScrollIdleDelay: 1500 * time.Millisecond}
	s.themes = theme.NewService(store, theme.NewMemoryRepository(), zap.NewNop())
	h := NewHandler(store, booking.NewService(s.sink, zap.NewNop()), s.themes, cfg, zap.NewNop())
	h.now = func() time.Time { return time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC) }

	s.router = gin.New()
	s.router.SetHTMLTemplate(tmpl)
	h.RegisterRoutes(s.router)
}

func (s *PageSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (s *PageSuite) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *PageSuite) TestHomeListsEveryProfile() {
	w := s.get("/")
	s.Equal(http.StatusOK, w.Code)
	for _, slug := range []string{"elliot-kim", "hannah-park", "mina-jang"} {
		s.Contains(w.Body.String(), `href="/profile/`+slug+`"`)
	}
	s.Contains(w.Body.String(), "골프 레슨")
}

func (s *PageSuite) TestProfileRedirectsToDefault() {
	w := s.get("/profile")
	s.Equal(http.StatusFound, w.Code)
	s.Equal("/profile/elliot-kim", w.Header().Get("Location"))
}

func (s *PageSuite) TestKnownProfile() {
	w := s.get("/profile/hannah-park")
	s.Equal(http.StatusOK, w.Code)
	s.Empty(w.Header().Get(FallbackHeader))
	s.Contains(w.Body.String(), `<h1 id="pro-name">Hannah Park</h1>`)
	s.Contains(w.Body.String(), "https://pf.kakao.com/_teeup/chat")
	s.Contains(w.Body.String(), "1500")
	s.NotContains(w.Body.String(), `id="booking"`)
}

func (s *PageSuite) TestThemeApplied() {
	body := s.get("/profile/elliot-kim").Body.String()
	s.Contains(body, "--accent: #0A362B")
	s.Contains(body, `class="theme font-default"`)
	s.NotContains(body, "pro-logo")

	s.Contains(s.get("/profile/mina-jang").Body.String(), `class="theme font-modern"`)

	accent, logo, dark := "#1F4E79", "https://cdn.teeup.golf/hannah.png", false
	_, err := s.themes.Update(context.Background(), "hannah-park", profile.ThemeUpdate{AccentColor: &accent, LogoURL: &logo, DarkModeEnabled: &dark})
	s.Require().NoError(err)

	body = s.get("/profile/hannah-park").Body.String()
	s.Contains(body, "--accent: #1F4E79")
	s.Contains(body, `class="theme font-default light"`)
	s.Contains(body, `<img class="pro-logo" src="https://cdn.teeup.golf/hannah.png"`)
}

func (s *PageSuite) TestThemeLookupFailureUsesDefault() {
	store, err := profile.NewStore(profile.Catalog(), profile.DefaultSlug)
	s.Require().NoError(err)
	tmpl, err := Templates()
	s.Require().NoError(err)
	h := NewHandler(store, booking.NewService(s.sink, zap.NewNop()), failingThemes{}, &config.Config{}, zap.NewNop())
	router := gin.New()
	router.SetHTMLTemplate(tmpl)
	h.RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile/mina-jang", nil))
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `class="theme font-default"`)
}

func (s *PageSuite) TestUnknownSlugFallsBack() {
	w := s.get("/profile/no-such-pro")
	s.Equal(http.StatusOK, w.Code)
	s.Equal("elliot-kim", w.Header().Get(FallbackHeader))
	s.Contains(w.Body.String(), `<h1 id="pro-name">Elliot Kim</h1>`)
}

func (s *PageSuite) TestScheduleWidget() {
	w := s.get("/profile/mina-jang?day=2026-10-16&slot=15:00")
	body := w.Body.String()
	s.Contains(body, "10. 14. (수)")
	s.Contains(body, "10. 20. (화)")
	s.NotContains(body, "10. 21.")
	s.Contains(body, "선택: 2026-10-16 15:00")
}

func (s *PageSuite) TestOpenModalStartsDisabled() {
	w := s.get("/profile/mina-jang?day=2026-10-16&slot=15:00&book=waitlist")
	body := w.Body.String()
	s.Contains(body, `data-state="open"`)
	s.Contains(body, "대기 신청")
	s.Contains(body, "2026-10-16 15:00:00")
	s.Contains(body, `id="booking-submit" disabled`)
	s.Contains(body, `value="청담 Studio"`)
}

func (s *PageSuite) TestSubmitBookingForm() {
	w := s.postForm("/profile/mina-jang/booking", url.Values{
		"type": {"reservation"}, "day": {"2026-10-15"}, "slot": {"10:30"},
		"name": {"Kim"}, "phone": {"01012345678"}, "people": {"2"}, "agree": {"true"},
	})
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `data-state="submitted"`)
	s.Contains(w.Body.String(), "요청이 접수되었습니다")

	s.Require().Len(s.sink.requests, 1)
	req := s.sink.requests[0]
	s.Equal("Mina Jang", req.ProName)
	s.Equal("2026-10-15T10:30:00", req.SelectedDateTime)
	s.Equal(2, req.People)
	s.NotEmpty(req.RequestID)
}

func (s *PageSuite) TestSubmitWithoutConsentStaysOpen() {
	w := s.postForm("/profile/mina-jang/booking", url.Values{"name": {"Kim"}, "phone": {"01012345678"}})
	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Contains(w.Body.String(), `data-state="open"`)
	s.Contains(w.Body.String(), `id="booking-submit" disabled`)
	s.Contains(w.Body.String(), `value="Kim"`)
	s.Empty(s.sink.requests)
}

func TestPageSuite(t *testing.T) {
	suite.Run(t, new(PageSuite))
}
