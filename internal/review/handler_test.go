package review

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type HandlerSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *HandlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	svc := newMemoryService(s.T(), 0)
	s.router = gin.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(s.router.Group("/api"), func(c *gin.Context) { c.Next() })
}

func (s *HandlerSuite) do(method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func (s *HandlerSuite) TestListApplications() {
	w := s.do(http.MethodGet, "/api/admin/applications")
	s.Equal(http.StatusOK, w.Code)

	var snap Snapshot
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &snap))
	s.Equal(3, snap.PendingCount)
	s.Equal(3, snap.ApprovedCount)
	s.Equal("Kim Soo-jin", snap.Pending[0].Name)
	s.Empty(snap.Processing)
	s.Contains(w.Body.String(), `"processing":[]`)
}

func (s *HandlerSuite) TestApproveThenGone() {
	w := s.do(http.MethodPost, "/api/admin/applications/1/approve")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"success","message":"Application approved.","data":{"pendingCount":2,"approvedCount":4}}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/admin/applications/1/approve")
	s.Equal(http.StatusNotFound, w.Code)

	var snap Snapshot
	s.Require().NoError(json.Unmarshal(s.do(http.MethodGet, "/api/admin/applications").Body.Bytes(), &snap))
	for _, a := range snap.Pending {
		s.NotEqual(int64(1), a.ID)
	}
}

func (s *HandlerSuite) TestReject() {
	w := s.do(http.MethodPost, "/api/admin/applications/2/reject")
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"status":"success","message":"Application rejected.","data":{"pendingCount":2,"approvedCount":3}}`, w.Body.String())
}

func (s *HandlerSuite) TestInvalidID() {
	w := s.do(http.MethodPost, "/api/admin/applications/abc/approve")
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerSuite) TestSearchPros() {
	w := s.do(http.MethodGet, "/api/admin/pros?q=gangnam")
	s.Equal(http.StatusOK, w.Code)

	var pros []ApprovedPro
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &pros))
	s.Require().Len(pros, 1)
	s.Equal("Sophia Lee", pros[0].Name)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}
