package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/gin-gonic/gin"

	adapter "taskapp/internal/adapter/http"
	"taskapp/internal/adapter/telemetry"
	"taskapp/pkg/config"
)

type UserHandlerSuite struct {
	suite.Suite
	Container *adapter.Container
	Router    *gin.Engine
}

func (s *UserHandlerSuite) SetupTest() {
	s.T().Setenv("JWT_SECRET", "test-secret")

	cfg := config.GetDefaultConfig()
	metrics := telemetry.NewAppMetrics(prometheus.NewRegistry())

	s.Container = adapter.NewContainer(cfg, zerolog.Nop(), metrics)
	s.Router = adapter.SetupRouterForTests(adapter.HandlersConfig{
		UserHandler: s.Container.UserHandler,
		TaskHandler: s.Container.TaskHandler,
	}, cfg)
}

func TestUserHandlerSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(UserHandlerSuite))
}

func (s *UserHandlerSuite) postJSON(path, body string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()

	req, _ := http.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	s.Router.ServeHTTP(rr, req)

	return rr
}

func (s *UserHandlerSuite) TestCreateUserReturns201() {
	rr := s.postJSON("/users", `{"email": "owner@example.com"}`)

	Expect(rr.Code).To(Equal(http.StatusCreated))

	var body map[string]any
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body["id"]).To(Equal("owner@example.com"))
	Expect(body["email"]).To(Equal("owner@example.com"))
}

func (s *UserHandlerSuite) TestCreateUserMissingEmailReturns400() {
	rr := s.postJSON("/users", `{}`)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))

	var body map[string]any
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body["error"]).To(Equal("email is required"))
}

func (s *UserHandlerSuite) TestCreateUserMalformedEmailSurfacesAsServerError() {
	// The core handler does not catch the service's format failure; the
	// transport boundary turns the escaped error into a 500.
	rr := s.postJSON("/users", `{"email": "not-an-email"}`)

	Expect(rr.Code).To(Equal(http.StatusInternalServerError))
	Expect(rr.Body.String()).To(ContainSubstring("INTERNAL_ERROR"))
}

func (s *UserHandlerSuite) TestGetUserReturnsStoredUser() {
	s.postJSON("/users", `{"email": "owner@example.com"}`)

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/owner@example.com", nil)
	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(ContainSubstring(`"is_active":true`))
}

func (s *UserHandlerSuite) TestGetUserMissingReturns404() {
	rr := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/ghost", nil)
	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}

func (s *UserHandlerSuite) TestDeactivateUserReturnsInactiveUser() {
	s.postJSON("/users", `{"email": "owner@example.com"}`)

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/users/owner@example.com", nil)
	s.Router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(ContainSubstring(`"is_active":false`))
}
