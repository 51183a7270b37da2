package handlers

import (
	"bytes"
	"context"
	"net/http"

	"typewise_alert/internal/models"
	"typewise_alert/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	enabled     bool
	signInToken string
	signInErr   error
	parseSub    string
	parseErr    error

	lastSignInUsername string
	lastParseToken     string
}

func (m *mockAuth) Enabled() bool { return m.enabled }

func (m *mockAuth) SignIn(username, password string) (string, error) {
	m.lastSignInUsername = username
	return m.signInToken, m.signInErr
}

func (m *mockAuth) GenerateToken(subject string) (string, error) {
	return m.signInToken, m.signInErr
}

func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseSub, m.parseErr
}

type mockAlerter struct {
	alert models.Alert
	err   error
	calls int

	lastTarget  models.AlertTarget
	lastBattery models.BatteryCharacter
	lastTemp    float64
}

func (m *mockAlerter) CheckAndAlert(ctx context.Context, target models.AlertTarget, battery models.BatteryCharacter, temperatureC float64) (models.Alert, error) {
	m.calls++
	m.lastTarget = target
	m.lastBattery = battery
	m.lastTemp = temperatureC
	return m.alert, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

// realServices wires the production services with buffers as sinks.
func realServices(out, diag *bytes.Buffer) *service.Service {
	return service.NewService(service.Deps{Out: out, Diag: diag})
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
