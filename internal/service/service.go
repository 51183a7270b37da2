package service

import (
	"context"
	"io"

	"typewise_alert/internal/logger"
	"typewise_alert/internal/models"
)

// Limits exposes the static cooling-type limit table.
type Limits interface {
	GetLimits(coolingType models.CoolingType) (models.TemperatureLimits, error)
	Table() []LimitEntry
}

// Classifier turns a reading into a breach verdict.
type Classifier interface {
	ClassifyBreach(coolingType models.CoolingType, temperatureC float64) (models.BreachType, error)
}

// Notifier delivers a verdict to one of the sinks.
type Notifier interface {
	NotifyController(breach models.BreachType) (models.Notification, error)
	NotifyEmail(breach models.BreachType) (models.Notification, error)
	Dispatch(target models.AlertTarget, breach models.BreachType) (models.Notification, error)
}

// Alerter runs classification and dispatch for a single reading.
type Alerter interface {
	CheckAndAlert(ctx context.Context, target models.AlertTarget, battery models.BatteryCharacter, temperatureC float64) (models.Alert, error)
}

type Authorization interface {
	Enabled() bool
	SignIn(username, password string) (string, error)
	GenerateToken(subject string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Service aggregates all sub-services.
type Service struct {
	Limits
	Classifier
	Notifier
	Alerter
	Authorization
}

// Deps are the external pieces the services need.
type Deps struct {
	Out  io.Writer // notification stream
	Diag io.Writer // diagnostics stream
	Log  *logger.Logger
	Auth AuthConfig
}

// NewService wires the concrete services.
func NewService(deps Deps) *Service {
	classifier := NewClassifierService()
	notifier := NewDispatcher(deps.Out, deps.Diag, deps.Log)
	return &Service{
		Limits:        NewLimitService(),
		Classifier:    classifier,
		Notifier:      notifier,
		Alerter:       NewAlerterService(classifier, notifier, deps.Log),
		Authorization: NewAuthService(deps.Auth),
	}
}
