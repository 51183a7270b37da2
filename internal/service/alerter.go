package service

import (
	"context"

	"typewise_alert/internal/logger"
	"typewise_alert/internal/models"

	"github.com/google/uuid"
)

// AlerterService composes classification and dispatch for a single reading.
type AlerterService struct {
	classifier Classifier
	notifier   Notifier
	log        *logger.Logger
}

func NewAlerterService(classifier Classifier, notifier Notifier, log *logger.Logger) *AlerterService {
	if log == nil {
		log = logger.Nop()
	}
	return &AlerterService{classifier: classifier, notifier: notifier, log: log}
}

// CheckAndAlert classifies temperatureC for battery and dispatches the verdict to target.
// An invalid cooling type stops the call before any sink runs. Dispatcher
// errors are returned together with the classified alert.
func (s *AlerterService) CheckAndAlert(ctx context.Context, target models.AlertTarget, battery models.BatteryCharacter, temperatureC float64) (models.Alert, error) {
	if err := ctx.Err(); err != nil {
		return models.Alert{}, err
	}

	alert := models.Alert{
		ID:           uuid.NewString(),
		Target:       target,
		Battery:      battery,
		TemperatureC: temperatureC,
	}

	breach, err := s.classifier.ClassifyBreach(battery.CoolingType, temperatureC)
	if err != nil {
		s.log.Debugw("classification failed", "alert_id", alert.ID, "cooling_type", int(battery.CoolingType), "err", err)
		return models.Alert{}, err
	}
	alert.Breach = breach

	n, err := s.notifier.Dispatch(target, breach)
	if err != nil {
		s.log.Debugw("alert not dispatched", "alert_id", alert.ID, "target", int(target), "breach", breach.String(), "err", err)
		return alert, err
	}
	alert.Notification = n.Lines

	s.log.Debugw("alert dispatched",
		"alert_id", alert.ID,
		"target", target.String(),
		"brand", battery.Brand,
		"cooling_type", battery.CoolingType.String(),
		"temperature_c", temperatureC,
		"breach", breach.String(),
	)
	return alert, nil
}
