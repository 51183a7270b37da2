package service

import (
	"fmt"
	"io"
	"strings"

	"typewise_alert/internal/logger"
	"typewise_alert/internal/models"

	"go.uber.org/zap/zapcore"
)

const (
	controllerHeader uint16 = 0xfeed
	emailRecipient          = "a.b@c.com"
)

var emailMessages = map[models.BreachType]string{
	models.Normal:  "Hi, the temperature is normal",
	models.TooLow:  "Hi, the temperature is too low",
	models.TooHigh: "Hi, the temperature is too high",
}

// Dispatcher renders breach notifications and writes them to the notification
// stream. Diagnostics for rejected input go to a separate stream.
// Each notification is written with a single locked Write so concurrent
// callers never interleave lines.
type Dispatcher struct {
	out  zapcore.WriteSyncer
	diag zapcore.WriteSyncer
	log  *logger.Logger
}

// NewDispatcher wires the two streams. Nil writers and a nil log discard output.
func NewDispatcher(out, diag io.Writer, log *logger.Logger) *Dispatcher {
	if out == nil {
		out = io.Discard
	}
	if diag == nil {
		diag = io.Discard
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Dispatcher{
		out:  zapcore.Lock(zapcore.AddSync(out)),
		diag: zapcore.Lock(zapcore.AddSync(diag)),
		log:  log,
	}
}

// ControllerLine renders the controller status line. Any ordinal is accepted.
func ControllerLine(breach models.BreachType) string {
	return fmt.Sprintf("Header: %x, Breach Type: %d", controllerHeader, int(breach))
}

// EmailLines renders the recipient and message lines for breach.
func EmailLines(breach models.BreachType) ([]string, error) {
	msg, ok := emailMessages[breach]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBreachType, int(breach))
	}
	return []string{"To: " + emailRecipient, msg}, nil
}

// NotifyController emits the controller status line.
func (d *Dispatcher) NotifyController(breach models.BreachType) (models.Notification, error) {
	n := models.Notification{Target: models.ToController, Lines: []string{ControllerLine(breach)}}
	if err := d.emit(n); err != nil {
		return models.Notification{}, err
	}
	d.log.Debugw("controller notified", "breach", int(breach))
	return n, nil
}

// NotifyEmail emits the email notification; unknown breach values are
// reported on the diagnostics stream and nothing is sent.
func (d *Dispatcher) NotifyEmail(breach models.BreachType) (models.Notification, error) {
	lines, err := EmailLines(breach)
	if err != nil {
		d.reject(err, "breach", int(breach))
		return models.Notification{}, err
	}
	n := models.Notification{Target: models.ToEmail, Lines: lines}
	if err := d.emit(n); err != nil {
		return models.Notification{}, err
	}
	d.log.Debugw("email notified", "recipient", emailRecipient, "breach", breach.String())
	return n, nil
}

// Dispatch routes breach to the sink selected by target.
func (d *Dispatcher) Dispatch(target models.AlertTarget, breach models.BreachType) (models.Notification, error) {
	switch target {
	case models.ToController:
		return d.NotifyController(breach)
	case models.ToEmail:
		return d.NotifyEmail(breach)
	default:
		err := fmt.Errorf("%w: %d", ErrInvalidAlertTarget, int(target))
		d.reject(err, "target", int(target))
		return models.Notification{}, err
	}
}

func (d *Dispatcher) emit(n models.Notification) error {
	if _, err := io.WriteString(d.out, strings.Join(n.Lines, "\n")+"\n"); err != nil {
		d.log.Errorw("notification write failed", "target", n.Target.String(), "err", err)
		return fmt.Errorf("write %s notification: %w", n.Target, err)
	}
	return nil
}

func (d *Dispatcher) reject(err error, kv ...interface{}) {
	_, _ = io.WriteString(d.diag, Diagnostic(err)+"\n")
	d.log.Debugw("notification rejected", append([]interface{}{"err", err}, kv...)...)
}
