package service

import "errors"

// Only ErrInvalidCoolingType is fatal. The other two are local to the
// dispatcher and leave later calls unaffected.
var (
	ErrInvalidCoolingType = errors.New("invalid cooling type")
	ErrInvalidBreachType  = errors.New("invalid breach type for email notification")
	ErrInvalidAlertTarget = errors.New("invalid alert target")
)

// Diagnostic lines written to the error stream.
const (
	diagInvalidCoolingType = "Error: Invalid cooling type."
	diagInvalidBreachType  = "Error: Invalid breach type for email notification."
	diagInvalidAlertTarget = "Error: Invalid alert target."
)

// Diagnostic returns the operator-facing line for a taxonomy error, or
// "Error: " plus the error text for anything else.
func Diagnostic(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCoolingType):
		return diagInvalidCoolingType
	case errors.Is(err, ErrInvalidBreachType):
		return diagInvalidBreachType
	case errors.Is(err, ErrInvalidAlertTarget):
		return diagInvalidAlertTarget
	default:
		return "Error: " + err.Error()
	}
}

// IsFatal reports whether err must stop the caller from doing further work.
func IsFatal(err error) bool {
	return errors.Is(err, ErrInvalidCoolingType)
}
