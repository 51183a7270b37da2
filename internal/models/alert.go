package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// BreachType is the verdict for a reading against its range.
// Values outside the declared set stay representable; the controller sink
// prints whatever ordinal it is handed.
type BreachType int

const (
	Normal BreachType = iota
	TooLow
	TooHigh
)

var breachTypeNames = map[BreachType]string{
	Normal:  "NORMAL",
	TooLow:  "TOO_LOW",
	TooHigh: "TOO_HIGH",
}

func (b BreachType) Valid() bool {
	_, ok := breachTypeNames[b]
	return ok
}

func (b BreachType) String() string {
	if name, ok := breachTypeNames[b]; ok {
		return name
	}
	return fmt.Sprintf("BreachType(%d)", int(b))
}

func (b BreachType) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// AlertTarget selects the notification sink.
type AlertTarget int

const (
	ToController AlertTarget = iota
	ToEmail
)

var alertTargetNames = map[AlertTarget]string{
	ToController: "TO_CONTROLLER",
	ToEmail:      "TO_EMAIL",
}

// ErrUnknownAlertTarget is returned when a target name cannot be parsed.
var ErrUnknownAlertTarget = errors.New("unknown alert target")

func (t AlertTarget) Valid() bool {
	_, ok := alertTargetNames[t]
	return ok
}

func (t AlertTarget) String() string {
	if name, ok := alertTargetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("AlertTarget(%d)", int(t))
}

// ParseAlertTarget accepts "TO_EMAIL", "email", "to-controller", "controller".
func ParseAlertTarget(s string) (AlertTarget, error) {
	norm := normalizeName(s)
	for t, name := range alertTargetNames {
		if norm == name || "TO_"+norm == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlertTarget, s)
}

func (t AlertTarget) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts either the name or the numeric value; numbers are
// left unchecked so the dispatcher can reject them.
func (t *AlertTarget) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*t = AlertTarget(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("alert target must be a string or number: %w", err)
	}
	parsed, err := ParseAlertTarget(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Notification is the rendered text a sink emitted, one entry per line.
type Notification struct {
	Target AlertTarget `json:"target"`
	Lines  []string    `json:"lines"`
}

// Alert is the outcome of one classify-and-dispatch call.
type Alert struct {
	ID           string           `json:"alert_id"`
	Target       AlertTarget      `json:"target"`
	Battery      BatteryCharacter `json:"battery"`
	TemperatureC float64          `json:"temperature_c"`
	Breach       BreachType       `json:"breach"`
	Notification []string         `json:"notification,omitempty"`
}
