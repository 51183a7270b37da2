package service

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"typewise_alert/internal/logger"
	"typewise_alert/internal/models"
)

func newTestDispatcher() (*Dispatcher, *bytes.Buffer, *bytes.Buffer) {
	var out, diag bytes.Buffer
	return NewDispatcher(&out, &diag, logger.Nop()), &out, &diag
}

func TestNotifyController(t *testing.T) {
	t.Parallel()

	cases := []struct {
		breach models.BreachType
		want   string
	}{
		{models.Normal, "Header: feed, Breach Type: 0\n"},
		{models.TooLow, "Header: feed, Breach Type: 1\n"},
		{models.TooHigh, "Header: feed, Breach Type: 2\n"},
		{models.BreachType(7), "Header: feed, Breach Type: 7\n"},
		{models.BreachType(-1), "Header: feed, Breach Type: -1\n"},
	}
	for _, tc := range cases {
		d, out, diag := newTestDispatcher()
		n, err := d.NotifyController(tc.breach)
		if err != nil {
			t.Fatalf("NotifyController(%d): unexpected error %v", int(tc.breach), err)
		}
		if out.String() != tc.want {
			t.Errorf("NotifyController(%d) wrote %q, want %q", int(tc.breach), out.String(), tc.want)
		}
		if n.Target != models.ToController || len(n.Lines) != 1 {
			t.Errorf("unexpected notification: %+v", n)
		}
		if diag.Len() != 0 {
			t.Errorf("unexpected diagnostics: %q", diag.String())
		}
	}
}

func TestNotifyEmail(t *testing.T) {
	t.Parallel()

	cases := map[models.BreachType]string{
		models.Normal:  "To: a.b@c.com\nHi, the temperature is normal\n",
		models.TooLow:  "To: a.b@c.com\nHi, the temperature is too low\n",
		models.TooHigh: "To: a.b@c.com\nHi, the temperature is too high\n",
	}
	for breach, want := range cases {
		d, out, _ := newTestDispatcher()
		n, err := d.NotifyEmail(breach)
		if err != nil {
			t.Fatalf("NotifyEmail(%v): unexpected error %v", breach, err)
		}
		if out.String() != want {
			t.Errorf("NotifyEmail(%v) wrote %q, want %q", breach, out.String(), want)
		}
		if n.Target != models.ToEmail || len(n.Lines) != 2 {
			t.Errorf("unexpected notification: %+v", n)
		}
	}
}

func TestNotifyEmail_InvalidBreachType(t *testing.T) {
	t.Parallel()

	for _, b := range []models.BreachType{-1, 3} {
		d, out, diag := newTestDispatcher()
		_, err := d.NotifyEmail(b)
		if !errors.Is(err, ErrInvalidBreachType) {
			t.Fatalf("NotifyEmail(%d): want ErrInvalidBreachType, got %v", int(b), err)
		}
		if out.Len() != 0 {
			t.Errorf("no email expected, got %q", out.String())
		}
		if diag.String() != "Error: Invalid breach type for email notification.\n" {
			t.Errorf("diagnostic: got %q", diag.String())
		}
	}
}

func TestDispatch_Routes(t *testing.T) {
	t.Parallel()

	d, out, _ := newTestDispatcher()
	if _, err := d.Dispatch(models.ToEmail, models.TooHigh); err != nil {
		t.Fatalf("Dispatch email: %v", err)
	}
	if out.String() != "To: a.b@c.com\nHi, the temperature is too high\n" {
		t.Errorf("email output: %q", out.String())
	}

	d, out, _ = newTestDispatcher()
	if _, err := d.Dispatch(models.ToController, models.TooLow); err != nil {
		t.Fatalf("Dispatch controller: %v", err)
	}
	if out.String() != "Header: feed, Breach Type: 1\n" {
		t.Errorf("controller output: %q", out.String())
	}
}

func TestDispatch_InvalidAlertTarget(t *testing.T) {
	t.Parallel()

	d, out, diag := newTestDispatcher()
	_, err := d.Dispatch(models.AlertTarget(-1), models.TooHigh)
	if !errors.Is(err, ErrInvalidAlertTarget) {
		t.Fatalf("want ErrInvalidAlertTarget, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("no sink should run, got %q", out.String())
	}
	if diag.String() != "Error: Invalid alert target.\n" {
		t.Errorf("diagnostic: got %q", diag.String())
	}

	// the dispatcher stays usable after a rejected call
	if _, err := d.Dispatch(models.ToController, models.Normal); err != nil {
		t.Fatalf("follow-up dispatch failed: %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestDispatch_WriteError(t *testing.T) {
	t.Parallel()

	var diag bytes.Buffer
	d := NewDispatcher(failingWriter{}, &diag, nil)
	if _, err := d.NotifyController(models.Normal); err == nil {
		t.Fatal("expected write error")
	}
}

func TestDispatch_ConcurrentEmailsDoNotInterleave(t *testing.T) {
	t.Parallel()

	d, out, _ := newTestDispatcher()
	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = d.Dispatch(models.ToEmail, models.TooLow)
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 2*n {
		t.Fatalf("want %d lines, got %d", 2*n, len(lines))
	}
	for i := 0; i < len(lines); i += 2 {
		if lines[i] != "To: a.b@c.com" || lines[i+1] != "Hi, the temperature is too low" {
			t.Fatalf("interleaved output at line %d: %q / %q", i, lines[i], lines[i+1])
		}
	}
}
