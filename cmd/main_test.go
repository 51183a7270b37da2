package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"typewise_alert/internal/service"
)

func runCmd(t *testing.T, in string, args ...string) (string, string, error) {
	t.Helper()
	return execute(t, in, append(args, "--log-level", "error")...)
}

// execute runs the root command with exactly args, so config defaults apply.
func execute(t *testing.T, in string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(in))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestCheck_DefaultReading(t *testing.T) {
	out, _, err := runCmd(t, "", "check")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "To: a.b@c.com\nHi, the temperature is too high\n" {
		t.Errorf("stdout: %q", out)
	}
}

func TestCheck_Controller(t *testing.T) {
	out, _, err := runCmd(t, "", "check", "--target", "controller", "--cooling", "passive", "--temp=-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "Header: feed, Breach Type: 1\n" {
		t.Errorf("stdout: %q", out)
	}
}

func TestCheck_InvalidCoolingTypeIsFatal(t *testing.T) {
	out, _, err := runCmd(t, "", "check", "--cooling", "liquid")
	if !errors.Is(err, service.ErrInvalidCoolingType) {
		t.Fatalf("want ErrInvalidCoolingType, got %v", err)
	}
	if out != "" {
		t.Errorf("no notification expected, got %q", out)
	}

	var buf bytes.Buffer
	if code := reportError(&buf, err); code != 1 {
		t.Errorf("exit code: want 1, got %d", code)
	}
	if buf.String() != "Error: Invalid cooling type.\n" {
		t.Errorf("diagnostic: %q", buf.String())
	}
}

func TestCheck_InvalidTargetIsReportedNotFatal(t *testing.T) {
	out, errOut, err := runCmd(t, "", "check", "--target", "pager")
	if err != nil {
		t.Fatalf("invalid target must not fail the command: %v", err)
	}
	if out != "" {
		t.Errorf("no notification expected, got %q", out)
	}
	if !strings.Contains(errOut, "Error: Invalid alert target.\n") {
		t.Errorf("stderr: %q", errOut)
	}
}

func TestLimits(t *testing.T) {
	out, _, err := runCmd(t, "", "limits")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[1], "HI_ACTIVE_COOLING") || !strings.Contains(lines[1], "45.0") {
		t.Errorf("unexpected table:\n%s", out)
	}
}

func TestHashPassword(t *testing.T) {
	out, _, err := runCmd(t, "s3cr3t\n", "hash-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hash := strings.TrimSpace(out)
	if err := service.VerifyPassword(hash, "s3cr3t"); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}
}

func TestToken_RequiresSigningKey(t *testing.T) {
	t.Setenv("TYPEWISE_AUTH_SIGNING_KEY", "")
	if _, _, err := runCmd(t, "", "token"); !errors.Is(err, service.ErrAuthDisabled) {
		t.Fatalf("want ErrAuthDisabled, got %v", err)
	}
}

func TestToken_Minted(t *testing.T) {
	t.Setenv("TYPEWISE_AUTH_SIGNING_KEY", "k")
	out, _, err := runCmd(t, "", "token", "--subject", "ops")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sub, err := service.NewAuthService(service.AuthConfig{SigningKey: "k"}).ParseToken(strings.TrimSpace(out))
	if err != nil || sub != "ops" {
		t.Fatalf("token does not parse: sub=%q err=%v", sub, err)
	}
}

func TestReportError_Generic(t *testing.T) {
	var buf bytes.Buffer
	if code := reportError(&buf, errors.New("boom")); code != 1 {
		t.Errorf("exit code: %d", code)
	}
	if buf.String() != "Error: boom\n" {
		t.Errorf("output: %q", buf.String())
	}
}

func TestCheck_DefaultLogLevelKeepsStderrToDiagnostics(t *testing.T) {
	t.Setenv("TYPEWISE_LOG_LEVEL", "")
	out, errOut, err := execute(t, "", "check", "--target", "pager")
	if err != nil {
		t.Fatalf("invalid target must not fail the command: %v", err)
	}
	if out != "" {
		t.Errorf("no notification expected, got %q", out)
	}
	if errOut != "Error: Invalid alert target.\n" {
		t.Errorf("stderr: want only the diagnostic line, got %q", errOut)
	}
}
