package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Output: &buf})

	log.WithComponent("bot").Info("Authorized on account", "username", "tgcore_bot")
	log.Debug("hidden")

	out := buf.String()
	for _, want := range []string{`"message":"Authorized on account"`, `"component":"bot"`, `"username":"tgcore_bot"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %s", out, want)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug entry logged in production")
	}
}

func TestDevelopmentLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "development", Output: &buf})

	log.Debug("Sending request", "method", "getMe")

	if out := buf.String(); !strings.Contains(out, "Sending request") || !strings.Contains(out, "getMe") {
		t.Errorf("got %q", out)
	}
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Output: &buf})

	log.Printf("[Fx] PROVIDE %s", "config")

	if out := buf.String(); !strings.Contains(out, "[Fx] PROVIDE config") {
		t.Errorf("got %q", out)
	}
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.With("a", 1).Error("ignored")
}
