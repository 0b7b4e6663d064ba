package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestNewTarget_Valid(t *testing.T) {
	tgt, err := NewTarget("api", "example.com", 443, "health")
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	if tgt.HTTPSPath != "/health" {
		t.Fatalf("want normalized path /health, got %q", tgt.HTTPSPath)
	}
	if !tgt.HasHTTPSPath() {
		t.Fatalf("expected HTTPS path configured")
	}
	if tgt.Addr() != "example.com:443" {
		t.Fatalf("addr wrong: %q", tgt.Addr())
	}
}

func TestNewTarget_Validation(t *testing.T) {
	cases := []struct {
		name string
		n, h string
		port int
	}{
		{"empty name", "", "example.com", 443},
		{"blank name", "   ", "example.com", 443},
		{"empty host", "api", "", 443},
		{"port zero", "api", "example.com", 0},
		{"port too high", "api", "example.com", 70000},
		{"port negative", "api", "example.com", -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewTarget(c.n, c.h, c.port, ""); !errors.Is(err, ErrInvalidTarget) {
				t.Fatalf("want ErrInvalidTarget, got %v", err)
			}
		})
	}
}

func TestNewTarget_NoPathMeansNoProbe(t *testing.T) {
	tgt, err := NewTarget("db", "localhost", 5432, "")
	if err != nil {
		t.Fatalf("NewTarget: %v", err)
	}
	if tgt.HasHTTPSPath() {
		t.Fatalf("empty path must mean no HTTPS probe")
	}
}

func TestNormalizePath_Idempotent(t *testing.T) {
	if got := NormalizePath("/health"); got != "/health" {
		t.Fatalf("already-rooted path changed: %q", got)
	}
	if got := NormalizePath(NormalizePath("health")); got != "/health" {
		t.Fatalf("double normalize wrong: %q", got)
	}
	if got := NormalizePath(""); got != "" {
		t.Fatalf("empty path must stay empty, got %q", got)
	}
}

func TestResult_IsHealthy(t *testing.T) {
	tgt, _ := NewTarget("api", "example.com", 443, "/health")
	cases := []struct {
		name string
		tcp  bool
		http HTTPSStatus
		want bool
	}{
		{"tcp ok no https", true, HTTPSNotAttempted, true},
		{"tcp ok https ok", true, HTTPSSucceeded, true},
		{"tcp ok https failed", true, HTTPSFailed, false},
		{"tcp failed", false, HTTPSNotAttempted, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Result{Target: tgt, TCPSuccess: c.tcp, HTTPS: c.http}
			if r.IsHealthy() != c.want {
				t.Fatalf("IsHealthy=%v, want %v", r.IsHealthy(), c.want)
			}
		})
	}
}

func TestResult_JSONRoundTrip(t *testing.T) {
	tgt, _ := NewTarget("api", "example.com", 443, "/health")
	want := Result{
		Target:     tgt,
		TCPSuccess: true,
		HTTPS:      HTTPSFailed,
		Message:    "TCP connection successful to example.com:443; HTTPS GET returned status 503",
		CheckedAt:  time.Date(2025, 8, 18, 12, 0, 0, 0, time.UTC),
	}
	b, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Result
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Target != want.Target || got.TCPSuccess != want.TCPSuccess ||
		got.HTTPS != want.HTTPS || got.Message != want.Message ||
		!got.CheckedAt.Equal(want.CheckedAt) {
		t.Fatalf("mismatch after round-trip:\nwant=%+v\ngot =%+v", want, got)
	}
}

func TestHTTPSStatus_JSONStrings(t *testing.T) {
	for s, want := range map[HTTPSStatus]string{
		HTTPSNotAttempted: `"not_attempted"`,
		HTTPSSucceeded:    `"succeeded"`,
		HTTPSFailed:       `"failed"`,
	} {
		b, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("marshal %v: %v", s, err)
		}
		if string(b) != want {
			t.Fatalf("status %v encoded as %s, want %s", s, b, want)
		}
	}
	var s HTTPSStatus
	if err := json.Unmarshal([]byte(`"bogus"`), &s); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
