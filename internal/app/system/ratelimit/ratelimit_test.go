package ratelimit

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_BurstThenBlock(t *testing.T) {
	l := New(3, time.Minute)
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		if !l.Allow("a") {
			t.Fatalf("attempt %d blocked inside burst", i+1)
		}
	}
	if l.Allow("a") {
		t.Error("attempt beyond burst allowed")
	}
	if !l.Allow("b") {
		t.Error("other key blocked")
	}

	now = now.Add(20 * time.Second)
	if !l.Allow("a") {
		t.Error("token not refilled after one interval")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, time.Hour)
	l.Allow("a")
	if l.Allow("a") {
		t.Fatal("second attempt allowed")
	}
	l.Reset("a")
	if !l.Allow("a") {
		t.Error("attempt after Reset blocked")
	}
}

func TestLimiter_SweepDropsIdle(t *testing.T) {
	l := New(1, time.Minute)
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("a")
	now = now.Add(5 * time.Minute)
	l.Allow("b")

	if _, ok := l.buckets["a"]; ok {
		t.Error("idle bucket not swept")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"}, "1.2.3.4:5", "10.0.0.1"},
		{"real ip", map[string]string{"X-Real-IP": " 10.0.0.9 "}, "1.2.3.4:5", "10.0.0.9"},
		{"remote addr", nil, "1.2.3.4:5678", "1.2.3.4"},
		{"remote without port", nil, "1.2.3.4", "1.2.3.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/login", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoginLimiter_AccountBudget(t *testing.T) {
	ll := NewLoginLimiter()
	for i := 0; i < 5; i++ {
		r := httptest.NewRequest("POST", "/login", nil)
		r.RemoteAddr = fmt.Sprintf("10.0.0.%d:1000", i+1)
		if ok, _ := ll.Check(r, "HR.Manager"); !ok {
			t.Fatalf("attempt %d blocked", i+1)
		}
	}
	r := httptest.NewRequest("POST", "/login", nil)
	r.RemoteAddr = "10.0.1.1:1000"
	if ok, msg := ll.Check(r, "hr.manager "); ok || msg == "" {
		t.Errorf("sixth attempt for the account: ok=%v msg=%q", ok, msg)
	}

	ll.ResetAccount("hr.manager")
	if ok, _ := ll.Check(r, "hr.manager"); !ok {
		t.Error("attempt after ResetAccount blocked")
	}
}
