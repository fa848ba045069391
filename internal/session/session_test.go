package session

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSessionIDDeterministic(t *testing.T) {
	p := OriginProvider{}

	r1 := httptest.NewRequest("POST", "/chat", nil)
	r1.RemoteAddr = "10.0.0.1:1234"
	r1.Header.Set("User-Agent", "Mozilla/5.0")

	r2 := httptest.NewRequest("POST", "/chat", nil)
	r2.RemoteAddr = "10.0.0.1:5678" // same host, different port
	r2.Header.Set("User-Agent", "Mozilla/5.0")

	id1 := p.SessionID(r1)
	id2 := p.SessionID(r2)

	if id1 != id2 {
		t.Errorf("same origin must map to the same session: %q vs %q", id1, id2)
	}

	if !strings.HasPrefix(id1, "10.0.0.1_") {
		t.Errorf("session id should start with the remote host: %q", id1)
	}
}

func TestSessionIDVariesByUserAgent(t *testing.T) {
	p := OriginProvider{}

	r1 := httptest.NewRequest("POST", "/chat", nil)
	r1.RemoteAddr = "10.0.0.1:1234"
	r1.Header.Set("User-Agent", "Mozilla/5.0")

	r2 := httptest.NewRequest("POST", "/chat", nil)
	r2.RemoteAddr = "10.0.0.1:1234"
	r2.Header.Set("User-Agent", "curl/8.0")

	if p.SessionID(r1) == p.SessionID(r2) {
		t.Error("different user agents must map to different sessions")
	}
}

func TestSessionIDEmptyUserAgent(t *testing.T) {
	p := OriginProvider{}

	r1 := httptest.NewRequest("POST", "/chat", nil)
	r1.RemoteAddr = "10.0.0.1:1234"

	r2 := httptest.NewRequest("POST", "/chat", nil)
	r2.RemoteAddr = "10.0.0.1:5678"

	id1 := p.SessionID(r1)
	id2 := p.SessionID(r2)

	if id1 != id2 {
		t.Errorf("missing User-Agent must still map to one stable session: %q vs %q", id1, id2)
	}
	if !strings.HasPrefix(id1, "10.0.0.1_") || len(id1) <= len("10.0.0.1_") {
		t.Errorf("expected host plus hash, got %q", id1)
	}
}
