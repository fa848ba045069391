// Package session derives caller-correlation keys for grouping
// conversation turns. These are not authenticated identities.
package session

import (
	"fmt"
	"hash/fnv"
	"net"
	"net/http"
)

// Provider derives a session identifier from an incoming request. It is
// an interface so a real session scheme can replace the default without
// touching the orchestrator.
type Provider interface {
	SessionID(r *http.Request) string
}

// OriginProvider derives the session id from the remote host plus a
// short hash of the User-Agent header. Collision-prone and spoofable;
// a known limitation.
type OriginProvider struct{}

func (OriginProvider) SessionID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	return host + "_" + shortHash(r.UserAgent())
}

// shortHash hashes s, the empty string included, so UA-less clients
// still land on one stable session per host.
func shortHash(s string) string {
	h := fnv.New64a()
	h.Write([]byte(s))

	digits := fmt.Sprintf("%d", h.Sum64())
	if len(digits) > 8 {
		digits = digits[:8]
	}

	return digits
}
