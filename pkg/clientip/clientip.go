package clientip

import (
	"net"
	"net/http"
	"strings"
)

// RealClientIP returns the peer address of the request, ignoring proxy headers.
func RealClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return strings.TrimSpace(host)
}

// FromRequest returns the caller's IP. With trustProxy set, the left-most
// X-Forwarded-For entry or X-Real-IP wins over the peer address; only enable it
// behind a proxy that overwrites those headers.
func FromRequest(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); net.ParseIP(ip) != nil {
				return ip
			}
		}
		if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); net.ParseIP(ip) != nil {
			return ip
		}
	}
	return RealClientIP(r)
}
