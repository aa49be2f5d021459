package pkg

import (
	"fmt"
	"net"
	"net/http"
	"strings"
)

// ReadUserIP returns the client IP, preferring proxy headers over the remote address.
func ReadUserIP(r *http.Request) (string, error) {
	ipAddr := strings.TrimSpace(r.Header.Get("X-Real-Ip"))
	if ipAddr == "" {
		forwarded := r.Header.Get("X-Forwarded-For")
		if first, _, _ := strings.Cut(forwarded, ","); first != "" {
			ipAddr = strings.TrimSpace(first)
		}
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}

	if net.ParseIP(ipAddr) == nil {
		return "", fmt.Errorf("ip addr %s is invalid", ipAddr)
	}
	return ipAddr, nil
}
