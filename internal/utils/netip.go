package utils

import (
	"net"
	"net/http"
	"strings"
)

// HostNoPort returns the host part from "ip:port", "[v6]:port" or "ip".
func HostNoPort(s string) string {
	if s == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(s); err == nil {
		return host
	}
	return s
}

// firstForwardedFor returns the left-most IP from an X-Forwarded-For value.
func firstForwardedFor(xff string) string {
	xff = strings.TrimSpace(xff)
	if i := strings.IndexByte(xff, ','); i >= 0 {
		xff = xff[:i]
	}
	return strings.TrimSpace(xff)
}

// ClientIP resolves the real client IP.
//
// With trustProxy set it prefers X-Forwarded-For (first hop) then
// X-Real-IP; otherwise only RemoteAddr counts. Only enable trustProxy
// when the origin is reachable exclusively through a trusted proxy.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if v := firstForwardedFor(r.Header.Get("X-Forwarded-For")); v != "" {
			if ip := HostNoPort(v); ip != "" {
				return ip
			}
		}
		if v := strings.TrimSpace(r.Header.Get("X-Real-IP")); v != "" {
			if ip := HostNoPort(v); ip != "" {
				return ip
			}
		}
	}
	return HostNoPort(r.RemoteAddr)
}

// IPMatcher answers membership questions for a set of IPs and CIDRs.
type IPMatcher struct {
	nets []*net.IPNet
	ips  []net.IP
}

// NewIPMatcher parses a mixed list of plain IPs and CIDR blocks.
// Entries that fail to parse are ignored.
func NewIPMatcher(rules []string) *IPMatcher {
	m := &IPMatcher{}
	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		if _, ipNet, err := net.ParseCIDR(rule); err == nil {
			m.nets = append(m.nets, ipNet)
			continue
		}
		if ip := net.ParseIP(rule); ip != nil {
			m.ips = append(m.ips, ip)
		}
	}
	return m
}

// IsEmpty reports whether no rule parsed.
func (m *IPMatcher) IsEmpty() bool {
	return len(m.nets) == 0 && len(m.ips) == 0
}

// Allow reports whether addr matches any rule.
func (m *IPMatcher) Allow(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, known := range m.ips {
		if known.Equal(ip) {
			return true
		}
	}
	for _, ipNet := range m.nets {
		if ipNet.Contains(ip) {
			return true
		}
	}
	return false
}
