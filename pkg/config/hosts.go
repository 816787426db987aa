// pkg/config/hosts.go
package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultPort = 9200
	defaultPath = "/"
)

// HostAddress is one normalized cluster endpoint. Defaults are applied during
// validation; the value never changes afterward.
type HostAddress struct {
	Scheme string
	Host   string
	Port   int
	Path   string
}

func (h HostAddress) String() string {
	return fmt.Sprintf("%s://%s:%d%s", h.Scheme, h.Host, h.Port, h.Path)
}

// TargetKind tags the active ConnectionTarget variant.
type TargetKind int

const (
	TargetHosts TargetKind = iota + 1
	TargetCloud
)

// ConnectionTarget is either an explicit host list or a cloud id, never both.
type ConnectionTarget struct {
	kind    TargetKind
	hosts   []HostAddress
	cloudID string
}

func (t ConnectionTarget) Kind() TargetKind { return t.kind }

// Hosts returns a copy; the validated list stays immutable.
func (t ConnectionTarget) Hosts() []HostAddress {
	return append([]HostAddress(nil), t.hosts...)
}

func (t ConnectionTarget) CloudID() string { return t.cloudID }

// normalizeHosts applies the scheme/port/path defaults to every raw host and
// enforces scheme agreement with the ssl setting. Order is preserved.
func normalizeHosts(raw []string, sslEnabled bool) ([]HostAddress, error) {
	scheme := "http"
	if sslEnabled {
		scheme = "https"
	}

	out := make([]HostAddress, 0, len(raw))
	var mismatched []string
	for _, r := range raw {
		h, err := parseHost(strings.TrimSpace(r), scheme)
		if err != nil {
			return nil, err
		}
		if h.Scheme != scheme {
			mismatched = append(mismatched, r)
			continue
		}
		out = append(out, h)
	}
	if len(mismatched) > 0 {
		return nil, mutualExclusion(
			fmt.Sprintf("conflict with %s=%t: all hosts must use the %q scheme, got %s",
				OptSSL, sslEnabled, scheme, strings.Join(mismatched, ", ")),
			OptHosts,
		)
	}
	return out, nil
}

func parseHost(raw, defaultScheme string) (HostAddress, error) {
	if raw == "" {
		return HostAddress{}, invalidValue(OptHosts, "must not contain empty entries")
	}
	// Bare "host" or "host:port" entries carry no scheme; force URL-reference
	// form so url.Parse does not swallow them into the path.
	if !strings.Contains(raw, "//") {
		raw = "//" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return HostAddress{}, invalidValue(OptHosts, fmt.Sprintf("entry %q is not a valid URI", strings.TrimPrefix(raw, "//")))
	}

	h := HostAddress{
		Scheme: u.Scheme,
		Host:   u.Hostname(),
		Port:   defaultPort,
		Path:   u.Path,
	}
	if h.Scheme == "" {
		h.Scheme = defaultScheme
	}
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return HostAddress{}, invalidValue(OptHosts, fmt.Sprintf("entry %q has an invalid port", raw))
		}
		h.Port = n
	}
	if h.Path == "" {
		h.Path = defaultPath
	}
	return h, nil
}
