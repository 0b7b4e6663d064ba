package domain

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ErrInvalidTarget marks a target that failed construction-time validation.
var ErrInvalidTarget = errors.New("invalid target")

// Target describes one service to probe. Construct via NewTarget or
// ParseTarget so every instance satisfies the validation and path
// normalization rules; a Target is never mutated after construction.
type Target struct {
	Name      string `json:"name"`
	Host      string `json:"host"`
	Port      int    `json:"port"`
	HTTPSPath string `json:"https_path,omitempty"`
}

// NewTarget validates and builds a Target. httpsPath may be empty, which
// means no HTTPS probe; a non-empty path gets a leading "/" if missing.
func NewTarget(name, host string, port int, httpsPath string) (Target, error) {
	if strings.TrimSpace(name) == "" {
		return Target{}, fmt.Errorf("%w: service name cannot be empty", ErrInvalidTarget)
	}
	if strings.TrimSpace(host) == "" {
		return Target{}, fmt.Errorf("%w: service host cannot be empty", ErrInvalidTarget)
	}
	if port < 1 || port > 65535 {
		return Target{}, fmt.Errorf("%w: port out of range: %d", ErrInvalidTarget, port)
	}
	return Target{
		Name:      name,
		Host:      host,
		Port:      port,
		HTTPSPath: NormalizePath(httpsPath),
	}, nil
}

// NormalizePath prepends "/" to a non-empty path that lacks one.
// Idempotent; empty stays empty (meaning "no HTTPS probe").
func NormalizePath(p string) string {
	if p == "" || strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

// HasHTTPSPath reports whether an HTTPS probe is configured for the target.
func (t Target) HasHTTPSPath() bool { return t.HTTPSPath != "" }

// Addr returns the host:port dial address.
func (t Target) Addr() string {
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}
