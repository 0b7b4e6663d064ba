package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// TCPProber checks plain TCP reachability of a host:port with a single
// dial attempt.
type TCPProber struct {
	Dialer Dialer
	Logger *zap.Logger
}

func NewTCPProber(logger *zap.Logger) *TCPProber {
	return &TCPProber{Dialer: &net.Dialer{}, Logger: logger}
}

// Check dials host:port once. The timeout bounds the whole attempt,
// name resolution included. The connection is closed before returning.
func (p *TCPProber) Check(ctx context.Context, host string, port int, timeout time.Duration) Outcome {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	dctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := p.Dialer.DialContext(dctx, "tcp", addr)
	if err == nil {
		_ = conn.Close()
		p.Logger.Debug("tcp_ok", zap.String("addr", addr))
		return Outcome{OK: true, Message: fmt.Sprintf("TCP connection successful to %s:%d", host, port)}
	}

	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &dnsErr):
		p.Logger.Error("tcp_dns_error", zap.String("host", host), zap.Error(err))
		return Outcome{Message: fmt.Sprintf("DNS resolution failed for %s: %v", host, dnsErr)}
	case isTimeout(err):
		p.Logger.Error("tcp_timeout", zap.String("addr", addr))
		return Outcome{Message: fmt.Sprintf("TCP connection timeout to %s:%d", host, port)}
	case isConnFailure(err):
		p.Logger.Warn("tcp_failed", zap.String("addr", addr), zap.Error(err))
		return Outcome{Message: fmt.Sprintf("TCP connection failed to %s:%d", host, port)}
	default:
		p.Logger.Error("tcp_error", zap.String("addr", addr), zap.Error(err))
		return Outcome{Message: fmt.Sprintf("TCP connection error: %v", err)}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// isConnFailure matches the host-said-no class of errors: the network
// worked but the port is closed or the host unreachable.
func isConnFailure(err error) bool {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return false
	}
	switch errno {
	case syscall.ECONNREFUSED, syscall.ECONNRESET, syscall.EHOSTUNREACH, syscall.ENETUNREACH:
		return true
	}
	return false
}
