package probe

import (
	"context"
	"net"
	"net/http"
)

// Outcome is the result of one probe attempt. Probes never return errors:
// every failure mode is folded into (OK=false, Message) because an
// unreachable service is a routine outcome, not exceptional control flow.
type Outcome struct {
	OK      bool
	Message string
}

// Dialer opens TCP connections. *net.Dialer satisfies it; tests inject a
// double that fails in controlled ways.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Doer issues HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
