package health

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/servicecheck/internal/domain"
	"github.com/hamed0406/servicecheck/internal/probe"
)

// TCPProber and HTTPSProber are the transport seams of the evaluator;
// the probe package provides the production implementations.
type TCPProber interface {
	Check(ctx context.Context, host string, port int, timeout time.Duration) probe.Outcome
}

type HTTPSProber interface {
	Check(ctx context.Context, host, path string, timeout time.Duration) probe.Outcome
}

// Evaluator runs the per-target check sequence: TCP first, then HTTPS
// only when TCP succeeded and a path is configured. Single attempt per
// probe, no retries.
type Evaluator struct {
	Logger       *zap.Logger
	TCP          TCPProber
	HTTPS        HTTPSProber
	TCPTimeout   time.Duration
	HTTPSTimeout time.Duration
}

func NewEvaluator(logger *zap.Logger, tcpTimeout, httpsTimeout time.Duration) *Evaluator {
	if tcpTimeout <= 0 {
		tcpTimeout = 5 * time.Second
	}
	if httpsTimeout <= 0 {
		httpsTimeout = 10 * time.Second
	}
	return &Evaluator{
		Logger:       logger,
		TCP:          probe.NewTCPProber(logger),
		HTTPS:        probe.NewHTTPSProber(logger),
		TCPTimeout:   tcpTimeout,
		HTTPSTimeout: httpsTimeout,
	}
}

// Evaluate checks one target. A TCP failure short-circuits: an unreachable
// host cannot meaningfully serve HTTPS, so the HTTPS probe is never
// attempted and the result keeps HTTPSNotAttempted.
func (e *Evaluator) Evaluate(ctx context.Context, t domain.Target) domain.Result {
	e.Logger.Info("healthcheck_start", zap.String("service", t.Name), zap.String("addr", t.Addr()))

	tcp := e.TCP.Check(ctx, t.Host, t.Port, e.TCPTimeout)
	res := domain.Result{
		Target:     t,
		TCPSuccess: tcp.OK,
		HTTPS:      domain.HTTPSNotAttempted,
		Message:    tcp.Message,
		CheckedAt:  time.Now().UTC(),
	}
	if !tcp.OK {
		e.Logger.Warn("healthcheck_tcp_failed", zap.String("service", t.Name), zap.String("message", tcp.Message))
		return res
	}

	if t.HasHTTPSPath() {
		https := e.HTTPS.Check(ctx, t.Host, t.HTTPSPath, e.HTTPSTimeout)
		if https.OK {
			res.HTTPS = domain.HTTPSSucceeded
		} else {
			res.HTTPS = domain.HTTPSFailed
			e.Logger.Warn("healthcheck_https_failed", zap.String("service", t.Name), zap.String("message", https.Message))
		}
		res.Message = tcp.Message + "; " + https.Message
	}

	if res.IsHealthy() {
		e.Logger.Info("healthcheck_healthy", zap.String("service", t.Name))
	} else {
		e.Logger.Warn("healthcheck_unhealthy", zap.String("service", t.Name), zap.String("message", res.Message))
	}
	return res
}

// EvaluateAll checks targets sequentially, in the order supplied.
func (e *Evaluator) EvaluateAll(ctx context.Context, targets []domain.Target) []domain.Result {
	results := make([]domain.Result, 0, len(targets))
	for _, t := range targets {
		results = append(results, e.Evaluate(ctx, t))
	}
	return results
}
