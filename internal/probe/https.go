package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// HTTPSProber issues a single GET against https://{host}{path} with the
// platform client's standard certificate verification.
type HTTPSProber struct {
	Client Doer
	Logger *zap.Logger
}

func NewHTTPSProber(logger *zap.Logger) *HTTPSProber {
	return &HTTPSProber{Client: &http.Client{}, Logger: logger}
}

// Check fetches the endpoint once. Any 2xx status is success; everything
// else, including transport errors, becomes (false, message).
func (p *HTTPSProber) Check(ctx context.Context, host, path string, timeout time.Duration) Outcome {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	endpoint := "https://" + host + path

	rctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(rctx, http.MethodGet, endpoint, nil)
	if err != nil {
		p.Logger.Error("https_bad_request", zap.String("url", endpoint), zap.Error(err))
		return Outcome{Message: fmt.Sprintf("HTTPS GET error: %v", err)}
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			p.Logger.Error("https_timeout", zap.String("url", endpoint))
			return Outcome{Message: "HTTPS GET timeout"}
		}
		var ue *url.Error
		if errors.As(err, &ue) {
			p.Logger.Error("https_failed", zap.String("url", endpoint), zap.Error(ue.Err))
			return Outcome{Message: fmt.Sprintf("HTTPS GET failed: %v", ue.Err)}
		}
		p.Logger.Error("https_error", zap.String("url", endpoint), zap.Error(err))
		return Outcome{Message: fmt.Sprintf("HTTPS GET error: %v", err)}
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		p.Logger.Debug("https_ok", zap.String("url", endpoint), zap.Int("status", resp.StatusCode))
		return Outcome{OK: true, Message: fmt.Sprintf("HTTPS GET successful (status: %d)", resp.StatusCode)}
	}

	p.Logger.Warn("https_bad_status", zap.String("url", endpoint), zap.Int("status", resp.StatusCode))
	return Outcome{Message: fmt.Sprintf("HTTPS GET returned status %d", resp.StatusCode)}
}
