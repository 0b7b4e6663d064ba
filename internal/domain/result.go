package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// HTTPSStatus is the three-state outcome of the HTTPS probe. A nullable
// bool would blur "not attempted" with "failed", so the states are explicit.
type HTTPSStatus int

const (
	HTTPSNotAttempted HTTPSStatus = iota
	HTTPSSucceeded
	HTTPSFailed
)

func (s HTTPSStatus) String() string {
	switch s {
	case HTTPSSucceeded:
		return "succeeded"
	case HTTPSFailed:
		return "failed"
	default:
		return "not_attempted"
	}
}

func (s HTTPSStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *HTTPSStatus) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v {
	case "not_attempted":
		*s = HTTPSNotAttempted
	case "succeeded":
		*s = HTTPSSucceeded
	case "failed":
		*s = HTTPSFailed
	default:
		return fmt.Errorf("unknown https status %q", v)
	}
	return nil
}

// Result is the outcome of one evaluation pass over one target.
type Result struct {
	Target     Target      `json:"target"`
	TCPSuccess bool        `json:"tcp_success"`
	HTTPS      HTTPSStatus `json:"https"`
	Message    string      `json:"message"`
	CheckedAt  time.Time   `json:"checked_at"`
}

// IsHealthy derives overall health from the probe outcomes: TCP must have
// succeeded and HTTPS, if attempted, must not have failed. Always computed,
// never stored.
func (r Result) IsHealthy() bool {
	return r.TCPSuccess && r.HTTPS != HTTPSFailed
}
