package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// ErrInvalidSpec marks a malformed service specification string.
var ErrInvalidSpec = errors.New("invalid service spec")

// ParseTarget parses one "name:host:port[:https_path]" specification.
// Fields are whitespace-trimmed. Everything after the third colon is
// rejoined with ":" so paths containing colons survive.
func ParseTarget(spec string) (Target, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 {
		return Target{}, fmt.Errorf("%w: %q: expected name:host:port[:https_path]", ErrInvalidSpec, spec)
	}

	name := strings.TrimSpace(parts[0])
	host := strings.TrimSpace(parts[1])

	port, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return Target{}, fmt.Errorf("%w: %q: invalid port %q", ErrInvalidSpec, spec, strings.TrimSpace(parts[2]))
	}

	path := ""
	if len(parts) > 3 {
		path = strings.TrimSpace(strings.Join(parts[3:], ":"))
	}

	return NewTarget(name, host, port, path)
}

// ParseTargets parses every spec and reports all invalid ones together,
// so one run surfaces the full set of mistakes in a target list.
func ParseTargets(specs []string) ([]Target, error) {
	targets := make([]Target, 0, len(specs))
	var errs error
	for _, s := range specs {
		t, err := ParseTarget(s)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		targets = append(targets, t)
	}
	if errs != nil {
		return nil, errs
	}
	return targets, nil
}
