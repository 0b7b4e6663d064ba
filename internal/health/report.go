package health

import "github.com/hamed0406/servicecheck/internal/domain"

// Process exit codes. ExitError covers configuration and runtime errors
// and is decided by the CLI layer, never by ExitCode.
const (
	ExitOK        = 0
	ExitUnhealthy = 2
	ExitError     = 3
)

// ExitCode reduces a finished pass to the process exit code. Zero targets
// is vacuously healthy. Partial and complete failure share ExitUnhealthy
// on purpose; the summary line carries the counts.
func ExitCode(results []domain.Result) int {
	for _, r := range results {
		if !r.IsHealthy() {
			return ExitUnhealthy
		}
	}
	return ExitOK
}

// Summary counts healthy results for the "healthy/total" report line.
func Summary(results []domain.Result) (healthy, total int) {
	for _, r := range results {
		if r.IsHealthy() {
			healthy++
		}
	}
	return healthy, len(results)
}
