package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/hamed0406/servicecheck/internal/config"
	"github.com/hamed0406/servicecheck/internal/domain"
	"github.com/hamed0406/servicecheck/internal/health"
	"github.com/hamed0406/servicecheck/internal/httpapi"
	"github.com/hamed0406/servicecheck/internal/logging"
	"github.com/hamed0406/servicecheck/internal/repo/memory"
	"github.com/hamed0406/servicecheck/internal/scheduler"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.FromEnv()

	code := health.ExitOK
	root := newRootCmd(cfg, &code)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return health.ExitError
	}
	return code
}

func newRootCmd(cfg config.Config, code *int) *cobra.Command {
	var (
		tcpTimeout   = cfg.TCPTimeout
		httpsTimeout = cfg.HTTPSTimeout
		logDir       = cfg.LogDir
		jsonOut      bool
	)

	cmd := &cobra.Command{
		Use:   "servicecheck name:host:port[:https_path] ...",
		Short: "Check service health via TCP and optional HTTPS",
		Long: `servicecheck probes each service with a TCP connection and, when an
HTTPS path is configured, a follow-up HTTPS GET. Targets are checked one
at a time, in order; a TCP failure skips the HTTPS probe for that target.

Exit codes:
  0 - all services healthy (or no services given)
  2 - one or more services unhealthy
  3 - configuration or execution error`,
		Example: `  servicecheck api:api.example.com:443:/health
  servicecheck db:localhost:5432 cache:redis.local:6379
  servicecheck --json web:example.com:443:/status`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.NewLogger(logDir)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				*code = health.ExitError
				return nil
			}
			defer logger.Sync()

			targets, err := domain.ParseTargets(args)
			if err != nil {
				// All bad specs are reported, not just the first.
				for _, perr := range multierr.Errors(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), "error:", perr)
				}
				logger.Error("spec_parse_failed", zap.Error(err))
				*code = health.ExitError
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			e := health.NewEvaluator(logger, tcpTimeout, httpsTimeout)
			results := e.EvaluateAll(ctx, targets)

			if ctx.Err() != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "error: interrupted")
				*code = health.ExitError
				return nil
			}

			if jsonOut {
				writeJSON(cmd.OutOrStdout(), results)
			} else {
				printReport(cmd.OutOrStdout(), results)
			}
			*code = health.ExitCode(results)
			return nil
		},
	}

	cmd.Flags().DurationVar(&tcpTimeout, "tcp-timeout", tcpTimeout, "TCP connection timeout")
	cmd.Flags().DurationVar(&httpsTimeout, "https-timeout", httpsTimeout, "HTTPS request timeout")
	cmd.Flags().StringVar(&logDir, "log-dir", logDir, "directory for log files")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "emit results as JSON instead of text")

	cmd.AddCommand(newServeCmd(cfg))
	return cmd
}

func newServeCmd(cfg config.Config) *cobra.Command {
	var (
		addr         = cfg.Addr
		interval     = cfg.Interval
		tcpTimeout   = cfg.TCPTimeout
		httpsTimeout = cfg.HTTPSTimeout
		logDir       = cfg.LogDir
	)

	cmd := &cobra.Command{
		Use:          "serve name:host:port[:https_path] ...",
		Short:        "Recheck services on an interval and expose results over HTTP",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.NewLogger(logDir)
			if err != nil {
				return err
			}
			defer logger.Sync()

			targets, err := domain.ParseTargets(args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			store := memory.New()
			e := health.NewEvaluator(logger, tcpTimeout, httpsTimeout)
			go scheduler.New(logger, e, targets, store, interval).Run(ctx)

			api := httpapi.NewServer(logger, store, e, targets)
			srv := &http.Server{Addr: addr, Handler: api.Router()}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()
			logger.Info("api_listen", zap.String("addr", addr), zap.Int("targets", len(targets)))

			select {
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			case err := <-errCh:
				return err
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", addr, "HTTP bind address")
	cmd.Flags().DurationVar(&interval, "interval", interval, "recheck interval (0 for a single pass)")
	cmd.Flags().DurationVar(&tcpTimeout, "tcp-timeout", tcpTimeout, "TCP connection timeout")
	cmd.Flags().DurationVar(&httpsTimeout, "https-timeout", httpsTimeout, "HTTPS request timeout")
	cmd.Flags().StringVar(&logDir, "log-dir", logDir, "directory for log files")
	return cmd
}

func printReport(w io.Writer, results []domain.Result) {
	for _, r := range results {
		tag := green("[HEALTHY]")
		if !r.IsHealthy() {
			tag = red("[UNHEALTHY]")
		}
		fmt.Fprintf(w, "%s %s: %s\n", tag, r.Target.Name, r.Message)
	}
	healthy, total := health.Summary(results)
	fmt.Fprintf(w, "Health check complete: %d/%d services healthy\n", healthy, total)
}

func writeJSON(w io.Writer, results []domain.Result) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(results)
}
