package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Addr         string        // serve-mode bind address, e.g., "127.0.0.1:8080"
	LogDir       string        // logs directory
	TCPTimeout   time.Duration // per-target TCP dial timeout
	HTTPSTimeout time.Duration // per-target HTTPS GET timeout
	Interval     time.Duration // serve-mode recheck interval (0 disables)
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	tcpTimeout := 5 * time.Second
	if v := os.Getenv("TCP_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			tcpTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	httpsTimeout := 10 * time.Second
	if v := os.Getenv("HTTPS_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			httpsTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	interval := 60 * time.Second
	if v := os.Getenv("CHECK_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
			interval = time.Duration(ms) * time.Millisecond
		}
	}

	return Config{
		Addr:         addr,
		LogDir:       logDir,
		TCPTimeout:   tcpTimeout,
		HTTPSTimeout: httpsTimeout,
		Interval:     interval,
	}
}
