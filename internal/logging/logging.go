// Package logging opens the per-run log file used by the rest of the
// program, per spec.md §6: "Logs are written to a file derived from the
// server host and the current UTC timestamp under ./logs/; log level
// defaults to Debug."
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const logDir = "logs"

// Open creates ./logs (if absent) and opens a new log file named after
// host and the current UTC time, returning a Debug-level logger that
// writes plain, human-readable lines to it.
func Open(addr string, now time.Time) (*logrus.Logger, *os.File, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: create log dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s.log", sanitizeHost(addr), now.UTC().Format("20060102T150405Z"))
	path := filepath.Join(logDir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
	}

	log := logrus.New()
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return log, f, nil
}

// sanitizeHost strips the port from addr and replaces path-hostile
// characters so the result is safe to use as a file name.
func sanitizeHost(addr string) string {
	host := addr
	if idx := strings.LastIndexByte(addr, ':'); idx != -1 {
		host = addr[:idx]
	}
	host = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', os.PathSeparator:
			return '_'
		default:
			return r
		}
	}, host)
	if host == "" {
		host = "unknown"
	}
	return host
}
