package graph_test

import (
	"github.com/mkaiser-dev/microgrid-graph/pkg/logging"
)

// capturingLogger records warnings so tests can assert on downgraded
// validation failures.
type capturingLogger struct {
	warnings []string
}

func (l *capturingLogger) Debug(string, ...logging.Field) {}

func (l *capturingLogger) Info(string, ...logging.Field) {}

func (l *capturingLogger) Error(string, ...logging.Field) {}

func (l *capturingLogger) Warn(msg string, fields ...logging.Field) {
	l.warnings = append(l.warnings, msg)
}
