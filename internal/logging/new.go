package logging

import (
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/zap"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New builds a Logger for the given backend name. "slog" produces JSON lines
// on stdout; "zap" uses the zap production configuration.
func New(backend string) (Logger, error) {
	switch backend {
	case BackendSlog, "":
		return NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))), nil
	case BackendZap:
		l, err := zap.NewProduction()
		if err != nil {
			return nil, err
		}
		return NewZapLogger(l), nil
	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}
