package backend

import (
	"log/slog"
	"sync/atomic"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger sets the logger used by the backends. Nil disables logging.
// blurview.SetLogger calls this; applications rarely need to.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

// Logger returns the logger used by the backends.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
