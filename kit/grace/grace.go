// Package grace ties a context to the process's termination signals.
package grace

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/avarnic/rebrand/kit/colorlog"
)

func defaultSignals() []os.Signal {
	if runtime.GOOS == "windows" {
		return []os.Signal{os.Interrupt}
	}
	return []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}
}

// NotifyContext returns a copy of parent that is cancelled when one of
// signals arrives (default: SIGHUP, SIGINT, SIGTERM, SIGQUIT) or when the
// returned cancel func is called. The received signal is logged.
func NotifyContext(parent context.Context, log *slog.Logger, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if log == nil {
		log = colorlog.New("grace")
	}
	if len(signals) == 0 {
		signals = defaultSignals()
	}

	ctx, cancel := context.WithCancel(parent)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, signals...)

	go func() {
		defer signal.Stop(sig)
		select {
		case s := <-sig:
			log.Info("Signal received, shutting down", "signal", s)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
