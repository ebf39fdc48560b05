package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/katalvlaran/ghs/telemetry"
)

func dumpMetrics(stdout io.Writer, dest string, m *telemetry.Metrics) error {
	if dest == "-" {
		return m.WriteText(stdout)
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if err := m.WriteText(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// serveMetrics exposes m at /metrics on ln until ctx is done.
func serveMetrics(ctx context.Context, ln net.Listener, m *telemetry.Metrics) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
