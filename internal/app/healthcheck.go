// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/vk/emitgrid/internal/docfile"
	"github.com/vk/emitgrid/internal/registry"
)

// healthHandler reports OK once the catalog for the current debug context
// builds.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	if _, err := a.Catalog(); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// renderHandler reads a YAML declarations document from the request body and
// writes the rendered output. The "for" and "names" query parameters take
// comma-separated lists and select EmitFor or Emit.
func (a *App) renderHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	decls, err := docfile.DecodeDeclarations(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := Render(registry.FromContext(r.Context()), decls, RenderOptions{
		Names: splitList(r.URL.Query().Get("names")),
		Keys:  splitList(r.URL.Query().Get("for")),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, out)
}

// Handler returns the HTTP routes served by Serve.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.Handle("/render", a.Middleware(http.HandlerFunc(a.renderHandler)))
	return mux
}

// Serve runs the HTTP server on the configured port until ctx is done, then
// shuts it down gracefully.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	a.httpServer = &http.Server{Handler: a.Handler()}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("🩺 Server starting", "address", ln.Addr().String())
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.logger.Info("🩺 Shutting down server...")
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Server shutdown failed", "error", err)
		return err
	}
	a.logger.Debug("Server shut down gracefully.")
	return <-errCh
}

// Listen opens the listener for the configured port.
func (a *App) Listen() (net.Listener, error) {
	return net.Listen("tcp", fmt.Sprintf(":%d", a.config.HealthcheckPort))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
