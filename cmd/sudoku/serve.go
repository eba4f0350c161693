package main

import (
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tranmh/sudoku-solver/internal/generator"
	"github.com/tranmh/sudoku-solver/internal/hint"
	"github.com/tranmh/sudoku-solver/internal/httpapi"
	"github.com/tranmh/sudoku-solver/internal/solver"
	"github.com/tranmh/sudoku-solver/internal/storage"
	"github.com/tranmh/sudoku-solver/internal/usecase"
)

func newServeCommand() *cobra.Command {
	var addr, persistPath, logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, persistPath, logLevel)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&persistPath, "persist-path", "./data", "puzzle save directory")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "debug|info|warn|error")

	return cmd
}

func runServe(addr, persistPath, logLevel string) error {
	lvl := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))

	if err := os.MkdirAll(persistPath, 0o755); err != nil {
		return err
	}

	g := generator.New(solver.DLX{})
	st := storage.NewFS(persistPath)
	hinter := hint.Singles{}
	uc := usecase.New(g, hinter, st)
	h := httpapi.New(uc, logger)

	mux := http.NewServeMux()
	h.Register(mux)

	srv := &http.Server{
		Addr:              addr,
		Handler:           requestLogger(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("listening", "addr", addr, "persist", persistPath)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes and duration for every
// request, kept from the teacher's sudoku-web server.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}
