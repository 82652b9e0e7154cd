package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-kdr/kdr/internal/buildinfo"
	kdr "github.com/go-kdr/kdr/internal/config"
	"github.com/go-kdr/kdr/internal/insert"
	"github.com/go-kdr/kdr/internal/logging"
	"github.com/go-kdr/kdr/internal/search"
	"github.com/go-kdr/kdr/internal/server"
	"github.com/go-kdr/kdr/internal/setup"
	"github.com/go-kdr/kdr/internal/shutdown"
)

func main() {
	_, _ = fmt.Fprint(os.Stdout, buildinfo.Graffiti)
	_, _ = fmt.Fprintf(
		os.Stdout,
		"%s: %s, %s\n",
		buildinfo.Info.Name(),
		buildinfo.Info.Time(),
		buildinfo.Info.Tag(),
	)

	ctx, done := shutdown.New()
	logger := logging.FromContext(ctx)
	if err := run(ctx, done); err != nil {
		logger.Fatal(err)
	}

	defer done()
}

func run(ctx context.Context, cancel func()) error {
	config := kdr.Config{}
	ctx, env, err := setup.Setup(ctx, &config)
	if err != nil {
		return fmt.Errorf("setup.Setup: %w", err)
	}
	defer env.Close(ctx)

	logger := logging.FromContext(ctx)

	shutdownCh := make(chan error, 2)

	srv, err := server.New(config.Server.Addr, config.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	mux := http.NewServeMux()

	insertHandler, err := insert.NewHandler(&config.Insert, env.Index())
	if err != nil {
		return fmt.Errorf("insert.NewHandler: %w", err)
	}
	searchHandler, err := search.NewHandler(&config.Search, env.Index())
	if err != nil {
		return fmt.Errorf("search.NewHandler: %w", err)
	}

	mux.Handle("/insert", insertHandler)
	mux.Handle("/search", searchHandler)
	mux.Handle("/health", server.HandleHealth(ctx, env.Index()))
	if h := env.MetricsHandler(); h != nil {
		mux.Handle("/metrics", h)
	}
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	go func() {
		logger.Infof("http server listening on %s", srv.Addr())
		if err := srv.ServeHTTPHandler(ctx, mux); err != nil {
			cancel()
			shutdownCh <- err
			return
		}
		shutdownCh <- nil
	}()

	if config.Server.GRPCAddr != "" {
		grpcSrv, err := server.New(config.Server.GRPCAddr, config.Server.MaxConnections)
		if err != nil {
			return fmt.Errorf("server.New grpc: %w", err)
		}
		go func() {
			logger.Infof("grpc health server listening on %s", grpcSrv.Addr())
			if err := grpcSrv.ServeGRPC(ctx, server.NewHealthGRPC()); err != nil {
				cancel()
				shutdownCh <- err
			}
		}()
	}

	return <-shutdownCh
}
