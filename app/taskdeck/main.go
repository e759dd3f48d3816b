package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jrazmi/taskdeck/bridge/graphqlbridge"
	"github.com/jrazmi/taskdeck/bridge/scaffolding/errs"
	"github.com/jrazmi/taskdeck/bridge/scaffolding/mid"
	"github.com/jrazmi/taskdeck/core/repositories/commentsrepo"
	"github.com/jrazmi/taskdeck/core/repositories/commentsrepo/stores/commentspgxstore"
	"github.com/jrazmi/taskdeck/core/repositories/labelsrepo"
	"github.com/jrazmi/taskdeck/core/repositories/labelsrepo/stores/labelspgxstore"
	"github.com/jrazmi/taskdeck/core/repositories/tasklinksrepo"
	"github.com/jrazmi/taskdeck/core/repositories/tasklinksrepo/stores/tasklinkspgxstore"
	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo"
	"github.com/jrazmi/taskdeck/core/repositories/tasksrepo/stores/taskspgxstore"
	"github.com/jrazmi/taskdeck/infrastructure/postgresdb"
	"github.com/jrazmi/taskdeck/infrastructure/web"
	"github.com/jrazmi/taskdeck/sdk/logger"
	"github.com/jrazmi/taskdeck/sdk/telemetry"
)

var build = "develop"
var appName = "TASKDECK"

func main() {
	godotenv.Load()
	ctx := context.Background()

	log, err := logger.NewFromEnv(appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "constructing logger: %s\n", err)
		os.Exit(1)
	}

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// :*: START DATABASES :*:
	pool, err := postgresdb.NewFromEnv(appName)
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pool.Close()
	}()

	// REPOSITORIES //
	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	tasks := tasksrepo.NewRepository(log, taskspgxstore.NewStore(log, pool))
	labels := labelsrepo.NewRepository(log, labelspgxstore.NewStore(log, pool))
	links := tasklinksrepo.NewRepository(log, tasklinkspgxstore.NewStore(log, pool))
	comments := commentsrepo.NewRepository(log, commentspgxstore.NewStore(log, pool))

	// WEB //
	handler, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(log),
		web.WithTelemetry(telemetry.NewTelemetry()),
		web.WithGlobalMiddleware(
			mid.Logger(log),
			mid.Errors(log),
			mid.Metrics(),
			mid.Panics(),
		),
	)
	if err != nil {
		return fmt.Errorf("webhandler: %w", err)
	}

	handler.GET("/health", healthHandler(pool))

	if err := graphqlbridge.AddHttpRoutes(handler.Group(""), graphqlbridge.Config{
		Log:      log,
		Tasks:    tasks,
		Labels:   labels,
		Links:    links,
		Comments: comments,
	}); err != nil {
		return fmt.Errorf("graphql routes: %w", err)
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func healthHandler(pool *postgresdb.Pool) web.HandlerFunc {
	return func(ctx context.Context, r *http.Request) web.Encoder {
		if err := postgresdb.StatusCheck(ctx, pool); err != nil {
			return errs.Newf(errs.Internal, "database not ready: %s", err)
		}
		return web.NewJSONResponse(map[string]string{"status": "ok", "build": build})
	}
}
