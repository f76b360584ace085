package internal

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/noorus/mediacms/pkg/logger"
)

const (
	defaultAddress         = ":8080"
	defaultShutdownTimeout = 30 * time.Second
)

// ErrListen is returned by Run when the address cannot be bound.
var ErrListen = errors.New("server: failed to listen")

// RunOption configures App.Run.
type RunOption func(*runConfig)

type runConfig struct {
	ctx             context.Context
	logger          *slog.Logger
	address         string
	hooks           []func(context.Context) error
	shutdownTimeout time.Duration
}

// Address sets the listen address used when Run gets "". Defaults to ":8080".
func Address(addr string) RunOption {
	return func(c *runConfig) {
		if addr != "" {
			c.address = addr
		}
	}
}

func Logger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// ShutdownTimeout bounds the drain of in-flight requests plus every hook.
func ShutdownTimeout(d time.Duration) RunOption {
	return func(c *runConfig) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

// ShutdownHook runs fn after the server has stopped accepting requests.
// Hooks run in registration order.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return func(c *runConfig) {
		if fn != nil {
			c.hooks = append(c.hooks, fn)
		}
	}
}

// WithContext sets the parent context; cancelling it stops the server
// the same way SIGINT or SIGTERM does.
func WithContext(ctx context.Context) RunOption {
	return func(c *runConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// Run listens on addr and serves until a signal arrives, the parent context
// is cancelled or serving fails. It then drains connections and runs the
// shutdown hooks.
func (a *App) Run(addr string, opts ...RunOption) error {
	cfg := runConfig{
		ctx:             context.Background(),
		logger:          logger.NewNope(),
		address:         defaultAddress,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if addr == "" {
		addr = cfg.address
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           a.mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    1 << 20,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Join(ErrListen, err)
	}

	ctx, stop := signal.NotifyContext(cfg.ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cfg.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return shutdown(srv, cfg)
	})

	return g.Wait()
}

// shutdown stops the server before the hooks so no request sees a closed pool.
func shutdown(srv *http.Server, cfg runConfig) error {
	cfg.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
	defer cancel()

	errs := []error{srv.Shutdown(ctx)}
	for _, hook := range cfg.hooks {
		if err := hook(ctx); err != nil {
			cfg.logger.Error("shutdown hook failed", slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	cfg.logger.Info("shutdown completed")
	return nil
}
