package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/MJE43/roulette-sim/internal/api"
	"github.com/MJE43/roulette-sim/internal/config"
	"github.com/MJE43/roulette-sim/internal/logging"
	"github.com/MJE43/roulette-sim/internal/player"
	"github.com/MJE43/roulette-sim/internal/simulator"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "roulette-sim:", err)
		os.Exit(1)
	}
}

// options are the command-line settings layered over the config file.
type options struct {
	configPath string
	strategy   string
	samples    int
	seed       int64
	seedSet    bool
	serve      bool
	list       bool
}

func parseFlags(fs *flag.FlagSet, args []string) (options, error) {
	var o options
	fs.StringVar(&o.configPath, "config", "", "path to a YAML config (defaults apply when empty)")
	fs.StringVar(&o.strategy, "strategy", "", "override player.strategy")
	fs.IntVar(&o.samples, "samples", 0, "override simulation.samples")
	fs.Int64Var(&o.seed, "seed", 0, "override wheel.seed")
	fs.BoolVar(&o.serve, "serve", false, "serve the HTTP API on server.addr instead of running one batch")
	fs.BoolVar(&o.list, "list", false, "list strategies and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})
	return o, nil
}

// apply overrides cfg with every flag that was given.
func (o options) apply(cfg *config.Config) {
	if o.strategy != "" {
		cfg.Player.Strategy = o.strategy
	}
	if o.samples > 0 {
		cfg.Simulation.Samples = o.samples
	}
	if o.seedSet {
		seed := o.seed
		cfg.Wheel.Seed = &seed
	}
}

func run() error {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	if opts.list {
		fmt.Println(strings.Join(player.Names(), "\n"))
		return nil
	}

	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	opts.apply(&cfg)

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.serve {
		return serveAPI(ctx, cfg, logger)
	}
	return runBatch(ctx, cfg, logger)
}

func runBatch(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	sim, err := simulator.Build(&cfg, logger)
	if err != nil {
		if errors.Is(err, player.ErrUnknownStrategy) {
			return fmt.Errorf("%w (known: %s)", err, strings.Join(player.Names(), ", "))
		}
		return err
	}

	if err := sim.Gather(ctx); err != nil {
		logger.Error("simulation failed", zap.String("run_id", sim.RunID().String()), zap.Error(err))
		return err
	}

	summary, err := sim.Summary()
	if err != nil {
		return err
	}
	fmt.Println(summary)
	return nil
}

func serveAPI(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewServer(cfg, logger.Named("api")).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("api listening", zap.String("addr", cfg.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("api shutting down")
	return srv.Shutdown(shutdownCtx)
}
