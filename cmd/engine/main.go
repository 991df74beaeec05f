package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jobscout-engine/internal/aggregate"
	"jobscout-engine/internal/ats/atsutil"
	"jobscout-engine/internal/config"
	"jobscout-engine/internal/engine"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/httpapi"
	"jobscout-engine/internal/logger"
	"jobscout-engine/internal/match"
	"jobscout-engine/internal/scheduler"
	"jobscout-engine/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	dataDir := os.Getenv("JOBSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		return fmt.Errorf("config bootstrap: %w", err)
	}

	rawCfg, err := config.Load(userCfgPath)
	if err != nil {
		return fmt.Errorf("config load (%s): %w", userCfgPath, err)
	}
	cfg, validation := config.NormalizeAndValidate(rawCfg)

	log, err := logger.New(cfg.App.JSONLog, cfg.App.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	for _, w := range validation.Warnings {
		log.Warn("config", zap.String("warning", w))
	}
	if !validation.OK() {
		for _, e := range validation.Errors {
			log.Error("config", zap.String("error", e))
		}
		return fmt.Errorf("invalid config: %s", userCfgPath)
	}

	st, err := store.Open(filepath.Join(dataDir, "jobscout.db"))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, entry := range cfg.Companies {
		if err := st.UpsertCompany(ctx, entry.Company()); err != nil {
			return fmt.Errorf("seed company %s: %w", entry.Name, err)
		}
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return fmt.Errorf("registry: %w", err)
	}
	matcher := match.NewKeywordMatcher(reg)

	hub := events.NewHub()
	limiter := atsutil.NewHostLimiter(cfg.Scrape.RequestsPerSecond, cfg.Scrape.Burst)
	runner := aggregate.NewRunner(st, limiter, log,
		aggregate.WithExpiryThreshold(cfg.Polling.ExpiryThreshold),
		aggregate.WithLock(filepath.Join(dataDir, "pass.lock")),
		aggregate.WithEvents(hub),
	)
	eng := engine.New(st, runner, matcher, log)

	sched := scheduler.New(runner, cfg.Polling.Spec, log)
	if err := sched.Start(ctx); err != nil {
		return err
	}
	defer sched.Stop()

	mux := httpapi.NewMux(httpapi.Deps{Engine: eng, Hub: hub, Log: log})
	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover(log),
		httpapi.AccessLog(log),
		httpapi.Cors,
	)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	log.Info("engine listening", zap.String("addr", addr), zap.String("data_dir", dataDir))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// buildRegistry uses the built-in tables unless the config points at YAML
// overrides; either file can be overridden on its own.
func buildRegistry(cfg config.Config) (*match.Registry, error) {
	if cfg.Registry.DomainsPath == "" && cfg.Registry.SkillsPath == "" {
		return match.DefaultRegistry(), nil
	}

	domains := match.DefaultRegistry().Domains()
	skills := match.DefaultRegistry().Skills()
	if p := cfg.Registry.DomainsPath; p != "" {
		d, err := match.LoadDomains(p)
		if err != nil {
			return nil, err
		}
		domains = d
	}
	if p := cfg.Registry.SkillsPath; p != "" {
		s, err := match.LoadSkills(p)
		if err != nil {
			return nil, err
		}
		skills = s
	}
	return match.NewRegistry(domains, skills)
}
