package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/alfdana/danashell/internal/api"
	"github.com/alfdana/danashell/internal/auth"
	"github.com/alfdana/danashell/internal/conf"
	"github.com/alfdana/danashell/internal/logger"
	"github.com/alfdana/danashell/internal/observability/metrics"
	"github.com/alfdana/danashell/internal/push"
	"github.com/alfdana/danashell/internal/shell/cache"
	"github.com/alfdana/danashell/internal/store"
	"github.com/alfdana/danashell/internal/whatsapp"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

func newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "danashell",
		Short:         "Offline app-shell gateway for the ALF DANA site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Install the shell cache and serve the gateway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configFile)
		},
	}
	root.AddCommand(serve)
	return root
}

func runServe(ctx context.Context, configFile string) error {
	settings, err := conf.Load(configFile)
	if err != nil {
		return err
	}
	log := logger.New(os.Stderr)

	m, err := metrics.NewMetrics()
	if err != nil {
		return err
	}

	cacheStorage, kv, err := openStorage(settings, log)
	if err != nil {
		return err
	}

	fetcher, err := cache.NewUpstreamFetcher(settings.Shell.Upstream, settings.Shell.FetchTimeout.Std())
	if err != nil {
		return err
	}
	shell := cache.NewController(cache.Config{
		Version:        settings.Shell.CacheVersion,
		Precache:       settings.Shell.Precache,
		OfflinePath:    settings.Shell.OfflinePath,
		InternalPrefix: settings.Shell.InternalPrefix,
	}, cacheStorage, fetcher, m, log)

	// Install is all-or-nothing: a failed precache discards the new
	// generation and aborts startup.
	if err := shell.Install(ctx); err != nil {
		return fmt.Errorf("shell install failed: %w", err)
	}
	if err := shell.Activate(ctx); err != nil {
		return fmt.Errorf("shell activate failed: %w", err)
	}

	st := store.New(kv, log)
	authSvc := auth.NewService(st)
	notifier := push.NewTrackingNotifier(log)
	registry := push.NewWindowRegistry()
	pushSvc := push.NewService(st, notifier, registry, m, log)
	push.Initialize(pushSvc)

	bus := push.NewBus()
	defer bus.Stop()
	bus.Subscribe(func(msg *push.Message) {
		pushSvc.HandleMessage(msg)
	})

	var subscriber *push.Subscriber
	if settings.Push.Broker != "" {
		subscriber = push.NewSubscriber(
			settings.Push.Broker,
			settings.Push.ClientID,
			settings.Push.Topic,
			settings.Push.Timeout.Std(),
			bus,
			log,
		)
		if err := subscriber.Start(ctx); err != nil {
			// The shell works without push; degrade rather than abort.
			log.Warn("push subscriber unavailable", logger.Error(err))
		} else {
			defer subscriber.Stop()
		}
	}

	controller := api.NewController(api.Deps{
		Settings: settings,
		Store:    st,
		Auth:     authSvc,
		Push:     pushSvc,
		Notifier: notifier,
		Registry: registry,
		Shell:    shell,
		Links:    whatsapp.NewLinks(settings.Contact.WhatsAppNumber),
		Metrics:  m,
		Log:      log,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- controller.Start(settings.Server.Listen)
	}()
	log.Info("gateway listening",
		logger.String("addr", settings.Server.Listen),
		logger.String("upstream", settings.Shell.Upstream),
		logger.String("generation", settings.Shell.CacheVersion))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	case sig := <-sigCh:
		log.Info("shutting down", logger.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := controller.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown failed", logger.Error(err))
	}
	// Let in-flight background revalidations land in the cache.
	shell.Flush()
	return nil
}

// openStorage selects persistent SQLite storage when a path is configured,
// in-memory otherwise. Cache generations and client state share one file.
func openStorage(settings *conf.Settings, log logger.Logger) (cache.Storage, store.KV, error) {
	if settings.Storage.Path == "" {
		log.Info("using in-memory storage")
		return cache.NewMemoryStorage(), store.NewMemoryKV(), nil
	}

	db, err := gorm.Open(sqlite.Open(settings.Storage.Path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open storage %s: %w", settings.Storage.Path, err)
	}
	cacheStorage, err := cache.NewSQLiteStorage(db)
	if err != nil {
		return nil, nil, err
	}
	kv, err := store.NewSQLiteKV(db)
	if err != nil {
		return nil, nil, err
	}
	return cacheStorage, kv, nil
}
