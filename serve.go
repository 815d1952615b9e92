package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"go-healthwatch/config"
	"go-healthwatch/cronjobs"
	"go-healthwatch/db"
	"go-healthwatch/fixtures"
	"go-healthwatch/handlers"
	"go-healthwatch/locale"
	"go-healthwatch/routes"
	"go-healthwatch/summarization"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard HTTP server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	initLog(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := db.Open(ctx, cfg.Preferences)
	if err != nil {
		return fmt.Errorf("failed to open preference store: %w", err)
	}
	defer backend.Close()
	prefs := db.NewPreferences(backend)

	translator, err := locale.NewTranslator()
	if err != nil {
		return err
	}

	gen, err := summarization.NewGenerator(ctx, cfg.AI)
	if err != nil {
		return err
	}
	if gen != nil {
		log.Infof("AI summaries enabled (%s)", cfg.AI.Provider)
	}

	var sink cronjobs.NotificationSink = cronjobs.LogSink{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaSink := cronjobs.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.TopicNotification)
		defer kafkaSink.Close()
		sink = kafkaSink
		log.Infof("Publishing notifications to kafka topic %s", cfg.Kafka.TopicNotification)
	}

	runner := cronjobs.NewCronRunner()
	queue := cronjobs.NewNotificationQueue(runner, cronjobs.QueueOptions{
		Period:   cfg.Schedule.NotificationPeriod,
		Lifetime: cfg.Schedule.NotificationLifetime,
		Sink:     sink,
	})
	dashboard := cronjobs.NewDashboardView(runner,
		cronjobs.NewRotator(cronjobs.AlertKeys, cfg.Schedule.AlertRotationPeriod),
		cronjobs.NewDriftSimulator(cfg.Schedule.MetricDriftPeriod, nil),
		cronjobs.DashboardOptions{Idle: cfg.Schedule.DashboardIdle})

	state, err := prefs.Load(ctx, false)
	if err != nil {
		return err
	}
	if state.PushEnabled {
		queue.Enable()
	}

	h := &handlers.Handlers{
		Preferences: prefs,
		Translator:  translator,
		Dashboard:   dashboard,
		Queue:       queue,
		Summarizer:  summarization.New(gen, cfg.AI.Timeout),
		Reports:     fixtures.CommunityReports(),
		Bundles:     fixtures.RegionBundles(),
	}
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: routes.SetupRouter(h, cfg.Server.ClientURL),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("Listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Server is preparing to shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Server shutdown")
		}

		dashboard.Unmount()
		queue.Close()
		select {
		case <-runner.Stop().Done():
		case <-shutdownCtx.Done():
		}
		return nil
	})

	return g.Wait()
}
