package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/orgball2608/tgcore/internal/migrations"
	"github.com/orgball2608/tgcore/pkg/bot"
	"github.com/orgball2608/tgcore/pkg/config"
	"github.com/orgball2608/tgcore/pkg/logger"
	"github.com/orgball2608/tgcore/pkg/requests"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		newBot,
		newStack,
		func(s *Stack) requests.Requester { return s.Requester },
	),
	fx.Invoke(run),
)

func newBot(cfg *config.Config, log logger.Logger) *bot.Bot {
	return bot.New(bot.Opts{
		Token:      cfg.Telegram.Token,
		APIURL:     cfg.Telegram.APIURL,
		HTTPClient: &http.Client{Timeout: cfg.Telegram.Timeout},
		Logger:     log.WithComponent("bot"),
	})
}

func migrate(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	db, err := migrations.Open(cfg.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := migrations.Up(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("Migrations applied", "count", len(results))
	return nil
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, stack *Stack, r requests.Requester) {
	srv := newHealthServer(log, cfg)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			go func() {
				log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed", "error", err)
				}
			}()

			me, err := r.GetMe().Send(startCtx)
			if err != nil {
				return fmt.Errorf("failed to get bot info: %w", err)
			}
			log.Info("Authorized on account", "username", me.UserName, "id", me.ID)

			if stack.Cache != nil {
				if _, err := stack.Cache.ScheduleCleanup(ctx, cfg.Cache.CleanupInterval); err != nil {
					return err
				}
			}
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			return srv.Shutdown(stopCtx)
		},
	})
}

func newHealthServer(log logger.Logger, cfg *config.Config) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Debug("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
