package app

import (
	"context"
	"fmt"
	"time"

	"github.com/orgball2608/tgcore/pkg/adaptors/cache"
	"github.com/orgball2608/tgcore/pkg/adaptors/parsemode"
	"github.com/orgball2608/tgcore/pkg/adaptors/retry"
	"github.com/orgball2608/tgcore/pkg/adaptors/throttle"
	"github.com/orgball2608/tgcore/pkg/adaptors/trace"
	"github.com/orgball2608/tgcore/pkg/bot"
	"github.com/orgball2608/tgcore/pkg/config"
	"github.com/orgball2608/tgcore/pkg/logger"
	"github.com/orgball2608/tgcore/pkg/pgx"
	"github.com/orgball2608/tgcore/pkg/requests"
	backoffretry "github.com/orgball2608/tgcore/pkg/retry"
	"github.com/orgball2608/tgcore/pkg/types"
	"go.uber.org/fx"
)

// Stack is the bot wrapped in the adaptors enabled by the configuration.
type Stack struct {
	Requester requests.Requester
	// Cache is nil when caching is disabled.
	Cache *cache.Cache
}

type StackOpts struct {
	fx.In

	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
	Bot    *bot.Bot
}

// newStack layers the adaptors so that a request passes trace, cache,
// throttle and retry, in that order, before reaching the bot.
func newStack(opts StackOpts) (*Stack, error) {
	cfg := opts.Config
	var r requests.Requester = opts.Bot

	if cfg.Retry.Enabled {
		r = retry.New(r, backoffretry.Config{
			MaxRetries:      cfg.Retry.MaxRetries,
			InitialInterval: cfg.Retry.InitialInterval,
			MaxInterval:     cfg.Retry.MaxInterval,
			Multiplier:      cfg.Retry.Multiplier,
		}, opts.Logger)
	}

	if cfg.Throttle.Enabled {
		r = throttle.New(r, throttle.Limits{
			Global:      cfg.Throttle.Global,
			PrivateChat: cfg.Throttle.PrivateChat,
			Group:       cfg.Throttle.Group,
		})
	}

	stack := &Stack{}
	store, err := newStore(opts)
	if err != nil {
		return nil, err
	}
	if store != nil {
		stack.Cache = cache.New(r, cache.Opts{
			Store:     store,
			TTL:       cfg.Cache.TTL,
			Methods:   cfg.Cache.Methods,
			Namespace: opts.Bot.ID(),
			Logger:    opts.Logger,
		})
		r = stack.Cache
	}

	r = withParseMode(r, types.ParseMode(cfg.Telegram.ParseMode))

	var settings trace.Settings
	if cfg.Trace.Requests {
		settings |= trace.Requests
	}
	if cfg.Trace.Responses {
		settings |= trace.Responses
	}
	if settings != 0 {
		r = trace.New(r, opts.Logger, settings)
	}

	stack.Requester = r
	return stack, nil
}

// withParseMode selects between the plain requester and one with a default
// parse mode without adding a layer when none is configured.
func withParseMode(r requests.Requester, mode types.ParseMode) requests.Either {
	if mode == "" {
		return requests.Right(r)
	}
	return requests.Left(parsemode.New(r, mode))
}

func newStore(opts StackOpts) (cache.Store, error) {
	switch opts.Config.Cache.Backend {
	case config.CacheMemory:
		return cache.NewMemoryStore(), nil
	case config.CachePostgres:
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := migrate(ctx, opts.Config, opts.Logger); err != nil {
			return nil, err
		}
		pool, err := pgx.New(pgx.Opts{LC: opts.LC, Logger: opts.Logger, Config: opts.Config})
		if err != nil {
			return nil, err
		}
		return cache.NewPgxStore(pool), nil
	case config.CacheNone, "":
		return nil, nil
	}
	return nil, fmt.Errorf("unknown cache backend %q", opts.Config.Cache.Backend)
}
