package logger

import (
	"context"

	"github.com/orgball2608/tgcore/pkg/config"
	"go.uber.org/fx"
)

func provide(lc fx.Lifecycle, cfg *config.Config) *Impl {
	l := New(
		Opts{
			Env:       cfg.App.Env,
			SentryDSN: cfg.App.SentryUrl,
		},
	)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			l.Flush(ctx)
			return nil
		},
	})
	return l
}

var FxOption = fx.Annotate(
	provide,
	fx.As(new(Logger)),
)
