// Package retry repeats requests that failed for a transient reason.
package retry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgerrors "github.com/orgball2608/tgcore/pkg/errors"
	"github.com/orgball2608/tgcore/pkg/logger"
	"github.com/orgball2608/tgcore/pkg/requests"
	"github.com/orgball2608/tgcore/pkg/retry"
)

// Retry is a Requester that retries transport failures and flood control
// errors with exponential backoff. Flood control errors are retried no
// sooner than Telegram asked.
type Retry struct {
	requests.Forward

	cfg retry.Config
	log logger.Logger
}

var _ requests.Requester = (*Retry)(nil)

func New(inner requests.Requester, cfg retry.Config, log logger.Logger) *Retry {
	cfg.MinWait = func(err error) time.Duration {
		d, _ := tgerrors.RetryAfter(err)
		return d
	}
	if log == nil {
		log = logger.NewNop()
	}
	r := &Retry{
		cfg: cfg,
		log: log.WithComponent("retry"),
	}
	r.Forward = requests.Forward{
		Inner: inner,
		Hooks: requests.Hooks{Executor: r.wrap},
	}
	return r
}

func (r *Retry) wrap(next requests.Executor) requests.Executor {
	return requests.ExecutorFunc(func(ctx context.Context, payload requests.Payload) (json.RawMessage, error) {
		var result json.RawMessage
		err := retry.Do(ctx, r.log, payload.Method(), func() error {
			raw, err := next.Execute(ctx, payload)
			if err != nil {
				if ctx.Err() != nil || !Retryable(err) {
					return backoff.Permanent(err)
				}
				return err
			}
			result = raw
			return nil
		}, r.cfg)
		if err != nil {
			return nil, err
		}
		return result, nil
	})
}

// Retryable reports whether err may go away if the request is repeated.
// Local i/o failures such as a missing upload are not.
func Retryable(err error) bool {
	if tgerrors.GetCode(err) == tgerrors.CodeNetwork {
		return true
	}
	_, ok := tgerrors.RetryAfter(err)
	return ok
}
