// Package trace logs requests and responses.
package trace

import (
	"context"
	"encoding/json"
	"time"

	tgerrors "github.com/orgball2608/tgcore/pkg/errors"
	"github.com/orgball2608/tgcore/pkg/logger"
	"github.com/orgball2608/tgcore/pkg/requests"
)

// Settings select what is logged.
type Settings uint8

const (
	Requests Settings = 1 << iota
	Responses

	Everything = Requests | Responses
)

// Trace is a Requester that logs the requests it sends.
type Trace struct {
	requests.Forward

	log      logger.Logger
	settings Settings
}

var _ requests.Requester = (*Trace)(nil)

func New(inner requests.Requester, log logger.Logger, settings Settings) *Trace {
	if log == nil {
		log = logger.NewNop()
	}
	t := &Trace{
		log:      log.WithComponent("trace"),
		settings: settings,
	}
	t.Forward = requests.Forward{
		Inner: inner,
		Hooks: requests.Hooks{Executor: t.wrap},
	}
	return t
}

func (t *Trace) wrap(next requests.Executor) requests.Executor {
	return requests.ExecutorFunc(func(ctx context.Context, payload requests.Payload) (json.RawMessage, error) {
		method := payload.Method()
		if t.settings&Requests != 0 {
			body, err := json.Marshal(payload)
			if err != nil {
				t.log.Warn("Failed to encode payload for tracing", "method", method, "error", err)
			}
			t.log.Debug("Sending request", "method", method, "payload", string(body))
		}

		start := time.Now()
		raw, err := next.Execute(ctx, payload)
		took := time.Since(start)

		if t.settings&Responses != 0 {
			if err != nil {
				t.log.Warn("Request failed",
					"method", method,
					"took", took.Round(time.Millisecond).String(),
					"category", category(err),
					"error", err,
				)
			} else {
				t.log.Debug("Got response",
					"method", method,
					"took", took.Round(time.Millisecond).String(),
					"result", string(raw),
				)
			}
		}
		return raw, err
	})
}

func category(err error) string {
	switch {
	case tgerrors.IsAPI(err):
		return "api"
	case tgerrors.IsTransport(err):
		return tgerrors.GetCode(err)
	case tgerrors.IsInvalidJSON(err):
		return tgerrors.CodeInvalidJSON
	}
	return "other"
}
