// Package throttle delays outgoing messages to stay within Telegram's
// broadcast limits.
package throttle

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/orgball2608/tgcore/pkg/requests"
	"github.com/orgball2608/tgcore/pkg/types"
	"golang.org/x/time/rate"
)

// Limits are the message rates allowed by Telegram.
type Limits struct {
	// Global is the number of messages per second across all chats.
	Global int
	// PrivateChat is the number of messages per second to one private chat.
	PrivateChat int
	// Group is the number of messages per minute to one group or channel.
	Group int
}

func DefaultLimits() Limits {
	return Limits{Global: 30, PrivateChat: 1, Group: 20}
}

// Throttle is a Requester that waits before sending messages until the
// limits allow it.
type Throttle struct {
	requests.Forward

	global  *rate.Limiter
	private Limiter
	group   Limiter
}

var _ requests.Requester = (*Throttle)(nil)

// New throttles inner. Non-positive limits fall back to DefaultLimits.
func New(inner requests.Requester, limits Limits) *Throttle {
	def := DefaultLimits()
	if limits.Global <= 0 {
		limits.Global = def.Global
	}
	if limits.PrivateChat <= 0 {
		limits.PrivateChat = def.PrivateChat
	}
	if limits.Group <= 0 {
		limits.Group = def.Group
	}
	t := &Throttle{
		global:  rate.NewLimiter(rate.Limit(limits.Global), limits.Global),
		private: NewInMemoryLimiter(limits.PrivateChat, time.Second, limits.PrivateChat),
		group:   NewInMemoryLimiter(limits.Group, time.Minute, limits.Group),
	}
	t.Forward = requests.Forward{
		Inner: inner,
		Hooks: requests.Hooks{Executor: t.wrap},
	}
	return t
}

type addressed interface {
	Chat() types.Recipient
}

func (t *Throttle) wrap(next requests.Executor) requests.Executor {
	return requests.ExecutorFunc(func(ctx context.Context, payload requests.Payload) (json.RawMessage, error) {
		if p, ok := payload.(addressed); ok && sendsMessage(payload.Method()) {
			if err := t.wait(ctx, p.Chat()); err != nil {
				return nil, err
			}
		}
		return next.Execute(ctx, payload)
	})
}

func (t *Throttle) wait(ctx context.Context, chat types.Recipient) error {
	limiter := t.private
	if chat.IsGroup() {
		limiter = t.group
	}
	if err := limiter.Wait(ctx, chat.String()); err != nil {
		return err
	}
	return t.global.Wait(ctx)
}

func sendsMessage(method string) bool {
	switch method {
	case "forwardMessage", "copyMessage":
		return true
	}
	return strings.HasPrefix(method, "send") && method != "sendChatAction"
}
