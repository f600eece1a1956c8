// Package cache serves repeated idempotent requests from a store.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/tgcore/pkg/logger"
	"github.com/orgball2608/tgcore/pkg/requests"
)

type Opts struct {
	Store Store
	TTL   time.Duration
	// Methods lists the Bot API methods whose results are cached.
	// Defaults to getMe.
	Methods []string
	// Namespace separates the entries of different bots sharing a store.
	Namespace string
	Logger    logger.Logger
}

// Cache is a Requester that answers cacheable requests from its store and
// stores the results of the ones it had to send.
type Cache struct {
	requests.Forward

	store     Store
	ttl       time.Duration
	methods   map[string]bool
	namespace string
	log       logger.Logger
}

var _ requests.Requester = (*Cache)(nil)

func New(inner requests.Requester, opts Opts) *Cache {
	methods := opts.Methods
	if len(methods) == 0 {
		methods = []string{"getMe"}
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	c := &Cache{
		store:     opts.Store,
		ttl:       opts.TTL,
		methods:   make(map[string]bool, len(methods)),
		namespace: opts.Namespace,
		log:       log.WithComponent("cache"),
	}
	if c.ttl <= 0 {
		c.ttl = 5 * time.Minute
	}
	for _, m := range methods {
		c.methods[m] = true
	}
	c.Forward = requests.Forward{
		Inner: inner,
		Hooks: requests.Hooks{Executor: c.wrap},
	}
	return c
}

func (c *Cache) wrap(next requests.Executor) requests.Executor {
	return requests.ExecutorFunc(func(ctx context.Context, payload requests.Payload) (json.RawMessage, error) {
		method := payload.Method()
		if !c.methods[method] {
			return next.Execute(ctx, payload)
		}

		key, err := c.key(payload)
		if err != nil {
			c.log.Warn("Failed to build cache key", "method", method, "error", err)
			return next.Execute(ctx, payload)
		}

		raw, ok, err := c.store.Get(ctx, key)
		if err != nil {
			c.log.Warn("Failed to read cache", "method", method, "error", err)
		} else if ok {
			return raw, nil
		}

		raw, err = next.Execute(ctx, payload)
		if err != nil {
			return nil, err
		}
		if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
			c.log.Warn("Failed to write cache", "method", method, "error", err)
		}
		return raw, nil
	})
}

// key is the method followed by the SHA-256 of the encoded payload.
func (c *Cache) key(payload requests.Payload) (string, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	key := payload.Method() + ":" + hex.EncodeToString(sum[:])
	if c.namespace != "" {
		key = c.namespace + ":" + key
	}
	return key, nil
}

// ScheduleCleanup removes expired entries from the store every interval
// until ctx is done.
func (c *Cache) ScheduleCleanup(ctx context.Context, interval time.Duration) (gocron.Scheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create cleanup scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				return
			}

			cleanupCtx, cancel := context.WithTimeout(ctx, time.Minute)
			defer cancel()

			n, err := c.store.DeleteExpired(cleanupCtx)
			if err != nil {
				c.log.Error("Failed to clean up cache", "error", err)
				return
			}
			c.log.Debug("Cache cleanup completed", "rows_deleted", n)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule cache cleanup: %w", err)
	}

	scheduler.Start()

	go func() {
		<-ctx.Done()
		if err := scheduler.Shutdown(); err != nil {
			c.log.Error("Failed to shut down cleanup scheduler", "error", err)
		}
	}()

	return scheduler, nil
}
