package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	mock_cache "github.com/orgball2608/tgcore/pkg/adaptors/cache/mocks"
	"github.com/orgball2608/tgcore/pkg/logger"
	"github.com/orgball2608/tgcore/pkg/requests"
	"github.com/orgball2608/tgcore/pkg/types"
	"go.uber.org/mock/gomock"
)

type counter struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
}

func (c *counter) Execute(_ context.Context, p requests.Payload) (json.RawMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[p.Method()]++
	if c.err != nil {
		return nil, c.err
	}
	return json.RawMessage(`{"id":1,"username":"tgcore_bot","message_id":1}`), nil
}

func (c *counter) count(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[method]
}

func TestCachesConfiguredMethods(t *testing.T) {
	exec := &counter{}
	c := New(requests.Base{Exec: exec}, Opts{
		Store:  NewMemoryStore(),
		TTL:    time.Minute,
		Logger: logger.NewNop(),
	})
	ctx := context.Background()

	for range 3 {
		me, err := c.GetMe().Send(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if me.UserName != "tgcore_bot" {
			t.Errorf("got user %+v", me)
		}
	}
	for range 2 {
		if _, err := c.SendMessage(types.ID(1), "hi").Send(ctx); err != nil {
			t.Fatal(err)
		}
	}

	if got := exec.count("getMe"); got != 1 {
		t.Errorf("getMe executed %d times, want 1", got)
	}
	if got := exec.count("sendMessage"); got != 2 {
		t.Errorf("sendMessage executed %d times, want 2", got)
	}
}

func TestKeyDependsOnPayload(t *testing.T) {
	exec := &counter{}
	c := New(requests.Base{Exec: exec}, Opts{
		Store:   NewMemoryStore(),
		Methods: []string{"getChat"},
		Logger:  logger.NewNop(),
	})
	ctx := context.Background()

	for _, id := range []int64{1, 1, 2} {
		if _, err := c.GetChat(types.ID(id)).Send(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if got := exec.count("getChat"); got != 2 {
		t.Errorf("getChat executed %d times, want 2", got)
	}

	k1, _ := c.key(c.GetChat(types.ID(1)).Payload())
	k2, _ := c.key(c.GetChat(types.ID(2)).Payload())
	if k1 == k2 || !strings.HasPrefix(k1, "getChat:") {
		t.Errorf("keys %q and %q", k1, k2)
	}
}

func TestEntriesExpire(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	exec := &counter{}
	c := New(requests.Base{Exec: exec}, Opts{Store: store, TTL: time.Minute, Logger: logger.NewNop()})
	ctx := context.Background()

	c.GetMe().Send(ctx)
	now = now.Add(30 * time.Second)
	c.GetMe().Send(ctx)
	if got := exec.count("getMe"); got != 1 {
		t.Fatalf("getMe executed %d times before expiry, want 1", got)
	}

	now = now.Add(time.Minute)
	if n, _ := store.DeleteExpired(ctx); n != 1 {
		t.Errorf("deleted %d entries, want 1", n)
	}
	c.GetMe().Send(ctx)
	if got := exec.count("getMe"); got != 2 {
		t.Errorf("getMe executed %d times after expiry, want 2", got)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	exec := &counter{err: errors.New("boom")}
	c := New(requests.Base{Exec: exec}, Opts{Store: NewMemoryStore(), Logger: logger.NewNop()})

	for range 2 {
		if _, err := c.GetMe().Send(context.Background()); err == nil {
			t.Fatal("want error")
		}
	}
	if got := exec.count("getMe"); got != 2 {
		t.Errorf("getMe executed %d times, want 2", got)
	}
}

func TestStoreFailureFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_cache.NewMockStore(ctrl)
	store.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("db down"))
	store.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), 5*time.Minute).Return(errors.New("db down"))

	exec := &counter{}
	c := New(requests.Base{Exec: exec}, Opts{Store: store, Logger: logger.NewNop()})

	if _, err := c.GetMe().Send(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := exec.count("getMe"); got != 1 {
		t.Errorf("getMe executed %d times, want 1", got)
	}
}

func TestNamespace(t *testing.T) {
	a := New(requests.Base{}, Opts{Namespace: "1", Logger: logger.NewNop()})
	b := New(requests.Base{}, Opts{Namespace: "2", Logger: logger.NewNop()})

	ka, _ := a.key(a.GetMe().Payload())
	kb, _ := b.key(b.GetMe().Payload())
	if ka == kb || !strings.HasPrefix(ka, "1:getMe:") {
		t.Errorf("keys %q and %q", ka, kb)
	}
}

func TestScheduleCleanup(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock_cache.NewMockStore(ctrl)

	var runs atomic.Int32
	store.EXPECT().DeleteExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		runs.Add(1)
		return 0, nil
	}).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := New(requests.Base{}, Opts{Store: store, Logger: logger.NewNop()})
	if _, err := c.ScheduleCleanup(ctx, 10*time.Millisecond); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for runs.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	if runs.Load() == 0 {
		t.Fatal("cleanup never ran")
	}
}

func TestNewWithoutLogger(t *testing.T) {
	exec := &counter{}
	c := New(requests.Base{Exec: exec}, Opts{Store: NewMemoryStore()})

	if _, err := c.GetMe().Send(context.Background()); err != nil {
		t.Fatal(err)
	}
	if n := exec.count("getMe"); n != 1 {
		t.Errorf("getMe sent %d times, want 1", n)
	}
}
