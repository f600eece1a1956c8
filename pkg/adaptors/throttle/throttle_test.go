package throttle

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/orgball2608/tgcore/pkg/requests"
	"github.com/orgball2608/tgcore/pkg/types"
)

func newCounting() (*atomic.Int32, requests.Base) {
	var calls atomic.Int32
	exec := requests.ExecutorFunc(func(context.Context, requests.Payload) (json.RawMessage, error) {
		calls.Add(1)
		return json.RawMessage(`{"id":1}`), nil
	})
	return &calls, requests.Base{Exec: exec}
}

func shortContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	t.Cleanup(cancel)
	return ctx
}

func TestPrivateChatLimit(t *testing.T) {
	calls, base := newCounting()
	th := New(base, Limits{Global: 1000, PrivateChat: 1, Group: 20})

	if _, err := th.SendMessage(types.ID(1), "a").Send(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := th.SendMessage(types.ID(1), "b").Send(shortContext(t)); err == nil {
		t.Error("second message to the same chat within a second was not delayed")
	}
	if _, err := th.SendMessage(types.ID(2), "c").Send(shortContext(t)); err != nil {
		t.Errorf("message to another chat: %v", err)
	}
	if _, err := th.GetChat(types.ID(1)).Send(shortContext(t)); err != nil {
		t.Errorf("getChat is not a message and must not wait: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("executor called %d times, want 3", got)
	}
}

func TestGroupLimit(t *testing.T) {
	calls, base := newCounting()
	th := New(base, Limits{Global: 1000, PrivateChat: 1, Group: 2})

	for i := range 2 {
		if _, err := th.SendMessage(types.ID(-100), "a").Send(shortContext(t)); err != nil {
			t.Fatalf("message %d: %v", i, err)
		}
	}
	if _, err := th.SendMessage(types.ID(-100), "b").Send(shortContext(t)); err == nil {
		t.Error("third message to the group within a minute was not delayed")
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("executor called %d times, want 2", got)
	}
}

func TestInMemoryLimiter(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Minute, 1)
	if !l.Allow("a") {
		t.Error("first action denied")
	}
	if l.Allow("a") {
		t.Error("second action allowed")
	}
	if !l.Allow("b") {
		t.Error("keys share a limiter")
	}
}

func TestInMemoryLimiterDropsIdleKeys(t *testing.T) {
	busy := NewInMemoryLimiter(1, time.Minute, 1)
	busy.sweepEvery = 0
	busy.Allow("a")
	busy.Allow("b")
	if n := busy.Len(); n != 2 {
		t.Errorf("got %d keys, want 2", n)
	}
	if busy.Allow("a") {
		t.Error("sweep reset a limiter that was still limiting")
	}

	idle := NewInMemoryLimiter(1000, time.Second, 1)
	idle.sweepEvery = 0
	idle.Allow("a")
	idle.Allow("b")
	time.Sleep(20 * time.Millisecond)
	idle.Allow("c")
	if n := idle.Len(); n != 1 {
		t.Errorf("got %d keys after the others refilled, want 1", n)
	}
}

func TestSendsMessage(t *testing.T) {
	cases := map[string]bool{
		"sendMessage":    true,
		"sendPhoto":      true,
		"copyMessage":    true,
		"forwardMessage": true,
		"sendChatAction": false,
		"getChat":        false,
		"banChatMember":  false,
	}
	for method, want := range cases {
		if got := sendsMessage(method); got != want {
			t.Errorf("sendsMessage(%q) = %v, want %v", method, got, want)
		}
	}
}
