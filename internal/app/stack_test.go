package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/orgball2608/tgcore/pkg/bot"
	"github.com/orgball2608/tgcore/pkg/config"
	"github.com/orgball2608/tgcore/pkg/logger"
	"github.com/orgball2608/tgcore/pkg/types"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Telegram.ParseMode = string(types.ParseModeHTML)
	cfg.Cache.Backend = config.CacheMemory
	cfg.Cache.Methods = []string{"getMe"}
	cfg.Throttle.Enabled = true
	cfg.Throttle.Global = 30
	cfg.Throttle.PrivateChat = 1
	cfg.Throttle.Group = 20
	cfg.Trace.Requests = true
	cfg.Trace.Responses = true
	return cfg
}

func TestStack(t *testing.T) {
	var getMeCalls atomic.Int32
	var sent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			getMeCalls.Add(1)
			io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"username":"tgcore_bot"}}`)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			body, _ := io.ReadAll(r.Body)
			sent = string(body)
			io.WriteString(w, `{"ok":true,"result":{"message_id":9,"chat":{"id":42,"type":"private"}}}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"ok":false,"error_code":404,"description":"Not Found"}`)
		}
	}))
	defer srv.Close()

	b := bot.New(bot.Opts{Token: "1:x", APIURL: srv.URL, HTTPClient: srv.Client()})
	stack, err := newStack(StackOpts{Logger: logger.NewNop(), Config: testConfig(), Bot: b})
	if err != nil {
		t.Fatal(err)
	}
	if stack.Cache == nil {
		t.Fatal("memory cache not configured")
	}

	ctx := context.Background()
	for range 2 {
		me, err := stack.Requester.GetMe().Send(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if me.UserName != "tgcore_bot" {
			t.Errorf("got %+v", me)
		}
	}
	if n := getMeCalls.Load(); n != 1 {
		t.Errorf("getMe reached the server %d times, want 1", n)
	}

	msg, err := stack.Requester.SendMessage(types.ID(42), "<b>hi</b>").Send(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if msg.MessageID != 9 {
		t.Errorf("got message %+v", msg)
	}
	if !strings.Contains(sent, `"parse_mode":"HTML"`) {
		t.Errorf("default parse mode not applied: %s", sent)
	}
}

func TestWithParseMode(t *testing.T) {
	b := bot.New(bot.Opts{Token: "1:x"})

	if withParseMode(b, "").IsLeft() {
		t.Error("empty mode must select the plain requester")
	}
	if !withParseMode(b, types.ParseModeMarkdownV2).IsLeft() {
		t.Error("configured mode must select the parse mode adaptor")
	}
}

func TestNewStoreRejectsUnknownBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Backend = "redis"

	if _, err := newStore(StackOpts{Config: cfg, Logger: logger.NewNop()}); err == nil {
		t.Fatal("want error")
	}

	cfg.Cache.Backend = config.CacheNone
	store, err := newStore(StackOpts{Config: cfg, Logger: logger.NewNop()})
	if err != nil || store != nil {
		t.Errorf("none backend: store=%v err=%v", store, err)
	}
}
