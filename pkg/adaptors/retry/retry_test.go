package retry

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/orgball2608/tgcore/pkg/bot"
	tgerrors "github.com/orgball2608/tgcore/pkg/errors"
	"github.com/orgball2608/tgcore/pkg/logger"
	"github.com/orgball2608/tgcore/pkg/requests"
	mock_requests "github.com/orgball2608/tgcore/pkg/requests/mocks"
	"github.com/orgball2608/tgcore/pkg/retry"
	"github.com/orgball2608/tgcore/pkg/types"
	"go.uber.org/mock/gomock"
)

func testConfig() retry.Config {
	return retry.Config{
		MaxRetries:      2,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestRetry(t *testing.T) {
	networkErr := tgerrors.Network("sendMessage", errors.New("connection reset"))
	badRequest := &tgerrors.APIError{Method: "sendMessage", ErrorCode: 400, Description: "Bad Request"}
	invalidJSON := tgerrors.InvalidJSON("sendMessage", errors.New("unexpected end of JSON input"))

	cases := map[string]struct {
		results []error
		wantErr error
	}{
		"recovers from network errors": {results: []error{networkErr, networkErr, nil}},
		"gives up":                     {results: []error{networkErr, networkErr, networkErr}, wantErr: networkErr},
		"api errors are permanent":     {results: []error{badRequest}, wantErr: badRequest},
		"invalid json is permanent":    {results: []error{invalidJSON}, wantErr: invalidJSON},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			exec := mock_requests.NewMockExecutor(ctrl)

			var calls []any
			for _, err := range tc.results {
				var raw json.RawMessage
				if err == nil {
					raw = json.RawMessage(`{"message_id":3}`)
				}
				calls = append(calls, exec.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(raw, err))
			}
			gomock.InOrder(calls...)

			r := New(requests.Base{Exec: exec}, testConfig(), logger.NewNop())
			msg, err := r.SendMessage(types.ID(1), "hi").Send(context.Background())

			if tc.wantErr == nil {
				if err != nil {
					t.Fatal(err)
				}
				if msg.MessageID != 3 {
					t.Errorf("got message %d, want 3", msg.MessageID)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestRetryStopsWhenContextIsDone(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mock_requests.NewMockExecutor(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	exec.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, requests.Payload) (json.RawMessage, error) {
			cancel()
			return nil, tgerrors.Network("getMe", context.Canceled)
		},
	)

	r := New(requests.Base{Exec: exec}, testConfig(), logger.NewNop())
	if _, err := r.GetMe().Send(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestRetryable(t *testing.T) {
	cases := map[string]struct {
		err  error
		want bool
	}{
		"network":     {tgerrors.Network("m", errors.New("x")), true},
		"io":          {tgerrors.IO("m", errors.New("x")), false},
		"flood":       {&tgerrors.APIError{ErrorCode: 429, RetryAfter: 5}, true},
		"bad request": {&tgerrors.APIError{ErrorCode: 400}, false},
		"forbidden":   {&tgerrors.APIError{ErrorCode: 403}, false},
		"plain":       {errors.New("x"), false},
	}
	for name, tc := range cases {
		if got := Retryable(tc.err); got != tc.want {
			t.Errorf("%s: Retryable = %v, want %v", name, got, tc.want)
		}
	}
}

func TestRetryReplaysUploads(t *testing.T) {
	var (
		attempts atomic.Int32
		mu       sync.Mutex
		uploaded []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := attempts.Add(1)
		if f, _, err := r.FormFile("document"); err != nil {
			t.Errorf("attempt %d: %v", n, err)
		} else {
			data, _ := io.ReadAll(f)
			mu.Lock()
			uploaded = append(uploaded, string(data))
			mu.Unlock()
		}
		if n == 1 {
			w.WriteHeader(http.StatusBadGateway)
			io.WriteString(w, "<html>502 Bad Gateway</html>")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"ok":true,"result":{"message_id":4,"chat":{"id":1,"type":"private"}}}`)
	}))
	defer srv.Close()

	b := bot.New(bot.Opts{Token: "1:x", APIURL: srv.URL, HTTPClient: srv.Client()})
	r := New(b, testConfig(), logger.NewNop())

	doc := types.FileReader("a.txt", strings.NewReader("hello"))
	msg, err := r.SendDocument(types.ID(1), doc).Send(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if msg.MessageID != 4 {
		t.Errorf("got message %d, want 4", msg.MessageID)
	}

	mu.Lock()
	defer mu.Unlock()
	if diff := cmp.Diff([]string{"hello", "hello"}, uploaded); diff != "" {
		t.Errorf("uploads mismatch (-want +got):\n%s", diff)
	}
}

func TestRetrySkipsLocalFailures(t *testing.T) {
	var attempts atomic.Int32
	b := bot.New(bot.Opts{Token: "1:x", APIURL: "http://127.0.0.1:1"})
	exec := requests.ExecutorFunc(func(ctx context.Context, p requests.Payload) (json.RawMessage, error) {
		attempts.Add(1)
		return b.Execute(ctx, p)
	})

	r := New(requests.Base{Exec: exec}, testConfig(), logger.NewNop())
	missing := types.FilePath(filepath.Join(t.TempDir(), "missing.txt"))
	_, err := r.SendDocument(types.ID(1), missing).Send(context.Background())

	if got := tgerrors.GetCode(err); got != tgerrors.CodeIO {
		t.Errorf("got %v, want an io error", err)
	}
	if n := attempts.Load(); n != 1 {
		t.Errorf("sent %d times, want 1", n)
	}
}

func TestNewWithoutLogger(t *testing.T) {
	r := New(requests.Base{Exec: requests.ExecutorFunc(func(context.Context, requests.Payload) (json.RawMessage, error) {
		return json.RawMessage(`true`), nil
	})}, testConfig(), nil)

	if _, err := r.LogOut().Send(context.Background()); err != nil {
		t.Fatal(err)
	}
}
