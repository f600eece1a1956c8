package trace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	tgerrors "github.com/orgball2608/tgcore/pkg/errors"
	"github.com/orgball2608/tgcore/pkg/logger"
	"github.com/orgball2608/tgcore/pkg/requests"
	"github.com/orgball2608/tgcore/pkg/types"
)

type entry struct {
	level  string
	msg    string
	fields map[string]any
}

type recorder struct {
	mu      *sync.Mutex
	entries *[]entry
	fields  []any
}

func newRecorder() *recorder {
	return &recorder{mu: new(sync.Mutex), entries: new([]entry)}
}

func (r *recorder) log(level, msg string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := append(append([]any{}, r.fields...), args...)
	fields := make(map[string]any)
	for i := 0; i+1 < len(all); i += 2 {
		fields[fmt.Sprint(all[i])] = all[i+1]
	}
	*r.entries = append(*r.entries, entry{level: level, msg: msg, fields: fields})
}

func (r *recorder) Debug(msg string, args ...any)     { r.log("debug", msg, args) }
func (r *recorder) Info(msg string, args ...any)      { r.log("info", msg, args) }
func (r *recorder) Warn(msg string, args ...any)      { r.log("warn", msg, args) }
func (r *recorder) Error(msg string, args ...any)     { r.log("error", msg, args) }
func (r *recorder) Printf(format string, args ...any) { r.log("info", fmt.Sprintf(format, args...), nil) }

func (r *recorder) With(args ...any) logger.Logger {
	return &recorder{mu: r.mu, entries: r.entries, fields: append(append([]any{}, r.fields...), args...)}
}

func (r *recorder) WithComponent(name string) logger.Logger {
	return r.With("component", name)
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var msgs []string
	for _, e := range *r.entries {
		msgs = append(msgs, e.level+" "+e.msg)
	}
	return msgs
}

func (r *recorder) find(msg string) entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range *r.entries {
		if e.msg == msg {
			return e
		}
	}
	return entry{}
}

func executor(raw string, err error) requests.Base {
	return requests.Base{Exec: requests.ExecutorFunc(func(context.Context, requests.Payload) (json.RawMessage, error) {
		return json.RawMessage(raw), err
	})}
}

func TestTraceLogsRequestAndResponse(t *testing.T) {
	rec := newRecorder()
	tr := New(executor(`{"message_id":7}`, nil), rec, Everything)

	if _, err := tr.SendMessage(types.ID(42), "hi").Send(context.Background()); err != nil {
		t.Fatal(err)
	}

	want := []string{"debug Sending request", "debug Got response"}
	if diff := cmp.Diff(want, rec.messages()); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}

	sent := rec.find("Sending request")
	if sent.fields["payload"] != `{"chat_id":42,"text":"hi"}` {
		t.Errorf("got payload %v", sent.fields["payload"])
	}
	if sent.fields["method"] != "sendMessage" || sent.fields["component"] != "trace" {
		t.Errorf("got fields %v", sent.fields)
	}
	if got := rec.find("Got response").fields["result"]; got != `{"message_id":7}` {
		t.Errorf("got result %v", got)
	}
}

func TestTraceLogsFailureCategory(t *testing.T) {
	tests := map[string]struct {
		err  error
		want string
	}{
		"api": {
			err:  &tgerrors.APIError{Method: "getMe", ErrorCode: 401, Description: "Unauthorized"},
			want: "api",
		},
		"network": {
			err:  tgerrors.Network("getMe", errors.New("connection refused")),
			want: tgerrors.CodeNetwork,
		},
		"invalid json": {
			err:  tgerrors.InvalidJSON("getMe", errors.New("unexpected EOF")),
			want: tgerrors.CodeInvalidJSON,
		},
		"other": {
			err:  errors.New("boom"),
			want: "other",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rec := newRecorder()
			tr := New(executor("", tt.err), rec, Responses)

			if _, err := tr.GetMe().Send(context.Background()); err == nil {
				t.Fatal("want error")
			}

			if diff := cmp.Diff([]string{"warn Request failed"}, rec.messages()); diff != "" {
				t.Fatalf("messages mismatch (-want +got):\n%s", diff)
			}
			if got := rec.find("Request failed").fields["category"]; got != tt.want {
				t.Errorf("got category %v, want %s", got, tt.want)
			}
		})
	}
}

func TestTraceSettings(t *testing.T) {
	rec := newRecorder()
	tr := New(executor(`true`, nil), rec, Requests)

	if _, err := tr.LogOut().Send(context.Background()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"debug Sending request"}, rec.messages()); diff != "" {
		t.Errorf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestNewWithoutLogger(t *testing.T) {
	tr := New(executor(`true`, nil), nil, Everything)

	if _, err := tr.LogOut().Send(context.Background()); err != nil {
		t.Fatal(err)
	}
}
