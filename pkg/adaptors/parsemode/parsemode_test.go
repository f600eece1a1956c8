package parsemode

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/orgball2608/tgcore/pkg/requests"
	"github.com/orgball2608/tgcore/pkg/types"
)

func TestDefaultParseMode(t *testing.T) {
	var got []string
	exec := requests.ExecutorFunc(func(_ context.Context, p requests.Payload) (json.RawMessage, error) {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, err
		}
		got = append(got, p.Method()+" "+string(b))
		return json.RawMessage(`{"message_id":1}`), nil
	})
	base := requests.Base{Exec: exec}
	ctx := context.Background()

	html := New(base, types.ParseModeHTML)
	if _, err := html.SendMessage(types.ID(1), "a").Send(ctx); err != nil {
		t.Fatal(err)
	}

	explicit := html.SendMessage(types.ID(1), "b")
	explicit.Payload().SetParseMode(types.ParseModeMarkdown)
	if _, err := explicit.Send(ctx); err != nil {
		t.Fatal(err)
	}

	// The inner adaptor prepares the payload first.
	nested := New(New(base, types.ParseModeMarkdownV2), types.ParseModeHTML)
	if _, err := nested.CopyMessage(types.ID(1), types.ID(2), 3).Send(ctx); err != nil {
		t.Fatal(err)
	}

	if _, err := html.GetMe().Send(ctx); err != nil {
		t.Fatal(err)
	}

	want := []string{
		`sendMessage {"chat_id":1,"text":"a","parse_mode":"HTML"}`,
		`sendMessage {"chat_id":1,"text":"b","parse_mode":"Markdown"}`,
		`copyMessage {"chat_id":1,"from_chat_id":2,"message_id":3,"parse_mode":"MarkdownV2"}`,
		`getMe {}`,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("payloads mismatch (-want +got):\n%s", diff)
	}
	if html.Mode() != types.ParseModeHTML {
		t.Errorf("Mode() = %q", html.Mode())
	}
}
