package payloads

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/orgball2608/tgcore/pkg/types"
)

func encode(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestEncoding(t *testing.T) {
	doc := NewSendDocument(types.Channel("news"), types.FileID("doc"))
	doc.SetCaption("report").SetParseMode(types.ParseModeHTML)

	thumb := types.FileURL("https://example.com/t.jpg")
	withThumb := NewSendDocument(types.ID(-100), types.FileID("doc"))
	withThumb.SetThumbnail(&thumb)

	cases := map[string]struct {
		payload any
		want    string
	}{
		"no parameters":  {GetMe{}, `{}`},
		"required only":  {NewSendMessage(types.ID(42), "hi"), `{"chat_id":42,"text":"hi"}`},
		"two recipients": {NewForwardMessage(types.ID(1), types.Channel("@src"), 9), `{"chat_id":1,"from_chat_id":"@src","message_id":9}`},
		"coordinates":    {NewSendLocation(types.ID(1), 51.5, -0.12), `{"chat_id":1,"latitude":51.5,"longitude":-0.12}`},
		"optionals":      {doc, `{"chat_id":"@news","document":"doc","caption":"report","parse_mode":"HTML"}`},
		"optional file":  {withThumb, `{"chat_id":-100,"document":"doc","thumbnail":"https://example.com/t.jpg"}`},
		"list":           {NewSetMyCommands([]types.BotCommand{{Command: "start", Description: "Start"}}), `{"commands":[{"command":"start","description":"Start"}]}`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, encode(t, tc.payload)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnsetOptionalsEqualAbsence(t *testing.T) {
	unset := NewSendMessage(types.ID(42), "hi")

	set := NewSendMessage(types.ID(42), "hi")
	set.SetDisableNotification(false).
		SetParseMode("").
		SetReplyToMessageID(0).
		SetReplyMarkup(nil)

	if a, b := encode(t, unset), encode(t, set); a != b {
		t.Errorf("setting optionals to their absence changed the payload: %s != %s", a, b)
	}
}

func TestSetDefaultParseMode(t *testing.T) {
	p := NewSendMessage(types.ID(1), "x")
	p.SetDefaultParseMode(types.ParseModeHTML)
	if p.ParseMode != types.ParseModeHTML {
		t.Errorf("got %q, want HTML", p.ParseMode)
	}

	p.SetDefaultParseMode(types.ParseModeMarkdownV2)
	if p.ParseMode != types.ParseModeHTML {
		t.Errorf("explicit parse mode overwritten with %q", p.ParseMode)
	}
}

func TestFiles(t *testing.T) {
	doc := NewSendDocument(types.ID(1), types.FileBytes("a.txt", []byte("a")))
	if got := len(doc.Files()); got != 1 {
		t.Errorf("got %d files without thumbnail, want 1", got)
	}

	thumb := types.FileBytes("t.jpg", []byte("t"))
	doc.SetThumbnail(&thumb)
	files := doc.Files()
	if _, ok := files["thumbnail"]; !ok || len(files) != 2 {
		t.Errorf("got files %v, want document and thumbnail", files)
	}

	if got := len(NewSetWebhook("https://example.com").Files()); got != 0 {
		t.Errorf("got %d files for webhook without certificate, want 0", got)
	}
}

func TestMethodNames(t *testing.T) {
	cases := map[string]struct {
		got  string
		want string
	}{
		"plain":          {NewSendMessage(types.ID(1), "x").Method(), "sendMessage"},
		"inline variant": {NewEditMessageTextInline("abc", "x").Method(), "editMessageText"},
		"keyword":        {Close{}.Method(), "close"},
	}
	for name, tc := range cases {
		if tc.got != tc.want {
			t.Errorf("%s: got %q, want %q", name, tc.got, tc.want)
		}
	}
}

func TestChat(t *testing.T) {
	if got := NewBanChatMember(types.ID(-5), 7).Chat(); got != types.ID(-5) {
		t.Errorf("got %v, want -5", got)
	}
}
