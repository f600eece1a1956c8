// Package bot implements the Requester that talks to the Telegram Bot API
// over HTTP.
package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	tgerrors "github.com/orgball2608/tgcore/pkg/errors"
	"github.com/orgball2608/tgcore/pkg/logger"
	"github.com/orgball2608/tgcore/pkg/requests"
)

const DefaultAPIURL = "https://api.telegram.org"

// DefaultClient is used when Opts.HTTPClient is nil.
var DefaultClient = &http.Client{
	Timeout: 30 * time.Second,
}

type Opts struct {
	Token string
	// APIURL is the Bot API server. Defaults to DefaultAPIURL.
	APIURL     string
	HTTPClient *http.Client
	Logger     logger.Logger
}

// Bot sends requests to the Bot API. It is safe for concurrent use.
type Bot struct {
	requests.Base

	token    string
	apiURL   string
	httpc    *http.Client
	scrubber *strings.Replacer
	log      logger.Logger
}

var (
	_ requests.Requester = (*Bot)(nil)
	_ requests.Executor  = (*Bot)(nil)
)

func New(opts Opts) *Bot {
	b := &Bot{
		token:  opts.Token,
		apiURL: strings.TrimSuffix(opts.APIURL, "/"),
		httpc:  opts.HTTPClient,
		log:    opts.Logger,
	}
	if b.apiURL == "" {
		b.apiURL = DefaultAPIURL
	}
	if b.httpc == nil {
		b.httpc = DefaultClient
	}
	if b.log == nil {
		b.log = logger.NewNop()
	}
	if b.token != "" {
		b.scrubber = strings.NewReplacer(b.token, "[EXPUNGED]")
	}
	b.Base = requests.Base{Exec: b}
	return b
}

// Execute sends payload and returns the result of a successful response.
func (b *Bot) Execute(ctx context.Context, payload requests.Payload) (json.RawMessage, error) {
	method := payload.Method()

	body, contentType, err := encode(payload)
	if err != nil {
		return nil, tgerrors.IO(method, b.scrub(err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.methodURL(method), body)
	if err != nil {
		return nil, tgerrors.Network(method, b.scrub(err))
	}
	req.Header.Set("Content-Type", contentType)

	b.log.Debug("Calling Bot API", "method", method, "content_type", contentType)

	res, err := b.httpc.Do(req)
	if err != nil {
		return nil, tgerrors.Network(method, b.scrub(err))
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, tgerrors.Network(method, b.scrub(err))
	}

	var resp tgbotapi.APIResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		if res.StatusCode != http.StatusOK {
			// Proxies and load balancers answer with HTML.
			return nil, tgerrors.Network(method, fmt.Errorf("unexpected status %d", res.StatusCode))
		}
		return nil, tgerrors.InvalidJSON(method, b.scrub(err))
	}

	if !resp.Ok {
		apiErr := &tgerrors.APIError{
			Method:      method,
			ErrorCode:   resp.ErrorCode,
			Description: b.scrubString(resp.Description),
		}
		if resp.Parameters != nil {
			apiErr.RetryAfter = resp.Parameters.RetryAfter
			apiErr.MigrateToChatID = resp.Parameters.MigrateToChatID
		}
		return nil, apiErr
	}

	return resp.Result, nil
}

// ID returns the numeric bot identifier that prefixes the token.
func (b *Bot) ID() string {
	id, _, _ := strings.Cut(b.token, ":")
	return id
}

// FileURL returns the download URL of a file returned by getFile. The URL
// contains the bot token.
func (b *Bot) FileURL(filePath string) string {
	return b.apiURL + "/file/bot" + b.token + "/" + strings.TrimPrefix(filePath, "/")
}

// Download writes the content of a file returned by getFile to w.
func (b *Bot) Download(ctx context.Context, filePath string, w io.Writer) error {
	const op = "download"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.FileURL(filePath), nil)
	if err != nil {
		return tgerrors.Network(op, b.scrub(err))
	}
	res, err := b.httpc.Do(req)
	if err != nil {
		return tgerrors.Network(op, b.scrub(err))
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return &tgerrors.APIError{
			Method:      op,
			ErrorCode:   res.StatusCode,
			Description: http.StatusText(res.StatusCode),
		}
	}
	if _, err := io.Copy(w, res.Body); err != nil {
		return tgerrors.IO(op, b.scrub(err))
	}
	return nil
}

func (b *Bot) methodURL(method string) string {
	return b.apiURL + "/bot" + b.token + "/" + method
}

type scrubbedError struct {
	err      error
	scrubber *strings.Replacer
}

func (se *scrubbedError) Error() string { return se.scrubber.Replace(se.err.Error()) }

func (se *scrubbedError) Unwrap() error { return se.err }

func (b *Bot) scrub(err error) error {
	if b.scrubber == nil {
		return err
	}
	return &scrubbedError{err: err, scrubber: b.scrubber}
}

func (b *Bot) scrubString(s string) string {
	if b.scrubber == nil {
		return s
	}
	return b.scrubber.Replace(s)
}
