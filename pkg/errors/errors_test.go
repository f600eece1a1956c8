package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestCategories(t *testing.T) {
	cause := errors.New("boom")
	cases := map[string]struct {
		err         error
		transport   bool
		api         bool
		invalidJSON bool
	}{
		"network":      {err: Network("getMe", cause), transport: true},
		"io":           {err: IO("sendPhoto", cause), transport: true},
		"invalid json": {err: InvalidJSON("getMe", cause), invalidJSON: true},
		"api":          {err: &APIError{Method: "getChat", ErrorCode: 400, Description: "chat not found"}, api: true},
		"wrapped api":  {err: fmt.Errorf("ctx: %w", &APIError{ErrorCode: 403}), api: true},
		"plain":        {err: cause},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := IsTransport(tc.err); got != tc.transport {
				t.Errorf("IsTransport = %v", got)
			}
			if got := IsAPI(tc.err); got != tc.api {
				t.Errorf("IsAPI = %v", got)
			}
			if got := IsInvalidJSON(tc.err); got != tc.invalidJSON {
				t.Errorf("IsInvalidJSON = %v", got)
			}
		})
	}
}

func TestAPIErrorMatchesCommonErrors(t *testing.T) {
	cases := map[int]error{
		400: ErrBadRequest,
		401: ErrUnauthorized,
		403: ErrForbidden,
		404: ErrNotFound,
		409: ErrConflict,
		429: ErrTooManyRequests,
		502: ErrInternalServer,
	}
	for code, target := range cases {
		err := fmt.Errorf("wrapped: %w", &APIError{ErrorCode: code})
		if !Is(err, target) {
			t.Errorf("%d does not match %v", code, target)
		}
	}
	if IsNotFound(&APIError{ErrorCode: 400}) {
		t.Error("400 matches ErrNotFound")
	}
}

func TestParameters(t *testing.T) {
	err := fmt.Errorf("send: %w", &APIError{ErrorCode: 429, RetryAfter: 3})
	if d, ok := RetryAfter(err); !ok || d != 3*time.Second {
		t.Errorf("RetryAfter = %v, %v", d, ok)
	}
	if _, ok := RetryAfter(Network("x", errors.New("y"))); ok {
		t.Error("RetryAfter of network error")
	}

	err = &APIError{ErrorCode: 400, MigrateToChatID: -100123}
	if id, ok := MigrateToChatID(err); !ok || id != -100123 {
		t.Errorf("MigrateToChatID = %v, %v", id, ok)
	}
}

func TestGetMessage(t *testing.T) {
	if got := GetMessage(Wrap(errors.New("x"), "outer")); got != "outer" {
		t.Errorf("got %q", got)
	}
	if got := GetMessage(&APIError{Description: "Bad Request: chat not found"}); got != "Bad Request: chat not found" {
		t.Errorf("got %q", got)
	}
	if got := GetCode(IO("m", errors.New("x"))); got != CodeIO {
		t.Errorf("got code %q", got)
	}
	if Wrap(nil, "x") != nil {
		t.Error("Wrap(nil) != nil")
	}
}
