package requests

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"

	tgerrors "github.com/orgball2608/tgcore/pkg/errors"
	"github.com/orgball2608/tgcore/pkg/types"
)

// ErrAlreadySent is returned by Send when the request has already been sent.
// Use Clone to send the same payload again.
var ErrAlreadySent = errors.New("request already sent")

// Payload describes the parameters of one Bot API method.
type Payload interface {
	Method() string
}

// Multipart is implemented by payloads that carry file fields. Payloads whose
// files all reference remote content are still sent as JSON.
type Multipart interface {
	Payload
	Files() map[string]types.InputFile
}

//go:generate go run go.uber.org/mock/mockgen -source=request.go -destination=mocks/mock.go

// Executor performs a Bot API call and returns the raw result field of a
// successful response.
type Executor interface {
	Execute(ctx context.Context, payload Payload) (json.RawMessage, error)
}

// ExecutorFunc adapts a function to Executor.
type ExecutorFunc func(ctx context.Context, payload Payload) (json.RawMessage, error)

func (f ExecutorFunc) Execute(ctx context.Context, payload Payload) (json.RawMessage, error) {
	return f(ctx, payload)
}

// Request is a call to a Bot API method that has not been executed yet. It
// owns its payload and is bound to the executor of the requester that built
// it. A Request is sent at most once.
type Request[P Payload, O any] struct {
	exec    Executor
	payload P
	sent    atomic.Bool
}

// New binds payload to exec.
func New[P Payload, O any](exec Executor, payload P) *Request[P, O] {
	return &Request[P, O]{exec: exec, payload: payload}
}

// Payload returns a pointer to the payload for setting optional parameters.
func (r *Request[P, O]) Payload() *P { return &r.payload }

// With applies fn to the payload and returns r.
func (r *Request[P, O]) With(fn func(p *P)) *Request[P, O] {
	fn(&r.payload)
	return r
}

func (r *Request[P, O]) Executor() Executor { return r.exec }

// Clone returns an unsent copy of r bound to the same executor.
func (r *Request[P, O]) Clone() *Request[P, O] {
	return &Request[P, O]{exec: r.exec, payload: r.payload}
}

// Send executes the request and decodes its result.
func (r *Request[P, O]) Send(ctx context.Context) (O, error) {
	var out O
	if !r.sent.CompareAndSwap(false, true) {
		return out, ErrAlreadySent
	}
	raw, err := r.exec.Execute(ctx, r.payload)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero O
		return zero, tgerrors.InvalidJSON(r.payload.Method(), err)
	}
	return out, nil
}
