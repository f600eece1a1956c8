package requests

// Hooks customize the requests produced by Forward.
type Hooks struct {
	// Prepare receives a pointer to the payload of every request, e.g.
	// *payloads.SendMessage.
	Prepare func(payload any)
	// Executor wraps the executor a request is bound to.
	Executor func(Executor) Executor
}

// Forward implements Requester by delegating every method to Inner and
// passing the result through Hooks. With zero Hooks it is a transparent
// reference to Inner.
type Forward struct {
	Inner Requester
	Hooks Hooks
}

var _ Requester = Forward{}

// Wrap applies h to r and returns r. The payload and method are never
// changed other than by Prepare.
func Wrap[P Payload, O any](r *Request[P, O], h Hooks) *Request[P, O] {
	if h.Prepare != nil {
		h.Prepare(&r.payload)
	}
	if h.Executor != nil {
		r.exec = h.Executor(r.exec)
	}
	return r
}
