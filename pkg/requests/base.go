package requests

// Base implements Requester by binding every payload to Exec. The bot and
// test doubles embed it.
type Base struct {
	Exec Executor
}

var _ Requester = Base{}
