package requests_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/orgball2608/tgcore/pkg/payloads"
	"github.com/orgball2608/tgcore/pkg/requests"
	mock_requests "github.com/orgball2608/tgcore/pkg/requests/mocks"
	"github.com/orgball2608/tgcore/pkg/types"
	"go.uber.org/mock/gomock"
)

func TestEitherRoutesToActiveSide(t *testing.T) {
	cases := map[string]struct {
		build    func(l, r requests.Requester) requests.Either
		leftUsed bool
	}{
		"left":  {build: func(l, _ requests.Requester) requests.Either { return requests.Left(l) }, leftUsed: true},
		"right": {build: func(_, r requests.Requester) requests.Either { return requests.Right(r) }},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			left := mock_requests.NewMockExecutor(ctrl)
			right := mock_requests.NewMockExecutor(ctrl)

			active, idle := left, right
			if !tc.leftUsed {
				active, idle = right, left
			}
			active.EXPECT().
				Execute(gomock.Any(), payloads.NewSendMessage(types.ID(1), "hi")).
				Return(json.RawMessage(`{"message_id":10}`), nil)
			idle.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)

			e := tc.build(requests.Base{Exec: left}, requests.Base{Exec: right})
			msg, err := e.SendMessage(types.ID(1), "hi").Send(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if msg.MessageID != 10 {
				t.Errorf("got message id %d, want 10", msg.MessageID)
			}
			if e.IsLeft() != tc.leftUsed {
				t.Errorf("IsLeft() = %v, want %v", e.IsLeft(), tc.leftUsed)
			}
		})
	}
}

func TestEitherReturnsInnerRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mock_requests.NewMockExecutor(ctrl)

	req := requests.Left(requests.Base{Exec: exec}).GetChat(types.Channel("news"))
	if req.Executor() != requests.Executor(exec) {
		t.Error("request is not bound to the inner requester's executor")
	}
	if got := req.Payload().ChatID; got != types.Channel("@news") {
		t.Errorf("got chat %v, want @news", got)
	}
}
