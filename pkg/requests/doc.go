// Package requests defines Request, the Requester method surface and the
// forwarding adaptors used to build bots out of other bots.
//
// A Requester only builds requests. Nothing touches the network until
// Request.Send is called:
//
//	msg, err := bot.SendMessage(types.ID(42), "hi").
//		With(func(p *payloads.SendMessage) { p.SetDisableNotification(true) }).
//		Send(ctx)
package requests

//go:generate go run ../../cmd/tgcore-gen -schema ../../schema/methods.yaml -out ../..
