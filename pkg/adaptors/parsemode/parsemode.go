// Package parsemode sets a default parse mode on outgoing text.
package parsemode

import (
	"github.com/orgball2608/tgcore/pkg/requests"
	"github.com/orgball2608/tgcore/pkg/types"
)

type defaulter interface {
	SetDefaultParseMode(types.ParseMode)
}

// ParseMode is a Requester that applies its mode to every request that
// supports a parse mode and does not set one.
type ParseMode struct {
	requests.Forward

	mode types.ParseMode
}

var _ requests.Requester = (*ParseMode)(nil)

func New(inner requests.Requester, mode types.ParseMode) *ParseMode {
	return &ParseMode{
		Forward: requests.Forward{
			Inner: inner,
			Hooks: requests.Hooks{
				Prepare: func(payload any) {
					if p, ok := payload.(defaulter); ok {
						p.SetDefaultParseMode(mode)
					}
				},
			},
		},
		mode: mode,
	}
}

func (p *ParseMode) Mode() types.ParseMode { return p.mode }
