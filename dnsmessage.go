// SPDX-License-Identifier: GPL-3.0-or-later

package dnscookie

import (
	"errors"

	"golang.org/x/net/dns/dnsmessage"
)

// OptionCode is the EDNS(0) COOKIE option code.
const OptionCode = 10

// ErrNotCookieOption means [ParseMessageOption] got an option whose
// code is not [OptionCode].
var ErrNotCookieOption = errors.New("not a COOKIE option")

// ParseMessageOption is like [ParseOption] but for options parsed
// using [golang.org/x/net/dns/dnsmessage].
func ParseMessageOption(opt dnsmessage.Option) (client [ClientCookieLen]byte, server []byte, err error) {
	if opt.Code != OptionCode {
		return client, nil, ErrNotCookieOption
	}
	return splitOptionData(opt.Data)
}

// NewMessageOption is like [NewOption] but for options serialized
// using [golang.org/x/net/dns/dnsmessage].
func NewMessageOption(client [ClientCookieLen]byte, server Server) dnsmessage.Option {
	return dnsmessage.Option{
		Code: OptionCode,
		Data: joinOptionData(client, server),
	}
}
