// SPDX-License-Identifier: GPL-3.0-or-later

package dnscookie

import (
	"encoding/hex"

	"github.com/miekg/dns"
)

const (
	// DefaultUDPSize is the EDNS(0) UDP size used by [SetOption] when
	// the message lacks an OPT RR and is consistent with what the
	// standard library uses.
	DefaultUDPSize = 1232

	// MinServerOptionLen is the minimum length of the server part of
	// the COOKIE option.
	MinServerOptionLen = 8

	// MaxServerOptionLen is the maximum length of the server part of
	// the COOKIE option.
	MaxServerOptionLen = 32
)

// FindOption returns the first COOKIE option of msg or nil.
func FindOption(msg *dns.Msg) *dns.EDNS0_COOKIE {
	opt := msg.IsEdns0()
	if opt == nil {
		return nil
	}
	for _, o := range opt.Option {
		if c, ok := o.(*dns.EDNS0_COOKIE); ok {
			return c
		}
	}
	return nil
}

// ParseOption splits a COOKIE option into the client cookie and the
// server cookie, which is empty when the client does not know it yet.
//
// The returned server cookie is not validated. Pass it to [DecodeServer].
func ParseOption(opt *dns.EDNS0_COOKIE) (client [ClientCookieLen]byte, server []byte, err error) {
	raw, err := hex.DecodeString(opt.Cookie)
	if err != nil {
		return client, nil, err
	}
	return splitOptionData(raw)
}

// splitOptionData is the length validation shared by the option parsers.
func splitOptionData(raw []byte) (client [ClientCookieLen]byte, server []byte, err error) {
	serverLen := len(raw) - ClientCookieLen
	if serverLen < 0 || (serverLen > 0 && serverLen < MinServerOptionLen) || serverLen > MaxServerOptionLen {
		return client, nil, &IncorrectLengthError{Length: len(raw)}
	}
	copy(client[:], raw[:ClientCookieLen])
	if serverLen > 0 {
		server = raw[ClientCookieLen:]
	}
	return client, server, nil
}

// NewOption creates a COOKIE option containing the client cookie
// followed by the server cookie.
func NewOption(client [ClientCookieLen]byte, server Server) *dns.EDNS0_COOKIE {
	return &dns.EDNS0_COOKIE{
		Code:   dns.EDNS0COOKIE,
		Cookie: hex.EncodeToString(joinOptionData(client, server)),
	}
}

func joinOptionData(client [ClientCookieLen]byte, server Server) []byte {
	encoded := server.Encode()
	data := make([]byte, 0, ClientCookieLen+ServerCookieLen)
	data = append(data, client[:]...)
	return append(data, encoded[:]...)
}

// SetOption replaces any COOKIE option of msg with opt. When msg does
// not contain an OPT RR, this function adds one using [DefaultUDPSize].
func SetOption(msg *dns.Msg, opt *dns.EDNS0_COOKIE) {
	if msg.IsEdns0() == nil {
		msg.SetEdns0(DefaultUDPSize, false)
	}
	rr := msg.IsEdns0()
	options := rr.Option[:0]
	for _, o := range rr.Option {
		if o.Option() == dns.EDNS0COOKIE {
			continue
		}
		options = append(options, o)
	}
	rr.Option = append(options, opt)
}
