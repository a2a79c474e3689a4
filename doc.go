// SPDX-License-Identifier: GPL-3.0-or-later

// Package dnscookie constructs and validates DNS Cookie values.
//
// [NewServer], [DecodeServer] and [Server] mint, validate and serialize the
// 16-byte server cookie. [NewClient], [DecodeClient] and [Client] do the same
// for the 8-byte client cookie. Both are computed with SipHash-2-4 following
// an implementation-independent layout, so that any server sharing the same
// secrets can validate cookies minted by another one.
//
// The package is stateless. The caller owns the secrets and passes the
// currently valid ones (current first, then recently rotated ones) to the
// decode functions, which try them in order.
//
// [FindOption], [ParseOption], [NewOption] and [SetOption] are convenience
// functions for moving cookies in and out of [github.com/miekg/dns] messages.
// [ParseMessageOption] and [NewMessageOption] do the same for
// [golang.org/x/net/dns/dnsmessage] options.
package dnscookie
