// SPDX-License-Identifier: GPL-3.0-or-later

package dnscookie

import (
	"crypto/subtle"
	"encoding/binary"
	"net/netip"
)

// ClientCookieLen is the length of an encoded client cookie.
const ClientCookieLen = 8

// Client is a client cookie.
//
// The cookie is a hash of the client address, the server address and the
// client secret. It does not contain a timestamp and hence does not expire.
// Construct using [NewClient] or [DecodeClient].
type Client struct {
	hash uint64
}

// NewClient creates the client cookie for the given addresses and secret.
//
// This function panics if version and algorithm are not among the
// values returned by [ParseVersion] and [ParseAlgorithm].
func NewClient(version Version, algorithm Algorithm,
	clientIP, serverIP netip.Addr, secret []byte) Client {
	kh := mustLookupKeyedHash(version, algorithm)
	return Client{hash: kh.clientHash(clientIP, serverIP, secret)}
}

// DecodeClient validates an encoded client cookie against the given
// secrets, which are tried in order. It returns the cookie computed with
// the first matching secret or [ErrInvalidHash] when none matches.
func DecodeClient(version Version, algorithm Algorithm, clientIP, serverIP netip.Addr,
	wire [ClientCookieLen]byte, secrets [][]byte) (Client, error) {
	kh := mustLookupKeyedHash(version, algorithm)
	for _, secret := range secrets {
		c := Client{hash: kh.clientHash(clientIP, serverIP, secret)}
		expect := c.Encode()
		if subtle.ConstantTimeCompare(expect[:], wire[:]) == 1 {
			return c, nil
		}
	}
	return Client{}, ErrInvalidHash
}

// Encode returns the wire representation of the cookie.
func (c Client) Encode() [ClientCookieLen]byte {
	var out [ClientCookieLen]byte
	binary.BigEndian.PutUint64(out[:], c.hash)
	return out
}

// Hash returns the cookie hash.
func (c Client) Hash() uint64 {
	return c.hash
}
