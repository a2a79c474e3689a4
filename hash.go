// SPDX-License-Identifier: GPL-3.0-or-later

package dnscookie

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/bassosimone/runtimex"
	"github.com/dchest/siphash"
)

// serverFields contains the server cookie fields covered by the hash.
type serverFields struct {
	version      Version
	algorithm    Algorithm
	reserved     uint16
	timestamp    uint32
	clientCookie [ClientCookieLen]byte
}

// keyedHash computes cookie hashes for a (version, algorithm) pair.
type keyedHash interface {
	serverHash(fields *serverFields, secret []byte) uint64
	clientHash(clientIP, serverIP netip.Addr, secret []byte) uint64
}

// hashSuite identifies an entry of [keyedHashes].
type hashSuite struct {
	version   Version
	algorithm Algorithm
}

// keyedHashes contains an entry for every version and algorithm that
// [ParseVersion] and [ParseAlgorithm] accept.
var keyedHashes = map[hashSuite]keyedHash{
	{Version1, AlgorithmSipHash24}: sipHash24{},
}

// lookupKeyedHash returns the [keyedHash] for the given pair.
func lookupKeyedHash(version Version, algorithm Algorithm) (keyedHash, error) {
	kh, found := keyedHashes[hashSuite{version, algorithm}]
	if !found {
		return nil, fmt.Errorf("dnscookie: no hash for version %s and algorithm %s", version, algorithm)
	}
	return kh, nil
}

// mustLookupKeyedHash is like [lookupKeyedHash] but panics on failure, which
// only happens when the caller converted an arbitrary integer to
// [Version] or [Algorithm] instead of using the constants or the parsers.
func mustLookupKeyedHash(version Version, algorithm Algorithm) keyedHash {
	return runtimex.PanicOnError1(lookupKeyedHash(version, algorithm))
}

// sipHash24 implements [keyedHash] using SipHash-2-4 with an all-zero key,
// appending the secret to the hashed message.
type sipHash24 struct{}

var sipHash24Key [16]byte

func (sipHash24) serverHash(fields *serverFields, secret []byte) uint64 {
	var buf [ClientCookieLen + 8]byte
	copy(buf[:ClientCookieLen], fields.clientCookie[:])
	buf[8] = byte(fields.version)
	buf[9] = byte(fields.algorithm)
	binary.BigEndian.PutUint16(buf[10:12], fields.reserved)
	binary.BigEndian.PutUint32(buf[12:16], fields.timestamp)

	h := siphash.New(sipHash24Key[:])
	_, _ = h.Write(buf[:])
	_, _ = h.Write(secret)
	return h.Sum64()
}

func (sipHash24) clientHash(clientIP, serverIP netip.Addr, secret []byte) uint64 {
	h := siphash.New(sipHash24Key[:])
	_, _ = h.Write(clientIP.AsSlice())
	_, _ = h.Write(serverIP.AsSlice())
	_, _ = h.Write(secret)
	return h.Sum64()
}
