// SPDX-License-Identifier: GPL-3.0-or-later

package dnscookie

import (
	"crypto/subtle"
	"encoding/binary"
	"time"
)

const (
	// ServerCookieLen is the length of an encoded server cookie.
	ServerCookieLen = 16

	// MaxAge is how old a server cookie timestamp may be.
	MaxAge = time.Hour

	// MaxClockSkew is how far in the future a server cookie
	// timestamp may be.
	MaxClockSkew = 5 * time.Minute

	// RegenerateAfter is the server cookie age after which
	// [Server.Regenerate] issues a new timestamp and hash.
	RegenerateAfter = 30 * time.Minute
)

// Server is a server cookie.
//
// The wire format is:
//
//	[0:1]   version
//	[1:2]   algorithm
//	[2:4]   reserved (big endian, opaque)
//	[4:8]   timestamp (big endian, unix seconds truncated to 32 bits)
//	[8:16]  hash (big endian)
//
// The hash is a function of the other fields, of the client cookie
// and of the server secret. Construct using [NewServer] or [DecodeServer].
// The zero value is not a valid cookie.
type Server struct {
	fields serverFields
	time   time.Time
	hash   uint64
}

// NewServer creates a new server cookie for the given client cookie
// using the given secret. The time is converted to UTC and truncated
// to whole seconds.
//
// This function panics if version and algorithm are not among the
// values returned by [ParseVersion] and [ParseAlgorithm].
func NewServer(version Version, algorithm Algorithm, reserved uint16,
	t time.Time, clientCookie [ClientCookieLen]byte, secret []byte) Server {
	kh := mustLookupKeyedHash(version, algorithm)
	return newServer(kh, version, algorithm, reserved, t, clientCookie, secret)
}

func newServer(kh keyedHash, version Version, algorithm Algorithm, reserved uint16,
	t time.Time, clientCookie [ClientCookieLen]byte, secret []byte) Server {
	t = time.Unix(t.Unix(), 0).UTC()
	s := Server{
		fields: serverFields{
			version:      version,
			algorithm:    algorithm,
			reserved:     reserved,
			timestamp:    uint32(t.Unix()),
			clientCookie: clientCookie,
		},
		time: t,
	}
	s.hash = kh.serverHash(&s.fields, secret)
	return s
}

// DecodeServer parses and validates an encoded server cookie.
//
// The now argument is the current time, used to reject cookies whose
// timestamp is older than [MaxAge] ([ErrExpired]) or more than
// [MaxClockSkew] in the future ([ErrTimeTravellor]).
//
// The secrets are tried in order and the cookie reconstructed with the
// first matching secret is returned. Pass the current secret first,
// followed by recently rotated ones. When no secret matches, this
// function returns [ErrInvalidHash].
//
// Structural and freshness checks run before computing any hash.
func DecodeServer(now time.Time, clientCookie [ClientCookieLen]byte,
	wire []byte, secrets [][]byte) (Server, error) {
	// 1. check the length
	if len(wire) != ServerCookieLen {
		return Server{}, &IncorrectLengthError{Length: len(wire)}
	}

	// 2. parse the version and the algorithm
	version, err := ParseVersion(wire[0])
	if err != nil {
		return Server{}, err
	}
	algorithm, err := ParseAlgorithm(wire[1])
	if err != nil {
		return Server{}, err
	}

	// 3. parse the reserved field
	reserved := binary.BigEndian.Uint16(wire[2:4])

	// 4. parse the timestamp
	t, err := serverTimestampToTime(binary.BigEndian.Uint32(wire[4:8]))
	if err != nil {
		return Server{}, err
	}

	// 5. make sure the cookie is fresh
	now = now.UTC()
	if t.Before(now.Add(-MaxAge)) {
		return Server{}, ErrExpired
	}
	if t.After(now.Add(MaxClockSkew)) {
		return Server{}, ErrTimeTravellor
	}

	// 6. parse the hash
	var hash [8]byte
	copy(hash[:], wire[8:16])

	// 7. find the secret that produced the hash
	kh := mustLookupKeyedHash(version, algorithm)
	for _, secret := range secrets {
		s := newServer(kh, version, algorithm, reserved, t, clientCookie, secret)
		var expect [8]byte
		binary.BigEndian.PutUint64(expect[:], s.hash)
		if subtle.ConstantTimeCompare(expect[:], hash[:]) == 1 {
			return s, nil
		}
	}
	return Server{}, ErrInvalidHash
}

// serverTimestampToTime converts the wire timestamp to a UTC time.
func serverTimestampToTime(ts uint32) (time.Time, error) {
	t := time.Unix(int64(ts), 0).UTC()
	if year := t.Year(); year < 1 || year > 9999 {
		return time.Time{}, &TimestampRangeError{Timestamp: ts}
	}
	return t, nil
}

// Regenerate returns a server cookie suitable for the response sent at
// time t. If the cookie is younger than [RegenerateAfter], the same cookie
// is returned unchanged. Otherwise, the returned cookie uses t as its
// timestamp and a hash computed with secret, which should be the current
// secret rather than the one that validated the cookie.
func (s Server) Regenerate(t time.Time, secret []byte) Server {
	t = t.UTC()
	if s.time.After(t.Add(-RegenerateAfter)) {
		return s
	}
	kh := mustLookupKeyedHash(s.fields.version, s.fields.algorithm)
	return newServer(kh, s.fields.version, s.fields.algorithm,
		s.fields.reserved, t, s.fields.clientCookie, secret)
}

// Encode returns the wire representation of the cookie.
func (s Server) Encode() [ServerCookieLen]byte {
	var out [ServerCookieLen]byte
	out[0] = byte(s.fields.version)
	out[1] = byte(s.fields.algorithm)
	binary.BigEndian.PutUint16(out[2:4], s.fields.reserved)
	binary.BigEndian.PutUint32(out[4:8], s.fields.timestamp)
	binary.BigEndian.PutUint64(out[8:16], s.hash)
	return out
}

// Version returns the cookie version.
func (s Server) Version() Version {
	return s.fields.version
}

// Algorithm returns the cookie algorithm.
func (s Server) Algorithm() Algorithm {
	return s.fields.algorithm
}

// Reserved returns the reserved field, which is carried uninterpreted.
func (s Server) Reserved() uint16 {
	return s.fields.reserved
}

// Time returns the cookie timestamp in UTC.
func (s Server) Time() time.Time {
	return s.time
}

// ClientCookie returns the client cookie the server cookie is bound to.
func (s Server) ClientCookie() [ClientCookieLen]byte {
	return s.fields.clientCookie
}

// Hash returns the cookie hash.
func (s Server) Hash() uint64 {
	return s.hash
}

// Equal returns whether s and other encode to the same bytes and are
// bound to the same client cookie.
func (s Server) Equal(other Server) bool {
	return s.fields == other.fields && s.hash == other.hash
}
