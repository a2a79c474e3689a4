// SPDX-License-Identifier: GPL-3.0-or-later

package dnscookie

import "strconv"

// Version is the server cookie format version.
type Version uint8

// Version1 is the only server cookie version currently defined.
const Version1 Version = 1

// ParseVersion parses the version byte of a server cookie. Unknown
// values yield an [*UnknownVersionError].
func ParseVersion(b uint8) (Version, error) {
	switch Version(b) {
	case Version1:
		return Version1, nil
	default:
		return 0, &UnknownVersionError{Version: b}
	}
}

// String implements [fmt.Stringer].
func (v Version) String() string {
	return strconv.Itoa(int(v))
}

// Algorithm is the keyed hash function used to compute cookies.
type Algorithm uint8

// AlgorithmSipHash24 is SipHash-2-4, the only supported algorithm.
const AlgorithmSipHash24 Algorithm = 4

// historicalAlgorithms maps codepoints that were defined in the past
// but are not supported anymore to their names.
var historicalAlgorithms = map[uint8]string{
	1: "FNV",
	2: "HMAC-SHA-256-64",
	3: "AES",
}

// ParseAlgorithm parses the algorithm byte of a server cookie.
//
// Historical codepoints 1, 2 and 3 yield an [*UnsupportedAlgorithmError]
// naming the algorithm. Any other value except [AlgorithmSipHash24] yields
// an [*UnknownAlgorithmError].
func ParseAlgorithm(b uint8) (Algorithm, error) {
	if Algorithm(b) == AlgorithmSipHash24 {
		return AlgorithmSipHash24, nil
	}
	if name, found := historicalAlgorithms[b]; found {
		return 0, &UnsupportedAlgorithmError{Name: name}
	}
	return 0, &UnknownAlgorithmError{Algorithm: b}
}

// String implements [fmt.Stringer].
func (a Algorithm) String() string {
	if a == AlgorithmSipHash24 {
		return "SipHash-2-4"
	}
	if name, found := historicalAlgorithms[uint8(a)]; found {
		return name
	}
	return "Algorithm(" + strconv.Itoa(int(a)) + ")"
}
