// SPDX-License-Identifier: GPL-3.0-or-later

package dnscookie

import (
	"net/netip"
	"testing"

	"github.com/dchest/siphash"
	"github.com/stretchr/testify/require"
)

func TestLookupKeyedHash(t *testing.T) {
	t.Run("Supported", func(t *testing.T) {
		kh, err := lookupKeyedHash(Version1, AlgorithmSipHash24)
		require.NoError(t, err)
		require.Equal(t, sipHash24{}, kh)
	})

	t.Run("Unsupported", func(t *testing.T) {
		kh, err := lookupKeyedHash(Version1, Algorithm(3))
		require.Error(t, err)
		require.Nil(t, kh)
	})
}

func TestSipHash24ServerInputLayout(t *testing.T) {
	fields := &serverFields{
		version:      Version1,
		algorithm:    AlgorithmSipHash24,
		reserved:     0x0102,
		timestamp:    0x63b0cd00,
		clientCookie: [ClientCookieLen]byte{0xa, 0xb, 0xc, 0xd, 0xe, 0xf, 0x10, 0x11},
	}
	message := []byte{
		0xa, 0xb, 0xc, 0xd, 0xe, 0xf, 0x10, 0x11, // client cookie
		0x01,       // version
		0x04,       // algorithm
		0x01, 0x02, // reserved
		0x63, 0xb0, 0xcd, 0x00, // timestamp
		's', 'e', 'c', 'r', 'e', 't',
	}
	got := sipHash24{}.serverHash(fields, []byte("secret"))
	require.Equal(t, siphash.Hash(0, 0, message), got)
}

func TestSipHash24ClientInputLayout(t *testing.T) {
	tests := []struct {
		name     string
		client   netip.Addr
		server   netip.Addr
		expected []byte
	}{
		{
			name:   "IPv4",
			client: netip.MustParseAddr("192.0.2.1"),
			server: netip.MustParseAddr("198.51.100.7"),
			expected: []byte{
				192, 0, 2, 1,
				198, 51, 100, 7,
				'k',
			},
		},
		{
			name:   "IPv6",
			client: netip.MustParseAddr("2001:db8::1"),
			server: netip.MustParseAddr("::ffff:192.0.2.1"),
			expected: []byte{
				0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
				0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 192, 0, 2, 1,
				'k',
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sipHash24{}.clientHash(tt.client, tt.server, []byte("k"))
			require.Equal(t, siphash.Hash(0, 0, tt.expected), got)
		})
	}
}
